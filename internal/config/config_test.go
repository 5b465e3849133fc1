package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"addr: ':8080'\nlog_level: debug\nmutation_rate_limit: 30\nmutation_rate_window: 30s\n",
		"mongo_uri: 'mongodb://localhost:27017'\nmongo_db: brainiacs\nredis_addr: 'localhost:6379'\npg:\n  host: localhost\n  port: 5432\n  user: u\n  password: p\n  dbname: users\n",
	)

	cfg := MustLoad(dir)

	assert.Equal(t, ":8080", cfg.Public.Addr)
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, 30, cfg.Public.MutationRateLimit)
	assert.Equal(t, 30*time.Second, cfg.Public.MutationRateWindow)
	assert.Equal(t, "brainiacs", cfg.Private.MongoDB)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
}

func TestMustLoad_Defaults(t *testing.T) {
	dir := writeConfigs(t, "", "mongo_uri: 'mongodb://localhost:27017'\nmongo_db: brainiacs\n")

	cfg := MustLoad(dir)

	assert.Equal(t, ":5000", cfg.Public.Addr)
	assert.Equal(t, "info", cfg.Public.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Public.RequestTimeout)
	assert.Equal(t, 60, cfg.Public.MutationRateLimit)
	assert.Equal(t, time.Minute, cfg.Public.MutationRateWindow)
}

func TestMustLoad_MissingMongoURI(t *testing.T) {
	dir := writeConfigs(t, "", "mongo_db: brainiacs\n")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing mongo_uri, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing config file, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
