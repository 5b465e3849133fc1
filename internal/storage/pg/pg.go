// Package pg is the adapter for the external user store. Board
// aggregates never live here; the engine only resolves identity
// (display names, emails) and registers accounts through it.
package pg

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/brainiacs-dev/brainiacs/internal/config"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Pg) (*Storage, error) {
	slog.Info("connecting to user store")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("successfully connected to user store")
	return &Storage{db}, nil
}

func Connect(cfg config.Pg) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
