package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr           string        `yaml:"addr"`
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	CorsOrigins    []string      `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// Mutation endpoints share a per-IP fixed window limit.
	MutationRateLimit  int           `yaml:"mutation_rate_limit"`
	MutationRateWindow time.Duration `yaml:"mutation_rate_window"`
}

type Private struct {
	MongoURI  string `yaml:"mongo_uri"`
	MongoDB   string `yaml:"mongo_db"`
	Pg        Pg     `yaml:"pg"`
	RedisAddr string `yaml:"redis_addr"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	cfg.validate()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Addr == "" {
		c.Public.Addr = ":5000"
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.RequestTimeout == 0 {
		c.Public.RequestTimeout = 10 * time.Second
	}
	if c.Public.MutationRateLimit == 0 {
		c.Public.MutationRateLimit = 60
	}
	if c.Public.MutationRateWindow == 0 {
		c.Public.MutationRateWindow = time.Minute
	}
}

func (c *Config) validate() {
	if c.Private.MongoURI == "" {
		panic("mongo_uri is required in private config")
	}
	if c.Private.MongoDB == "" {
		panic("mongo_db is required in private config")
	}
}
