package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	SrvPort          string        `yaml:"srv_port"`
	DSN              string        `yaml:"pg_dsn"`
	SQLitePath       string        `yaml:"sqlite_path"`
	Storage          string        `yaml:"storage"`
	LexiconPath      string        `yaml:"lexicon_path"`
	Stemmer          string        `yaml:"stemmer"`
	RateLimit        int           `yaml:"rate_limit"`
	ConcurrencyLimit int           `yaml:"concurrency_limit"`
	TokenMaxTime     int           `yaml:"token_max_time"`
	JWTSecret        string        `yaml:"jwt_secret"`
	ReloadInterval   time.Duration `yaml:"reload_interval"`
	Workers          int           `yaml:"workers"`
	LogLevel         string        `yaml:"log_level"`
}

func Load(path string) (*Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, err
	}

	c.setDefaults()

	if c.Storage != StoragePostgres && c.Storage != StorageSQLite {
		return nil, fmt.Errorf("config: unknown storage %q", c.Storage)
	}

	return c, nil
}

func (c *Config) setDefaults() {
	if c.SrvPort == "" {
		c.SrvPort = "8080"
	}
	if c.Storage == "" {
		c.Storage = StorageSQLite
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "nlptk.db"
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 100
	}
	if c.ConcurrencyLimit <= 0 {
		c.ConcurrencyLimit = 10
	}
	if c.TokenMaxTime <= 0 {
		c.TokenMaxTime = 24
	}
	if c.ReloadInterval <= 0 {
		c.ReloadInterval = 24 * time.Hour
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
