package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ConfigPathEnv names the variable consulted when no config path is given.
const ConfigPathEnv = "COMMISSIONS_CONFIG_PATH"

// Config defines application configuration.
type Config struct {
	DB         DBConfig         `yaml:"db"`
	Log        LogConfig        `yaml:"log"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Current    CurrentConfig    `yaml:"current"`
}

type DBConfig struct {
	Backend string `yaml:"backend" env:"COMMISSIONS_DB_BACKEND"`
	Path    string `yaml:"path" env:"COMMISSIONS_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"COMMISSIONS_LOG_LEVEL"`
	Path  string `yaml:"path" env:"COMMISSIONS_LOG_PATH"`
}

type VocabularyConfig struct {
	Strict bool `yaml:"strict" env:"COMMISSIONS_VOCABULARY_STRICT"`
}

type CurrentConfig struct {
	Limit int `yaml:"limit" env:"COMMISSIONS_CURRENT_LIMIT"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		DB: DBConfig{
			Backend: BackendSQLite,
			Path:    "commissions.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Vocabulary: VocabularyConfig{
			Strict: true,
		},
		Current: CurrentConfig{
			Limit: 10,
		},
	}
}

// Load layers an optional YAML file and then environment variables over the
// defaults. An empty path falls back to COMMISSIONS_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.DB.Backend {
	case BackendSQLite:
		if c.DB.Path == "" {
			return fmt.Errorf("db.path is required for the %s backend", BackendSQLite)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown db.backend %q", c.DB.Backend)
	}
	if c.Current.Limit <= 0 {
		return fmt.Errorf("current.limit must be positive, got %d", c.Current.Limit)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
