package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = "config.yaml"

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"`
	Path        string `yaml:"path,omitempty"`
	RedisAddr   string `yaml:"redis_addr,omitempty"`
	RedisPrefix string `yaml:"redis_prefix,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var backends = []string{BackendFile, BackendSQLite, BackendRedis, BackendMemory}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:     BackendFile,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "taskeasy:",
		},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

func Load(dataDir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dataDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dataDir, FileName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	for _, b := range backends {
		if c.Storage.Backend == b {
			return nil
		}
	}
	return fmt.Errorf("invalid storage backend %q: must be one of file, sqlite, redis, memory", c.Storage.Backend)
}

// SQLitePath returns the configured database path, defaulting to dataDir/taskeasy.db.
func (s StorageConfig) SQLitePath(dataDir string) string {
	if s.Path != "" {
		return s.Path
	}
	return filepath.Join(dataDir, "taskeasy.db")
}
