// Package kv provides the key-value storage slot the task store persists to.
package kv

import (
	"fmt"

	"github.com/rogersnm/taskeasy/internal/config"
)

// Storage is an opaque string key-value medium.
type Storage interface {
	// Get returns the stored value and true, or "" and false when the key is absent.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Backend is a Storage that owns resources.
type Backend interface {
	Storage
	Name() string
	Close() error
}

// Open constructs the backend named by cfg.Backend.
func Open(cfg config.StorageConfig, dataDir string) (Backend, error) {
	switch cfg.Backend {
	case "", config.BackendFile:
		return NewFile(dataDir), nil
	case config.BackendSQLite:
		return OpenSQLite(cfg.SQLitePath(dataDir))
	case config.BackendRedis:
		return NewRedis(cfg.RedisAddr, cfg.RedisPrefix), nil
	case config.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
