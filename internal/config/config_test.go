package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("storage:\n  backend: sqlite\nlog:\n  level: debug\n"), 0644)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("{{bad yaml"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("storage:\n  backend: localstorage\n"), 0644)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "invalid storage backend")
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Storage.Backend = BackendRedis
	cfg.Storage.RedisPrefix = "tests:"

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")

	require.NoError(t, Save(dir, Default()))
	_, err := os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
}

func TestStorageConfig_SQLitePath(t *testing.T) {
	s := StorageConfig{}
	assert.Equal(t, filepath.Join("/data", "taskeasy.db"), s.SQLitePath("/data"))
	s.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", s.SQLitePath("/data"))
}
