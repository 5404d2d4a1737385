package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bilantra/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Store.Backend)
	ttl, err := cfg.Store.TTL()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bilantra.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 9090
allowed_origins = "https://a.example, https://b.example"

[store]
backend = "redis"
session_ttl = "12h"
`), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORE_BACKEND", "")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "env overrides file")
	assert.Equal(t, "redis", cfg.Store.Backend, "empty env keeps file value")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.Origins())
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddr, "unset fields keep defaults")

	ttl, err := cfg.Store.TTL()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, ttl)
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	_, err := config.Load("")
	assert.Error(t, err)
}

func TestNewLogger_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, config.NewLogger(config.LogConfig{Level: "debug"}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, config.NewLogger(config.LogConfig{Level: "loud"}).GetLevel())
}
