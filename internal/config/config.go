package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the runtime configuration shared by every entrypoint.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Store     StoreConfig     `toml:"store"`
	Assistant AssistantConfig `toml:"assistant"`
	Log       LogConfig       `toml:"log"`
}

type ServerConfig struct {
	Port           int    `toml:"port"`
	AllowedOrigins string `toml:"allowed_origins"` // comma-separated; empty allows same-origin only
	JWTSecret      string `toml:"jwt_secret"`
	BodyLimit      int64  `toml:"body_limit"` // bytes
	LoginRate      int    `toml:"login_rate"` // attempts per minute per client
}

type StoreConfig struct {
	Backend       string `toml:"backend"` // badger, redis, postgres or memory
	BadgerPath    string `toml:"badger_path"`
	RedisAddr     string `toml:"redis_addr"`
	DatabaseURL   string `toml:"database_url"`
	SessionTTL    string `toml:"session_ttl"`    // e.g. "24h"
	PurgeSchedule string `toml:"purge_schedule"` // cron spec for expired-session sweeps
}

type AssistantConfig struct {
	OpenAIAPIKey string `toml:"openai_api_key"`
	Model        string `toml:"model"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // json or text
}

func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8080,
			JWTSecret: "dev-secret-change-me",
			BodyLimit: 1 << 20,
			LoginRate: 10,
		},
		Store: StoreConfig{
			Backend:       "badger",
			BadgerPath:    "./data/bilantra",
			RedisAddr:     "localhost:6379",
			SessionTTL:    "24h",
			PurgeSchedule: "@every 10m",
		},
		Assistant: AssistantConfig{
			Model: "gpt-4o-mini",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads defaults, then the TOML file at path (skipped when path is empty),
// then environment overrides.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if _, err := cfg.Store.TTL(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = origins
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Server.JWTSecret = secret
	}

	if backend := os.Getenv("STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = strings.ToLower(backend)
	}
	if path := os.Getenv("BADGER_PATH"); path != "" {
		cfg.Store.BadgerPath = path
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Store.RedisAddr = addr
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Store.DatabaseURL = url
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		cfg.Store.SessionTTL = ttl
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Assistant.OpenAIAPIKey = key
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Assistant.Model = model
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
}

// TTL parses SessionTTL.
func (s StoreConfig) TTL() (time.Duration, error) {
	d, err := time.ParseDuration(s.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session_ttl %q: %w", s.SessionTTL, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("session_ttl must be positive, got %s", s.SessionTTL)
	}
	return d, nil
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (s ServerConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
