package config

import (
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/dmitrijs2005/gophsocial/internal/common"
)

// Config holds runtime settings for the gophsocial CLI.
type Config struct {
	// APIBaseURL is the backend root, e.g. http://127.0.0.1:8000.
	APIBaseURL string
	// RequestTimeout bounds each HTTP call; zero leaves it to the transport.
	RequestTimeout time.Duration

	RefreshInterval      time.Duration
	IdleTimeout          time.Duration
	UserCacheTTL         time.Duration
	DefaultTokenLifetime time.Duration

	MinPasswordLength int
	MaxLoginAttempts  int
	LockoutDuration   time.Duration

	RateLimitAttempts int
	RetryAfter        time.Duration

	NotificationPollInterval time.Duration

	// Storage is one of storage.BackendSQLite, BackendRedis, BackendMemory.
	Storage    string
	SQLitePath string
	RedisAddr  string
	Namespace  string

	LogFormat string
	LogLevel  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"

	c.RefreshInterval = 5 * time.Minute
	c.IdleTimeout = 30 * time.Minute
	c.UserCacheTTL = time.Minute
	c.DefaultTokenLifetime = 24 * time.Hour

	c.MinPasswordLength = 8
	c.MaxLoginAttempts = 5
	c.LockoutDuration = 15 * time.Minute

	c.RateLimitAttempts = 3
	c.RetryAfter = 5 * time.Second

	c.NotificationPollInterval = 30 * time.Second

	c.Storage = storage.BackendSQLite
	c.SQLitePath = "session.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.Namespace = common.AppName + ":"

	c.LogFormat = "text"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and an optional .env file), a JSON file, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// SessionSettings maps the config onto session manager tunables.
func (c *Config) SessionSettings() session.Settings {
	return session.Settings{
		IdleTimeout:          c.IdleTimeout,
		RefreshInterval:      c.RefreshInterval,
		UserCacheTTL:         c.UserCacheTTL,
		DefaultTokenLifetime: c.DefaultTokenLifetime,
		LockoutDuration:      c.LockoutDuration,
		MaxLoginAttempts:     c.MaxLoginAttempts,
	}
}

// StorageOptions maps the config onto storage.Open options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:    c.Storage,
		SQLitePath: c.SQLitePath,
		RedisAddr:  c.RedisAddr,
		Namespace:  c.Namespace,
	}
}
