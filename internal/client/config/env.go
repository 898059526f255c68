package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "GOPHSOCIAL_"

// parseEnv overlays Config with GOPHSOCIAL_* environment variables.
//
// A dotenv file is loaded first: the one named by -e/-env-file, or ./.env if
// it exists. Variables already set in the process environment win over the
// file. Panics on unreadable files or malformed values.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&cfg.APIBaseURL, "API_URL")
	envDuration(&cfg.RequestTimeout, "REQUEST_TIMEOUT")
	envDuration(&cfg.RefreshInterval, "REFRESH_INTERVAL")
	envDuration(&cfg.IdleTimeout, "IDLE_TIMEOUT")
	envDuration(&cfg.UserCacheTTL, "USER_CACHE_TTL")
	envDuration(&cfg.DefaultTokenLifetime, "TOKEN_LIFETIME")
	envInt(&cfg.MinPasswordLength, "MIN_PASSWORD_LENGTH")
	envInt(&cfg.MaxLoginAttempts, "MAX_LOGIN_ATTEMPTS")
	envDuration(&cfg.LockoutDuration, "LOCKOUT_DURATION")
	envInt(&cfg.RateLimitAttempts, "RATE_LIMIT_ATTEMPTS")
	envDuration(&cfg.RetryAfter, "RETRY_AFTER")
	envDuration(&cfg.NotificationPollInterval, "NOTIFICATION_POLL_INTERVAL")
	envString(&cfg.Storage, "STORAGE")
	envString(&cfg.SQLitePath, "SQLITE_PATH")
	envString(&cfg.RedisAddr, "REDIS_ADDR")
	envString(&cfg.Namespace, "NAMESPACE")
	envString(&cfg.LogFormat, "LOG_FORMAT")
	envString(&cfg.LogLevel, "LOG_LEVEL")
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		*dst = v
	}
}

func envInt(dst *int, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
