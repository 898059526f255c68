package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/flagx"
	"github.com/dmitrijs2005/gophsocial/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`

	RefreshInterval      timex.Duration `json:"refresh_interval"`
	IdleTimeout          timex.Duration `json:"idle_timeout"`
	UserCacheTTL         timex.Duration `json:"user_cache_ttl"`
	DefaultTokenLifetime timex.Duration `json:"default_token_lifetime"`

	MinPasswordLength int            `json:"min_password_length"`
	MaxLoginAttempts  int            `json:"max_login_attempts"`
	LockoutDuration   timex.Duration `json:"lockout_duration"`

	RateLimitAttempts int            `json:"rate_limit_attempts"`
	RetryAfter        timex.Duration `json:"retry_after"`

	NotificationPollInterval timex.Duration `json:"notification_poll_interval"`

	Storage    string `json:"storage"`
	SQLitePath string `json:"sqlite_path"`
	RedisAddr  string `json:"redis_addr"`
	Namespace  string `json:"namespace"`

	LogFormat string `json:"log_format"`
	LogLevel  string `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Keys that are absent (or zero) leave the field unchanged.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setDuration(&cfg.RequestTimeout, jc.RequestTimeout)
	setDuration(&cfg.RefreshInterval, jc.RefreshInterval)
	setDuration(&cfg.IdleTimeout, jc.IdleTimeout)
	setDuration(&cfg.UserCacheTTL, jc.UserCacheTTL)
	setDuration(&cfg.DefaultTokenLifetime, jc.DefaultTokenLifetime)
	setInt(&cfg.MinPasswordLength, jc.MinPasswordLength)
	setInt(&cfg.MaxLoginAttempts, jc.MaxLoginAttempts)
	setDuration(&cfg.LockoutDuration, jc.LockoutDuration)
	setInt(&cfg.RateLimitAttempts, jc.RateLimitAttempts)
	setDuration(&cfg.RetryAfter, jc.RetryAfter)
	setDuration(&cfg.NotificationPollInterval, jc.NotificationPollInterval)
	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.Namespace, jc.Namespace)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
