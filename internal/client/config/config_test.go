package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.APIBaseURL)
	assert.Zero(t, c.RequestTimeout, "no client-side timeout unless configured")
	assert.Equal(t, 5*time.Minute, c.RefreshInterval)
	assert.Equal(t, 30*time.Minute, c.IdleTimeout)
	assert.Equal(t, 8, c.MinPasswordLength)
	assert.Equal(t, 5, c.MaxLoginAttempts)
	assert.Equal(t, 15*time.Minute, c.LockoutDuration)
	assert.Equal(t, time.Minute, c.UserCacheTTL)
	assert.Equal(t, 24*time.Hour, c.DefaultTokenLifetime)
	assert.Equal(t, 30*time.Second, c.NotificationPollInterval)
	assert.Equal(t, storage.BackendSQLite, c.Storage)
	assert.Equal(t, "gophsocial:", c.Namespace)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	t.Setenv("GOPHSOCIAL_API_URL", "http://env:1")
	t.Setenv("GOPHSOCIAL_MAX_LOGIN_ATTEMPTS", "7")
	t.Setenv("GOPHSOCIAL_STORAGE", "redis")

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":     "http://json:2",
		"lockout_duration": "1m",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "http://flag:3"}

	cfg := LoadConfig()

	want := defaults()
	want.APIBaseURL = "http://flag:3"
	want.MaxLoginAttempts = 7
	want.Storage = storage.BackendRedis
	want.LockoutDuration = time.Minute
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestSessionSettings(t *testing.T) {
	c := defaults()
	c.IdleTimeout = time.Second
	s := c.SessionSettings()

	assert.Equal(t, time.Second, s.IdleTimeout)
	assert.Equal(t, c.RefreshInterval, s.RefreshInterval)
	assert.Equal(t, c.MaxLoginAttempts, s.MaxLoginAttempts)
	assert.Equal(t, c.LockoutDuration, s.LockoutDuration)

	o := c.StorageOptions()
	assert.Equal(t, storage.Options{
		Backend:    storage.BackendSQLite,
		SQLitePath: "session.db",
		RedisAddr:  "127.0.0.1:6379",
		Namespace:  "gophsocial:",
	}, o)
}
