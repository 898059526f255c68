package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	t.Setenv("GOPHSOCIAL_API_URL", "http://env:8000")
	t.Setenv("GOPHSOCIAL_IDLE_TIMEOUT", "45m")
	t.Setenv("GOPHSOCIAL_MIN_PASSWORD_LENGTH", "10")
	t.Setenv("GOPHSOCIAL_LOG_FORMAT", "json")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env:8000", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 10, cfg.MinPasswordLength)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"GOPHSOCIAL_LOCKOUT_DURATION=2m\nGOPHSOCIAL_REDIS_ADDR=from-file:6379\n"), 0o600))

	// Keys loaded from the file land in the process environment.
	t.Setenv("GOPHSOCIAL_LOCKOUT_DURATION", "")
	os.Unsetenv("GOPHSOCIAL_LOCKOUT_DURATION")
	t.Setenv("GOPHSOCIAL_REDIS_ADDR", "from-env:6379")

	os.Args = []string{"testbin", "-e", path}
	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, 2*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, "from-env:6379", cfg.RedisAddr, "process environment wins over the file")
}

func TestParseEnv_BadValuePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	t.Setenv("GOPHSOCIAL_MAX_LOGIN_ATTEMPTS", "many")
	require.Panics(t, func() { parseEnv(defaults()) })
}

func TestParseEnv_MissingExplicitFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env-file", filepath.Join(t.TempDir(), "nope.env")}

	require.Panics(t, func() { parseEnv(defaults()) })
}
