package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters_DefaultValues(t *testing.T) {
	for _, key := range []string{"DEBUG", "LOG_LEVEL", "DB_FOLDER", "PORT", "SESSION_MAX_AGE"} {
		t.Setenv(envPrefix+key, "")
	}

	assert.Equal(t, "lingochat", GetName())
	assert.NotEmpty(t, GetVersion())
	assert.Equal(t, Info, GetLogLevel())
	assert.Equal(t, "db/lingochat.db", GetDBPath())
	assert.Equal(t, 5000, GetPort())
	assert.Equal(t, 0, GetSessionMaxAge())
}

func TestGetters_FromEnv(t *testing.T) {
	t.Setenv("LINGOCHAT_DEBUG", "true")
	t.Setenv("LINGOCHAT_DB_FOLDER", "/tmp/chat")
	t.Setenv("LINGOCHAT_PORT", "8080")
	t.Setenv("LINGOCHAT_SESSION_MAX_AGE", "60")

	assert.Equal(t, Debug, GetLogLevel())
	assert.Equal(t, "/tmp/chat/lingochat.db", GetDBPath())
	assert.Equal(t, 8080, GetPort())
	assert.Equal(t, 60, GetSessionMaxAge())
}

func TestGetPort_Invalid(t *testing.T) {
	t.Setenv("LINGOCHAT_PORT", "70000")
	assert.Equal(t, 5000, GetPort())
}

func TestGetProviderConfig(t *testing.T) {
	t.Setenv("LINGOCHAT_PROVIDER_RESPONSE_URL", "http://bot.local/reply")
	t.Setenv("LINGOCHAT_PROVIDER_RESPONSE_TIMEOUT", "5s")
	t.Setenv("LINGOCHAT_PROVIDER_TRANSLATION_ENABLED", "false")

	cfg, err := GetProviderConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://bot.local/reply", cfg.Response.URL)
	assert.Equal(t, 5*time.Second, cfg.Response.Timeout)
	assert.False(t, cfg.Translation.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Translation.Timeout)
}

func TestGetProviderConfig_BadDuration(t *testing.T) {
	t.Setenv("LINGOCHAT_PROVIDER_RESPONSE_TIMEOUT", "soon")

	_, err := GetProviderConfig()
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LINGOCHAT_LISTEN=127.0.0.1\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LINGOCHAT_LISTEN") })

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "127.0.0.1", GetListen())
}
