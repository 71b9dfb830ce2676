package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	// viper treats empty variables as unset.
	for _, key := range []string{"PORT", "ENV", "READ_TIMEOUT", "GEMINI_MODEL", "GEMINI_TEMPERATURE", "MAX_FILE_SIZE", "SESSION_STORE", "LOG_JSON"} {
		t.Setenv(key, "")
	}

	cfg := FromViper(newViper())

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 1e-6)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.False(t, cfg.Log.JSON)
}

func TestFromViperEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_TEMPERATURE", "0.2")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("SESSION_STORE", "postgres")
	t.Setenv("DB_NAME", "practice")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("WRITE_TIMEOUT", "45s")

	cfg := FromViper(newViper())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "key", cfg.Gemini.APIKey)
	assert.InDelta(t, 0.2, cfg.Gemini.Temperature, 1e-6)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, SessionStorePostgres, cfg.Session.Store)
	assert.True(t, cfg.Log.JSON)
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=practice")
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := FromViper(newViper())
		cfg.Gemini.APIKey = "key"
		return cfg
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Gemini.APIKey = ""
	assert.ErrorContains(t, cfg.Validate(), "GEMINI_API_KEY")

	cfg = valid()
	cfg.Session.Store = "redis"
	assert.ErrorContains(t, cfg.Validate(), "SESSION_STORE")

	cfg = valid()
	cfg.Storage.MaxFileSize = 0
	assert.ErrorContains(t, cfg.Validate(), "MAX_FILE_SIZE")
}
