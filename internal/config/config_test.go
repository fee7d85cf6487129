package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnadost/backend/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, "firebase-service-account.json", cfg.FirebaseCredentialsFile)
	assert.Equal(t, config.DefaultSystemPrompt, cfg.SystemPrompt)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "https://example.test/v1beta/models/gemini:generateContent")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/v1beta/models/gemini:generateContent", cfg.GeminiAPIURL)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	credsFile := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(credsFile, []byte(`{"type":"service_account"}`), 0o600))

	valid := config.Config{
		GeminiAPIURL:            "https://example.test/generate",
		GeminiAPIKey:            "secret",
		FirebaseCredentialsFile: credsFile,
	}

	t.Run("Valid", func(t *testing.T) {
		cfg := valid
		assert.NoError(t, cfg.Validate())
	})

	t.Run("CredentialsJSONBypassesFileCheck", func(t *testing.T) {
		cfg := valid
		cfg.FirebaseCredentialsFile = "does-not-exist.json"
		cfg.FirebaseCredentialsJSON = `{"type":"service_account"}`
		assert.NoError(t, cfg.Validate())
	})

	t.Run("MissingURL", func(t *testing.T) {
		cfg := valid
		cfg.GeminiAPIURL = ""
		assert.ErrorContains(t, cfg.Validate(), "GEMINI_API_URL")
	})

	t.Run("MissingKey", func(t *testing.T) {
		cfg := valid
		cfg.GeminiAPIKey = ""
		assert.ErrorContains(t, cfg.Validate(), "GEMINI_API_KEY")
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		cfg := valid
		cfg.FirebaseCredentialsFile = "does-not-exist.json"
		assert.ErrorContains(t, cfg.Validate(), "firebase credentials missing")
	})
}
