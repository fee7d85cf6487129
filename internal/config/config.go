package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSystemPrompt is the fixed persona prepended to every prompt. It can be
// overridden with the SYSTEM_PROMPT environment variable, but the product ships
// with this text.
const DefaultSystemPrompt = "You are ApnaDost, a warm, caring friend who listens " +
	"and supports the user like a close companion. Reply in simple, friendly " +
	"Hinglish or English, keep answers short, and never give medical advice."

type Config struct {
	AppPort                 int    `mapstructure:"APP_PORT"`
	GeminiAPIURL            string `mapstructure:"GEMINI_API_URL"`
	GeminiAPIKey            string `mapstructure:"GEMINI_API_KEY"`
	FirebaseCredentialsJSON string `mapstructure:"FIREBASE_CREDENTIALS_JSON"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	SystemPrompt            string `mapstructure:"SYSTEM_PROMPT"`
	LogLevel                string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("GEMINI_API_URL", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_JSON", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "firebase-service-account.json")
	viper.SetDefault("SYSTEM_PROMPT", DefaultSystemPrompt)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the fail-fast contract: every external collaborator must be
// fully configured before the server starts serving requests. A missing value
// here aborts startup instead of surfacing as per-request 500s.
func (c *Config) Validate() error {
	if c.GeminiAPIURL == "" {
		return fmt.Errorf("GEMINI_API_URL is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.FirebaseCredentialsJSON == "" {
		if _, err := os.Stat(c.FirebaseCredentialsFile); err != nil {
			return fmt.Errorf("firebase credentials missing: set FIREBASE_CREDENTIALS_JSON or provide %s: %w",
				c.FirebaseCredentialsFile, err)
		}
	}
	return nil
}
