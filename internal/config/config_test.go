package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				DatabaseURL: "postgres://localhost:5432/kidscode",
				GeminiConfig: GeminiConfig{
					APIKey: "test-key",
				},
			},
			wantErr: false,
		},
		{
			name: "valid config with telegram",
			config: &Config{
				DatabaseURL: "postgres://localhost:5432/kidscode",
				BotToken:    "test-token",
				ChannelID:   "@kidscode",
				GeminiConfig: GeminiConfig{
					APIKey: "test-key",
				},
			},
			wantErr: false,
		},
		{
			name: "missing database URL",
			config: &Config{
				GeminiConfig: GeminiConfig{
					APIKey: "test-key",
				},
			},
			wantErr: true,
		},
		{
			name: "missing gemini API key",
			config: &Config{
				DatabaseURL: "postgres://localhost:5432/kidscode",
			},
			wantErr: true,
		},
		{
			name: "channel without bot token",
			config: &Config{
				DatabaseURL: "postgres://localhost:5432/kidscode",
				ChannelID:   "@kidscode",
				GeminiConfig: GeminiConfig{
					APIKey: "test-key",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	os.Setenv("DB_DSN", "postgres://localhost:5432/kidscode")
	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("GEMINI_REQUEST_DELAY", "2s")
	defer func() {
		os.Unsetenv("DB_DSN")
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("GEMINI_REQUEST_DELAY")
	}()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/kidscode", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.GeminiConfig.APIKey)
	assert.Equal(t, 2*time.Second, cfg.GeminiConfig.RequestDelay)

	// Значения по умолчанию
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiConfig.Model)
	assert.Equal(t, "./data", cfg.AppDataDir)
}

func TestGetEnvDuration(t *testing.T) {
	os.Setenv("TEST_DURATION", "30s")
	defer os.Unsetenv("TEST_DURATION")

	assert.Equal(t, 30*time.Second, getEnvDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION_MISSING", time.Minute))

	os.Setenv("TEST_DURATION_BAD", "not-a-duration")
	defer os.Unsetenv("TEST_DURATION_BAD")
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION_BAD", time.Minute))
}
