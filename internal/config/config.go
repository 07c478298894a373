// Package config содержит загрузку и валидацию конфигурации.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config представляет конфигурацию приложения
type Config struct {
	// Database
	DatabaseURL string

	// HTTP API
	HTTPPort string

	// Telegram
	BotToken  string
	ChannelID string

	// Gemini
	GeminiConfig GeminiConfig

	// Logging
	LogLevel string

	// App Data Directory
	AppDataDir string
}

// GeminiConfig представляет конфигурацию клиента Gemini
type GeminiConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	Timeout      time.Duration
	RequestDelay time.Duration
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	if err := godotenv.Load(); err != nil {
		// Игнорируем ошибку если файл не найден
	}

	config := &Config{
		DatabaseURL: getEnv("DB_DSN", ""),
		HTTPPort:    getEnv("PORT", "5000"),
		BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		ChannelID:   getEnv("TELEGRAM_CHANNEL_ID", ""),
		GeminiConfig: GeminiConfig{
			BaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:       getEnv("GEMINI_API_KEY", ""),
			Model:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:      getEnvDuration("GEMINI_TIMEOUT", 2*time.Minute),
			RequestDelay: getEnvDuration("GEMINI_REQUEST_DELAY", 1*time.Second),
		},
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		AppDataDir: getEnv("APP_DATA_DIR", "./data"),
	}

	// Валидация обязательных полей
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	if c.GeminiConfig.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	// Telegram опционален: без токена публикация в канал отключается
	if c.BotToken == "" && c.ChannelID != "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required when TELEGRAM_CHANNEL_ID is set")
	}

	return nil
}

// GetAppDataDir возвращает директорию данных приложения
func (c *Config) GetAppDataDir() string {
	return c.AppDataDir
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
