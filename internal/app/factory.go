// Package app содержит фабрику компонентов приложения.
package app

import (
	"fmt"
	"os"

	"kidscode/internal/api"
	"kidscode/internal/config"
	"kidscode/internal/external/gemini"
	"kidscode/internal/external/telegram"
	"kidscode/internal/service"
	"kidscode/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ComponentFactory создает компоненты приложения
type ComponentFactory struct {
	config *config.Config
	logger *zap.Logger
}

// NewComponentFactory создает новую фабрику компонентов
func NewComponentFactory(config *config.Config, logger *zap.Logger) *ComponentFactory {
	if config == nil {
		logger.Fatal("Config cannot be nil")
	}
	if logger == nil {
		panic("Logger cannot be nil")
	}

	return &ComponentFactory{
		config: config,
		logger: logger,
	}
}

// CreateDatabase создает подключение к базе данных
func (f *ComponentFactory) CreateDatabase() (*storage.Postgres, error) {
	if f.config.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := storage.NewPostgres(f.config.DatabaseURL, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	f.logger.Info("Database connection created successfully")
	return db, nil
}

// CreateGeminiClient создает клиент Gemini
func (f *ComponentFactory) CreateGeminiClient() *gemini.Client {
	client := gemini.NewClient(gemini.Config{
		BaseURL: f.config.GeminiConfig.BaseURL,
		APIKey:  f.config.GeminiConfig.APIKey,
		Model:   f.config.GeminiConfig.Model,
		Timeout: f.config.GeminiConfig.Timeout,
		Delay:   f.config.GeminiConfig.RequestDelay,
	}, f.logger)

	f.logger.Info("Gemini client created successfully", zap.String("model", f.config.GeminiConfig.Model))
	return client
}

// CreateBotAPI создает клиент Telegram Bot API.
// Токен опционален: без него бот и публикация в канал отключаются.
func (f *ComponentFactory) CreateBotAPI() (*tgbotapi.BotAPI, error) {
	if f.config.BotToken == "" {
		f.logger.Warn("Telegram bot token not provided, bot and channel posts are disabled")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(f.config.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot API: %w", err)
	}

	f.logger.Info("Telegram bot API created successfully", zap.String("username", botAPI.Self.UserName))
	return botAPI, nil
}

// CreateServices создает все сервисы
func (f *ComponentFactory) CreateServices(db *storage.Postgres, llm service.LLMClient, publisher service.ChannelPublisher) (*service.Services, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	services := service.NewServices(db, llm, publisher, f.logger)
	f.logger.Info("Services created successfully")
	return services, nil
}

// CreateAppDataDirectory создает директорию данных приложения
func (f *ComponentFactory) CreateAppDataDirectory() error {
	dataDir := f.config.GetAppDataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		f.logger.Error("Failed to create app data directory", zap.String("dir", dataDir), zap.Error(err))
		return fmt.Errorf("failed to create app data directory: %w", err)
	}
	f.logger.Info("App data directory ready", zap.String("dir", dataDir))
	return nil
}

// CreateApp создает полный экземпляр приложения со всеми зависимостями
func (f *ComponentFactory) CreateApp() (*App, error) {
	if err := f.CreateAppDataDirectory(); err != nil {
		return nil, fmt.Errorf("failed to create app data directory: %w", err)
	}

	db, err := f.CreateDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	geminiClient := f.CreateGeminiClient()

	botAPI, err := f.CreateBotAPI()
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot API: %w", err)
	}

	publisher := telegram.NewPublisher(botAPI, f.config.ChannelID, f.logger)

	services, err := f.CreateServices(db, geminiClient, publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	app, err := NewApp(f.config, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	app.db = db
	app.services = services
	app.server = api.NewServer(services, db, f.logger)
	if botAPI != nil {
		app.bot = telegram.NewBot(botAPI, services.Content, f.logger)
	}

	f.logger.Info("App created successfully with all dependencies")
	return app, nil
}
