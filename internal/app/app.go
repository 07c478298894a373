// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kidscode/internal/api"
	"kidscode/internal/config"
	"kidscode/internal/external/telegram"
	"kidscode/internal/service"
	"kidscode/internal/storage"

	"go.uber.org/zap"
)

// App представляет приложение: HTTP API, планировщик и Telegram-бот
type App struct {
	config   *config.Config
	logger   *zap.Logger
	db       *storage.Postgres
	services *service.Services
	server   *api.Server
	bot      *telegram.Bot
	stopChan chan struct{}
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewApp создает новый экземпляр приложения
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		config:   cfg,
		logger:   logger,
		stopChan: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}

	logger.Info("App structure created successfully")
	return app, nil
}

// NewAppWithFactory создает новый экземпляр приложения через фабрику
func NewAppWithFactory(cfg *config.Config, logger *zap.Logger) (*App, error) {
	factory := NewComponentFactory(cfg, logger)
	return factory.CreateApp()
}

// Start запускает приложение
func (a *App) Start(ctx context.Context) error {
	a.logger.Info("Starting app")

	// Инициализируем схему базы данных
	initCtx, initCancel := context.WithTimeout(ctx, 1*time.Minute)
	err := a.db.InitSchema(initCtx)
	initCancel()
	if err != nil {
		return fmt.Errorf("failed to init database schema: %w", err)
	}

	// Загружаем стартовые проекты в пустую базу
	if err := a.services.Project.SeedProjects(); err != nil {
		a.logger.Error("Failed to seed projects", zap.Error(err))
	}

	// Запускаем планировщик задач
	if err := a.services.Scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	// Догоняем сегодняшний контент, если генерация была пропущена
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		backfillCtx, backfillCancel := context.WithTimeout(a.ctx, 30*time.Minute)
		defer backfillCancel()
		a.services.Content.EnsureContentForDate(backfillCtx, service.Today())
	}()

	// Запускаем HTTP сервер
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.server.Start(a.config.HTTPPort); err != nil {
			a.logger.Error("HTTP server failed", zap.Error(err))
			a.cancel()
		}
	}()

	a.logger.Info("App started successfully")

	// Основной цикл обработки обновлений бота
	if a.bot == nil {
		a.logger.Warn("Telegram bot not configured, running without bot")
		<-ctx.Done()
		return ctx.Err()
	}

	maxRestartAttempts := 10
	restartAttempts := 0
	restartDelay := 10 * time.Second

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("App main loop cancelled by context")
			return ctx.Err()
		case <-a.stopChan:
			a.logger.Info("App main loop stopped by stop signal")
			return nil
		default:
			if err := a.bot.Start(ctx); err != nil {
				if err == context.Canceled {
					a.logger.Info("Update loop stopped due to context cancellation")
					return err
				}

				restartAttempts++
				a.logger.Error("Update loop error",
					zap.Error(err),
					zap.Int("restart_attempt", restartAttempts),
					zap.Int("max_attempts", maxRestartAttempts))

				if restartAttempts > maxRestartAttempts {
					return fmt.Errorf("max restart attempts reached: %w", err)
				}

				delay := time.Duration(restartAttempts) * restartDelay
				if delay > 5*time.Minute {
					delay = 5 * time.Minute
				}

				a.logger.Info("Waiting before restart", zap.Duration("delay", delay))
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(delay):
					continue
				}
			} else {
				restartAttempts = 0
			}
		}
	}
}

// Stop gracefully останавливает приложение
func (a *App) Stop() error {
	a.logger.Info("Stopping app gracefully")

	a.services.Scheduler.Stop()

	if a.cancel != nil {
		a.cancel()
	}

	select {
	case <-a.stopChan:
	default:
		close(a.stopChan)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := a.server.Shutdown(); err != nil {
		a.logger.Error("Failed to stop HTTP server", zap.Error(err))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.wg.Wait()
	}()

	select {
	case <-done:
		a.logger.Info("All goroutines stopped successfully")
	case <-shutdownCtx.Done():
		a.logger.Warn("Graceful shutdown timeout exceeded, forcing stop")
	}

	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database connection", zap.Error(err))
	}

	a.logger.Info("App stopped successfully")
	return nil
}
