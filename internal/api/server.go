// Package api содержит HTTP API приложения.
package api

import (
	"context"
	"fmt"
	"time"

	"kidscode/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

// HealthChecker определяет проверку готовности зависимостей
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server представляет HTTP сервер приложения
type Server struct {
	app      *fiber.App
	services *service.Services
	health   HealthChecker
	logger   *zap.Logger
}

// NewServer создает новый HTTP сервер с маршрутами API
func NewServer(services *service.Services, health HealthChecker, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	s := &Server{
		app:      app,
		services: services,
		health:   health,
		logger:   log,
	}
	s.registerRoutes()

	return s
}

// registerRoutes регистрирует маршруты API
func (s *Server) registerRoutes() {
	s.app.Get("/health", s.handleHealth)
	s.app.Get("/ready", s.handleReady)

	api := s.app.Group("/api")

	api.Get("/lessons/daily", s.handleDailyLessons)
	api.Post("/lessons/generate", s.handleGenerateLessons)
	api.Get("/lessons/:id", s.handleLessonByID)
	api.Get("/lessons", s.handleAllLessons)

	api.Get("/tips/daily", s.handleDailyTips)
	api.Post("/tips/generate", s.handleGenerateTips)
	api.Get("/tips/:id", s.handleTipByID)
	api.Get("/tips", s.handleAllTips)

	api.Get("/stats", s.handleStats)

	api.Get("/projects", s.handleProjects)
	api.Get("/projects/:id", s.handleProjectByID)
	api.Post("/user-projects", s.handleStartProject)
	api.Patch("/user-projects/:id/toggle-step", s.handleToggleStep)
	api.Patch("/user-projects/:id/code", s.handleSaveCode)
	api.Get("/users/:userId/projects", s.handleUserProjects)
}

// Start запускает сервер на указанном порту
func (s *Server) Start(port string) error {
	s.logger.Info("HTTP server starting", zap.String("port", port))

	if err := s.app.Listen(":" + port); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown останавливает сервер
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleHealth проверка живости сервиса
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleReady проверка готовности: сервис готов, когда база данных отвечает
func (s *Server) handleReady(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := s.health.Ping(ctx); err != nil {
		s.logger.Error("Readiness check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}

	return c.JSON(fiber.Map{"status": "ready"})
}
