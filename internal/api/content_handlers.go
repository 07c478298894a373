package api

import (
	"errors"
	"strconv"

	"kidscode/internal/model"
	"kidscode/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// generateRequest тело запроса ручной генерации
type generateRequest struct {
	Date string `json:"date"`
}

// handleDailyLessons возвращает сегодняшние уроки
func (s *Server) handleDailyLessons(c *fiber.Ctx) error {
	today := service.Today()

	lessons, err := s.services.Content.GetLessonsByDate(today)
	if err != nil {
		s.logger.Error("Failed to fetch daily lessons", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if len(lessons) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Bugun uchun darslar hali yaratilmagan",
			"date":    today,
		})
	}

	return c.JSON(lessons)
}

// handleLessonByID возвращает урок по идентификатору
func (s *Server) handleLessonByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri ID"})
	}

	lesson, err := s.services.Content.GetLessonByID(id)
	if err != nil {
		s.logger.Error("Failed to fetch lesson", zap.Int("lesson_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if lesson == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Dars topilmadi"})
	}

	return c.JSON(lesson)
}

// handleAllLessons возвращает последние уроки с лимитом
func (s *Server) handleAllLessons(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	lessons, err := s.services.Content.GetAllLessons(limit)
	if err != nil {
		s.logger.Error("Failed to fetch lessons", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	return c.JSON(lessons)
}

// handleGenerateLessons запускает ручную генерацию уроков
func (s *Server) handleGenerateLessons(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri so'rov"})
	}

	date := req.Date
	if date == "" {
		date = service.Today()
	}
	if _, err := parseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri sana formati"})
	}

	lessons, err := s.services.Content.GenerateLessons(c.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyGenerated):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Bu sana uchun darslar allaqachon mavjud",
				"lessons": lessons,
			})
		case errors.Is(err, service.ErrGenerationInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Darslar yaratilmoqda, kuting"})
		default:
			s.logger.Error("Failed to generate lessons", zap.String("date", date), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Darslar yaratishda xatolik yuz berdi"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Darslar muvaffaqiyatli yaratildi",
		"lessons": lessons,
	})
}

// handleDailyTips возвращает сегодняшние советы
func (s *Server) handleDailyTips(c *fiber.Ctx) error {
	today := service.Today()

	tips, err := s.services.Content.GetTipsByDate(today)
	if err != nil {
		s.logger.Error("Failed to fetch daily tips", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if len(tips) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Bugun uchun maslahatlar hali yaratilmagan",
			"date":    today,
		})
	}

	return c.JSON(tips)
}

// handleTipByID возвращает совет по идентификатору
func (s *Server) handleTipByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri ID"})
	}

	tip, err := s.services.Content.GetTipByID(id)
	if err != nil {
		s.logger.Error("Failed to fetch tip", zap.Int("tip_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if tip == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Maslahat topilmadi"})
	}

	return c.JSON(tip)
}

// handleAllTips возвращает последние советы с лимитом
func (s *Server) handleAllTips(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	tips, err := s.services.Content.GetAllTips(limit)
	if err != nil {
		s.logger.Error("Failed to fetch tips", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	return c.JSON(tips)
}

// handleGenerateTips запускает ручную генерацию советов
func (s *Server) handleGenerateTips(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri so'rov"})
	}

	date := req.Date
	if date == "" {
		date = service.Today()
	}
	if _, err := parseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri sana formati"})
	}

	tips, err := s.services.Content.GenerateTips(c.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyGenerated):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Bu sana uchun maslahatlar allaqachon mavjud",
				"tips":    tips,
			})
		case errors.Is(err, service.ErrGenerationInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Maslahatlar yaratilmoqda, kuting"})
		default:
			s.logger.Error("Failed to generate tips", zap.String("date", date), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Maslahatlar yaratishda xatolik yuz berdi"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Maslahatlar muvaffaqiyatli yaratildi",
		"tips":    tips,
	})
}

// handleStats возвращает сводку по контенту
func (s *Server) handleStats(c *fiber.Ctx) error {
	stats, err := s.services.Content.GetStats()
	if err != nil {
		s.logger.Error("Failed to fetch stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	return c.JSON(stats)
}

// parseDate проверяет формат даты контента
func parseDate(date string) (string, error) {
	if err := model.ValidateDate(date); err != nil {
		return "", err
	}
	return date, nil
}
