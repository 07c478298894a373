package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// startProjectRequest тело запроса начала проекта
type startProjectRequest struct {
	UserID    string `json:"userId"`
	ProjectID int    `json:"projectId"`
}

// toggleStepRequest тело запроса переключения шага
type toggleStepRequest struct {
	StepIndex int `json:"stepIndex"`
}

// saveCodeRequest тело запроса сохранения кода
type saveCodeRequest struct {
	Code string `json:"code"`
}

// handleProjects возвращает все проекты
func (s *Server) handleProjects(c *fiber.Ctx) error {
	projects, err := s.services.Project.GetProjects()
	if err != nil {
		s.logger.Error("Failed to fetch projects", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	return c.JSON(projects)
}

// handleProjectByID возвращает проект по идентификатору
func (s *Server) handleProjectByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri ID"})
	}

	project, err := s.services.Project.GetProjectByID(id)
	if err != nil {
		s.logger.Error("Failed to fetch project", zap.Int("project_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Loyiha topilmadi"})
	}

	return c.JSON(project)
}

// handleStartProject начинает проект для пользователя
func (s *Server) handleStartProject(c *fiber.Ctx) error {
	var req startProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri so'rov"})
	}

	if req.UserID == "" || req.ProjectID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId va projectId talab qilinadi"})
	}

	userProject, err := s.services.Project.StartProject(req.UserID, req.ProjectID)
	if err != nil {
		s.logger.Error("Failed to start project",
			zap.String("user_id", req.UserID),
			zap.Int("project_id", req.ProjectID),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if userProject == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Loyiha topilmadi"})
	}

	return c.JSON(userProject)
}

// handleToggleStep переключает отметку шага проекта
func (s *Server) handleToggleStep(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri ID"})
	}

	var req toggleStepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri so'rov"})
	}

	userProject, err := s.services.Project.ToggleStep(id, req.StepIndex)
	if err != nil {
		s.logger.Error("Failed to toggle step",
			zap.Int("user_project_id", id),
			zap.Int("step_index", req.StepIndex),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if userProject == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Progress topilmadi"})
	}

	return c.JSON(userProject)
}

// handleSaveCode сохраняет код пользователя по проекту
func (s *Server) handleSaveCode(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri ID"})
	}

	var req saveCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Noto'g'ri so'rov"})
	}

	userProject, err := s.services.Project.SaveUserCode(id, req.Code)
	if err != nil {
		s.logger.Error("Failed to save user code",
			zap.Int("user_project_id", id),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	if userProject == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Progress topilmadi"})
	}

	return c.JSON(userProject)
}

// handleUserProjects возвращает прогресс пользователя по всем проектам
func (s *Server) handleUserProjects(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId talab qilinadi"})
	}

	userProjects, err := s.services.Project.GetUserProjects(userID)
	if err != nil {
		s.logger.Error("Failed to fetch user projects", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Xatolik yuz berdi"})
	}

	return c.JSON(userProjects)
}
