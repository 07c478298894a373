package service

import (
	"fmt"

	"kidscode/internal/model"

	"go.uber.org/zap"
)

// ProjectService управляет мини-проектами и прогрессом пользователей
type ProjectService struct {
	projects     model.ProjectRepository
	userProjects model.UserProjectRepository
	logger       *zap.Logger
}

// NewProjectService создает новый сервис проектов
func NewProjectService(projects model.ProjectRepository, userProjects model.UserProjectRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projects:     projects,
		userProjects: userProjects,
		logger:       logger,
	}
}

// SeedProjects загружает стартовый набор проектов в пустую базу
func (s *ProjectService) SeedProjects() error {
	count, err := s.projects.Count()
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}

	if count > 0 {
		s.logger.Debug("Projects already seeded", zap.Int("count", count))
		return nil
	}

	for i := range seedProjects {
		if err := s.projects.Create(&seedProjects[i]); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", seedProjects[i].Title, err)
		}
	}

	s.logger.Info("Seed projects created", zap.Int("count", len(seedProjects)))

	return nil
}

// GetProjects возвращает все проекты
func (s *ProjectService) GetProjects() ([]model.Project, error) {
	return s.projects.GetAll()
}

// GetProjectByID возвращает проект по идентификатору
func (s *ProjectService) GetProjectByID(id int) (*model.Project, error) {
	return s.projects.GetByID(id)
}

// StartProject начинает проект для пользователя.
// Повторный запуск возвращает существующий прогресс.
func (s *ProjectService) StartProject(userID string, projectID int) (*model.UserProject, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	if project == nil {
		return nil, nil
	}

	existing, err := s.userProjects.GetByUserAndProject(userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user progress: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	userProject := &model.UserProject{
		UserID:         userID,
		ProjectID:      projectID,
		Status:         model.ProjectStatusStarted,
		CompletedSteps: []int{},
		UserCode:       project.StarterCode,
	}

	if err := s.userProjects.Create(userProject); err != nil {
		return nil, fmt.Errorf("failed to start project: %w", err)
	}

	s.logger.Info("User started project",
		zap.String("user_id", userID),
		zap.Int("project_id", projectID))

	return userProject, nil
}

// ToggleStep переключает отметку шага и пересчитывает статус проекта
func (s *ProjectService) ToggleStep(userProjectID int, stepIndex int) (*model.UserProject, error) {
	userProject, err := s.userProjects.GetByID(userProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user progress: %w", err)
	}
	if userProject == nil {
		return nil, nil
	}

	project, err := s.projects.GetByID(userProject.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	userProject.ToggleStep(stepIndex)
	if project != nil {
		userProject.MarkCompletedIfDone(len(project.Steps))
	}

	if err := s.userProjects.Update(userProject); err != nil {
		return nil, fmt.Errorf("failed to update user progress: %w", err)
	}

	return userProject, nil
}

// SaveUserCode сохраняет код пользователя по проекту
func (s *ProjectService) SaveUserCode(userProjectID int, code string) (*model.UserProject, error) {
	userProject, err := s.userProjects.GetByID(userProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user progress: %w", err)
	}
	if userProject == nil {
		return nil, nil
	}

	userProject.UserCode = code

	if err := s.userProjects.Update(userProject); err != nil {
		return nil, fmt.Errorf("failed to save user code: %w", err)
	}

	return userProject, nil
}

// GetUserProjects возвращает прогресс пользователя по всем проектам
func (s *ProjectService) GetUserProjects(userID string) ([]model.UserProject, error) {
	return s.userProjects.GetByUser(userID)
}
