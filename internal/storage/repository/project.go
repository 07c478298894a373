package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kidscode/internal/model"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ProjectRepository реализует интерфейс для работы с проектами
type ProjectRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewProjectRepository создает новый репозиторий проектов
func NewProjectRepository(db *bun.DB, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID возвращает проект по ID
func (r *ProjectRepository) GetByID(id int) (*model.Project, error) {
	ctx := context.Background()
	project := new(model.Project)

	err := r.db.NewSelect().
		Model(project).
		Where("project_id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query project by ID: %w", err)
	}

	return project, nil
}

// GetAll возвращает все проекты
func (r *ProjectRepository) GetAll() ([]model.Project, error) {
	ctx := context.Background()
	var projects []model.Project

	err := r.db.NewSelect().
		Model(&projects).
		Order("project_id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}

	return projects, nil
}

// Create создает новый проект
func (r *ProjectRepository) Create(project *model.Project) error {
	ctx := context.Background()

	if err := project.Validate(); err != nil {
		return fmt.Errorf("project validation failed: %w", err)
	}

	_, err := r.db.NewInsert().
		Model(project).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Count возвращает количество проектов в каталоге
func (r *ProjectRepository) Count() (int, error) {
	ctx := context.Background()

	count, err := r.db.NewSelect().
		Model((*model.Project)(nil)).
		Count(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return count, nil
}
