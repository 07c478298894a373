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

// UserProjectRepository реализует интерфейс для работы с прогрессом пользователей
type UserProjectRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewUserProjectRepository создает новый репозиторий прогресса пользователей
func NewUserProjectRepository(db *bun.DB, logger *zap.Logger) *UserProjectRepository {
	return &UserProjectRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID возвращает запись прогресса по ID
func (r *UserProjectRepository) GetByID(id int) (*model.UserProject, error) {
	ctx := context.Background()
	userProject := new(model.UserProject)

	err := r.db.NewSelect().
		Model(userProject).
		Relation("Project").
		Where("user_project_id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user project by ID: %w", err)
	}

	return userProject, nil
}

// GetByUserAndProject возвращает запись прогресса пользователя по проекту
func (r *UserProjectRepository) GetByUserAndProject(userID string, projectID int) (*model.UserProject, error) {
	ctx := context.Background()
	userProject := new(model.UserProject)

	err := r.db.NewSelect().
		Model(userProject).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user project: %w", err)
	}

	return userProject, nil
}

// GetByUser возвращает все записи прогресса пользователя
func (r *UserProjectRepository) GetByUser(userID string) ([]model.UserProject, error) {
	ctx := context.Background()
	var userProjects []model.UserProject

	err := r.db.NewSelect().
		Model(&userProjects).
		Relation("Project").
		Where("user_project.user_id = ?", userID).
		Order("user_project.created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to query user projects: %w", err)
	}

	return userProjects, nil
}

// Create создает новую запись прогресса
func (r *UserProjectRepository) Create(userProject *model.UserProject) error {
	ctx := context.Background()

	_, err := r.db.NewInsert().
		Model(userProject).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to create user project: %w", err)
	}

	return nil
}

// Update обновляет запись прогресса
func (r *UserProjectRepository) Update(userProject *model.UserProject) error {
	ctx := context.Background()

	_, err := r.db.NewUpdate().
		Model(userProject).
		WherePK().
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user project: %w", err)
	}

	return nil
}
