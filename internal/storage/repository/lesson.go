// Package repository содержит репозитории для работы с базой данных.
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

// LessonRepository реализует интерфейс для работы с уроками
type LessonRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewLessonRepository создает новый репозиторий уроков
func NewLessonRepository(db *bun.DB, logger *zap.Logger) *LessonRepository {
	return &LessonRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID возвращает урок по ID
func (r *LessonRepository) GetByID(id int) (*model.Lesson, error) {
	ctx := context.Background()
	lesson := new(model.Lesson)

	err := r.db.NewSelect().
		Model(lesson).
		Where("lesson_id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query lesson by ID: %w", err)
	}

	return lesson, nil
}

// GetByDate возвращает уроки за дату, отсортированные по номеру урока
func (r *LessonRepository) GetByDate(date string) ([]model.Lesson, error) {
	ctx := context.Background()
	var lessons []model.Lesson

	err := r.db.NewSelect().
		Model(&lessons).
		Where("lesson_date = ?", date).
		Order("lesson_number ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to query lessons by date: %w", err)
	}

	return lessons, nil
}

// GetAll возвращает последние уроки с ограничением
func (r *LessonRepository) GetAll(limit int) ([]model.Lesson, error) {
	ctx := context.Background()
	var lessons []model.Lesson

	err := r.db.NewSelect().
		Model(&lessons).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}

	return lessons, nil
}

// GetLatestDate возвращает дату последнего сгенерированного урока
func (r *LessonRepository) GetLatestDate() (string, error) {
	ctx := context.Background()
	var date string

	err := r.db.NewSelect().
		Model((*model.Lesson)(nil)).
		Column("lesson_date").
		Order("lesson_date DESC").
		Limit(1).
		Scan(ctx, &date)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query latest lesson date: %w", err)
	}

	return date, nil
}

// Create создает новый урок
func (r *LessonRepository) Create(lesson *model.Lesson) error {
	ctx := context.Background()

	if err := lesson.Validate(); err != nil {
		return fmt.Errorf("lesson validation failed: %w", err)
	}

	_, err := r.db.NewInsert().
		Model(lesson).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	return nil
}
