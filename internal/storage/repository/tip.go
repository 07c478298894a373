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

// TipRepository реализует интерфейс для работы с советами
type TipRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTipRepository создает новый репозиторий советов
func NewTipRepository(db *bun.DB, logger *zap.Logger) *TipRepository {
	return &TipRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID возвращает совет по ID
func (r *TipRepository) GetByID(id int) (*model.Tip, error) {
	ctx := context.Background()
	tip := new(model.Tip)

	err := r.db.NewSelect().
		Model(tip).
		Where("tip_id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query tip by ID: %w", err)
	}

	return tip, nil
}

// GetByDate возвращает советы за дату, отсортированные по номеру совета
func (r *TipRepository) GetByDate(date string) ([]model.Tip, error) {
	ctx := context.Background()
	var tips []model.Tip

	err := r.db.NewSelect().
		Model(&tips).
		Where("tip_date = ?", date).
		Order("tip_number ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to query tips by date: %w", err)
	}

	return tips, nil
}

// GetAll возвращает последние советы с ограничением
func (r *TipRepository) GetAll(limit int) ([]model.Tip, error) {
	ctx := context.Background()
	var tips []model.Tip

	err := r.db.NewSelect().
		Model(&tips).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to query tips: %w", err)
	}

	return tips, nil
}

// GetLatestDate возвращает дату последнего сгенерированного совета
func (r *TipRepository) GetLatestDate() (string, error) {
	ctx := context.Background()
	var date string

	err := r.db.NewSelect().
		Model((*model.Tip)(nil)).
		Column("tip_date").
		Order("tip_date DESC").
		Limit(1).
		Scan(ctx, &date)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query latest tip date: %w", err)
	}

	return date, nil
}

// Create создает новый совет
func (r *TipRepository) Create(tip *model.Tip) error {
	ctx := context.Background()

	if err := tip.Validate(); err != nil {
		return fmt.Errorf("tip validation failed: %w", err)
	}

	_, err := r.db.NewInsert().
		Model(tip).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to create tip: %w", err)
	}

	return nil
}
