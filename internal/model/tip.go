// Package model содержит модели данных приложения.
//
// Группа: CONTENT - Ежедневный контент
// Содержит: Tip, TipRepository
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Tip представляет ежедневный совет для начинающих
type Tip struct {
	bun.BaseModel `bun:"table:tips"`

	TipID     int       `bun:"tip_id,pk,autoincrement" json:"id"`
	Title     string    `bun:"title,notnull" json:"title"`
	Content   string    `bun:"content,notnull" json:"content"`
	Category  string    `bun:"category,notnull" json:"category"`
	TipNumber int       `bun:"tip_number,notnull" json:"tipNumber"`
	TipDate   string    `bun:"tip_date,notnull" json:"tipDate"`
	IconURL   string    `bun:"icon_url" json:"iconUrl,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// Validate проверяет валидность совета
func (t *Tip) Validate() error {
	var errors ValidationErrors

	if t.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if t.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	if t.TipNumber < 1 || t.TipNumber > BatchSize {
		errors = append(errors, ValidationError{Field: "tip_number", Message: "tip_number must be within the daily batch"})
	}

	if _, err := time.Parse(DateFormat, t.TipDate); err != nil {
		errors = append(errors, ValidationError{Field: "tip_date", Message: "tip_date must be YYYY-MM-DD"})
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// TipRepository определяет интерфейс для работы с советами
type TipRepository interface {
	GetByID(id int) (*Tip, error)
	GetByDate(date string) ([]Tip, error)
	GetAll(limit int) ([]Tip, error)
	GetLatestDate() (string, error)
	Create(tip *Tip) error
}
