// Package model содержит модели данных приложения.
//
// Группа: PROJECTS - Мини-проекты
// Содержит: Project, ProjectRepository
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Project представляет обучающий мини-проект
type Project struct {
	bun.BaseModel `bun:"table:projects"`

	ProjectID    int        `bun:"project_id,pk,autoincrement" json:"id"`
	Title        string     `bun:"title,notnull" json:"title"`
	Description  string     `bun:"description,notnull" json:"description"`
	Difficulty   Difficulty `bun:"difficulty,notnull,default:'oson'" json:"difficulty"`
	Duration     string     `bun:"duration,notnull" json:"duration"`
	Category     string     `bun:"category,notnull" json:"category"`
	Objective    string     `bun:"objective,notnull" json:"objective"`
	Steps        []string   `bun:"steps,array" json:"steps"`
	StarterCode  string     `bun:"starter_code,notnull" json:"starterCode"`
	SolutionCode string     `bun:"solution_code,notnull" json:"solutionCode"`
	Hints        []string   `bun:"hints,array" json:"hints,omitempty"`
	Requirements []string   `bun:"requirements,array" json:"requirements"`
	Tags         []string   `bun:"tags,array" json:"tags,omitempty"`
	IconURL      string     `bun:"icon_url" json:"iconUrl,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// Validate проверяет валидность проекта
func (p *Project) Validate() error {
	var errors ValidationErrors

	if p.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if !p.Difficulty.IsValid() {
		errors = append(errors, ValidationError{Field: "difficulty", Message: "invalid difficulty"})
	}

	if len(p.Steps) == 0 {
		errors = append(errors, ValidationError{Field: "steps", Message: "at least one step is required"})
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// ProjectRepository определяет интерфейс для работы с проектами
type ProjectRepository interface {
	GetByID(id int) (*Project, error)
	GetAll() ([]Project, error)
	Create(project *Project) error
	Count() (int, error)
}
