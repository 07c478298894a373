// Package model содержит модели данных приложения.
//
// Группа: CONTENT - Ежедневный контент
// Содержит: Lesson, LessonRepository, Difficulty
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Difficulty представляет уровень сложности урока
type Difficulty string

const (
	DifficultyEasy   Difficulty = "oson"
	DifficultyMedium Difficulty = "o'rta"
	DifficultyHard   Difficulty = "qiyin"
)

// IsValid проверяет валидность уровня сложности
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление уровня сложности
func (d Difficulty) String() string {
	return string(d)
}

// Lesson представляет урок Python на один день
type Lesson struct {
	bun.BaseModel `bun:"table:lessons"`

	LessonID            int        `bun:"lesson_id,pk,autoincrement" json:"id"`
	Title               string     `bun:"title,notnull" json:"title"`
	Description         string     `bun:"description,notnull" json:"description"`
	Difficulty          Difficulty `bun:"difficulty,notnull,default:'oson'" json:"difficulty"`
	Duration            string     `bun:"duration,notnull" json:"duration"`
	Content             string     `bun:"content,notnull" json:"content"`
	CodeExample         string     `bun:"code_example,notnull" json:"codeExample"`
	ExercisePrompt      string     `bun:"exercise_prompt,notnull" json:"exercisePrompt"`
	ExerciseStarterCode string     `bun:"exercise_starter_code" json:"exerciseStarterCode"`
	ExpectedOutput      string     `bun:"expected_output" json:"expectedOutput"`
	LessonNumber        int        `bun:"lesson_number,notnull" json:"lessonNumber"`
	LessonDate          string     `bun:"lesson_date,notnull" json:"lessonDate"`
	IconURL             string     `bun:"icon_url" json:"iconUrl,omitempty"`
	CreatedAt           time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// Validate проверяет валидность урока
func (l *Lesson) Validate() error {
	var errors ValidationErrors

	if l.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if !l.Difficulty.IsValid() {
		errors = append(errors, ValidationError{Field: "difficulty", Message: "invalid difficulty"})
	}

	if l.LessonNumber < 1 || l.LessonNumber > BatchSize {
		errors = append(errors, ValidationError{Field: "lesson_number", Message: "lesson_number must be within the daily batch"})
	}

	if _, err := time.Parse(DateFormat, l.LessonDate); err != nil {
		errors = append(errors, ValidationError{Field: "lesson_date", Message: "lesson_date must be YYYY-MM-DD"})
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// LessonRepository определяет интерфейс для работы с уроками
type LessonRepository interface {
	GetByID(id int) (*Lesson, error)
	GetByDate(date string) ([]Lesson, error)
	GetAll(limit int) ([]Lesson, error)
	GetLatestDate() (string, error)
	Create(lesson *Lesson) error
}
