// Package model содержит модели данных приложения.
//
// Группа: PROJECTS - Мини-проекты
// Содержит: UserProject, UserProjectRepository, ProjectStatus
package model

import (
	"slices"
	"time"

	"github.com/uptrace/bun"
)

// ProjectStatus представляет статус прохождения проекта пользователем
type ProjectStatus string

const (
	ProjectStatusStarted   ProjectStatus = "boshlangan"
	ProjectStatusCompleted ProjectStatus = "tugallangan"
)

// IsValid проверяет валидность статуса
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusStarted, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление статуса
func (s ProjectStatus) String() string {
	return string(s)
}

// UserProject представляет прогресс пользователя по проекту
type UserProject struct {
	bun.BaseModel `bun:"table:user_projects"`

	UserProjectID  int           `bun:"user_project_id,pk,autoincrement" json:"id"`
	UserID         string        `bun:"user_id,notnull" json:"userId"`
	ProjectID      int           `bun:"project_id,notnull" json:"projectId"`
	Status         ProjectStatus `bun:"status,notnull,default:'boshlangan'" json:"status"`
	CompletedSteps []int         `bun:"completed_steps,array" json:"completedSteps"`
	UserCode       string        `bun:"user_code" json:"userCode,omitempty"`
	CompletedAt    *time.Time    `bun:"completed_at" json:"completedAt,omitempty"`
	CreatedAt      time.Time     `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	Project *Project `bun:"rel:belongs-to,join:project_id=project_id" json:"project,omitempty"`
}

// HasStep проверяет, отмечен ли шаг как выполненный
func (up *UserProject) HasStep(index int) bool {
	return slices.Contains(up.CompletedSteps, index)
}

// ToggleStep отмечает шаг выполненным или снимает отметку
func (up *UserProject) ToggleStep(index int) {
	if up.HasStep(index) {
		up.CompletedSteps = slices.DeleteFunc(up.CompletedSteps, func(i int) bool { return i == index })
		return
	}
	up.CompletedSteps = append(up.CompletedSteps, index)
}

// MarkCompletedIfDone переводит проект в статус "tugallangan", если все шаги выполнены
func (up *UserProject) MarkCompletedIfDone(totalSteps int) {
	if len(up.CompletedSteps) >= totalSteps && totalSteps > 0 {
		if up.Status != ProjectStatusCompleted {
			now := time.Now()
			up.Status = ProjectStatusCompleted
			up.CompletedAt = &now
		}
		return
	}
	up.Status = ProjectStatusStarted
	up.CompletedAt = nil
}

// UserProjectRepository определяет интерфейс для работы с прогрессом пользователей
type UserProjectRepository interface {
	GetByID(id int) (*UserProject, error)
	GetByUserAndProject(userID string, projectID int) (*UserProject, error)
	GetByUser(userID string) ([]UserProject, error)
	Create(userProject *UserProject) error
	Update(userProject *UserProject) error
}
