// Package service содержит бизнес-логику приложения.
package service

import (
	"context"

	"kidscode/internal/model"
)

// LLMClient определяет интерфейс генеративной модели
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContentGenerator определяет интерфейс генерации дневных батчей контента
type ContentGenerator interface {
	GenerateDailyLessons(ctx context.Context, date string) ([]model.Lesson, error)
	GenerateDailyTips(ctx context.Context, date string) ([]model.Tip, error)
}

// ChannelPublisher определяет интерфейс публикации в канал
type ChannelPublisher interface {
	SendLessonToChannel(lesson *model.Lesson) error
	SendTipToChannel(tip *model.Tip) error
}
