package service

import (
	"fmt"

	"kidscode/internal/model"

	"go.uber.org/zap"
)

// PublishService отправляет запланированные посты в канал
type PublishService struct {
	lessons   model.LessonRepository
	tips      model.TipRepository
	publisher ChannelPublisher
	logger    *zap.Logger
}

// NewPublishService создает новый сервис публикации
func NewPublishService(lessons model.LessonRepository, tips model.TipRepository, publisher ChannelPublisher, logger *zap.Logger) *PublishService {
	return &PublishService{
		lessons:   lessons,
		tips:      tips,
		publisher: publisher,
		logger:    logger,
	}
}

// PublishLesson публикует урок с заданным порядковым номером за дату.
// Отсутствие урока не считается ошибкой: слот просто пропускается.
func (s *PublishService) PublishLesson(lessonNumber int, date string) error {
	lessons, err := s.lessons.GetByDate(date)
	if err != nil {
		return fmt.Errorf("failed to fetch lessons for publishing: %w", err)
	}

	for i := range lessons {
		if lessons[i].LessonNumber == lessonNumber {
			if err := s.publisher.SendLessonToChannel(&lessons[i]); err != nil {
				return fmt.Errorf("failed to publish lesson %d: %w", lessonNumber, err)
			}
			return nil
		}
	}

	s.logger.Warn("Lesson not found for scheduled post, skipping",
		zap.Int("lesson_number", lessonNumber),
		zap.String("date", date))

	return nil
}

// PublishTip публикует совет с заданным порядковым номером за дату.
// Отсутствие совета не считается ошибкой: слот просто пропускается.
func (s *PublishService) PublishTip(tipNumber int, date string) error {
	tips, err := s.tips.GetByDate(date)
	if err != nil {
		return fmt.Errorf("failed to fetch tips for publishing: %w", err)
	}

	for i := range tips {
		if tips[i].TipNumber == tipNumber {
			if err := s.publisher.SendTipToChannel(&tips[i]); err != nil {
				return fmt.Errorf("failed to publish tip %d: %w", tipNumber, err)
			}
			return nil
		}
	}

	s.logger.Warn("Tip not found for scheduled post, skipping",
		zap.Int("tip_number", tipNumber),
		zap.String("date", date))

	return nil
}
