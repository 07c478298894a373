package service

import (
	"kidscode/internal/storage"

	"go.uber.org/zap"
)

// Services объединяет все сервисы приложения
type Services struct {
	Content   *ContentService
	Publish   *PublishService
	Project   *ProjectService
	Scheduler *Scheduler
}

// NewServices создает и связывает все сервисы
func NewServices(db *storage.Postgres, llm LLMClient, publisher ChannelPublisher, logger *zap.Logger) *Services {
	lessons := db.GetLessonRepository()
	tips := db.GetTipRepository()

	generator := NewGenerator(llm, logger)
	content := NewContentService(lessons, tips, generator, logger)
	publish := NewPublishService(lessons, tips, publisher, logger)
	project := NewProjectService(db.GetProjectRepository(), db.GetUserProjectRepository(), logger)
	scheduler := NewScheduler(content, publish, logger)

	return &Services{
		Content:   content,
		Publish:   publish,
		Project:   project,
		Scheduler: scheduler,
	}
}
