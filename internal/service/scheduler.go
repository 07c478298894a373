package service

import (
	"context"
	"sync"
	"time"

	"kidscode/internal/model"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// jobKind вид запланированной задачи
type jobKind string

const (
	jobGenerate      jobKind = "generate"
	jobPublishLesson jobKind = "publish_lesson"
	jobPublishTip    jobKind = "publish_tip"
)

// ScheduleEntry описывает одну запись расписания
type ScheduleEntry struct {
	Spec     string
	Kind     jobKind
	Sequence int
}

// DefaultSchedule дневное расписание в UTC: генерация рано утром,
// затем чередующиеся посты уроков и советов каждые два часа
var DefaultSchedule = []ScheduleEntry{
	{Spec: "0 4 * * *", Kind: jobGenerate},

	{Spec: "0 5 * * *", Kind: jobPublishLesson, Sequence: 1},
	{Spec: "0 7 * * *", Kind: jobPublishLesson, Sequence: 2},
	{Spec: "0 9 * * *", Kind: jobPublishLesson, Sequence: 3},
	{Spec: "0 11 * * *", Kind: jobPublishLesson, Sequence: 4},
	{Spec: "0 13 * * *", Kind: jobPublishLesson, Sequence: 5},

	{Spec: "0 6 * * *", Kind: jobPublishTip, Sequence: 1},
	{Spec: "0 8 * * *", Kind: jobPublishTip, Sequence: 2},
	{Spec: "0 10 * * *", Kind: jobPublishTip, Sequence: 3},
	{Spec: "0 12 * * *", Kind: jobPublishTip, Sequence: 4},
	{Spec: "0 14 * * *", Kind: jobPublishTip, Sequence: 5},
}

// Today возвращает сегодняшнюю дату контента в UTC
func Today() string {
	return time.Now().UTC().Format(model.DateFormat)
}

// Scheduler запускает задачи генерации и публикации по расписанию
type Scheduler struct {
	cron     *cron.Cron
	content  *ContentService
	publish  *PublishService
	schedule []ScheduleEntry
	logger   *zap.Logger
	mu       sync.Mutex
	running  bool
}

// NewScheduler создает новый планировщик с дневным расписанием
func NewScheduler(content *ContentService, publish *PublishService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		content:  content,
		publish:  publish,
		schedule: DefaultSchedule,
		logger:   logger,
	}
}

// Start регистрирует записи расписания и запускает cron
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.logger.Warn("Scheduler already running")
		return nil
	}

	for _, entry := range s.schedule {
		entry := entry
		if _, err := s.cron.AddFunc(entry.Spec, func() {
			s.runEntry(entry)
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("Scheduler started", zap.Int("entries", len(s.schedule)))

	return nil
}

// Stop останавливает cron и ждет завершения идущих задач
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info("Scheduler stopped")
}

// runEntry выполняет одну запись расписания.
// Дата вычисляется в момент срабатывания, ошибки логируются и не ретраятся.
func (s *Scheduler) runEntry(entry ScheduleEntry) {
	date := Today()

	s.logger.Info("Running scheduled job",
		zap.String("kind", string(entry.Kind)),
		zap.Int("sequence", entry.Sequence),
		zap.String("date", date))

	switch entry.Kind {
	case jobGenerate:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		s.content.EnsureContentForDate(ctx, date)
	case jobPublishLesson:
		if err := s.publish.PublishLesson(entry.Sequence, date); err != nil {
			s.logger.Error("Scheduled lesson post failed",
				zap.Int("lesson_number", entry.Sequence),
				zap.String("date", date),
				zap.Error(err))
		}
	case jobPublishTip:
		if err := s.publish.PublishTip(entry.Sequence, date); err != nil {
			s.logger.Error("Scheduled tip post failed",
				zap.Int("tip_number", entry.Sequence),
				zap.String("date", date),
				zap.Error(err))
		}
	}
}
