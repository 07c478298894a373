package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"kidscode/internal/model"

	"go.uber.org/zap"
)

// ErrAlreadyGenerated возвращается при ручном запросе генерации на дату,
// для которой контент уже существует
var ErrAlreadyGenerated = errors.New("content already generated for this date")

// ErrGenerationInFlight возвращается, когда генерация на дату уже идет
var ErrGenerationInFlight = errors.New("content generation already in progress")

// inflightGuard отслеживает идущие генерации по ключу поток:дата
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]bool
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[string]bool)}
}

// tryAcquire пытается занять ключ. Возвращает false, если ключ уже занят.
func (g *inflightGuard) tryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active[key] {
		return false
	}
	g.active[key] = true
	return true
}

func (g *inflightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}

func inflightKey(stream model.Stream, date string) string {
	return string(stream) + ":" + date
}

// ContentService управляет дневным контентом: проверяет наличие,
// запускает генерацию и отдает данные боту и HTTP API
type ContentService struct {
	lessons   model.LessonRepository
	tips      model.TipRepository
	generator ContentGenerator
	inflight  *inflightGuard
	logger    *zap.Logger
}

// NewContentService создает новый сервис контента
func NewContentService(lessons model.LessonRepository, tips model.TipRepository, generator ContentGenerator, logger *zap.Logger) *ContentService {
	return &ContentService{
		lessons:   lessons,
		tips:      tips,
		generator: generator,
		inflight:  newInflightGuard(),
		logger:    logger,
	}
}

// EnsureContentForDate гарантирует наличие уроков и советов на дату.
// Ошибки одного потока не мешают другому. Повторный вызов на уже
// заполненную дату ничего не делает.
func (s *ContentService) EnsureContentForDate(ctx context.Context, date string) {
	if err := s.ensureLessons(ctx, date); err != nil {
		s.logger.Error("Daily lesson generation failed", zap.String("date", date), zap.Error(err))
	}

	if err := s.ensureTips(ctx, date); err != nil {
		s.logger.Error("Daily tip generation failed", zap.String("date", date), zap.Error(err))
	}
}

// ensureLessons проверяет и при необходимости генерирует уроки на дату
func (s *ContentService) ensureLessons(ctx context.Context, date string) error {
	existing, err := s.lessons.GetByDate(date)
	if err != nil {
		return fmt.Errorf("failed to check existing lessons: %w", err)
	}

	if len(existing) > 0 {
		if len(existing) < model.BatchSize {
			s.logger.Warn("Partial lesson batch found, keeping as is",
				zap.String("date", date),
				zap.Int("count", len(existing)))
		} else {
			s.logger.Info("Lessons already exist, skipping generation", zap.String("date", date))
		}
		return nil
	}

	key := inflightKey(model.StreamLessons, date)
	if !s.inflight.tryAcquire(key) {
		s.logger.Info("Lesson generation already in progress, skipping", zap.String("date", date))
		return nil
	}
	defer s.inflight.release(key)

	s.logger.Info("Generating daily lessons", zap.String("date", date))

	lessons, err := s.generator.GenerateDailyLessons(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to generate lessons: %w", err)
	}

	for i := range lessons {
		if err := s.lessons.Create(&lessons[i]); err != nil {
			return fmt.Errorf("failed to save lesson %d: %w", lessons[i].LessonNumber, err)
		}
	}

	s.logger.Info("Daily lessons generated",
		zap.String("date", date),
		zap.Int("count", len(lessons)))

	return nil
}

// ensureTips проверяет и при необходимости генерирует советы на дату
func (s *ContentService) ensureTips(ctx context.Context, date string) error {
	existing, err := s.tips.GetByDate(date)
	if err != nil {
		return fmt.Errorf("failed to check existing tips: %w", err)
	}

	if len(existing) > 0 {
		if len(existing) < model.BatchSize {
			s.logger.Warn("Partial tip batch found, keeping as is",
				zap.String("date", date),
				zap.Int("count", len(existing)))
		} else {
			s.logger.Info("Tips already exist, skipping generation", zap.String("date", date))
		}
		return nil
	}

	key := inflightKey(model.StreamTips, date)
	if !s.inflight.tryAcquire(key) {
		s.logger.Info("Tip generation already in progress, skipping", zap.String("date", date))
		return nil
	}
	defer s.inflight.release(key)

	s.logger.Info("Generating daily tips", zap.String("date", date))

	tips, err := s.generator.GenerateDailyTips(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to generate tips: %w", err)
	}

	for i := range tips {
		if err := s.tips.Create(&tips[i]); err != nil {
			return fmt.Errorf("failed to save tip %d: %w", tips[i].TipNumber, err)
		}
	}

	s.logger.Info("Daily tips generated",
		zap.String("date", date),
		zap.Int("count", len(tips)))

	return nil
}

// GenerateLessons выполняет ручную генерацию уроков на дату.
// Если уроки уже есть, возвращает их вместе с ErrAlreadyGenerated.
func (s *ContentService) GenerateLessons(ctx context.Context, date string) ([]model.Lesson, error) {
	existing, err := s.lessons.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing lessons: %w", err)
	}
	if len(existing) > 0 {
		return existing, ErrAlreadyGenerated
	}

	key := inflightKey(model.StreamLessons, date)
	if !s.inflight.tryAcquire(key) {
		return nil, ErrGenerationInFlight
	}
	defer s.inflight.release(key)

	lessons, err := s.generator.GenerateDailyLessons(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to generate lessons: %w", err)
	}

	for i := range lessons {
		if err := s.lessons.Create(&lessons[i]); err != nil {
			return nil, fmt.Errorf("failed to save lesson %d: %w", lessons[i].LessonNumber, err)
		}
	}

	s.logger.Info("Lessons generated on demand", zap.String("date", date), zap.Int("count", len(lessons)))

	return s.lessons.GetByDate(date)
}

// GenerateTips выполняет ручную генерацию советов на дату.
// Если советы уже есть, возвращает их вместе с ErrAlreadyGenerated.
func (s *ContentService) GenerateTips(ctx context.Context, date string) ([]model.Tip, error) {
	existing, err := s.tips.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing tips: %w", err)
	}
	if len(existing) > 0 {
		return existing, ErrAlreadyGenerated
	}

	key := inflightKey(model.StreamTips, date)
	if !s.inflight.tryAcquire(key) {
		return nil, ErrGenerationInFlight
	}
	defer s.inflight.release(key)

	tips, err := s.generator.GenerateDailyTips(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tips: %w", err)
	}

	for i := range tips {
		if err := s.tips.Create(&tips[i]); err != nil {
			return nil, fmt.Errorf("failed to save tip %d: %w", tips[i].TipNumber, err)
		}
	}

	s.logger.Info("Tips generated on demand", zap.String("date", date), zap.Int("count", len(tips)))

	return s.tips.GetByDate(date)
}

// GetLessonsByDate возвращает уроки на дату
func (s *ContentService) GetLessonsByDate(date string) ([]model.Lesson, error) {
	return s.lessons.GetByDate(date)
}

// GetLessonByID возвращает урок по идентификатору
func (s *ContentService) GetLessonByID(id int) (*model.Lesson, error) {
	return s.lessons.GetByID(id)
}

// GetAllLessons возвращает последние уроки
func (s *ContentService) GetAllLessons(limit int) ([]model.Lesson, error) {
	return s.lessons.GetAll(limit)
}

// GetTipsByDate возвращает советы на дату
func (s *ContentService) GetTipsByDate(date string) ([]model.Tip, error) {
	return s.tips.GetByDate(date)
}

// GetTipByID возвращает совет по идентификатору
func (s *ContentService) GetTipByID(id int) (*model.Tip, error) {
	return s.tips.GetByID(id)
}

// GetAllTips возвращает последние советы
func (s *ContentService) GetAllTips(limit int) ([]model.Tip, error) {
	return s.tips.GetAll(limit)
}

// Stats содержит сводку по сгенерированному контенту
type Stats struct {
	TotalLessons           int            `json:"totalLessons"`
	TotalTips              int            `json:"totalTips"`
	LessonsToday           int            `json:"lessonsToday"`
	LatestLessonDate       string         `json:"latestLessonDate"`
	LatestTipDate          string         `json:"latestTipDate"`
	DifficultyDistribution map[string]int `json:"difficultyDistribution"`
}

// GetStats собирает сводку по последним урокам и советам
func (s *ContentService) GetStats() (*Stats, error) {
	lessons, err := s.lessons.GetAll(100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons for stats: %w", err)
	}

	tips, err := s.tips.GetAll(100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tips for stats: %w", err)
	}

	stats := &Stats{
		TotalLessons:           len(lessons),
		TotalTips:              len(tips),
		DifficultyDistribution: make(map[string]int),
	}

	today := Today()
	for _, lesson := range lessons {
		stats.DifficultyDistribution[string(lesson.Difficulty)]++
		if lesson.LessonDate == today {
			stats.LessonsToday++
		}
	}

	if latest, err := s.lessons.GetLatestDate(); err == nil {
		stats.LatestLessonDate = latest
	}
	if latest, err := s.tips.GetLatestDate(); err == nil {
		stats.LatestTipDate = latest
	}

	return stats, nil
}
