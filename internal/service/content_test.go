package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"kidscode/internal/model"

	"go.uber.org/zap"
)

// fakeLessonRepo потокобезопасный репозиторий уроков в памяти
type fakeLessonRepo struct {
	mu      sync.Mutex
	lessons []model.Lesson
	nextID  int
}

func (r *fakeLessonRepo) GetByID(id int) (*model.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.lessons {
		if r.lessons[i].LessonID == id {
			lesson := r.lessons[i]
			return &lesson, nil
		}
	}
	return nil, nil
}

func (r *fakeLessonRepo) GetByDate(date string) ([]model.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Lesson
	for _, lesson := range r.lessons {
		if lesson.LessonDate == date {
			result = append(result, lesson)
		}
	}
	return result, nil
}

func (r *fakeLessonRepo) GetAll(limit int) ([]model.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.lessons) {
		limit = len(r.lessons)
	}
	return append([]model.Lesson(nil), r.lessons[:limit]...), nil
}

func (r *fakeLessonRepo) GetLatestDate() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	latest := ""
	for _, lesson := range r.lessons {
		if lesson.LessonDate > latest {
			latest = lesson.LessonDate
		}
	}
	return latest, nil
}

func (r *fakeLessonRepo) Create(lesson *model.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	lesson.LessonID = r.nextID
	r.lessons = append(r.lessons, *lesson)
	return nil
}

// fakeTipRepo потокобезопасный репозиторий советов в памяти
type fakeTipRepo struct {
	mu     sync.Mutex
	tips   []model.Tip
	nextID int
}

func (r *fakeTipRepo) GetByID(id int) (*model.Tip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tips {
		if r.tips[i].TipID == id {
			tip := r.tips[i]
			return &tip, nil
		}
	}
	return nil, nil
}

func (r *fakeTipRepo) GetByDate(date string) ([]model.Tip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Tip
	for _, tip := range r.tips {
		if tip.TipDate == date {
			result = append(result, tip)
		}
	}
	return result, nil
}

func (r *fakeTipRepo) GetAll(limit int) ([]model.Tip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.tips) {
		limit = len(r.tips)
	}
	return append([]model.Tip(nil), r.tips[:limit]...), nil
}

func (r *fakeTipRepo) GetLatestDate() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	latest := ""
	for _, tip := range r.tips {
		if tip.TipDate > latest {
			latest = tip.TipDate
		}
	}
	return latest, nil
}

func (r *fakeTipRepo) Create(tip *model.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	tip.TipID = r.nextID
	r.tips = append(r.tips, *tip)
	return nil
}

// fakeGenerator генератор с настраиваемыми ошибками и задержкой
type fakeGenerator struct {
	mu          sync.Mutex
	lessonCalls int
	tipCalls    int
	lessonErr   error
	tipErr      error
	delay       time.Duration
}

func (g *fakeGenerator) GenerateDailyLessons(ctx context.Context, date string) ([]model.Lesson, error) {
	g.mu.Lock()
	g.lessonCalls++
	err := g.lessonErr
	g.mu.Unlock()

	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if err != nil {
		return nil, err
	}

	lessons := make([]model.Lesson, 0, model.BatchSize)
	for i := 1; i <= model.BatchSize; i++ {
		lessons = append(lessons, model.Lesson{
			Title:        fmt.Sprintf("Dars %d", i),
			Difficulty:   model.DifficultyEasy,
			LessonNumber: i,
			LessonDate:   date,
		})
	}
	return lessons, nil
}

func (g *fakeGenerator) GenerateDailyTips(ctx context.Context, date string) ([]model.Tip, error) {
	g.mu.Lock()
	g.tipCalls++
	err := g.tipErr
	g.mu.Unlock()

	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if err != nil {
		return nil, err
	}

	tips := make([]model.Tip, 0, model.BatchSize)
	for i := 1; i <= model.BatchSize; i++ {
		tips = append(tips, model.Tip{
			Title:     fmt.Sprintf("Maslahat %d", i),
			Category:  "motivatsiya",
			TipNumber: i,
			TipDate:   date,
		})
	}
	return tips, nil
}

func (g *fakeGenerator) calls() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lessonCalls, g.tipCalls
}

func newTestContentService(gen *fakeGenerator) (*ContentService, *fakeLessonRepo, *fakeTipRepo) {
	lessons := &fakeLessonRepo{}
	tips := &fakeTipRepo{}
	return NewContentService(lessons, tips, gen, zap.NewNop()), lessons, tips
}

func TestEnsureContentForDate(t *testing.T) {
	gen := &fakeGenerator{}
	svc, lessons, tips := newTestContentService(gen)

	svc.EnsureContentForDate(context.Background(), "2025-06-16")

	storedLessons, _ := lessons.GetByDate("2025-06-16")
	if len(storedLessons) != model.BatchSize {
		t.Errorf("Expected %d lessons, got %d", model.BatchSize, len(storedLessons))
	}

	storedTips, _ := tips.GetByDate("2025-06-16")
	if len(storedTips) != model.BatchSize {
		t.Errorf("Expected %d tips, got %d", model.BatchSize, len(storedTips))
	}
}

func TestEnsureContentForDateIdempotent(t *testing.T) {
	gen := &fakeGenerator{}
	svc, lessons, tips := newTestContentService(gen)

	svc.EnsureContentForDate(context.Background(), "2025-06-16")
	svc.EnsureContentForDate(context.Background(), "2025-06-16")
	svc.EnsureContentForDate(context.Background(), "2025-06-16")

	lessonCalls, tipCalls := gen.calls()
	if lessonCalls != 1 {
		t.Errorf("Expected 1 lesson generation, got %d", lessonCalls)
	}
	if tipCalls != 1 {
		t.Errorf("Expected 1 tip generation, got %d", tipCalls)
	}

	storedLessons, _ := lessons.GetByDate("2025-06-16")
	if len(storedLessons) != model.BatchSize {
		t.Errorf("Expected %d lessons after repeated calls, got %d", model.BatchSize, len(storedLessons))
	}

	storedTips, _ := tips.GetByDate("2025-06-16")
	if len(storedTips) != model.BatchSize {
		t.Errorf("Expected %d tips after repeated calls, got %d", model.BatchSize, len(storedTips))
	}
}

func TestEnsureContentForDatePartialBatch(t *testing.T) {
	gen := &fakeGenerator{}
	svc, lessons, _ := newTestContentService(gen)

	// Неполный батч считается заполненным, догенерации нет
	for i := 1; i <= 2; i++ {
		_ = lessons.Create(&model.Lesson{
			Title:        fmt.Sprintf("Dars %d", i),
			Difficulty:   model.DifficultyEasy,
			LessonNumber: i,
			LessonDate:   "2025-06-16",
		})
	}

	svc.EnsureContentForDate(context.Background(), "2025-06-16")

	lessonCalls, _ := gen.calls()
	if lessonCalls != 0 {
		t.Errorf("Expected no lesson generation for partial batch, got %d calls", lessonCalls)
	}

	storedLessons, _ := lessons.GetByDate("2025-06-16")
	if len(storedLessons) != 2 {
		t.Errorf("Expected partial batch to stay at 2 lessons, got %d", len(storedLessons))
	}
}

func TestEnsureContentForDateStreamIndependence(t *testing.T) {
	gen := &fakeGenerator{lessonErr: errors.New("model unavailable")}
	svc, lessons, tips := newTestContentService(gen)

	svc.EnsureContentForDate(context.Background(), "2025-06-16")

	storedLessons, _ := lessons.GetByDate("2025-06-16")
	if len(storedLessons) != 0 {
		t.Errorf("Expected no lessons after generation failure, got %d", len(storedLessons))
	}

	storedTips, _ := tips.GetByDate("2025-06-16")
	if len(storedTips) != model.BatchSize {
		t.Errorf("Expected tips despite lesson failure, got %d", len(storedTips))
	}
}

func TestEnsureContentForDateConcurrent(t *testing.T) {
	gen := &fakeGenerator{delay: 50 * time.Millisecond}
	svc, lessons, _ := newTestContentService(gen)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.EnsureContentForDate(context.Background(), "2025-06-16")
		}()
	}
	wg.Wait()

	lessonCalls, tipCalls := gen.calls()
	if lessonCalls != 1 {
		t.Errorf("Expected 1 lesson generation under concurrency, got %d", lessonCalls)
	}
	if tipCalls != 1 {
		t.Errorf("Expected 1 tip generation under concurrency, got %d", tipCalls)
	}

	storedLessons, _ := lessons.GetByDate("2025-06-16")
	if len(storedLessons) != model.BatchSize {
		t.Errorf("Expected %d lessons, got %d", model.BatchSize, len(storedLessons))
	}
}

func TestEnsureContentForDateGuardReleasedOnFailure(t *testing.T) {
	gen := &fakeGenerator{lessonErr: errors.New("model unavailable")}
	svc, lessons, _ := newTestContentService(gen)

	svc.EnsureContentForDate(context.Background(), "2025-06-16")

	// После ошибки флаг снят, повторная попытка проходит
	gen.mu.Lock()
	gen.lessonErr = nil
	gen.mu.Unlock()

	svc.EnsureContentForDate(context.Background(), "2025-06-16")

	lessonCalls, _ := gen.calls()
	if lessonCalls != 2 {
		t.Errorf("Expected retry after failure, got %d lesson generations", lessonCalls)
	}

	storedLessons, _ := lessons.GetByDate("2025-06-16")
	if len(storedLessons) != model.BatchSize {
		t.Errorf("Expected %d lessons after retry, got %d", model.BatchSize, len(storedLessons))
	}
}

func TestEnsureContentForDateIndependentDates(t *testing.T) {
	gen := &fakeGenerator{}
	svc, lessons, _ := newTestContentService(gen)

	svc.EnsureContentForDate(context.Background(), "2025-06-16")
	svc.EnsureContentForDate(context.Background(), "2025-06-17")

	lessonCalls, _ := gen.calls()
	if lessonCalls != 2 {
		t.Errorf("Expected generation for each date, got %d calls", lessonCalls)
	}

	for _, date := range []string{"2025-06-16", "2025-06-17"} {
		stored, _ := lessons.GetByDate(date)
		if len(stored) != model.BatchSize {
			t.Errorf("Expected %d lessons for %s, got %d", model.BatchSize, date, len(stored))
		}
	}
}

func TestGenerateLessonsAlreadyExists(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _ := newTestContentService(gen)

	if _, err := svc.GenerateLessons(context.Background(), "2025-06-16"); err != nil {
		t.Fatalf("First generation failed: %v", err)
	}

	existing, err := svc.GenerateLessons(context.Background(), "2025-06-16")
	if !errors.Is(err, ErrAlreadyGenerated) {
		t.Errorf("Expected ErrAlreadyGenerated, got %v", err)
	}
	if len(existing) != model.BatchSize {
		t.Errorf("Expected existing lessons to be returned, got %d", len(existing))
	}

	lessonCalls, _ := gen.calls()
	if lessonCalls != 1 {
		t.Errorf("Expected 1 lesson generation, got %d", lessonCalls)
	}
}

func TestGetStats(t *testing.T) {
	gen := &fakeGenerator{}
	svc, lessons, _ := newTestContentService(gen)

	difficulties := []model.Difficulty{model.DifficultyEasy, model.DifficultyEasy, model.DifficultyHard}
	for i, d := range difficulties {
		_ = lessons.Create(&model.Lesson{
			Title:        fmt.Sprintf("Dars %d", i+1),
			Difficulty:   d,
			LessonNumber: i + 1,
			LessonDate:   "2025-06-16",
		})
	}

	// Сегодняшние уроки считаются отдельно
	today := Today()
	for i := 1; i <= 2; i++ {
		_ = lessons.Create(&model.Lesson{
			Title:        fmt.Sprintf("Bugungi dars %d", i),
			Difficulty:   model.DifficultyMedium,
			LessonNumber: i,
			LessonDate:   today,
		})
	}

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalLessons != 5 {
		t.Errorf("Expected 5 lessons in stats, got %d", stats.TotalLessons)
	}
	if stats.LessonsToday != 2 {
		t.Errorf("Expected 2 lessons today, got %d", stats.LessonsToday)
	}
	if stats.DifficultyDistribution["oson"] != 2 {
		t.Errorf("Expected 2 easy lessons, got %d", stats.DifficultyDistribution["oson"])
	}
	if stats.DifficultyDistribution["qiyin"] != 1 {
		t.Errorf("Expected 1 hard lesson, got %d", stats.DifficultyDistribution["qiyin"])
	}
	if stats.LatestLessonDate != today {
		t.Errorf("Expected latest lesson date %s, got %s", today, stats.LatestLessonDate)
	}
}
