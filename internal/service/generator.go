// Package service содержит бизнес-логику приложения.
package service

import (
	"context"
	"fmt"
	"math/rand"

	"kidscode/internal/external/gemini"
	"kidscode/internal/model"

	"go.uber.org/zap"
)

// LessonTopic представляет тему урока из учебного плана
type LessonTopic struct {
	Title       string
	Description string
	Difficulty  model.Difficulty
	Duration    string
}

// TipTopic представляет тему совета
type TipTopic struct {
	Title    string
	Category string
}

// lessonTopics учебный план уроков Python
var lessonTopics = []LessonTopic{
	{Title: "Python nima?", Description: "Python dasturlash tili bilan tanishish", Difficulty: model.DifficultyEasy, Duration: "10 daqiqa"},
	{Title: "O'zgaruvchilar", Description: "Ma'lumotlarni saqlash", Difficulty: model.DifficultyEasy, Duration: "15 daqiqa"},
	{Title: "Print funksiyasi", Description: "Ekranga ma'lumot chiqarish", Difficulty: model.DifficultyEasy, Duration: "12 daqiqa"},
	{Title: "Raqamlar va matematika", Description: "Hisob-kitoblar qilish", Difficulty: model.DifficultyMedium, Duration: "18 daqiqa"},
	{Title: "Kiritish va chiqarish", Description: "Foydalanuvchi bilan ishlash", Difficulty: model.DifficultyMedium, Duration: "20 daqiqa"},
	{Title: "Shartli operatorlar - If", Description: "Qarorlar qabul qilish", Difficulty: model.DifficultyMedium, Duration: "20 daqiqa"},
	{Title: "Else va Elif", Description: "Murakkab shartlar", Difficulty: model.DifficultyMedium, Duration: "22 daqiqa"},
	{Title: "Mantiqiy amallar", Description: "And, Or, Not operatorlari", Difficulty: model.DifficultyMedium, Duration: "18 daqiqa"},
	{Title: "Ro'yxatlar (Lists)", Description: "Ko'p ma'lumotlarni saqlash", Difficulty: model.DifficultyMedium, Duration: "25 daqiqa"},
	{Title: "For tsikli", Description: "Takrorlash", Difficulty: model.DifficultyHard, Duration: "25 daqiqa"},
}

// tipTopics темы ежедневных советов
var tipTopics = []TipTopic{
	{Title: "Har kuni kod yozing", Category: "motivatsiya"},
	{Title: "Kodni o'qish muhim", Category: "o'rganish"},
	{Title: "Xatolardan qo'rqmang", Category: "motivatsiya"},
	{Title: "Loyihalar yarating", Category: "amaliyot"},
	{Title: "Stackoverflow dan foydalaning", Category: "manba"},
	{Title: "GitHub'da profil yarating", Category: "amaliyot"},
	{Title: "Dokumentatsiyani o'qing", Category: "o'rganish"},
	{Title: "Debugger'dan foydalaning", Category: "texnik"},
	{Title: "Kod yozishdan oldin rejalashtiring", Category: "o'rganish"},
	{Title: "Google qilishni o'rganing", Category: "ko'nikma"},
	{Title: "Izohlar yozing", Category: "texnik"},
	{Title: "O'zingizni boshqalar bilan solishtirmang", Category: "motivatsiya"},
	{Title: "Sabr qiling", Category: "motivatsiya"},
	{Title: "Jamoa bilan ishlashni o'rganing", Category: "ko'nikma"},
	{Title: "Versiya nazorati (Git)", Category: "texnik"},
	{Title: "Qadam-baqadam o'rganing", Category: "o'rganish"},
	{Title: "Mashq qiling", Category: "amaliyot"},
	{Title: "Yangi texnologiyalarni sinab ko'ring", Category: "amaliyot"},
	{Title: "Algoritmlarni o'rganing", Category: "o'rganish"},
	{Title: "Odamlar bilan tarmoq quring", Category: "ko'nikma"},
}

// lessonBody поля урока, которые возвращает модель
type lessonBody struct {
	Content             string `json:"content"`
	CodeExample         string `json:"codeExample"`
	ExercisePrompt      string `json:"exercisePrompt"`
	ExerciseStarterCode string `json:"exerciseStarterCode"`
	ExpectedOutput      string `json:"expectedOutput"`
}

// tipBody поля совета, которые возвращает модель
type tipBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Generator генерирует дневные батчи уроков и советов через LLM
type Generator struct {
	llm    LLMClient
	logger *zap.Logger
}

var _ ContentGenerator = (*Generator)(nil)

// NewGenerator создает новый генератор контента
func NewGenerator(llm LLMClient, logger *zap.Logger) *Generator {
	return &Generator{
		llm:    llm,
		logger: logger,
	}
}

// GenerateDailyLessons генерирует батч уроков на дату.
// Темы берутся скользящим окном со случайного места учебного плана.
func (g *Generator) GenerateDailyLessons(ctx context.Context, date string) ([]model.Lesson, error) {
	lessons := make([]model.Lesson, 0, model.BatchSize)
	start := rand.Intn(len(lessonTopics))

	for i := 0; i < model.BatchSize; i++ {
		topic := lessonTopics[(start+i)%len(lessonTopics)]

		lesson, err := g.generateLesson(ctx, topic, i+1, date)
		if err != nil {
			return nil, fmt.Errorf("failed to generate lesson %d: %w", i+1, err)
		}

		lessons = append(lessons, *lesson)
	}

	return lessons, nil
}

// GenerateDailyTips генерирует батч советов на дату
func (g *Generator) GenerateDailyTips(ctx context.Context, date string) ([]model.Tip, error) {
	tips := make([]model.Tip, 0, model.BatchSize)
	start := rand.Intn(len(tipTopics))

	for i := 0; i < model.BatchSize; i++ {
		topic := tipTopics[(start+i)%len(tipTopics)]

		tip, err := g.generateTip(ctx, topic, i+1, date)
		if err != nil {
			return nil, fmt.Errorf("failed to generate tip %d: %w", i+1, err)
		}

		tips = append(tips, *tip)
	}

	return tips, nil
}

// generateLesson генерирует один урок по теме
func (g *Generator) generateLesson(ctx context.Context, topic LessonTopic, lessonNumber int, date string) (*model.Lesson, error) {
	prompt := fmt.Sprintf(`10+ yoshdagi bolalar uchun Python darsi yarating. Dars O'zbek tilida bo'lishi kerak.

Mavzu: %s
Qisqacha tavsif: %s
Qiyinlik darajasi: %s

Quyidagi formatda javob bering (JSON):
{
  "content": "Darsning to'liq mazmuni. Sodda tilda tushuntiring. 3-4 paragrafdan iborat bo'lsin.",
  "codeExample": "Python kod misoli. Izohlar bilan. 5-10 qator.",
  "exercisePrompt": "Mashq topshirig'i. O'quvchi nima qilishi kerakligini aniq yozing.",
  "exerciseStarterCode": "Boshlang'ich kod. O'quvchi bu kodni to'ldirib tugallaydi.",
  "expectedOutput": "Kutilayotgan natija"
}

MUHIM:
- Juda sodda va tushunarli tilda yozing
- Bolalar uchun qiziqarli misollar ishlatiling
- Kod misollariga O'zbekcha izohlar qo'shing
- Mashq oson va qiziqarli bo'lsin`, topic.Title, topic.Description, topic.Difficulty)

	response, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate lesson content: %w", err)
	}

	var body lessonBody
	if err := gemini.DecodeJSON(response, &body); err != nil {
		return nil, fmt.Errorf("failed to decode lesson response: %w", err)
	}

	return &model.Lesson{
		Title:               topic.Title,
		Description:         topic.Description,
		Difficulty:          topic.Difficulty,
		Duration:            topic.Duration,
		Content:             body.Content,
		CodeExample:         body.CodeExample,
		ExercisePrompt:      body.ExercisePrompt,
		ExerciseStarterCode: body.ExerciseStarterCode,
		ExpectedOutput:      body.ExpectedOutput,
		LessonNumber:        lessonNumber,
		LessonDate:          date,
	}, nil
}

// generateTip генерирует один совет по теме
func (g *Generator) generateTip(ctx context.Context, topic TipTopic, tipNumber int, date string) (*model.Tip, error) {
	prompt := fmt.Sprintf(`Dasturlashni 0 dan boshlayotgan yangi boshlovchilar uchun foydali maslahat yarating. Maslahat O'zbek tilida bo'lishi kerak.

Mavzu: %s
Kategoriya: %s

Quyidagi formatda javob bering (JSON):
{
  "title": "Maslahat sarlavhasi (qisqa va tushunarli)",
  "content": "Maslahatning to'liq mazmuni. Sodda va tushunarli tilda yozing. 2-3 paragrafdan iborat bo'lsin. Amaliy misollar va maslahatlar bering. Yangi boshlovchilar uchun motivatsiya va yo'l-yo'riq bo'lsin."
}

MUHIM:
- Juda sodda va tushunarli tilda yozing
- Yangi boshlovchilar uchun qiziqarli va foydali bo'lsin
- Motivatsiya bering
- Amaliy maslahatlar bering
- Qisqa va aniq yozing`, topic.Title, topic.Category)

	response, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tip content: %w", err)
	}

	var body tipBody
	if err := gemini.DecodeJSON(response, &body); err != nil {
		return nil, fmt.Errorf("failed to decode tip response: %w", err)
	}

	return &model.Tip{
		Title:     body.Title,
		Content:   body.Content,
		Category:  topic.Category,
		TipNumber: tipNumber,
		TipDate:   date,
	}, nil
}
