// Package telegram содержит интеграцию с Telegram Bot API.
package telegram

import (
	"fmt"
	"strconv"

	"kidscode/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Publisher публикует контент в Telegram-канал
type Publisher struct {
	bot       *tgbotapi.BotAPI
	channelID string
	logger    *zap.Logger
	caser     cases.Caser
}

// NewPublisher создает новый публикатор канала.
// При отсутствии бота или канала публикация деградирует до записи в лог.
func NewPublisher(bot *tgbotapi.BotAPI, channelID string, logger *zap.Logger) *Publisher {
	if bot == nil || channelID == "" {
		logger.Warn("Telegram bot or channel ID not configured, channel posts will be skipped")
	}

	return &Publisher{
		bot:       bot,
		channelID: channelID,
		logger:    logger,
		caser:     cases.Title(language.Uzbek),
	}
}

// Configured проверяет, настроена ли публикация в канал
func (p *Publisher) Configured() bool {
	return p.bot != nil && p.channelID != ""
}

// SendLessonToChannel отправляет урок в канал
func (p *Publisher) SendLessonToChannel(lesson *model.Lesson) error {
	if !p.Configured() {
		p.logger.Warn("Telegram channel not configured, skipping lesson post",
			zap.Int("lesson_number", lesson.LessonNumber),
			zap.String("date", lesson.LessonDate))
		return nil
	}

	message := fmt.Sprintf("📖 *Dars %d: %s*\n\n", lesson.LessonNumber, lesson.Title)
	message += lesson.Description + "\n\n"
	message += fmt.Sprintf("⭐ Qiyinlik: %s\n", lesson.Difficulty)
	message += fmt.Sprintf("⏱ Davomiyligi: %s\n\n", lesson.Duration)
	message += fmt.Sprintf("📝 Dars mazmuni:\n%s\n\n", lesson.Content)
	message += fmt.Sprintf("💻 Kod misoli:\n```python\n%s\n```\n\n", lesson.CodeExample)
	message += fmt.Sprintf("✏️ Mashq: %s\n\n", lesson.ExercisePrompt)
	message += "🌐 Mashqlarni bajarish uchun web ilovamizga tashrif buyuring!"

	if err := p.send(message); err != nil {
		return fmt.Errorf("failed to post lesson %d to channel: %w", lesson.LessonNumber, err)
	}

	p.logger.Info("Lesson posted to Telegram channel",
		zap.Int("lesson_number", lesson.LessonNumber),
		zap.String("date", lesson.LessonDate))

	return nil
}

// SendTipToChannel отправляет совет в канал
func (p *Publisher) SendTipToChannel(tip *model.Tip) error {
	if !p.Configured() {
		p.logger.Warn("Telegram channel not configured, skipping tip post",
			zap.Int("tip_number", tip.TipNumber),
			zap.String("date", tip.TipDate))
		return nil
	}

	message := fmt.Sprintf("💡 *Maslahat %d: %s*\n\n", tip.TipNumber, tip.Title)
	message += tip.Content + "\n\n"
	message += fmt.Sprintf("📂 Kategoriya: %s\n\n", p.caser.String(tip.Category))
	message += "🌐 Ko'proq maslahatlar uchun web ilovamizga tashrif buyuring!"

	if err := p.send(message); err != nil {
		return fmt.Errorf("failed to post tip %d to channel: %w", tip.TipNumber, err)
	}

	p.logger.Info("Tip posted to Telegram channel",
		zap.Int("tip_number", tip.TipNumber),
		zap.String("date", tip.TipDate))

	return nil
}

// send отправляет сообщение в канал.
// Канал задается числовым chat ID или именем вида @channel.
func (p *Publisher) send(text string) error {
	var msg tgbotapi.MessageConfig

	if chatID, err := strconv.ParseInt(p.channelID, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(p.channelID, text)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := p.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
