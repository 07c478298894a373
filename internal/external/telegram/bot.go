package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kidscode/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ContentProvider определяет доступ бота к контенту
type ContentProvider interface {
	GetLessonsByDate(date string) ([]model.Lesson, error)
	GetLessonByID(id int) (*model.Lesson, error)
}

// Bot представляет Telegram-бота с командами для читателей
type Bot struct {
	bot     *tgbotapi.BotAPI
	content ContentProvider
	logger  *zap.Logger
}

// NewBot создает нового бота
func NewBot(bot *tgbotapi.BotAPI, content ContentProvider, logger *zap.Logger) *Bot {
	return &Bot{
		bot:     bot,
		content: content,
		logger:  logger,
	}
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Bot started", zap.String("username", b.bot.Self.UserName))

	// Удаляем webhook если есть
	if _, err := b.bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		b.logger.Error("Failed to delete webhook", zap.Error(err))
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	// Настраиваем команды бота
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Botni ishga tushirish"},
		{Command: "daily", Description: "Bugungi darslar"},
		{Command: "lesson", Description: "Dars tafsilotlari"},
		{Command: "help", Description: "Yordam"},
	}
	if _, err := b.bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		b.logger.Error("Failed to set bot commands", zap.Error(err))
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	// Настраиваем long polling
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message"}

	b.logger.Info("Starting to fetch updates")
	updatesChan := b.bot.GetUpdatesChan(u)
	if updatesChan == nil {
		return fmt.Errorf("failed to create updates channel")
	}

	reconnectDelay := 10 * time.Second

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Update loop cancelled by context")
			return ctx.Err()
		case update, ok := <-updatesChan:
			if !ok {
				b.logger.Warn("Update channel closed, will try to reconnect after delay")
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(reconnectDelay):
					return fmt.Errorf("update channel closed, reconnecting")
				}
			}

			b.processUpdate(update)
		}
	}
}

// processUpdate обрабатывает одно обновление
func (b *Bot) processUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic in processUpdate", zap.Any("panic", r))
		}
	}()

	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	b.logger.Debug("Processing command",
		zap.String("command", update.Message.Command()),
		zap.Int64("chat_id", update.Message.Chat.ID))

	switch update.Message.Command() {
	case "start":
		b.reply(update.Message.Chat.ID,
			"🐍 Salom! Men Python o'qitish botiman.\n\n"+
				"Quyidagi komandalardan foydalaning:\n"+
				"/daily - Bugungi darslar\n"+
				"/lesson <ID> - Dars tafsilotlari\n"+
				"/help - Yordam")
	case "daily":
		b.handleDaily(update.Message.Chat.ID)
	case "lesson":
		b.handleLesson(update.Message.Chat.ID, update.Message.CommandArguments())
	case "help":
		b.reply(update.Message.Chat.ID,
			"🤖 Python o'qitish boti\n\n"+
				"📋 Komandalar:\n"+
				"/start - Botni ishga tushirish\n"+
				"/daily - Bugungi darslarni ko'rish\n"+
				"/lesson <ID> - Ma'lum bir darsni ko'rish\n"+
				"/help - Ushbu yordam xabari")
	}
}

// handleDaily отправляет список сегодняшних уроков
func (b *Bot) handleDaily(chatID int64) {
	today := time.Now().UTC().Format(model.DateFormat)

	lessons, err := b.content.GetLessonsByDate(today)
	if err != nil {
		b.logger.Error("Failed to fetch daily lessons", zap.Error(err))
		b.reply(chatID, "Xatolik yuz berdi. Iltimos, qayta urinib ko'ring.")
		return
	}

	if len(lessons) == 0 {
		b.reply(chatID, "Bugun uchun darslar hali yaratilmagan.")
		return
	}

	message := fmt.Sprintf("📚 Bugungi darslar (%s):\n\n", today)
	for _, lesson := range lessons {
		message += fmt.Sprintf("%d. %s\n", lesson.LessonNumber, lesson.Title)
		message += fmt.Sprintf("   %s | %s\n", lesson.Difficulty, lesson.Duration)
		message += fmt.Sprintf("   ID: %d\n\n", lesson.LessonID)
	}
	message += "Dars tafsilotlarini ko'rish uchun: /lesson <ID>"

	b.reply(chatID, message)
}

// handleLesson отправляет подробности одного урока
func (b *Bot) handleLesson(chatID int64, args string) {
	args = strings.TrimSpace(args)
	if args == "" {
		b.reply(chatID, "Iltimos, dars ID sini kiriting.\nMisol: /lesson <ID>")
		return
	}

	id, err := strconv.Atoi(args)
	if err != nil {
		b.reply(chatID, "Dars ID raqam bo'lishi kerak.")
		return
	}

	lesson, err := b.content.GetLessonByID(id)
	if err != nil {
		b.logger.Error("Failed to fetch lesson", zap.Int("lesson_id", id), zap.Error(err))
		b.reply(chatID, "Xatolik yuz berdi. Iltimos, qayta urinib ko'ring.")
		return
	}

	if lesson == nil {
		b.reply(chatID, "Dars topilmadi.")
		return
	}

	message := fmt.Sprintf("📖 *%s*\n\n", lesson.Title)
	message += lesson.Description + "\n\n"
	message += fmt.Sprintf("⭐ Qiyinlik: %s\n", lesson.Difficulty)
	message += fmt.Sprintf("⏱ Davomiyligi: %s\n\n", lesson.Duration)
	message += fmt.Sprintf("📝 Dars mazmuni:\n%s\n\n", lesson.Content)
	message += fmt.Sprintf("💻 Kod misoli:\n```python\n%s\n```\n\n", lesson.CodeExample)
	message += fmt.Sprintf("✏️ Mashq: %s", lesson.ExercisePrompt)

	b.replyMarkdown(chatID, message)
}

// reply отправляет текстовый ответ
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("Failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// replyMarkdown отправляет ответ с Markdown-разметкой
func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("Failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
