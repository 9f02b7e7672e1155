package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-quiz-bot/internal/storage"
)

type QuizService interface {
	StartRound(ctx context.Context, chatID int64, d entities.Difficulty, origin string) (entities.SessionView, error)
	NextQuestion(ctx context.Context, chatID int64, origin string) (entities.SessionView, error)
	SelectAnswer(ctx context.Context, chatID int64, label entities.Label, origin string) entities.AnswerResult
	ChangeDifficulty(ctx context.Context, chatID int64, origin string) entities.SessionView
	ToggleMute(ctx context.Context, chatID int64, origin string) bool
	Snapshot(ctx context.Context, chatID int64) entities.SessionView
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, chatID int64) (*entities.UserSettings, error)
	ToggleReminders(ctx context.Context, chatID int64) (bool, error)
	SetReminders(ctx context.Context, chatID int64, enabled bool) error
}

type LeaderboardService interface {
	Top(ctx context.Context) ([]entities.LeaderboardEntry, error)
	PersonalBest(ctx context.Context, chatID int64) (*entities.LeaderboardEntry, error)
}

type Handler struct {
	bot                *tgbotapi.BotAPI
	logger             *zap.Logger
	quizService        QuizService
	settingsService    SettingsService
	leaderboardService LeaderboardService
	reminders          *storage.ReminderStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	settingsService SettingsService,
	leaderboardService LeaderboardService,
	reminders *storage.ReminderStorage,
) *Handler {
	return &Handler{
		bot:                bot,
		logger:             logger,
		quizService:        quizService,
		settingsService:    settingsService,
		leaderboardService: leaderboardService,
		reminders:          reminders,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.startHandler())(ctx, chatID)

		case "play":
			_ = h.withErrorHandling(h.playHandler())(ctx, chatID)

		case "score":
			_ = h.withErrorHandling(h.scoreHandler())(ctx, chatID)

		case "leaderboard":
			_ = h.withErrorHandling(h.leaderboardHandler())(ctx, chatID)

		case "mute":
			_ = h.withErrorHandling(h.muteHandler())(ctx, chatID)

		case "remind":
			_ = h.withErrorHandling(h.remindHandler())(ctx, chatID)

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	// Free text can be an answer typed instead of tapped.
	if label, ok := entities.ParseLabel(update.Message.Text); ok {
		h.renderTypedAnswer(ctx, chatID, label)
		return
	}

	h.send(newHTMLMessage(chatID, msgUnknownCommand))
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answerCallback stops the client's loading spinner, optionally with a
// toast text. Every callback query must be answered exactly once.
func (h *Handler) answerCallback(id, text string) {
	if id == "" {
		return
	}
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("failed to answer callback",
			zap.Error(err),
		)
	}
}
