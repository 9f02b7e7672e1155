package service

import (
	"context"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

// QuestionFetcher produces one generated question per call.
type QuestionFetcher interface {
	Generate(ctx context.Context, difficulty entities.Difficulty) (*entities.Question, error)
}

// SettingsRepository manages per-chat settings persistence.
type SettingsRepository interface {
	Create(ctx context.Context, chatID int64) error
	GetByChatID(ctx context.Context, chatID int64) (*entities.UserSettings, error)
	SetMuted(ctx context.Context, chatID int64, muted bool) error
	SetRemindersEnabled(ctx context.Context, chatID int64, enabled bool) error
	ListReminderChatIDs(ctx context.Context) ([]int64, error)
}

// RoundRepository manages finished round history.
type RoundRepository interface {
	Save(ctx context.Context, round *entities.RoundResult) error
	TopRounds(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error)
	BestByChat(ctx context.Context, chatID int64) (*entities.LeaderboardEntry, error)
}

// QuizPresenter renders fetch outcomes back to the chat. Implemented by the
// delivery layer and injected after construction, since fetches complete on
// goroutines long after the triggering update was handled.
type QuizPresenter interface {
	PresentQuestion(chatID int64, view entities.SessionView)
	PresentFetchError(chatID int64, view entities.SessionView)
}

// SoundPlayer fires the three fire-and-forget sound cues. The controller
// already suppresses cues for muted sessions, so implementations play
// unconditionally. The origin is the callback query that triggered the
// action; implementations ignore an empty origin.
type SoundPlayer interface {
	Correct(origin string)
	Incorrect(origin string)
	Click(origin string)
}

// ReminderNotifier sends the daily play reminder to a chat.
type ReminderNotifier interface {
	SendReminder(chatID int64) error
}
