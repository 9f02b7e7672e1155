package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-quiz-bot/internal/service"
)

// startHandler greets the user and offers the difficulty selector.
func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.settingsService.GetOrCreate(ctx, chatID); err != nil {
			h.logger.Warn("failed to ensure user settings",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}

		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildDifficultyKeyboard()
		h.send(msg)
		return nil
	}
}

// playHandler shows the difficulty selector.
func (h *Handler) playHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, msgChooseDifficulty)
		msg.ReplyMarkup = buildDifficultyKeyboard()
		h.send(msg)
		return nil
	}
}

// scoreHandler reports the current round and the recorded personal best.
func (h *Handler) scoreHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view := h.quizService.Snapshot(ctx, chatID)

		best, err := h.leaderboardService.PersonalBest(ctx, chatID)
		if err != nil && !errors.Is(err, service.ErrNoRoundsRecorded) {
			return fmt.Errorf("get personal best: %w", err)
		}

		msg := newHTMLMessage(chatID, formatScore(view, best))
		msg.DisableNotification = view.Muted
		h.send(msg)
		return nil
	}
}

// leaderboardHandler shows the best recorded round per chat.
func (h *Handler) leaderboardHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		entries, err := h.leaderboardService.Top(ctx)
		if err != nil {
			return fmt.Errorf("get leaderboard: %w", err)
		}

		if len(entries) == 0 {
			h.send(newHTMLMessage(chatID, msgLeaderboardEmpty))
			return nil
		}

		h.send(newHTMLMessage(chatID, formatLeaderboard(entries)))
		return nil
	}
}

// muteHandler toggles sound cues for the chat.
func (h *Handler) muteHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		muted := h.quizService.ToggleMute(ctx, chatID, "")

		text := msgUnmuted
		if muted {
			text = msgMuted
		}

		msg := newHTMLMessage(chatID, text)
		msg.DisableNotification = muted
		h.send(msg)
		return nil
	}
}

// remindHandler toggles the daily reminder for the chat.
func (h *Handler) remindHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		enabled, err := h.settingsService.ToggleReminders(ctx, chatID)
		if err != nil {
			return fmt.Errorf("toggle reminders: %w", err)
		}

		text := msgRemindersOff
		if enabled {
			text = msgRemindersOn
		}

		h.send(newHTMLMessage(chatID, text))
		return nil
	}
}
