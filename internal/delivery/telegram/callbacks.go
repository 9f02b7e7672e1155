package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-quiz-bot/internal/service"
)

// handleCallback dispatches an inline button press. Every callback query is
// answered exactly once: either by a sound cue toast fired inside the quiz
// service, or by a plain answer here when no cue played.
func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionDifficulty:
		h.handleDifficultyCallback(ctx, cb, chatID, messageID, data)
	case actionAnswer:
		h.handleAnswerCallback(ctx, cb, chatID, messageID, data)
	case actionNext:
		h.handleNextCallback(ctx, cb, chatID, messageID)
	case actionMenu:
		h.handleMenuCallback(ctx, cb, chatID, messageID)
	case actionMute:
		h.handleMuteCallback(ctx, cb, chatID, messageID)
	case actionPlay:
		h.handlePlayCallback(cb, chatID, messageID)
	case actionReminder:
		h.handleReminderCallback(ctx, cb, chatID, messageID, data)
	default:
		h.logger.Debug("unknown callback action", zap.String("data", data.Raw))
		h.answerCallback(cb.ID, "")
	}
}

// handleDifficultyCallback starts a round on the chosen difficulty and turns
// the selector message into a loading notice.
func (h *Handler) handleDifficultyCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, messageID int, data callbackData) {
	if len(data.Params) == 0 {
		h.logger.Debug("difficulty callback without params", zap.String("data", data.Raw))
		h.answerCallback(cb.ID, "")
		return
	}

	difficulty, ok := entities.ParseDifficulty(data.Params[0])
	if !ok {
		h.logger.Debug("unknown difficulty in callback", zap.String("data", data.Raw))
		h.answerCallback(cb.ID, "")
		return
	}

	view, err := h.quizService.StartRound(ctx, chatID, difficulty, cb.ID)
	if err != nil {
		h.answerCallback(cb.ID, "")
		h.sendError(chatID, errorReply(err))
		return
	}

	// Unmuted sessions were already answered by the click cue.
	if view.Muted {
		h.answerCallback(cb.ID, "")
	}

	h.send(newHTMLEdit(chatID, messageID, msgLoading))
}

// handleAnswerCallback records the tapped answer and replaces the answer grid
// with feedback. Taps on questions that are no longer current only get a
// toast.
func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, messageID int, data callbackData) {
	if len(data.Params) < 2 {
		h.logger.Debug("answer callback without params", zap.String("data", data.Raw))
		h.answerCallback(cb.ID, "")
		return
	}

	label, ok := entities.ParseLabel(data.Params[0])
	if !ok {
		h.logger.Debug("unknown label in callback", zap.String("data", data.Raw))
		h.answerCallback(cb.ID, "")
		return
	}

	seq, err := strconv.ParseUint(data.Params[1], 10, 64)
	if err != nil {
		h.logger.Debug("bad sequence in answer callback", zap.String("data", data.Raw))
		h.answerCallback(cb.ID, "")
		return
	}

	// The button carries the sequence of the question it was rendered for.
	// A mismatch means the user tapped a message from an earlier round.
	current := h.quizService.Snapshot(ctx, chatID)
	if current.Question == nil || current.FetchSeq != seq {
		h.answerCallback(cb.ID, toastExpired)
		return
	}

	result := h.quizService.SelectAnswer(ctx, chatID, label, cb.ID)
	if !result.Applied {
		// Repeat tap on an answered question. The first tap already
		// rewrote the message, nothing left to do.
		h.answerCallback(cb.ID, "")
		return
	}

	if result.Muted {
		h.answerCallback(cb.ID, "")
	}

	view := h.quizService.Snapshot(ctx, chatID)
	edit := newHTMLEdit(chatID, messageID, formatAnswerFeedback(view, result))
	kb := buildAfterAnswerKeyboard(view.Muted)
	edit.ReplyMarkup = &kb
	h.send(edit)
}

// handleNextCallback requests the next question for the current round.
func (h *Handler) handleNextCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	view, err := h.quizService.NextQuestion(ctx, chatID, cb.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnswerRequired):
			h.answerCallback(cb.ID, toastAnswerFirst)
		case errors.Is(err, service.ErrNoActiveRound):
			// The round is gone, e.g. a retry button outliving a
			// difficulty change. Offer the selector instead.
			h.answerCallback(cb.ID, "")
			edit := newHTMLEdit(chatID, messageID, msgChooseDifficulty)
			kb := buildDifficultyKeyboard()
			edit.ReplyMarkup = &kb
			h.send(edit)
		default:
			h.answerCallback(cb.ID, "")
			h.sendError(chatID, errorReply(err))
		}
		return
	}

	if view.Muted {
		h.answerCallback(cb.ID, "")
	}

	h.send(newHTMLEdit(chatID, messageID, msgLoading))
}

// handleMenuCallback ends the current round and shows the difficulty
// selector again.
func (h *Handler) handleMenuCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	view := h.quizService.ChangeDifficulty(ctx, chatID, cb.ID)

	if view.Muted {
		h.answerCallback(cb.ID, "")
	}

	edit := newHTMLEdit(chatID, messageID, msgChooseDifficulty)
	kb := buildDifficultyKeyboard()
	edit.ReplyMarkup = &kb
	h.send(edit)
}

// handleMuteCallback toggles sound cues and refreshes the button row so the
// mute button shows the new state.
func (h *Handler) handleMuteCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	muted := h.quizService.ToggleMute(ctx, chatID, cb.ID)

	// Turning sound on plays a click cue; turning it off stays silent.
	if muted {
		h.answerCallback(cb.ID, "")
	}

	kb := buildAfterAnswerKeyboard(muted)
	h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, kb))
}

// handlePlayCallback turns a reminder message into the difficulty selector.
func (h *Handler) handlePlayCallback(cb *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	h.answerCallback(cb.ID, "")

	// The reminder message is repurposed, stop tracking it for cleanup.
	h.reminders.Delete(chatID)

	edit := newHTMLEdit(chatID, messageID, msgChooseDifficulty)
	kb := buildDifficultyKeyboard()
	edit.ReplyMarkup = &kb
	h.send(edit)
}

// handleReminderCallback handles reminder management buttons.
func (h *Handler) handleReminderCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, messageID int, data callbackData) {
	if len(data.Params) == 0 || data.Params[0] != reminderDisable {
		h.logger.Debug("unknown reminder callback", zap.String("data", data.Raw))
		h.answerCallback(cb.ID, "")
		return
	}

	if err := h.settingsService.SetReminders(ctx, chatID, false); err != nil {
		h.logger.Error("failed to disable reminders",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, "")
		h.sendError(chatID, errorReply(err))
		return
	}

	h.reminders.Delete(chatID)
	h.answerCallback(cb.ID, toastRemindersOff)
	h.send(newHTMLEdit(chatID, messageID, msgRemindersOff))
}

// renderTypedAnswer handles an answer typed as plain text instead of tapped.
// There is no callback to answer and no message to edit, so feedback goes out
// as a new message.
func (h *Handler) renderTypedAnswer(ctx context.Context, chatID int64, label entities.Label) {
	result := h.quizService.SelectAnswer(ctx, chatID, label, "")

	if !result.Applied {
		if result.AlreadyAnswered {
			h.send(newHTMLMessage(chatID, msgAlreadyAnswered))
			return
		}
		h.send(newHTMLMessage(chatID, msgNoQuestionShown))
		return
	}

	view := h.quizService.Snapshot(ctx, chatID)
	msg := newHTMLMessage(chatID, formatAnswerFeedback(view, result))
	msg.ReplyMarkup = buildAfterAnswerKeyboard(view.Muted)
	msg.DisableNotification = view.Muted
	h.send(msg)
}
