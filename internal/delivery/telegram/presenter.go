package telegram

import (
	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

// PresentQuestion delivers a freshly fetched question with its answer grid.
// Called from fetch goroutines, so it sends a new message instead of editing
// whatever the chat currently shows.
func (h *Handler) PresentQuestion(chatID int64, view entities.SessionView) {
	if view.Question == nil {
		return
	}

	msg := newHTMLMessage(chatID, formatQuestion(view))
	msg.ReplyMarkup = buildAnswerKeyboard(view)
	msg.DisableNotification = view.Muted
	h.send(msg)
}

// PresentFetchError reports a failed fetch and offers a retry.
func (h *Handler) PresentFetchError(chatID int64, view entities.SessionView) {
	msg := newHTMLMessage(chatID, formatFetchError(view))
	msg.ReplyMarkup = buildErrorKeyboard()
	msg.DisableNotification = view.Muted
	h.send(msg)
}
