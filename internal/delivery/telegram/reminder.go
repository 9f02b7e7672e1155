package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// SendReminder delivers the daily play reminder to a chat. The previous
// reminder, if one is still tracked, is deleted afterwards so reminders do
// not pile up in the chat history.
func (h *Handler) SendReminder(chatID int64) error {
	msg := newHTMLMessage(chatID, msgReminder)
	msg.ReplyMarkup = buildReminderKeyboard()

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	if prev, ok := h.reminders.UpsertAndGetPrev(chatID, sent.MessageID); ok {
		if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, prev.MessageID)); err != nil {
			h.logger.Debug("failed to delete previous reminder",
				zap.Int64("chat_id", chatID),
				zap.Int("message_id", prev.MessageID),
				zap.Error(err),
			)
		}
	}

	return nil
}
