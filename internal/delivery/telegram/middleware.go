package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-quiz-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, errorReply(err))
			return nil
		}
		return nil
	}
}

// errorReply picks the user-facing message for a handler error. Known quiz
// conditions get specific hints; everything else is reported uniformly.
func errorReply(err error) string {
	switch {
	case errors.Is(err, service.ErrNoActiveRound):
		return msgNoActiveRound
	case errors.Is(err, service.ErrAnswerRequired):
		return msgAnswerRequired
	default:
		return msgInternalError
	}
}
