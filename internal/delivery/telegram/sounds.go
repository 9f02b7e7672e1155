package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// CallbackSounds plays sound cues as callback answer toasts. Answering a
// callback query with text makes the client pop a notification with its
// notification sound, which is the closest thing a bot has to playing audio.
// Cues for actions that did not come from a button press have no callback to
// answer and are dropped.
type CallbackSounds struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
}

// NewCallbackSounds creates a sound player backed by callback answers.
func NewCallbackSounds(bot *tgbotapi.BotAPI, logger *zap.Logger) *CallbackSounds {
	return &CallbackSounds{bot: bot, logger: logger}
}

// Correct plays the right-answer cue.
func (s *CallbackSounds) Correct(origin string) {
	s.answer(origin, toastCorrect)
}

// Incorrect plays the wrong-answer cue.
func (s *CallbackSounds) Incorrect(origin string) {
	s.answer(origin, toastIncorrect)
}

// Click plays the button-click cue.
func (s *CallbackSounds) Click(origin string) {
	s.answer(origin, toastClick)
}

func (s *CallbackSounds) answer(origin, text string) {
	if origin == "" {
		return
	}
	if _, err := s.bot.Request(tgbotapi.NewCallback(origin, text)); err != nil {
		s.logger.Warn("failed to play sound cue",
			zap.String("cue", text),
			zap.Error(err),
		)
	}
}
