package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

const maxButtonTextLen = 28

// buildDifficultyKeyboard builds the difficulty selector.
func buildDifficultyKeyboard() tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, d := range entities.Difficulties() {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			difficultyButtonLabel(d),
			buildDifficultyCallback(d),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(buttons...),
	)
}

// buildAnswerKeyboard builds the 2x2 answer grid for the question in the
// view, stamping each button with the view's fetch sequence.
func buildAnswerKeyboard(view entities.SessionView) tgbotapi.InlineKeyboardMarkup {
	labels := entities.Labels()

	button := func(l entities.Label) tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardButtonData(
			answerButtonLabel(l, view.Question.OptionText(l)),
			buildAnswerCallback(l, view.FetchSeq),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(labels[0]), button(labels[1])),
		tgbotapi.NewInlineKeyboardRow(button(labels[2]), button(labels[3])),
	)
}

// buildAfterAnswerKeyboard builds the row shown under answer feedback.
func buildAfterAnswerKeyboard(muted bool) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Next question", buildNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Difficulty", buildMenuCallback()),
			tgbotapi.NewInlineKeyboardButtonData(muteButtonLabel(muted), buildMuteCallback()),
		),
	)
}

// buildErrorKeyboard builds the row shown under a fetch failure.
func buildErrorKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Try again", buildNextCallback()),
			tgbotapi.NewInlineKeyboardButtonData("🎯 Difficulty", buildMenuCallback()),
		),
	)
}

// buildReminderKeyboard builds the row shown under the daily reminder.
func buildReminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Play now", buildPlayCallback()),
			tgbotapi.NewInlineKeyboardButtonData("🔕 Stop reminders", buildReminderDisableCallback()),
		),
	)
}

func difficultyButtonLabel(d entities.Difficulty) string {
	switch d {
	case entities.DifficultyEasy:
		return "🟢 Easy"
	case entities.DifficultyMedium:
		return "🟡 Medium"
	case entities.DifficultyHard:
		return "🔴 Hard"
	default:
		return string(d)
	}
}

func muteButtonLabel(muted bool) string {
	if muted {
		return "🔇 Sound off"
	}
	return "🔊 Sound on"
}

// answerButtonLabel fits an option onto a button: "B. 4". Long options are
// cut; the full text is always visible in the question message itself.
func answerButtonLabel(l entities.Label, text string) string {
	if len([]rune(text)) > maxButtonTextLen {
		text = string([]rune(text)[:maxButtonTextLen-1]) + "…"
	}
	return fmt.Sprintf("%s. %s", l, text)
}
