// messages.go contains message templates and helpers for Telegram.

package telegram

import (
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "<b>🎲 Trivia time!</b>\n\n" +
		"I ask multiple-choice questions, you pick A, B, C or D. " +
		"Every correct answer is worth one point, and your score keeps growing until you change difficulty.\n\n" +
		"Pick a difficulty to start:"

	msgHelp = "<b>Commands</b>\n\n" +
		"/play — pick a difficulty and start a round\n" +
		"/score — current round and personal best\n" +
		"/leaderboard — top players\n" +
		"/mute — toggle sound cues\n" +
		"/remind — toggle the daily reminder\n" +
		"/help — this message\n\n" +
		"During a question, tap a button or just type the letter."

	msgChooseDifficulty = "🎯 Pick a difficulty. Starting a round resets your score."
	msgLoading          = "⏳ Looking for a question…"
	msgNoActiveRound    = "No round in progress. Use /play to pick a difficulty."
	msgAnswerRequired   = "Answer the current question first."
	msgNoQuestionShown  = "No open question right now. Use /play to get one."
	msgAlreadyAnswered  = "You already answered that one. Tap ▶️ Next question to continue."
	msgMuted            = "🔇 Sound cues are off."
	msgUnmuted          = "🔊 Sound cues are on."
	msgRemindersOn      = "🔔 Daily reminder is on. I'll ping you once a day."
	msgRemindersOff     = "🔕 Daily reminder is off."
	msgReminder         = "🎲 Trivia time! Up for a quick round?"
	msgLeaderboardEmpty = "The leaderboard is empty so far. Finish a round to get on it!"
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "I didn't get that. Use /play to start a round or /help for the command list."
)

// Toast texts for callback answers.
const (
	toastCorrect      = "✅ Correct!"
	toastIncorrect    = "❌ Wrong!"
	toastClick        = "🎲"
	toastAnswerFirst  = "✋ Answer this question first"
	toastExpired      = "⌛️ That question is gone"
	toastRemindersOff = "🔕"
)

// esc escapes text from outside sources for HTML parse mode.
func esc(s string) string {
	return html.EscapeString(s)
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newHTMLEdit creates a message edit with HTML parse mode.
func newHTMLEdit(chatID int64, messageID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}
