package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionDifficulty = "diff"
	actionAnswer     = "ans"
	actionNext       = "next"
	actionMenu       = "menu"
	actionMute       = "mute"
	actionPlay       = "play"
	actionReminder   = "reminder"
)

// Reminder sub-actions.
const (
	reminderDisable = "disable"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildDifficultyCallback builds callback data for starting a round on a difficulty.
func buildDifficultyCallback(d entities.Difficulty) string {
	return callbackData{
		Action: actionDifficulty,
		Params: []string{string(d)},
	}.encode()
}

// buildAnswerCallback builds callback data for answering with a label. The
// fetch sequence of the rendered question is included so taps on messages
// left over from earlier rounds can be rejected.
func buildAnswerCallback(label entities.Label, seq uint64) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{string(label), strconv.FormatUint(seq, 10)},
	}.encode()
}

// buildNextCallback builds callback data for requesting the next question.
func buildNextCallback() string {
	return callbackData{Action: actionNext}.encode()
}

// buildMenuCallback builds callback data for returning to the difficulty selector.
func buildMenuCallback() string {
	return callbackData{Action: actionMenu}.encode()
}

// buildMuteCallback builds callback data for toggling sound cues.
func buildMuteCallback() string {
	return callbackData{Action: actionMute}.encode()
}

// buildPlayCallback builds callback data for opening the difficulty selector
// from a reminder message.
func buildPlayCallback() string {
	return callbackData{Action: actionPlay}.encode()
}

// buildReminderDisableCallback builds callback data for disabling reminders.
func buildReminderDisableCallback() string {
	return callbackData{
		Action: actionReminder,
		Params: []string{reminderDisable},
	}.encode()
}
