package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

// formatQuestion renders a question with its options and the running score.
func formatQuestion(view entities.SessionView) string {
	q := view.Question

	var b strings.Builder
	fmt.Fprintf(&b, "🎲 <b>Question %d</b> · %s\n\n", view.AnsweredTotal+1, difficultyButtonLabel(view.Difficulty))
	fmt.Fprintf(&b, "<b>%s</b>\n\n", esc(q.Prompt))

	for _, label := range entities.Labels() {
		fmt.Fprintf(&b, "<b>%s.</b> %s\n", label, esc(q.OptionText(label)))
	}

	fmt.Fprintf(&b, "\n🏆 Score: %d", view.Score)

	return b.String()
}

// formatAnswerFeedback renders the outcome of an answer over the question
// message.
func formatAnswerFeedback(view entities.SessionView, result entities.AnswerResult) string {
	q := view.Question

	var b strings.Builder
	fmt.Fprintf(&b, "🎲 <b>%s</b>\n\n", esc(q.Prompt))

	if result.Correct {
		fmt.Fprintf(&b, "✅ <b>Correct!</b> %s. %s\n", result.CorrectLabel, esc(q.OptionText(result.CorrectLabel)))
	} else {
		fmt.Fprintf(&b, "❌ You picked %s. %s\n", result.Selected, esc(q.OptionText(result.Selected)))
		fmt.Fprintf(&b, "✅ Correct answer: <b>%s. %s</b>\n", result.CorrectLabel, esc(q.OptionText(result.CorrectLabel)))
	}

	fmt.Fprintf(&b, "\n🏆 Score: %d", result.Score)

	return b.String()
}

// formatFetchError renders a failed fetch. The message stored in the session
// covers both transport and malformed-response failures.
func formatFetchError(view entities.SessionView) string {
	return fmt.Sprintf("⚠️ <b>Couldn't get a question.</b>\n\n%s", esc(view.ErrorMessage))
}

// formatScore renders the current round state and the chat's personal best.
func formatScore(view entities.SessionView, best *entities.LeaderboardEntry) string {
	var b strings.Builder
	b.WriteString("<b>📊 Your stats</b>\n\n")

	if view.Difficulty == "" {
		b.WriteString("No round in progress. Use /play to start one.\n")
	} else {
		fmt.Fprintf(&b, "🎯 <b>Difficulty:</b> %s\n", difficultyButtonLabel(view.Difficulty))
		fmt.Fprintf(&b, "🏆 <b>Score:</b> %d of %d answered\n", view.Score, view.AnsweredTotal)
		if view.AnsweredTotal > 0 {
			accuracy := float64(view.Score) / float64(view.AnsweredTotal) * 100
			fmt.Fprintf(&b, "%s %.1f%%\n", buildAccuracyBar(view.Score, view.AnsweredTotal, 20), accuracy)
		}
	}

	if best != nil {
		fmt.Fprintf(&b, "\n⭐️ <b>Personal best:</b> %d (%s)\n", best.Score, best.Difficulty)
	}

	return b.String()
}

// formatLeaderboard renders the top rounds list.
func formatLeaderboard(entries []entities.LeaderboardEntry) string {
	var b strings.Builder
	b.WriteString("<b>🏆 Leaderboard</b>\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, e := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&b, "%s <code>%d</code> · <b>%d</b> pts (%s)\n", rank, e.ChatID, e.Score, e.Difficulty)
	}

	return b.String()
}

// buildAccuracyBar creates an ASCII accuracy bar.
func buildAccuracyBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
