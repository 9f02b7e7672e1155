package entities

import (
	"time"

	"github.com/google/uuid"
)

// RoundResult is the persisted outcome of a finished round: the span from a
// difficulty selection until the next difficulty change. Only rounds with at
// least one answered question are recorded.
type RoundResult struct {
	ID                uuid.UUID
	ChatID            int64
	Difficulty        Difficulty
	Score             int
	QuestionsAnswered int
	StartedAt         time.Time
	FinishedAt        time.Time
}

// NewRoundResult creates a round result with a fresh ID, finished now.
func NewRoundResult(chatID int64, d Difficulty, score, answered int, startedAt time.Time) *RoundResult {
	return &RoundResult{
		ID:                uuid.New(),
		ChatID:            chatID,
		Difficulty:        d,
		Score:             score,
		QuestionsAnswered: answered,
		StartedAt:         startedAt,
		FinishedAt:        time.Now(),
	}
}

// Accuracy returns the share of correct answers in the round, 0..1.
func (r *RoundResult) Accuracy() float64 {
	if r.QuestionsAnswered == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.QuestionsAnswered)
}

// LeaderboardEntry is a chat's best recorded round.
type LeaderboardEntry struct {
	ChatID     int64
	Difficulty Difficulty
	Score      int
	FinishedAt time.Time
}
