package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-quiz-bot/internal/infra/postgres"
)

var ErrNoRoundsRecorded = errors.New("no rounds recorded")

// RoundRepository provides access to finished round history in the database.
type RoundRepository struct {
	db postgres.DBTX
}

// NewRoundRepository creates a new RoundRepository with the provided database pool.
func NewRoundRepository(db postgres.DBTX) *RoundRepository {
	return &RoundRepository{db: db}
}

// Save records a finished round.
func (r *RoundRepository) Save(ctx context.Context, round *entities.RoundResult) error {
	query := `
		INSERT INTO quiz_rounds (id, chat_id, difficulty, score, questions_answered, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		round.ID,
		round.ChatID,
		round.Difficulty,
		round.Score,
		round.QuestionsAnswered,
		round.StartedAt,
		round.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("save round: %w", err)
	}

	return nil
}

// TopRounds returns the best recorded round per chat, highest score first.
// Ties go to the earlier finish.
func (r *RoundRepository) TopRounds(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error) {
	query := `
		SELECT chat_id, difficulty, score, finished_at
		FROM (
			SELECT DISTINCT ON (chat_id) chat_id, difficulty, score, finished_at
			FROM quiz_rounds
			ORDER BY chat_id, score DESC, finished_at ASC
		) best
		ORDER BY score DESC, finished_at ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top rounds: %w", err)
	}
	defer rows.Close()

	var entries []entities.LeaderboardEntry
	for rows.Next() {
		var e entities.LeaderboardEntry
		if err := rows.Scan(&e.ChatID, &e.Difficulty, &e.Score, &e.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard entries: %w", err)
	}

	return entries, nil
}

// BestByChat returns a chat's best recorded round.
func (r *RoundRepository) BestByChat(ctx context.Context, chatID int64) (*entities.LeaderboardEntry, error) {
	query := `
		SELECT chat_id, difficulty, score, finished_at
		FROM quiz_rounds
		WHERE chat_id = $1
		ORDER BY score DESC, finished_at ASC
		LIMIT 1
	`

	var e entities.LeaderboardEntry
	err := r.db.QueryRow(ctx, query, chatID).Scan(&e.ChatID, &e.Difficulty, &e.Score, &e.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRoundsRecorded
		}
		return nil, fmt.Errorf("best round by chat: %w", err)
	}

	return &e, nil
}
