package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-quiz-bot/internal/infra/postgres/repository"
)

// ErrNoRoundsRecorded is returned when a chat has no finished rounds yet.
var ErrNoRoundsRecorded = errors.New("no rounds recorded")

// LeaderboardService serves round-history views: the global top list and a
// chat's personal best.
type LeaderboardService struct {
	roundRepo RoundRepository
	limit     int
}

// NewLeaderboardService creates a leaderboard service showing up to limit
// entries.
func NewLeaderboardService(roundRepo RoundRepository, limit int) *LeaderboardService {
	return &LeaderboardService{roundRepo: roundRepo, limit: limit}
}

// Top returns the best recorded round per chat, highest score first.
func (s *LeaderboardService) Top(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	return s.roundRepo.TopRounds(ctx, s.limit)
}

// PersonalBest returns the chat's best recorded round, or
// ErrNoRoundsRecorded when the chat has no history yet.
func (s *LeaderboardService) PersonalBest(ctx context.Context, chatID int64) (*entities.LeaderboardEntry, error) {
	best, err := s.roundRepo.BestByChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRoundsRecorded) {
			return nil, ErrNoRoundsRecorded
		}
		return nil, fmt.Errorf("get best round: %w", err)
	}
	return best, nil
}
