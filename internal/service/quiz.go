package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/trivia-quiz-bot/internal/storage"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrNoActiveRound     = errors.New("no active round")
	ErrAnswerRequired    = errors.New("current question is not answered yet")
)

// QuizService drives the per-chat quiz state machine: it owns difficulty
// selection, question fetching, answer scoring, and the mute flag. Fetches
// run on their own goroutines; the session's fetch token makes sure only the
// most recently initiated fetch may mutate state, and only applied outcomes
// reach the presenter.
type QuizService struct {
	sessions     *storage.SessionStorage
	fetcher      QuestionFetcher
	settingsRepo SettingsRepository
	roundRepo    RoundRepository
	sounds       SoundPlayer
	presenter    QuizPresenter
	logger       *zap.Logger
}

// NewQuizService creates a new quiz service.
func NewQuizService(
	sessions *storage.SessionStorage,
	fetcher QuestionFetcher,
	settingsRepo SettingsRepository,
	roundRepo RoundRepository,
	sounds SoundPlayer,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		sessions:     sessions,
		fetcher:      fetcher,
		settingsRepo: settingsRepo,
		roundRepo:    roundRepo,
		sounds:       sounds,
		logger:       logger,
	}
}

// SetPresenter sets the presenter (called after the handler is created).
func (s *QuizService) SetPresenter(presenter QuizPresenter) {
	s.presenter = presenter
}

// StartRound resets the score, enters loading, and fetches the first question
// for the chosen difficulty. Selecting a difficulty mid-round starts a new
// round; the finished one is recorded first.
func (s *QuizService) StartRound(ctx context.Context, chatID int64, d entities.Difficulty, origin string) (entities.SessionView, error) {
	if !d.Valid() {
		return entities.SessionView{}, ErrUnknownDifficulty
	}

	session := s.session(ctx, chatID)

	seq, finished := session.StartRound(d)
	if finished != nil {
		s.recordRound(ctx, finished)
	}

	view := session.Snapshot()
	if !view.Muted {
		s.sounds.Click(origin)
	}

	go s.fetch(ctx, chatID, session, seq, d)

	return view, nil
}

// NextQuestion starts the next fetch cycle in the current round. It reports
// ErrNoActiveRound before a difficulty is chosen and ErrAnswerRequired while
// the current question is still open.
func (s *QuizService) NextQuestion(ctx context.Context, chatID int64, origin string) (entities.SessionView, error) {
	session := s.session(ctx, chatID)

	seq, d, ok := session.BeginFetch()
	if !ok {
		if session.Snapshot().Difficulty == "" {
			return entities.SessionView{}, ErrNoActiveRound
		}
		return entities.SessionView{}, ErrAnswerRequired
	}

	view := session.Snapshot()
	if !view.Muted {
		s.sounds.Click(origin)
	}

	go s.fetch(ctx, chatID, session, seq, d)

	return view, nil
}

// SelectAnswer records an answer on the current question and fires the
// correct or incorrect cue for a fresh answer. Repeat selections on an
// answered question are no-ops.
func (s *QuizService) SelectAnswer(ctx context.Context, chatID int64, label entities.Label, origin string) entities.AnswerResult {
	session := s.session(ctx, chatID)

	result := session.SelectAnswer(label)
	if result.Applied && !result.Muted {
		if result.Correct {
			s.sounds.Correct(origin)
		} else {
			s.sounds.Incorrect(origin)
		}
	}

	return result
}

// ChangeDifficulty ends the current round and returns the session to the
// difficulty selector. The finished round, if it had answers, is recorded.
func (s *QuizService) ChangeDifficulty(ctx context.Context, chatID int64, origin string) entities.SessionView {
	session := s.session(ctx, chatID)

	if finished := session.ClearDifficulty(); finished != nil {
		s.recordRound(ctx, finished)
	}

	view := session.Snapshot()
	if !view.Muted {
		s.sounds.Click(origin)
	}

	return view
}

// ToggleMute flips the session's mute flag, persists it, and returns the new
// value. The click cue fires only when the session ends up unmuted.
func (s *QuizService) ToggleMute(ctx context.Context, chatID int64, origin string) bool {
	session := s.session(ctx, chatID)

	muted := session.ToggleMute()
	if err := s.settingsRepo.SetMuted(ctx, chatID, muted); err != nil {
		s.logger.Warn("persist mute flag",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}

	if !muted {
		s.sounds.Click(origin)
	}

	return muted
}

// Snapshot returns the current session state for rendering.
func (s *QuizService) Snapshot(ctx context.Context, chatID int64) entities.SessionView {
	return s.session(ctx, chatID).Snapshot()
}

// session returns the chat's session, loading persisted settings into it on
// first contact. Settings failures fall back to defaults; the quiz must not
// depend on the database being up.
func (s *QuizService) session(ctx context.Context, chatID int64) *entities.QuizSession {
	session, created := s.sessions.GetOrCreate(chatID)
	if !created {
		return session
	}

	settings, err := s.settingsRepo.GetByChatID(ctx, chatID)
	if err != nil {
		if !errors.Is(err, repository.ErrSettingsNotFound) {
			s.logger.Warn("load settings",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
		return session
	}

	session.SetMuted(settings.Muted)
	return session
}

// fetch performs one question fetch and applies its outcome. Outcomes that
// lost the token race are dropped silently; applied outcomes are handed to
// the presenter.
func (s *QuizService) fetch(ctx context.Context, chatID int64, session *entities.QuizSession, seq uint64, d entities.Difficulty) {
	question, err := s.fetcher.Generate(ctx, d)
	if err != nil {
		if !session.ApplyError(seq, err.Error()) {
			s.logger.Debug("stale fetch error dropped",
				zap.Int64("chat_id", chatID),
				zap.Uint64("seq", seq),
			)
			return
		}

		s.logger.Warn("question fetch failed",
			zap.Int64("chat_id", chatID),
			zap.String("difficulty", string(d)),
			zap.Error(err),
		)
		if s.presenter != nil {
			s.presenter.PresentFetchError(chatID, session.Snapshot())
		}
		return
	}

	if !session.ApplyQuestion(seq, question) {
		s.logger.Debug("stale fetch result dropped",
			zap.Int64("chat_id", chatID),
			zap.Uint64("seq", seq),
		)
		return
	}

	if s.presenter != nil {
		s.presenter.PresentQuestion(chatID, session.Snapshot())
	}
}

// recordRound persists a finished round. History is best-effort; failures are
// logged and the quiz carries on.
func (s *QuizService) recordRound(ctx context.Context, round *entities.RoundResult) {
	if err := s.roundRepo.Save(ctx, round); err != nil {
		s.logger.Warn("record round",
			zap.Int64("chat_id", round.ChatID),
			zap.String("difficulty", string(round.Difficulty)),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("round recorded",
		zap.Int64("chat_id", round.ChatID),
		zap.String("difficulty", string(round.Difficulty)),
		zap.Int("score", round.Score),
		zap.Int("questions_answered", round.QuestionsAnswered),
	)
}
