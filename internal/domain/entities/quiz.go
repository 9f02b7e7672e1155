package entities

import (
	"sync"
	"time"
)

// Phase is the derived state of a quiz session.
type Phase string

const (
	PhaseNoDifficulty Phase = "no_difficulty" // waiting for a difficulty pick
	PhaseLoading      Phase = "loading"       // a fetch is outstanding
	PhaseUnanswered   Phase = "unanswered"    // question shown, not answered yet
	PhaseAnswered     Phase = "answered"      // question answered, next available
	PhaseError        Phase = "error"         // last fetch failed
)

// QuizSession holds the quiz state for a single chat. All mutation goes
// through the transition methods below; fields are unexported so state can
// never be changed ad hoc from another package. Each method takes the session
// lock, so user actions from the update loop and fetch outcomes from fetch
// goroutines may arrive in any order.
//
// Every transition that starts a fetch issues a new fetch token. A fetch
// outcome is applied only if it carries the latest token, so a slow response
// that arrives after a newer fetch has started is dropped without touching
// state (last-request-wins).
type QuizSession struct {
	mu sync.Mutex

	chatID        int64
	question      *Question
	score         int
	selected      Label
	answered      bool
	loading       bool
	errorMessage  string
	difficulty    Difficulty
	muted         bool
	answeredTotal int       // answers given in the current round
	startedAt     time.Time // when the current round began

	fetchSeq uint64 // latest issued fetch token
}

// NewQuizSession creates an empty session for a chat: no difficulty, score 0,
// nothing loading.
func NewQuizSession(chatID int64) *QuizSession {
	return &QuizSession{chatID: chatID}
}

// StartRound begins a new round on the given difficulty from any state: the
// score resets to 0, any question, selection and error are cleared, and the
// session enters loading with a fresh fetch token. If a previous round had
// recorded answers, its result is returned so the caller can persist it.
func (s *QuizSession) StartRound(d Difficulty) (seq uint64, finished *RoundResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	finished = s.finishRoundLocked()

	s.difficulty = d
	s.score = 0
	s.answeredTotal = 0
	s.startedAt = time.Now()
	s.clearQuestionLocked()
	s.loading = true
	s.fetchSeq++

	return s.fetchSeq, finished
}

// BeginFetch starts the next fetch cycle within the current round, clearing
// the prior question, selection and error. It is refused when no difficulty
// is set or when the current question has not been answered yet. Starting a
// new cycle while one is already loading is allowed and supersedes the
// outstanding fetch: inline keyboards on old messages stay pressable forever,
// so stale "next" taps are normal input.
func (s *QuizSession) BeginFetch() (seq uint64, d Difficulty, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.difficulty == "" {
		return 0, "", false
	}
	if s.question != nil && !s.answered {
		return 0, "", false
	}

	s.clearQuestionLocked()
	s.loading = true
	s.fetchSeq++

	return s.fetchSeq, s.difficulty, true
}

// ApplyQuestion stores a successfully fetched question and reports whether it
// was applied. A result whose token is not the latest issued is stale and is
// dropped without any state change.
func (s *QuizSession) ApplyQuestion(seq uint64, q *Question) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq || !s.loading {
		return false
	}

	s.question = q
	s.selected = ""
	s.answered = false
	s.errorMessage = ""
	s.loading = false

	return true
}

// ApplyError stores a fetch failure message and reports whether it was
// applied, under the same staleness rule as ApplyQuestion. The score and
// difficulty survive a failed fetch; only the question slot is cleared.
func (s *QuizSession) ApplyError(seq uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq || !s.loading {
		return false
	}

	s.question = nil
	s.selected = ""
	s.answered = false
	s.errorMessage = message
	s.loading = false

	return true
}

// AnswerResult describes the outcome of an answer selection.
type AnswerResult struct {
	Applied         bool  // the selection was recorded just now
	AlreadyAnswered bool  // the question had been answered before; nothing changed
	Correct         bool  // the recorded selection was correct
	CorrectLabel    Label // the question's correct label
	Selected        Label // the recorded selection
	Score           int   // score after the selection
	Muted           bool  // sound cues are suppressed
}

// SelectAnswer records an answer for the current question. An answer is
// accepted exactly once per question: a repeat selection on an answered
// question changes nothing and reports AlreadyAnswered. Selecting the correct
// label increments the score by one; any other valid label leaves it
// unchanged. Invalid labels and selections outside the question phase are
// ignored entirely.
func (s *QuizSession) SelectAnswer(l Label) AnswerResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.question == nil || s.loading {
		return AnswerResult{Muted: s.muted}
	}
	if s.answered {
		return AnswerResult{
			AlreadyAnswered: true,
			Correct:         s.question.IsCorrect(s.selected),
			CorrectLabel:    s.question.CorrectLabel,
			Selected:        s.selected,
			Score:           s.score,
			Muted:           s.muted,
		}
	}
	if !l.Valid() {
		return AnswerResult{Muted: s.muted}
	}

	s.selected = l
	s.answered = true
	s.answeredTotal++

	correct := s.question.IsCorrect(l)
	if correct {
		s.score++
	}

	return AnswerResult{
		Applied:      true,
		Correct:      correct,
		CorrectLabel: s.question.CorrectLabel,
		Selected:     l,
		Score:        s.score,
		Muted:        s.muted,
	}
}

// ClearDifficulty returns the session to the difficulty selector from any
// state. An outstanding fetch is invalidated by bumping the fetch token, so
// its eventual result is dropped. If the ending round had recorded answers,
// its result is returned for persistence.
func (s *QuizSession) ClearDifficulty() *RoundResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	finished := s.finishRoundLocked()

	s.difficulty = ""
	s.clearQuestionLocked()
	s.loading = false
	s.fetchSeq++

	return finished
}

// ToggleMute flips the mute flag and returns the new value. It is orthogonal
// to the quiz state machine: nothing else changes, and the flag only gates
// sound cues.
func (s *QuizSession) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = !s.muted
	return s.muted
}

// SetMuted overwrites the mute flag, used to rehydrate a fresh session from
// persisted user settings.
func (s *QuizSession) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = muted
}

// SessionView is a consistent copy of the session state for rendering.
// FetchSeq identifies the fetch that produced the current question, so
// rendered answer buttons can carry it and taps on outdated messages can be
// told apart from answers to the live question.
type SessionView struct {
	ChatID        int64
	Question      *Question
	Score         int
	SelectedLabel Label
	Answered      bool
	Loading       bool
	ErrorMessage  string
	Difficulty    Difficulty
	Muted         bool
	AnsweredTotal int
	FetchSeq      uint64
}

// Snapshot returns a view of the current state.
func (s *QuizSession) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionView{
		ChatID:        s.chatID,
		Question:      s.question,
		Score:         s.score,
		SelectedLabel: s.selected,
		Answered:      s.answered,
		Loading:       s.loading,
		ErrorMessage:  s.errorMessage,
		Difficulty:    s.difficulty,
		Muted:         s.muted,
		AnsweredTotal: s.answeredTotal,
		FetchSeq:      s.fetchSeq,
	}
}

// Phase derives the state-machine phase from the view's flags.
func (v SessionView) Phase() Phase {
	switch {
	case v.Difficulty == "":
		return PhaseNoDifficulty
	case v.Loading:
		return PhaseLoading
	case v.ErrorMessage != "":
		return PhaseError
	case v.Question == nil:
		return PhaseNoDifficulty
	case v.Answered:
		return PhaseAnswered
	default:
		return PhaseUnanswered
	}
}

// finishRoundLocked builds the result of the round in progress, or nil when
// there is no difficulty set or nothing was answered. Callers hold s.mu.
func (s *QuizSession) finishRoundLocked() *RoundResult {
	if s.difficulty == "" || s.answeredTotal == 0 {
		return nil
	}
	return NewRoundResult(s.chatID, s.difficulty, s.score, s.answeredTotal, s.startedAt)
}

// clearQuestionLocked resets the per-question fields. Callers hold s.mu.
func (s *QuizSession) clearQuestionLocked() {
	s.question = nil
	s.selected = ""
	s.answered = false
	s.errorMessage = ""
}
