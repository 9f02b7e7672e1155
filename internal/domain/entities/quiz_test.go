package entities

import (
	"testing"
)

func newMathQuestion() *Question {
	return &Question{
		Prompt: "2+2?",
		Options: map[Label]string{
			LabelA: "3",
			LabelB: "4",
			LabelC: "5",
			LabelD: "6",
		},
		CorrectLabel: LabelB,
	}
}

// startWithQuestion drives a fresh session to the unanswered-question state.
func startWithQuestion(t *testing.T, s *QuizSession, d Difficulty, q *Question) uint64 {
	t.Helper()

	seq, _ := s.StartRound(d)
	if !s.ApplyQuestion(seq, q) {
		t.Fatalf("question for fetch %d was not applied", seq)
	}
	return seq
}

func TestSessionStartsWithoutDifficulty(t *testing.T) {
	s := NewQuizSession(1)

	view := s.Snapshot()
	if got := view.Phase(); got != PhaseNoDifficulty {
		t.Fatalf("fresh session phase = %q, want %q", got, PhaseNoDifficulty)
	}
	if view.Score != 0 {
		t.Fatalf("fresh session score = %d, want 0", view.Score)
	}
}

func TestStartRoundEntersLoading(t *testing.T) {
	s := NewQuizSession(1)

	seq, finished := s.StartRound(DifficultyEasy)
	if seq == 0 {
		t.Fatal("expected a non-zero fetch token")
	}
	if finished != nil {
		t.Fatalf("expected no finished round, got %+v", finished)
	}

	view := s.Snapshot()
	if got := view.Phase(); got != PhaseLoading {
		t.Fatalf("phase after start = %q, want %q", got, PhaseLoading)
	}
	if view.Difficulty != DifficultyEasy {
		t.Fatalf("difficulty = %q, want %q", view.Difficulty, DifficultyEasy)
	}
}

func TestCorrectAnswerScoresOnePoint(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())

	result := s.SelectAnswer(LabelB)
	if !result.Applied {
		t.Fatal("expected the answer to be applied")
	}
	if !result.Correct {
		t.Fatal("expected B to be correct")
	}
	if result.Score != 1 {
		t.Fatalf("score = %d, want 1", result.Score)
	}

	view := s.Snapshot()
	if got := view.Phase(); got != PhaseAnswered {
		t.Fatalf("phase after answer = %q, want %q", got, PhaseAnswered)
	}
	if view.SelectedLabel != LabelB {
		t.Fatalf("selected = %q, want %q", view.SelectedLabel, LabelB)
	}
}

func TestIncorrectAnswerKeepsScore(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())

	result := s.SelectAnswer(LabelC)
	if !result.Applied {
		t.Fatal("expected the answer to be applied")
	}
	if result.Correct {
		t.Fatal("expected C to be incorrect")
	}
	if result.CorrectLabel != LabelB {
		t.Fatalf("correct label = %q, want %q", result.CorrectLabel, LabelB)
	}
	if result.Score != 0 {
		t.Fatalf("score = %d, want 0", result.Score)
	}

	if got := s.Snapshot().Phase(); got != PhaseAnswered {
		t.Fatalf("phase after answer = %q, want %q", got, PhaseAnswered)
	}
}

func TestRepeatAnswerChangesNothing(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())

	if result := s.SelectAnswer(LabelB); !result.Applied {
		t.Fatal("first answer should be applied")
	}

	repeat := s.SelectAnswer(LabelC)
	if repeat.Applied {
		t.Fatal("repeat answer must not be applied")
	}
	if !repeat.AlreadyAnswered {
		t.Fatal("repeat answer should report AlreadyAnswered")
	}
	if repeat.Selected != LabelB {
		t.Fatalf("recorded selection = %q, want %q", repeat.Selected, LabelB)
	}
	if repeat.Score != 1 {
		t.Fatalf("score after repeat = %d, want 1", repeat.Score)
	}
}

func TestAnswerIgnoredWhileLoading(t *testing.T) {
	s := NewQuizSession(1)
	s.StartRound(DifficultyEasy)

	result := s.SelectAnswer(LabelA)
	if result.Applied || result.AlreadyAnswered {
		t.Fatalf("answer during loading should be ignored, got %+v", result)
	}
	if got := s.Snapshot().Phase(); got != PhaseLoading {
		t.Fatalf("phase = %q, want %q", got, PhaseLoading)
	}
}

func TestInvalidLabelIgnored(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())

	result := s.SelectAnswer(Label("E"))
	if result.Applied || result.AlreadyAnswered {
		t.Fatalf("invalid label should be ignored, got %+v", result)
	}
	if got := s.Snapshot().Phase(); got != PhaseUnanswered {
		t.Fatalf("phase = %q, want %q", got, PhaseUnanswered)
	}
}

func TestStartRoundResetsScore(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())
	s.SelectAnswer(LabelB)

	seq, _ := s.StartRound(DifficultyHard)

	view := s.Snapshot()
	if view.Score != 0 {
		t.Fatalf("score after new round = %d, want 0", view.Score)
	}
	if view.Difficulty != DifficultyHard {
		t.Fatalf("difficulty = %q, want %q", view.Difficulty, DifficultyHard)
	}
	if view.Question != nil {
		t.Fatal("question should be cleared by a new round")
	}
	if seq == 0 {
		t.Fatal("expected a fresh fetch token")
	}
}

func TestFinishedRoundReturnedOnNewStart(t *testing.T) {
	s := NewQuizSession(42)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())
	s.SelectAnswer(LabelB)

	_, finished := s.StartRound(DifficultyMedium)
	if finished == nil {
		t.Fatal("expected the answered round to be returned")
	}
	if finished.ChatID != 42 {
		t.Fatalf("finished round chat = %d, want 42", finished.ChatID)
	}
	if finished.Difficulty != DifficultyEasy {
		t.Fatalf("finished round difficulty = %q, want %q", finished.Difficulty, DifficultyEasy)
	}
	if finished.Score != 1 || finished.QuestionsAnswered != 1 {
		t.Fatalf("finished round score/answered = %d/%d, want 1/1",
			finished.Score, finished.QuestionsAnswered)
	}
}

func TestUnansweredRoundIsNotRecorded(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())

	if _, finished := s.StartRound(DifficultyMedium); finished != nil {
		t.Fatalf("round without answers should not be recorded, got %+v", finished)
	}
	if finished := s.ClearDifficulty(); finished != nil {
		t.Fatalf("round without answers should not be recorded, got %+v", finished)
	}
}

func TestFetchErrorKeepsScoreAndDifficulty(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyMedium, newMathQuestion())
	s.SelectAnswer(LabelB)

	seq, _, ok := s.BeginFetch()
	if !ok {
		t.Fatal("next fetch should be allowed after an answer")
	}
	if !s.ApplyError(seq, "trivia service returned status 502") {
		t.Fatal("error should be applied for the latest fetch")
	}

	view := s.Snapshot()
	if got := view.Phase(); got != PhaseError {
		t.Fatalf("phase = %q, want %q", got, PhaseError)
	}
	if view.ErrorMessage != "trivia service returned status 502" {
		t.Fatalf("error message = %q", view.ErrorMessage)
	}
	if view.Question != nil {
		t.Fatal("question should be cleared on fetch failure")
	}
	if view.Score != 1 {
		t.Fatalf("score = %d, want 1 (must survive the failure)", view.Score)
	}
	if view.Difficulty != DifficultyMedium {
		t.Fatalf("difficulty = %q, want %q (must survive the failure)", view.Difficulty, DifficultyMedium)
	}
}

func TestRetryAllowedFromErrorState(t *testing.T) {
	s := NewQuizSession(1)
	seq, _ := s.StartRound(DifficultyEasy)
	s.ApplyError(seq, "boom")

	retrySeq, d, ok := s.BeginFetch()
	if !ok {
		t.Fatal("retry should be allowed from the error state")
	}
	if d != DifficultyEasy {
		t.Fatalf("retry difficulty = %q, want %q", d, DifficultyEasy)
	}
	if retrySeq <= seq {
		t.Fatalf("retry token %d should be newer than %d", retrySeq, seq)
	}

	if !s.ApplyQuestion(retrySeq, newMathQuestion()) {
		t.Fatal("retry result should be applied")
	}
	if got := s.Snapshot().Phase(); got != PhaseUnanswered {
		t.Fatalf("phase = %q, want %q", got, PhaseUnanswered)
	}
}

func TestNextRefusedBeforeAnswerAndWithoutDifficulty(t *testing.T) {
	s := NewQuizSession(1)

	if _, _, ok := s.BeginFetch(); ok {
		t.Fatal("next must be refused with no difficulty set")
	}

	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())
	if _, _, ok := s.BeginFetch(); ok {
		t.Fatal("next must be refused while the question is unanswered")
	}

	s.SelectAnswer(LabelA)
	if _, _, ok := s.BeginFetch(); !ok {
		t.Fatal("next should be allowed after the answer")
	}
}

func TestStaleFetchResultIsDropped(t *testing.T) {
	s := NewQuizSession(1)

	staleSeq, _ := s.StartRound(DifficultyEasy)
	freshSeq, _ := s.StartRound(DifficultyHard)

	stale := &Question{
		Prompt:       "stale",
		Options:      map[Label]string{LabelA: "1", LabelB: "2", LabelC: "3", LabelD: "4"},
		CorrectLabel: LabelA,
	}
	if s.ApplyQuestion(staleSeq, stale) {
		t.Fatal("result of a superseded fetch must be dropped")
	}
	if got := s.Snapshot().Phase(); got != PhaseLoading {
		t.Fatalf("phase = %q, want %q (still waiting for the fresh fetch)", got, PhaseLoading)
	}

	fresh := newMathQuestion()
	if !s.ApplyQuestion(freshSeq, fresh) {
		t.Fatal("result of the latest fetch should be applied")
	}

	view := s.Snapshot()
	if view.Question == nil || view.Question.Prompt != "2+2?" {
		t.Fatalf("applied question = %+v, want the fresh one", view.Question)
	}
}

func TestStaleFetchErrorIsDropped(t *testing.T) {
	s := NewQuizSession(1)

	staleSeq, _ := s.StartRound(DifficultyEasy)
	freshSeq, _ := s.StartRound(DifficultyEasy)

	if s.ApplyError(staleSeq, "late failure") {
		t.Fatal("error of a superseded fetch must be dropped")
	}
	if !s.ApplyQuestion(freshSeq, newMathQuestion()) {
		t.Fatal("result of the latest fetch should be applied")
	}
	if got := s.Snapshot().ErrorMessage; got != "" {
		t.Fatalf("error message = %q, want empty", got)
	}
}

func TestLateResultAfterDifficultyClearedIsDropped(t *testing.T) {
	s := NewQuizSession(1)

	seq, _ := s.StartRound(DifficultyEasy)
	s.ClearDifficulty()

	if s.ApplyQuestion(seq, newMathQuestion()) {
		t.Fatal("result arriving after the round ended must be dropped")
	}

	view := s.Snapshot()
	if got := view.Phase(); got != PhaseNoDifficulty {
		t.Fatalf("phase = %q, want %q", got, PhaseNoDifficulty)
	}
	if view.Question != nil {
		t.Fatal("no question should be set after the round ended")
	}
}

func TestClearDifficultyReturnsToSelector(t *testing.T) {
	s := NewQuizSession(7)
	startWithQuestion(t, s, DifficultyHard, newMathQuestion())
	s.SelectAnswer(LabelB)

	finished := s.ClearDifficulty()
	if finished == nil {
		t.Fatal("expected the answered round to be returned")
	}
	if finished.Difficulty != DifficultyHard {
		t.Fatalf("finished difficulty = %q, want %q", finished.Difficulty, DifficultyHard)
	}

	view := s.Snapshot()
	if got := view.Phase(); got != PhaseNoDifficulty {
		t.Fatalf("phase = %q, want %q", got, PhaseNoDifficulty)
	}
	if view.Difficulty != "" {
		t.Fatalf("difficulty = %q, want empty", view.Difficulty)
	}
}

func TestMuteIsOrthogonalToQuizState(t *testing.T) {
	s := NewQuizSession(1)
	startWithQuestion(t, s, DifficultyEasy, newMathQuestion())

	if muted := s.ToggleMute(); !muted {
		t.Fatal("first toggle should mute")
	}

	view := s.Snapshot()
	if got := view.Phase(); got != PhaseUnanswered {
		t.Fatalf("phase changed by mute toggle: %q", got)
	}
	if view.Question == nil || view.Score != 0 {
		t.Fatal("mute toggle must not touch question or score")
	}

	result := s.SelectAnswer(LabelB)
	if !result.Muted {
		t.Fatal("answer result should carry the mute flag")
	}
	if result.Score != 1 {
		t.Fatalf("score = %d, want 1 (scoring unaffected by mute)", result.Score)
	}

	if muted := s.ToggleMute(); muted {
		t.Fatal("second toggle should unmute")
	}
}

func TestSetMutedRehydratesFlag(t *testing.T) {
	s := NewQuizSession(1)
	s.SetMuted(true)

	if view := s.Snapshot(); !view.Muted {
		t.Fatal("expected session to be muted")
	}
}

func TestAccuracyOfFinishedRound(t *testing.T) {
	s := NewQuizSession(1)
	seq := startWithQuestion(t, s, DifficultyEasy, newMathQuestion())
	s.SelectAnswer(LabelB)

	for i := 0; i < 3; i++ {
		seq, _, _ = s.BeginFetch()
		s.ApplyQuestion(seq, newMathQuestion())
		s.SelectAnswer(LabelD)
	}

	finished := s.ClearDifficulty()
	if finished == nil {
		t.Fatal("expected a finished round")
	}
	if finished.Score != 1 || finished.QuestionsAnswered != 4 {
		t.Fatalf("score/answered = %d/%d, want 1/4", finished.Score, finished.QuestionsAnswered)
	}
	if got := finished.Accuracy(); got != 0.25 {
		t.Fatalf("accuracy = %v, want 0.25", got)
	}
}
