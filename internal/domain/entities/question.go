package entities

import "strings"

// Label identifies one of the four fixed answer choices.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels returns the four answer labels in display order.
func Labels() [4]Label {
	return [4]Label{LabelA, LabelB, LabelC, LabelD}
}

// ParseLabel normalizes user input ("b", " C ") into a Label.
func ParseLabel(s string) (Label, bool) {
	l := Label(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", false
	}
	return l, true
}

// Valid reports whether the label is one of A, B, C, D.
func (l Label) Valid() bool {
	switch l {
	case LabelA, LabelB, LabelC, LabelD:
		return true
	}
	return false
}

// Difficulty is the quiz difficulty level, selected once per round.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulty levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty normalizes user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// Valid reports whether the difficulty is a known level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a single trivia question with four answer options.
// All four option texts are present and non-empty, and CorrectLabel is one of
// the four labels; the trivia client rejects anything else before a Question
// is constructed.
type Question struct {
	Prompt       string
	Options      map[Label]string
	CorrectLabel Label
}

// OptionText returns the option text for a label, or "" if absent.
func (q *Question) OptionText(l Label) string {
	return q.Options[l]
}

// IsCorrect reports whether the given label is the correct answer.
func (q *Question) IsCorrect(l Label) bool {
	return l == q.CorrectLabel
}
