package entities

import "testing"

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Label
		ok    bool
	}{
		{name: "uppercase", input: "A", want: LabelA, ok: true},
		{name: "lowercase", input: "b", want: LabelB, ok: true},
		{name: "padded", input: " C ", want: LabelC, ok: true},
		{name: "last label", input: "d", want: LabelD, ok: true},
		{name: "out of range", input: "E", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "multiple chars", input: "AB", ok: false},
		{name: "word", input: "maybe", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseLabel(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseLabel(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseLabel(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Difficulty
		ok    bool
	}{
		{name: "easy", input: "easy", want: DifficultyEasy, ok: true},
		{name: "uppercase", input: "MEDIUM", want: DifficultyMedium, ok: true},
		{name: "padded", input: " hard ", want: DifficultyHard, ok: true},
		{name: "unknown", input: "extreme", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDifficulty(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseDifficulty(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseDifficulty(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestQuestionHelpers(t *testing.T) {
	q := newMathQuestion()

	if got := q.OptionText(LabelB); got != "4" {
		t.Fatalf("OptionText(B) = %q, want %q", got, "4")
	}
	if got := q.OptionText(Label("Z")); got != "" {
		t.Fatalf("OptionText(Z) = %q, want empty", got)
	}
	if !q.IsCorrect(LabelB) {
		t.Fatal("B should be correct")
	}
	if q.IsCorrect(LabelA) {
		t.Fatal("A should not be correct")
	}
}
