package quiz

import (
	"sort"

	"github.com/pkg/errors"
)

// Kind governs the input widget and how an answer set is recorded.
type Kind string

const (
	KindSingle   Kind = "single"
	KindMultiple Kind = "multiple"
)

func (k Kind) Valid() bool { return k == KindSingle || k == KindMultiple }

type Question struct {
	ID             int      `json:"id" yaml:"id"`
	Text           string   `json:"question" yaml:"question"`
	Options        []string `json:"options" yaml:"options"`
	CorrectAnswers []int    `json:"correct_answers" yaml:"correct_answers"`
	Kind           Kind     `json:"type" yaml:"type"`
}

// IsCorrect reports whether selection is set-equal to the question's correct answers.
func (q Question) IsCorrect(selection []int) bool {
	if len(selection) != len(q.CorrectAnswers) {
		return false
	}
	want := make(map[int]bool, len(q.CorrectAnswers))
	for _, idx := range q.CorrectAnswers {
		want[idx] = true
	}
	seen := make(map[int]bool, len(selection))
	for _, idx := range selection {
		if !want[idx] || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func (q Question) hasOption(idx int) bool {
	return idx >= 0 && idx < len(q.Options)
}

// Validate checks the question against the bank invariants.
func (q Question) Validate() error {
	if q.ID <= 0 {
		return errors.Errorf("question %d: id must be positive", q.ID)
	}
	if !q.Kind.Valid() {
		return errors.Errorf("question %d: unknown type %q", q.ID, q.Kind)
	}
	if len(q.Options) < 2 {
		return errors.Errorf("question %d: at least 2 options required", q.ID)
	}
	if len(q.CorrectAnswers) == 0 {
		return errors.Errorf("question %d: no correct answer", q.ID)
	}
	if q.Kind == KindSingle && len(q.CorrectAnswers) != 1 {
		return errors.Errorf("question %d: single choice must have exactly 1 correct answer", q.ID)
	}
	seen := make(map[int]bool, len(q.CorrectAnswers))
	for _, idx := range q.CorrectAnswers {
		if !q.hasOption(idx) {
			return errors.Errorf("question %d: correct answer %d out of range", q.ID, idx)
		}
		if seen[idx] {
			return errors.Errorf("question %d: duplicate correct answer %d", q.ID, idx)
		}
		seen[idx] = true
	}
	return nil
}

// Bank is an immutable question bank. Do not mutate after construction.
type Bank []Question

// NewBank validates the questions and returns a defensive copy.
func NewBank(questions []Question) (Bank, error) {
	if len(questions) == 0 {
		return nil, errors.New("empty question bank")
	}
	bank := make(Bank, 0, len(questions))
	ids := make(map[int]bool, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if ids[q.ID] {
			return nil, errors.Errorf("question %d: duplicate id", q.ID)
		}
		ids[q.ID] = true
		bank = append(bank, copyQuestion(q))
	}
	return bank, nil
}

// Get returns the question with the given id.
func (b Bank) Get(id int) (Question, bool) {
	for _, q := range b {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func copyQuestion(q Question) Question {
	cp := q
	cp.Options = append([]string(nil), q.Options...)
	cp.CorrectAnswers = append([]int(nil), q.CorrectAnswers...)
	sort.Ints(cp.CorrectAnswers)
	return cp
}
