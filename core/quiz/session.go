package quiz

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// errors
	ErrInvalidCount    = errors.New("question count must be between 1 and the bank size")
	ErrUnknownQuestion = errors.New("question is not part of this session")
	ErrInvalidOption   = errors.New("option index out of range")
	ErrInvalidIndex    = errors.New("question index out of range")
	ErrInvalidDelta    = errors.New("delta must be -1 or +1")
	ErrIncomplete      = errors.New("every question must be answered before submitting")
	ErrCompleted       = errors.New("quiz session already completed")
	ErrNotCompleted    = errors.New("quiz session not completed yet")
	ErrSessionNotFound = errors.New("quiz session not found")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Session is one quiz attempt. It is safe for concurrent use; events apply in arrival order.
type Session struct {
	ID      string
	OwnerID string // empty for anonymous attempts

	mu          sync.Mutex
	questions   []Question
	answers     map[int][]int // question id -> sorted selected option indices
	current     int
	completed   bool
	score       int
	startedAt   time.Time
	completedAt time.Time
	lastActive  time.Time
}

// Draw shuffles a copy of the bank (Fisher-Yates) and starts a session with its first n questions.
func Draw(bank Bank, n int, rnd *rand.Rand) (*Session, error) {
	if n <= 0 || n > len(bank) {
		return nil, ErrInvalidCount
	}

	shuffled := make([]Question, len(bank))
	copy(shuffled, bank)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	now := NowFunc().UTC()
	return &Session{
		ID:         uuid.New().String(),
		questions:  shuffled[:n:n],
		answers:    make(map[int][]int, n),
		startedAt:  now,
		lastActive: now,
	}, nil
}

func (s *Session) touch() { s.lastActive = NowFunc().UTC() }

func (s *Session) question(id int) (Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// RecordAnswer applies one selection event: a single choice replaces the answer set,
// a multiple choice toggles the option in or out of it.
func (s *Session) RecordAnswer(questionID, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrCompleted
	}
	q, ok := s.question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if !q.hasOption(option) {
		return ErrInvalidOption
	}

	switch q.Kind {
	case KindSingle:
		s.answers[questionID] = []int{option}
	case KindMultiple:
		s.answers[questionID] = toggle(s.answers[questionID], option)
	}
	s.touch()
	return nil
}

// SetAnswer replaces the whole answer set of a question.
func (s *Session) SetAnswer(questionID int, options []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrCompleted
	}
	q, ok := s.question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}

	selection := make([]int, 0, len(options))
	seen := make(map[int]bool, len(options))
	for _, opt := range options {
		if !q.hasOption(opt) {
			return ErrInvalidOption
		}
		if !seen[opt] {
			seen[opt] = true
			selection = append(selection, opt)
		}
	}
	if q.Kind == KindSingle && len(selection) > 1 {
		return ErrInvalidOption
	}
	sort.Ints(selection)
	s.answers[questionID] = selection
	s.touch()
	return nil
}

// Advance moves the current index by delta, clamped to the session bounds.
func (s *Session) Advance(delta int) (int, error) {
	if delta != -1 && delta != 1 {
		return 0, ErrInvalidDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return s.current, ErrCompleted
	}
	next := s.current + delta
	if next < 0 {
		next = 0
	}
	if next > len(s.questions)-1 {
		next = len(s.questions) - 1
	}
	s.current = next
	s.touch()
	return s.current, nil
}

// JumpTo sets the current index directly, for the question navigator.
func (s *Session) JumpTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrCompleted
	}
	if index < 0 || index >= len(s.questions) {
		return ErrInvalidIndex
	}
	s.current = index
	s.touch()
	return nil
}

// Submit scores the session and marks it completed. The score is immutable afterwards.
func (s *Session) Submit() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return s.score, ErrCompleted
	}
	for _, q := range s.questions {
		if len(s.answers[q.ID]) == 0 {
			return 0, ErrIncomplete
		}
	}

	s.score = Score(s.questions, s.answers)
	s.completed = true
	s.completedAt = NowFunc().UTC()
	s.touch()
	return s.score, nil
}

// Score counts the questions whose answer set equals the correct set.
func Score(questions []Question, answers map[int][]int) int {
	var score int
	for _, q := range questions {
		if q.IsCorrect(answers[q.ID]) {
			score++
		}
	}
	return score
}

func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func (s *Session) CompletedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedAt
}

func (s *Session) Total() int { return len(s.questions) }

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Questions returns a copy of the drawn questions in session order.
func (s *Session) Questions() []Question {
	qs := make([]Question, 0, len(s.questions))
	for _, q := range s.questions {
		qs = append(qs, copyQuestion(q))
	}
	return qs
}

// Answer returns a copy of the answer set of a question.
func (s *Session) Answer(questionID int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.answers[questionID]...)
}

func toggle(selection []int, option int) []int {
	out := make([]int, 0, len(selection)+1)
	var found bool
	for _, idx := range selection {
		if idx == option {
			found = true
			continue
		}
		out = append(out, idx)
	}
	if !found {
		out = append(out, option)
		sort.Ints(out)
	}
	return out
}
