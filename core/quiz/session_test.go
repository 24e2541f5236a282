package quiz

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testBank = mustBank([]Question{
	{ID: 1, Text: "single", Options: []string{"a", "b", "c", "d"}, CorrectAnswers: []int{1}, Kind: KindSingle},
	{ID: 2, Text: "multi", Options: []string{"a", "b", "c", "d"}, CorrectAnswers: []int{3, 0, 1}, Kind: KindMultiple},
	{ID: 3, Text: "single 2", Options: []string{"a", "b"}, CorrectAnswers: []int{0}, Kind: KindSingle},
})

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := Draw(testBank, len(testBank), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	return s
}

func TestDraw(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for _, n := range []int{0, -1, len(DefaultBank) + 1} {
		_, err := Draw(DefaultBank, n, rnd)
		assert.Equal(t, ErrInvalidCount, err, "n=%d", n)
	}

	for i := 0; i < 50; i++ {
		s, err := Draw(DefaultBank, 10, rnd)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 10, s.Total())
		ids := make(map[int]bool)
		for _, q := range s.Questions() {
			assert.False(t, ids[q.ID], "duplicate question %d", q.ID)
			ids[q.ID] = true
			_, ok := DefaultBank.Get(q.ID)
			assert.True(t, ok)
		}
	}

	// the bank is left untouched
	assert.Equal(t, 1, DefaultBank[0].ID)
}

func TestDraw_coversWholeBank(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		s, _ := Draw(DefaultBank, 1, rnd)
		seen[s.Questions()[0].ID] = true
	}
	assert.Len(t, seen, len(DefaultBank))
}

func TestSession_RecordAnswer(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		name    string
		qid     int
		option  int
		wantErr error
		want    []int
	}{
		{name: "unknown question", qid: 99, option: 0, wantErr: ErrUnknownQuestion},
		{name: "negative option", qid: 1, option: -1, wantErr: ErrInvalidOption},
		{name: "option out of range", qid: 3, option: 2, wantErr: ErrInvalidOption},
		{name: "single", qid: 1, option: 0, want: []int{0}},
		{name: "single replaces", qid: 1, option: 2, want: []int{2}},
		{name: "multi add", qid: 2, option: 3, want: []int{3}},
		{name: "multi add more", qid: 2, option: 0, want: []int{0, 3}},
		{name: "multi add sorted", qid: 2, option: 1, want: []int{0, 1, 3}},
		{name: "multi toggle off", qid: 2, option: 0, want: []int{1, 3}},
		{name: "multi toggle on", qid: 2, option: 0, want: []int{0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.RecordAnswer(tt.qid, tt.option)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, s.Answer(tt.qid))
			}
		})
	}
}

func TestSession_SetAnswer(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, ErrUnknownQuestion, s.SetAnswer(42, []int{0}))
	assert.Equal(t, ErrInvalidOption, s.SetAnswer(2, []int{0, 4}))
	assert.Equal(t, ErrInvalidOption, s.SetAnswer(1, []int{0, 1}))

	assert.NoError(t, s.SetAnswer(2, []int{3, 1, 3, 0}))
	assert.Equal(t, []int{0, 1, 3}, s.Answer(2))

	assert.NoError(t, s.SetAnswer(2, nil))
	assert.Empty(t, s.Answer(2))
}

func TestSession_Advance(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Advance(2)
	assert.Equal(t, ErrInvalidDelta, err)
	_, err = s.Advance(0)
	assert.Equal(t, ErrInvalidDelta, err)

	steps := []struct {
		delta int
		want  int
	}{{-1, 0}, {1, 1}, {1, 2}, {1, 2}, {-1, 1}, {-1, 0}, {-1, 0}}
	for _, step := range steps {
		idx, err := s.Advance(step.delta)
		assert.NoError(t, err)
		assert.Equal(t, step.want, idx)
	}

	assert.Equal(t, ErrInvalidIndex, s.JumpTo(3))
	assert.Equal(t, ErrInvalidIndex, s.JumpTo(-1))
	assert.NoError(t, s.JumpTo(2))
	assert.Equal(t, 2, s.View().CurrentIndex)
}

func answerAll(t *testing.T, s *Session, correct bool) {
	t.Helper()
	for _, q := range s.Questions() {
		ans := q.CorrectAnswers
		if !correct {
			ans = []int{(q.CorrectAnswers[0] + 1) % len(q.Options)}
		}
		if err := s.SetAnswer(q.ID, ans); err != nil {
			t.Fatalf("SetAnswer() failed: %v", err)
		}
	}
}

func TestSession_Submit(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Review()
	assert.Equal(t, ErrNotCompleted, err)

	_ = s.RecordAnswer(1, 1)
	_, err = s.Submit()
	assert.Equal(t, ErrIncomplete, err)
	assert.False(t, s.Completed())

	answerAll(t, s, true)
	_ = s.SetAnswer(3, []int{1}) // wrong

	score, err := s.Submit()
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 2, score)
	assert.True(t, s.Completed())
	assert.False(t, s.CompletedAt().IsZero())

	// completed sessions are frozen
	again, err := s.Submit()
	assert.Equal(t, ErrCompleted, err)
	assert.Equal(t, 2, again)
	assert.Equal(t, ErrCompleted, s.RecordAnswer(1, 0))
	assert.Equal(t, ErrCompleted, s.SetAnswer(1, []int{0}))
	assert.Equal(t, ErrCompleted, s.JumpTo(0))
	_, err = s.Advance(1)
	assert.Equal(t, ErrCompleted, err)

	view := s.View()
	assert.Equal(t, StatusCompleted, view.Status)
	if assert.NotNil(t, view.Evaluation) {
		assert.Equal(t, 2, view.Evaluation.Score)
		assert.Equal(t, 3, view.Evaluation.Total)
	}

	review, err := s.Review()
	if assert.NoError(t, err) && assert.Len(t, review, 3) {
		for _, item := range review {
			assert.Equal(t, item.QuestionID != 3, item.Correct, "question %d", item.QuestionID)
		}
	}
}

func TestSession_multipleChoiceScoring(t *testing.T) {
	q, _ := testBank.Get(2)

	tests := []struct {
		selection []int
		want      bool
	}{
		{[]int{0, 1, 3}, true},
		{[]int{3, 1, 0}, true},
		{[]int{0, 1}, false},
		{[]int{0, 1, 2, 3}, false},
		{[]int{0, 0, 1}, false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, q.IsCorrect(tt.selection), "%v", tt.selection)
	}
}

func TestSession_View_hidesCorrectAnswers(t *testing.T) {
	s := newTestSession(t)
	_ = s.RecordAnswer(2, 1)

	view := s.View()
	assert.Equal(t, StatusInProgress, view.Status)
	assert.Equal(t, 1, view.Answered)
	assert.Nil(t, view.Evaluation)
	assert.Nil(t, view.CompletedAt)
}

func TestSessionStore(t *testing.T) {
	now := time.Now()
	NowFunc = func() time.Time { return now }
	defer func() { NowFunc = time.Now }()

	st := NewSessionStore(time.Hour)
	anon := newTestSession(t)
	owned := newTestSession(t)
	owned.OwnerID = "u1"
	st.Put(anon)
	st.Put(owned)

	got, err := st.Get("", anon.ID)
	assert.NoError(t, err)
	assert.Same(t, anon, got)

	// owner isolation
	_, err = st.Get("u2", owned.ID)
	assert.Equal(t, ErrSessionNotFound, err)
	_, err = st.Get("", owned.ID)
	assert.Equal(t, ErrSessionNotFound, err)
	_, err = st.Get("u1", owned.ID)
	assert.NoError(t, err)

	// a new session replaces the owner's previous one
	replacement := newTestSession(t)
	replacement.OwnerID = "u1"
	st.Put(replacement)
	_, err = st.Get("u1", owned.ID)
	assert.Equal(t, ErrSessionNotFound, err)
	assert.Equal(t, 2, st.Len())

	// idle sessions expire
	NowFunc = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = st.Get("", anon.ID)
	assert.Equal(t, ErrSessionNotFound, err)
	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 0, st.Len())
}
