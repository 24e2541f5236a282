package quiz

import "time"

var NowFunc = time.Now // mockable

// Tier is a feedback band keyed by score percentage, from Tier1 (lowest) to Tier5 (perfect).
type Tier int

const (
	Tier1 Tier = iota + 1 // [0%, 40%)
	Tier2                 // [40%, 60%)
	Tier3                 // [60%, 80%), pass
	Tier4                 // [80%, 100%)
	Tier5                 // 100%
)

var tierMessages = map[Tier]string{
	Tier5: "太棒了！满分！你对股票知识掌握得非常全面，是一位优秀的投资者！",
	Tier4: "非常优秀！你的股票知识储备很丰富，继续保持学习的热情！",
	Tier3: "恭喜及格！你已经具备了基本的股票知识，建议继续学习提升自己。",
	Tier2: "还需努力！建议多阅读股票小百科，加强基础知识的学习。",
	Tier1: "加油！股票投资需要扎实的知识基础，建议从基础开始系统学习。",
}

func (t Tier) Message() string { return tierMessages[t] }

type Evaluation struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Tier       Tier    `json:"tier"`
	Message    string  `json:"message"`
}

// Evaluate maps score/total to a tier. Thresholds are checked in descending order,
// each inclusive on its lower bound. Integer cross-multiplication avoids float rounding at the edges.
func Evaluate(score, total int) Evaluation {
	ev := Evaluation{Score: score, Total: total}
	if total <= 0 {
		ev.Tier = Tier1
		ev.Message = ev.Tier.Message()
		return ev
	}
	ev.Percentage = float64(score) * 100 / float64(total)

	switch {
	case score >= total:
		ev.Tier = Tier5
	case score*10 >= total*8:
		ev.Tier = Tier4
	case score*10 >= total*6:
		ev.Tier = Tier3
	case score*10 >= total*4:
		ev.Tier = Tier2
	default:
		ev.Tier = Tier1
	}
	ev.Message = ev.Tier.Message()
	return ev
}

// Passed reports whether score reaches the pass mark.
func Passed(score, passScore int) bool { return score >= passScore }

type ReviewItem struct {
	QuestionID     int      `json:"question_id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Kind           Kind     `json:"type"`
	CorrectAnswers []int    `json:"correct_answers"`
	UserAnswers    []int    `json:"user_answers"`
	Correct        bool     `json:"correct"`
}

// Review is the per-question breakdown of a completed session.
func (s *Session) Review() ([]ReviewItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.completed {
		return nil, ErrNotCompleted
	}
	items := make([]ReviewItem, 0, len(s.questions))
	for _, q := range s.questions {
		ans := append([]int{}, s.answers[q.ID]...)
		items = append(items, ReviewItem{
			QuestionID:     q.ID,
			Question:       q.Text,
			Options:        append([]string(nil), q.Options...),
			Kind:           q.Kind,
			CorrectAnswers: append([]int(nil), q.CorrectAnswers...),
			UserAnswers:    ans,
			Correct:        q.IsCorrect(ans),
		})
	}
	return items, nil
}

// QuestionView is a question as shown while the attempt is in progress: no correct answers.
type QuestionView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Kind     Kind     `json:"type"`
	Answer   []int    `json:"answer"`
}

type SessionView struct {
	ID           string         `json:"id"`
	Status       Status         `json:"status"`
	CurrentIndex int            `json:"current_index"`
	Total        int            `json:"total"`
	Answered     int            `json:"answered"`
	Questions    []QuestionView `json:"questions"`
	StartedAt    time.Time      `json:"started_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Evaluation   *Evaluation    `json:"evaluation,omitempty"`
}

// View snapshots the session state.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SessionView{
		ID:           s.ID,
		Status:       StatusInProgress,
		CurrentIndex: s.current,
		Total:        len(s.questions),
		Questions:    make([]QuestionView, 0, len(s.questions)),
		StartedAt:    s.startedAt,
	}
	for _, q := range s.questions {
		ans := append([]int{}, s.answers[q.ID]...)
		if len(ans) > 0 {
			v.Answered++
		}
		v.Questions = append(v.Questions, QuestionView{
			ID:       q.ID,
			Question: q.Text,
			Options:  append([]string(nil), q.Options...),
			Kind:     q.Kind,
			Answer:   ans,
		})
	}
	if s.completed {
		completedAt := s.completedAt
		ev := Evaluate(s.score, len(s.questions))
		v.Status = StatusCompleted
		v.CompletedAt = &completedAt
		v.Evaluation = &ev
	}
	return v
}
