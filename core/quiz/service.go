package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core"
)

type (
	Options struct {
		Bank          Bank
		QuestionCount int
		PassScore     int
		SessionTTL    time.Duration
		Repo          ResultRepository
		Sink          ResultSink // defaults to persisting through Repo
		Logger        core.Logger
		Rand          *rand.Rand // defaults to a time-seeded source
	}

	// Outcome is what a submit returns: the score stands whatever happens to persistence.
	Outcome struct {
		SessionID string `json:"session_id"`
		Evaluation
		Passed    bool   `json:"passed"`
		Saved     bool   `json:"saved"`
		SaveError string `json:"save_error,omitempty"`
	}

	Service interface {
		Start(ownerID string) (*Session, error)
		Session(ownerID, id string) (*Session, error)
		Submit(ctx context.Context, ownerID, id string) (Outcome, error)
		SaveResult(ctx context.Context, res Result) (Result, error)
		UserResults(ctx context.Context, userID string) ([]Result, error)
		AllResults(ctx context.Context) ([]ResultWithProfile, error)
		PassScore() int
		SweepSessions() int
	}

	service struct {
		opts  Options
		store *SessionStore

		rndMu sync.Mutex
		rnd   *rand.Rand
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(opts Options) Service {
	if opts.Bank == nil {
		opts.Bank = DefaultBank
	}
	if opts.QuestionCount <= 0 || opts.QuestionCount > len(opts.Bank) {
		opts.QuestionCount = len(opts.Bank)
		if opts.QuestionCount > 10 {
			opts.QuestionCount = 10
		}
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	svc := &service{
		opts:  opts,
		store: NewSessionStore(opts.SessionTTL),
		rnd:   rnd,
	}
	if svc.opts.Sink == nil {
		svc.opts.Sink = SinkFunc(func(ctx context.Context, res Result) error {
			_, err := svc.SaveResult(ctx, res)
			return err
		})
	}
	return svc
}

func (svc *service) Start(ownerID string) (*Session, error) {
	svc.rndMu.Lock()
	s, err := Draw(svc.opts.Bank, svc.opts.QuestionCount, svc.rnd)
	svc.rndMu.Unlock()
	if err != nil {
		return nil, errors.Wrap(err, "drawing session")
	}
	s.OwnerID = ownerID
	svc.store.Put(s)
	return s, nil
}

func (svc *service) Session(ownerID, id string) (*Session, error) {
	return svc.store.Get(ownerID, id)
}

func (svc *service) Submit(ctx context.Context, ownerID, id string) (Outcome, error) {
	s, err := svc.store.Get(ownerID, id)
	if err != nil {
		return Outcome{}, err
	}
	score, err := s.Submit()
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		SessionID:  s.ID,
		Evaluation: Evaluate(score, s.Total()),
		Passed:     Passed(score, svc.opts.PassScore),
	}
	if ownerID == "" {
		return out, nil // anonymous attempts are not persisted
	}

	res := Result{
		UserID:         ownerID,
		SessionID:      s.ID,
		Score:          score,
		TotalQuestions: s.Total(),
		CompletedAt:    s.CompletedAt(),
	}
	if err = svc.opts.Sink.SaveResult(ctx, res); err != nil {
		out.SaveError = "failed to save quiz result"
		if svc.opts.Logger != nil {
			svc.opts.Logger.Error(fmt.Sprintf("saving quiz result: %v", err), errors.Wrap(err, "saving quiz result"))
		}
		return out, nil
	}
	out.Saved = true
	return out, nil
}

func (svc *service) SaveResult(ctx context.Context, res Result) (Result, error) {
	if svc.opts.Repo == nil {
		return Result{}, errors.New("saving quiz result: no result repository configured")
	}
	if res.UserID == "" {
		return Result{}, errors.New("saving quiz result: missing user id")
	}
	if res.TotalQuestions <= 0 || res.Score < 0 || res.Score > res.TotalQuestions {
		return Result{}, errors.Errorf("saving quiz result: invalid score %d/%d", res.Score, res.TotalQuestions)
	}
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if res.CompletedAt.IsZero() {
		res.CompletedAt = NowFunc().UTC()
	}
	return svc.opts.Repo.CreateResult(ctx, res)
}

func (svc *service) UserResults(ctx context.Context, userID string) ([]Result, error) {
	return svc.opts.Repo.QueryUserResults(ctx, userID)
}

func (svc *service) AllResults(ctx context.Context) ([]ResultWithProfile, error) {
	return svc.opts.Repo.QueryResults(ctx)
}

func (svc *service) PassScore() int { return svc.opts.PassScore }

func (svc *service) SweepSessions() int { return svc.store.Sweep() }

// SinkFunc adapts a function to the ResultSink interface.
type SinkFunc func(ctx context.Context, res Result) error

func (f SinkFunc) SaveResult(ctx context.Context, res Result) error { return f(ctx, res) }
