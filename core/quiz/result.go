package quiz

import (
	"context"
	"time"
)

// Result is a persisted quiz outcome.
type Result struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	SessionID      string    `json:"session_id,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"` // UTC
}

// ResultProfile is the part of the user profile joined into admin result listings.
type ResultProfile struct {
	Phone string `json:"phone"`
}

// ResultWithProfile is the admin read projection of a Result.
type ResultWithProfile struct {
	Result
	Profile ResultProfile `json:"profiles"`
}

type ResultRepository interface {
	CreateResult(ctx context.Context, res Result) (Result, error)
	// QueryUserResults lists a user's results, newest first.
	QueryUserResults(ctx context.Context, userID string) ([]Result, error)
	// QueryResults lists all results joined with the owner's phone, newest first.
	QueryResults(ctx context.Context) ([]ResultWithProfile, error)
}

// ResultSink accepts completed results for persistence without making the caller wait for storage.
type ResultSink interface {
	SaveResult(ctx context.Context, res Result) error
}
