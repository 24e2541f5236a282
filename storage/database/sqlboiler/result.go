package boiledrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/quiz"
)

type resultRow struct {
	ID             string      `boil:"id"`
	UserID         string      `boil:"user_id"`
	SessionID      null.String `boil:"session_id"`
	Score          int         `boil:"score"`
	TotalQuestions int         `boil:"total_questions"`
	CompletedAt    time.Time   `boil:"completed_at"`
	Phone          null.String `boil:"phone"`
}

func (row resultRow) result() quiz.Result {
	return quiz.Result{
		ID:             row.ID,
		UserID:         row.UserID,
		SessionID:      row.SessionID.String,
		Score:          row.Score,
		TotalQuestions: row.TotalQuestions,
		CompletedAt:    row.CompletedAt.UTC(),
	}
}

type resultRepository struct {
	exec     core.DBExecutor
	bindType int
}

var _ quiz.ResultRepository = (*resultRepository)(nil) // interface compliance check

// NewResultRepository binds raw queries for the given sqlx bind type (see sqlx.BindType).
func NewResultRepository(exec core.DBExecutor, bindType int) quiz.ResultRepository {
	return &resultRepository{exec: exec, bindType: bindType}
}

func (repo resultRepository) raw(query string, args ...interface{}) *queries.Query {
	return queries.Raw(sqlx.Rebind(repo.bindType, query), args...)
}

func (repo resultRepository) CreateResult(ctx context.Context, res quiz.Result) (quiz.Result, error) {
	res.CompletedAt = res.CompletedAt.UTC()
	_, err := repo.raw(
		"INSERT INTO quiz_results (id, user_id, session_id, score, total_questions, completed_at) VALUES (?, ?, ?, ?, ?, ?)",
		res.ID, res.UserID, null.NewString(res.SessionID, res.SessionID != ""), res.Score, res.TotalQuestions, res.CompletedAt,
	).ExecContext(ctx, repo.exec)
	if err != nil {
		return quiz.Result{}, errors.Wrap(err, "inserting quiz result")
	}
	return res, nil
}

func (repo resultRepository) QueryUserResults(ctx context.Context, userID string) ([]quiz.Result, error) {
	var rows []*resultRow
	err := repo.raw(
		"SELECT id, user_id, session_id, score, total_questions, completed_at FROM quiz_results "+
			"WHERE user_id = ? ORDER BY completed_at DESC", userID,
	).Bind(ctx, repo.exec, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "selecting user quiz results")
	}

	results := make([]quiz.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, row.result())
	}
	return results, nil
}

func (repo resultRepository) QueryResults(ctx context.Context) ([]quiz.ResultWithProfile, error) {
	var rows []*resultRow
	err := repo.raw(
		"SELECT r.id, r.user_id, r.session_id, r.score, r.total_questions, r.completed_at, u.phone " +
			"FROM quiz_results r LEFT JOIN users u ON u.id = r.user_id ORDER BY r.completed_at DESC",
	).Bind(ctx, repo.exec, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "selecting quiz results")
	}

	results := make([]quiz.ResultWithProfile, 0, len(rows))
	for _, row := range rows {
		results = append(results, quiz.ResultWithProfile{
			Result:  row.result(),
			Profile: quiz.ResultProfile{Phone: row.Phone.String},
		})
	}
	return results, nil
}
