package boiledrepos_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/storage/database"
	"github.com/trezcool/stockwise/storage/database/sqlboiler"
	"github.com/trezcool/stockwise/storage/database/sqlx"
	"github.com/trezcool/stockwise/tests"
)

func TestResultRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(core.NewTestConfig())
	if err != nil {
		t.Fatalf("database.Open() failed: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err = database.Migrate(db); err != nil {
		t.Fatalf("database.Migrate() failed: %v", err)
	}

	users := sqlxrepos.NewUserRepository(db)
	repo := boiledrepos.NewResultRepository(db, sqlx.BindType(db.DriverName()))

	alice := testutil.CreateUser(t, users, "13800138000", "", "s3cr3t!", false)
	bob := testutil.CreateUser(t, users, "13900139000", "", "s3cr3t!", false)

	now := time.Now().UTC().Truncate(time.Second)
	for _, res := range []quiz.Result{
		{ID: "r1", UserID: alice.ID, SessionID: "s1", Score: 6, TotalQuestions: 10, CompletedAt: now.Add(-2 * time.Hour)},
		{ID: "r2", UserID: bob.ID, Score: 10, TotalQuestions: 10, CompletedAt: now.Add(-time.Hour)},
		{ID: "r3", UserID: alice.ID, SessionID: "s3", Score: 3, TotalQuestions: 10, CompletedAt: now},
	} {
		_, err = repo.CreateResult(ctx, res)
		assert.NoError(t, err)
	}

	t.Run("own results newest first", func(t *testing.T) {
		results, err := repo.QueryUserResults(ctx, alice.ID)
		assert.NoError(t, err)
		if assert.Len(t, results, 2) {
			assert.Equal(t, "r3", results[0].ID)
			assert.Equal(t, "r1", results[1].ID)
			assert.Equal(t, "s1", results[1].SessionID)
			assert.Equal(t, 6, results[1].Score)
		}

		results, err = repo.QueryUserResults(ctx, "nobody")
		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("all results with phone", func(t *testing.T) {
		results, err := repo.QueryResults(ctx)
		assert.NoError(t, err)
		if assert.Len(t, results, 3) {
			assert.Equal(t, []string{"r3", "r2", "r1"}, []string{results[0].ID, results[1].ID, results[2].ID})
			assert.Equal(t, "13900139000", results[1].Profile.Phone)
			assert.Equal(t, "", results[1].SessionID)
		}
	})

	t.Run("cascade on user delete", func(t *testing.T) {
		_, err := users.DeleteUsersByID(ctx, bob.ID)
		assert.NoError(t, err)
		results, err := repo.QueryResults(ctx)
		assert.NoError(t, err)
		assert.Len(t, results, 2)
	})
}
