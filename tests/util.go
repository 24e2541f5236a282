package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/user"
	"github.com/trezcool/stockwise/storage/database"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	phone, email, pwd string,
	isAdmin bool,
	createdAt ...time.Time,
) user.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Phone:     phone,
		Email:     email,
		IsAdmin:   isAdmin,
		IsActive:  true,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

// PrepareDB opens a migrated in-memory sqlite database closed at the end of the test.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(core.NewTestConfig())
	if err != nil {
		t.Fatalf("database.Open() failed: %v", err)
	}
	if err = database.Migrate(db); err != nil {
		t.Fatalf("database.Migrate() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
