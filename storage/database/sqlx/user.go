package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/user"
	"github.com/trezcool/stockwise/storage/database"
)

const userColumns = "id, phone, email, is_admin, is_active, password_hash, created_at, updated_at, last_login"

// columns accepted in an ORDER BY
var userOrderable = map[string]bool{
	"id": true, "phone": true, "email": true, "is_admin": true, "is_active": true,
	"created_at": true, "updated_at": true, "last_login": true,
}

type userRow struct {
	ID           string      `db:"id"`
	Phone        string      `db:"phone"`
	Email        null.String `db:"email"`
	IsAdmin      bool        `db:"is_admin"`
	IsActive     bool        `db:"is_active"`
	PasswordHash []byte      `db:"password_hash"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
	LastLogin    null.Time   `db:"last_login"`
}

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo userRepository) toRow(usr user.User) userRow {
	return userRow{
		ID:           usr.ID,
		Phone:        usr.Phone,
		Email:        null.NewString(usr.Email, usr.Email != ""),
		IsAdmin:      usr.IsAdmin,
		IsActive:     usr.IsActive,
		PasswordHash: usr.PasswordHash,
		CreatedAt:    usr.CreatedAt.UTC(),
		UpdatedAt:    usr.UpdatedAt.UTC(),
		LastLogin:    null.NewTime(usr.LastLogin.UTC(), !usr.LastLogin.IsZero()),
	}
}

func (repo userRepository) fromRow(row userRow) user.User {
	usr := user.User{
		ID:           row.ID,
		Phone:        row.Phone,
		Email:        row.Email.String,
		IsAdmin:      row.IsAdmin,
		IsActive:     row.IsActive,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
	if row.LastLogin.Valid {
		usr.LastLogin = row.LastLogin.Time.UTC()
	}
	return usr
}

// trapNoRowsErr maps "no rows" to user.ErrNotFound
func (repo userRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return user.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo userRepository) CheckPhoneUniqueness(ctx context.Context, phone string, excludedIDs ...string) error {
	q, args := "SELECT COUNT(*) FROM users WHERE phone = ?", []interface{}{phone}
	if len(excludedIDs) > 0 {
		var err error
		q, args, err = sqlx.In(q+" AND id NOT IN (?)", phone, excludedIDs)
		if err != nil {
			return errors.Wrap(err, "building uniqueness query")
		}
	}

	var count int
	if err := repo.db.GetContext(ctx, &count, repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "checking phone uniqueness")
	}
	if count > 0 {
		return user.ErrPhoneExists
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = uuid.New().String()
	q := "INSERT INTO users (" + userColumns + ") VALUES " +
		"(:id, :phone, :email, :is_admin, :is_active, :password_hash, :created_at, :updated_at, :last_login)"
	if _, err := repo.db.NamedExecContext(ctx, q, repo.toRow(usr)); err != nil {
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrPhoneExists
		}
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return repo.GetUserByID(ctx, usr.ID)
}

func (repo userRepository) QueryUsers(ctx context.Context, filter *user.QueryFilter, ordering []core.DBOrdering) ([]user.User, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter != nil {
		// users with Phone or Email matching the search keyword
		if filter.Search != "" {
			val := "%" + strings.ToLower(filter.Search) + "%"
			where = append(where, "(LOWER(phone) LIKE ? OR LOWER(COALESCE(email, '')) LIKE ?)")
			args = append(args, val, val)
		}
		if filter.IsAdmin != nil {
			where = append(where, "is_admin = ?")
			args = append(args, *filter.IsAdmin)
		}
		if filter.IsActive != nil {
			where = append(where, "is_active = ?")
			args = append(args, *filter.IsActive)
		}
		if !filter.CreatedFrom.IsZero() {
			where = append(where, "created_at >= ?")
			args = append(args, filter.CreatedFrom.UTC())
		}
		if !filter.CreatedTo.IsZero() {
			where = append(where, "created_at <= ?")
			args = append(args, filter.CreatedTo.UTC())
		}
	}

	q := "SELECT " + userColumns + " FROM users"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	if order := orderBy(ordering); order != "" {
		q += " ORDER BY " + order
	}

	var rows []userRow
	if err := repo.db.SelectContext(ctx, &rows, repo.db.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "selecting users")
	}
	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, repo.fromRow(row))
	}
	return users, nil
}

func (repo userRepository) getBy(ctx context.Context, column, value string) (user.User, error) {
	var row userRow
	q := repo.db.Rebind("SELECT " + userColumns + " FROM users WHERE " + column + " = ?")
	if err := repo.db.GetContext(ctx, &row, q, value); err != nil {
		return user.User{}, repo.trapNoRowsErr(err, "selecting user")
	}
	return repo.fromRow(row), nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	return repo.getBy(ctx, "id", id)
}

func (repo userRepository) GetUserByPhone(ctx context.Context, phone string) (user.User, error) {
	return repo.getBy(ctx, "phone", phone)
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	q := "UPDATE users SET phone = :phone, email = :email, is_admin = :is_admin, is_active = :is_active, " +
		"password_hash = :password_hash, updated_at = :updated_at, last_login = :last_login WHERE id = :id"
	res, err := repo.db.NamedExecContext(ctx, q, repo.toRow(usr))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrPhoneExists
		}
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return repo.GetUserByID(ctx, usr.ID)
}

func (repo userRepository) DeleteUsersByID(ctx context.Context, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q, args, err := sqlx.In("DELETE FROM users WHERE id IN (?)", ids)
	if err != nil {
		return 0, errors.Wrap(err, "building delete query")
	}
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind(q), args...)
	if err != nil {
		return 0, errors.Wrap(err, "deleting users")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "deleting users")
	}
	return int(n), nil
}

func orderBy(ordering []core.DBOrdering) string {
	clauses := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		if userOrderable[ord.Field] {
			clauses = append(clauses, ord.String())
		}
	}
	return strings.Join(clauses, ", ")
}
