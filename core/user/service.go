package user

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrPhoneExists = errors.New("a user with this phone number already exists")

	// DefaultOrdering lists newest profiles first.
	DefaultOrdering = []core.DBOrdering{{Field: "created_at", Ascending: false}}

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CheckPhoneUniqueness(ctx context.Context, phone string, excludedIDs ...string) error
		CreateUser(ctx context.Context, usr User) (User, error)
		// QueryUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of User.Phone or User.Email.
		QueryUsers(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		GetUserByPhone(ctx context.Context, phone string) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
		DeleteUsersByID(ctx context.Context, ids ...string) (int, error)
	}

	Service interface {
		CheckUniqueness(phone string, excludedIDs ...string) error
		Create(nu NewUser) (User, error)
		Query(filter *QueryFilter, ordering []core.DBOrdering) ([]User, error)
		GetByID(id string) (User, error)
		GetByPhone(phone string) (User, error)
		SetLastLogin(usr User) (User, error)
		SetPassword(usr User, pwd string) (User, error)
		SetActive(usr User, active bool) (User, error)
		Delete(ids ...string) (int, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) CheckUniqueness(phone string, excludedIDs ...string) error {
	if err := svc.repo.CheckPhoneUniqueness(context.Background(), phone, excludedIDs...); err != nil {
		if errors.Cause(err) == ErrPhoneExists {
			return core.NewValidationError(err, core.FieldError{Field: "phone", Error: ErrPhoneExists.Error()})
		}
		return errors.Wrap(err, "checking phone uniqueness")
	}
	return nil
}

func (svc *service) Create(nu NewUser) (User, error) {
	now := NowFunc().UTC()
	usr := User{
		Phone:     nu.Phone,
		Email:     nu.Email,
		IsAdmin:   nu.IsAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateUser(context.Background(), usr)
}

func (svc *service) Query(filter *QueryFilter, ordering []core.DBOrdering) ([]User, error) {
	if len(ordering) == 0 {
		ordering = DefaultOrdering
	}
	return svc.repo.QueryUsers(context.Background(), filter, ordering)
}

func (svc *service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(context.Background(), id)
}

func (svc *service) GetByPhone(phone string) (User, error) {
	return svc.repo.GetUserByPhone(context.Background(), CleanPhone(phone))
}

func (svc *service) SetLastLogin(usr User) (User, error) {
	usr.LastLogin = NowFunc().UTC()
	return svc.repo.UpdateUser(context.Background(), usr)
}

func (svc *service) SetPassword(usr User, pwd string) (User, error) {
	if err := usr.SetPassword(pwd); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	usr.UpdatedAt = NowFunc().UTC()
	return svc.repo.UpdateUser(context.Background(), usr)
}

func (svc *service) SetActive(usr User, active bool) (User, error) {
	usr.IsActive = active
	usr.UpdatedAt = NowFunc().UTC()
	return svc.repo.UpdateUser(context.Background(), usr)
}

func (svc *service) Delete(ids ...string) (int, error) {
	return svc.repo.DeleteUsersByID(context.Background(), ids...)
}

// CleanPhone strips whitespace, dashes and a leading +86 country code.
func CleanPhone(phone string) string {
	phone = core.CleanString(phone)
	phone = strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return strings.TrimPrefix(phone, "+86")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
