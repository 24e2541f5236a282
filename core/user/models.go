package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/stockwise/core"
)

// User is a profile of the identity provider: a phone-registered account, optionally an admin.
type User struct {
	ID           string    `json:"id"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	IsActive     bool      `json:"is_active"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// MaskedPhone is the phone number safe for logs and emails.
func (u User) MaskedPhone() string {
	return core.MaskPhone(u.Phone)
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Phone           string `json:"phone" validate:"required,cnphone"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	IsAdmin         bool   `json:"-"`
}

func (nu *NewUser) Validate(validate *validator.Validate, svc Service) error {
	nu.Phone = CleanPhone(nu.Phone)
	nu.Email = core.CleanString(nu.Email, true /* lower */)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckUniqueness(nu.Phone)
}

// SetPassword defines the information needed to change a User's password.
type SetPassword struct {
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	phone           string
}

func (sp *SetPassword) Validate(validate *validator.Validate, usr User) error {
	sp.phone = usr.Phone
	return validate.Struct(sp)
}

type QueryFilter struct {
	Search      string    `query:"search"`
	IsAdmin     *bool     `query:"is_admin"`
	IsActive    *bool     `query:"is_active"`
	CreatedFrom time.Time `query:"created_from"`
	CreatedTo   time.Time `query:"created_to"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.IsAdmin == nil && qf.IsActive == nil && qf.CreatedFrom.IsZero() && qf.CreatedTo.IsZero()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search, true /* lower */)
}

// Match applies the filter to a single User; used by repositories that filter in memory.
func (qf *QueryFilter) Match(usr User) bool {
	if qf == nil {
		return true
	}
	if qf.Search != "" && !(containsFold(usr.Phone, qf.Search) || containsFold(usr.Email, qf.Search)) {
		return false
	}
	if qf.IsAdmin != nil && usr.IsAdmin != *qf.IsAdmin {
		return false
	}
	if qf.IsActive != nil && usr.IsActive != *qf.IsActive {
		return false
	}
	if !qf.CreatedFrom.IsZero() && usr.CreatedAt.Before(qf.CreatedFrom.UTC()) {
		return false
	}
	if !qf.CreatedTo.IsZero() && usr.CreatedAt.After(qf.CreatedTo.UTC()) {
		return false
	}
	return true
}
