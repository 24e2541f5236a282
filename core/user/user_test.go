package user

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/stockwise/core"
)

func newValidator() *validator.Validate {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

// failedTags maps the failing fields of a validation error to their tags.
func failedTags(err error) map[string]string {
	tags := make(map[string]string)
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		for _, vErr := range vErrs {
			tags[vErr.Field()] = vErr.Tag()
		}
	}
	return tags
}

func TestIsValidChinaPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"13800138000", true},
		{"19912345678", true},
		{"16612345678", true},
		{"12012345678", false}, // unallocated prefix
		{"1380013800", false},
		{"138001380001", false},
		{"23800138000", false},
		{"1380013800a", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidChinaPhone(tt.phone), tt.phone)
	}
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "13800138000", CleanPhone(" 138 0013 8000 "))
	assert.Equal(t, "13800138000", CleanPhone("+86 138-0013-8000"))
	assert.Equal(t, "13800138000", CleanPhone("13800138000"))
}

func TestNewUser_validation(t *testing.T) {
	validate := newValidator()

	tests := []struct {
		name string
		nu   NewUser
		want map[string]string
	}{
		{
			name: "valid",
			nu:   NewUser{Phone: "13800138000", Email: "a@b.cn", Password: "Bull&Bear2024", PasswordConfirm: "Bull&Bear2024"},
			want: map[string]string{},
		},
		{
			name: "missing fields",
			nu:   NewUser{},
			want: map[string]string{"phone": "required", "password": "required", "password_confirm": "required"},
		},
		{
			name: "bad phone and email",
			nu:   NewUser{Phone: "12345", Email: "nope", Password: "Bull&Bear2024", PasswordConfirm: "Bull&Bear2024"},
			want: map[string]string{"phone": "cnphone", "email": "email"},
		},
		{
			name: "short password",
			nu:   NewUser{Phone: "13800138000", Password: "a1", PasswordConfirm: "a1"},
			want: map[string]string{"password": pwdMinLenTag},
		},
		{
			name: "password with space",
			nu:   NewUser{Phone: "13800138000", Password: "bull bear", PasswordConfirm: "bull bear"},
			want: map[string]string{"password": pwdNoSpaceTag},
		},
		{
			name: "numeric password",
			nu:   NewUser{Phone: "13800138000", Password: "20240301", PasswordConfirm: "20240301"},
			want: map[string]string{"password": pwdNotAllNumTag},
		},
		{
			name: "password like phone",
			nu:   NewUser{Phone: "13800138000", Password: "13800138000a", PasswordConfirm: "13800138000a"},
			want: map[string]string{"password": pwdAttrSimTag},
		},
		{
			name: "confirmation mismatch",
			nu:   NewUser{Phone: "13800138000", Password: "Bull&Bear2024", PasswordConfirm: "Bear&Bull2024"},
			want: map[string]string{"password_confirm": "eqfield"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.nu)
			assert.Equal(t, tt.want, failedTags(err))
		})
	}
}

func TestSetPassword_validation(t *testing.T) {
	validate := newValidator()
	usr := User{Phone: "13800138000"}

	sp := SetPassword{Password: "13800138000", PasswordConfirm: "13800138000"}
	assert.Equal(t, map[string]string{"password": pwdNotAllNumTag}, failedTags(sp.Validate(validate, usr)))

	sp = SetPassword{Password: "x13800138000", PasswordConfirm: "x13800138000"}
	assert.Equal(t, map[string]string{"password": pwdAttrSimTag}, failedTags(sp.Validate(validate, usr)))

	sp = SetPassword{Password: "Bull&Bear2024", PasswordConfirm: "Bull&Bear2024"}
	assert.NoError(t, sp.Validate(validate, usr))
}

func TestUser_password(t *testing.T) {
	var usr User
	if !assert.NoError(t, usr.SetPassword("Bull&Bear2024")) {
		return
	}
	assert.NoError(t, usr.CheckPassword("Bull&Bear2024"))
	assert.Error(t, usr.CheckPassword("bull&bear2024"))
	assert.Equal(t, "138****8000", User{Phone: "13800138000"}.MaskedPhone())
}

func TestQueryFilter_Match(t *testing.T) {
	now := time.Now().UTC()
	usr := User{Phone: "13800138000", Email: "Pro@Stockwise.io", IsActive: true, CreatedAt: now}
	yes, no := true, false

	tests := []struct {
		name   string
		filter *QueryFilter
		want   bool
	}{
		{name: "nil", filter: nil, want: true},
		{name: "empty", filter: &QueryFilter{}, want: true},
		{name: "search phone", filter: &QueryFilter{Search: "0013"}, want: true},
		{name: "search email", filter: &QueryFilter{Search: "stockwise"}, want: true},
		{name: "search miss", filter: &QueryFilter{Search: "nobody"}, want: false},
		{name: "admins", filter: &QueryFilter{IsAdmin: &yes}, want: false},
		{name: "non admins", filter: &QueryFilter{IsAdmin: &no}, want: true},
		{name: "active", filter: &QueryFilter{IsActive: &yes}, want: true},
		{name: "created from", filter: &QueryFilter{CreatedFrom: now.Add(time.Hour)}, want: false},
		{name: "created to", filter: &QueryFilter{CreatedTo: now.Add(-time.Hour)}, want: false},
		{name: "created range", filter: &QueryFilter{CreatedFrom: now.Add(-time.Hour), CreatedTo: now.Add(time.Hour)}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(usr))
		})
	}
}
