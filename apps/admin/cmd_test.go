package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"io/fs"
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/user"
	sqlxrepos "github.com/trezcool/stockwise/storage/database/sqlx"
	"github.com/trezcool/stockwise/tests"
)

var usrRepo user.Repository

func setup(t *testing.T) *commandLine {
	// set up DB & repos
	db := testutil.PrepareDB(t)
	usrRepo = sqlxrepos.NewUserRepository(db)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// start CLI
	return &commandLine{
		db:       db,
		usrSvc:   user.NewService(usrRepo),
		validate: validate,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

type pwdInput struct {
	pwd, confirm string
}

func mockPasswords(extra interface{}) {
	calls := 0
	readPasswordFunc = func(fd int) ([]byte, error) {
		calls++
		in, ok := extra.(pwdInput)
		if !ok {
			return nil, nil
		}
		if calls%2 == 1 {
			return []byte(in.pwd), nil
		}
		return []byte(in.confirm), nil
	}
}

func checkErr(t *testing.T, tt cliTest, err error) {
	switch {
	case tt.wantErr != nil:
		assert.Equal(t, tt.wantErr, errors.Cause(err))
	case tt.wantErrStr != "":
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), tt.wantErrStr)
		}
	default:
		assert.NoError(t, err)
	}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	gooseRunFunc = func(command string, db *sql.DB, fsys fs.FS, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "watchlist", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	testutil.CreateUser(t, usrRepo, "13800138000", "", "", false)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "phone but no password", args: []string{"adduser", "-phone", "13900139000"}, wantErr: errHelp},
		{
			name: "invalid phone", args: []string{"adduser", "-phone", "12345"},
			extra: pwdInput{"Bull&Bear2024", "Bull&Bear2024"}, wantErrStr: "'cnphone' tag",
		},
		{
			name: "phone taken", args: []string{"adduser", "-phone", "138 0013 8000"},
			extra: pwdInput{"Bull&Bear2024", "Bull&Bear2024"}, wantErrStr: user.ErrPhoneExists.Error(),
		},
		{
			name: "passwords mismatch", args: []string{"adduser", "-phone", "13900139000"},
			extra: pwdInput{"Bull&Bear2024", "Bear&Bull2024"}, wantErrStr: "'eqfield' tag",
		},
		{name: "created", args: []string{"adduser", "-phone", "13900139000", "-email", "Pro@Stockwise.io"}, extra: pwdInput{"Bull&Bear2024", "Bull&Bear2024"}},
		{name: "created admin", args: []string{"adduser", "-phone", "+86 150-0015-0000", "-admin"}, extra: pwdInput{"Bull&Bear2024", "Bull&Bear2024"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)
		mockPasswords(tt.extra)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}

	usr, err := cli.usrSvc.GetByPhone("13900139000")
	if assert.NoError(t, err) {
		assert.Equal(t, "pro@stockwise.io", usr.Email)
		assert.False(t, usr.IsAdmin)
		assert.True(t, usr.IsActive)
		assert.NoError(t, usr.CheckPassword("Bull&Bear2024"))
	}
	admin, err := cli.usrSvc.GetByPhone("15000150000")
	if assert.NoError(t, err) {
		assert.True(t, admin.IsAdmin)
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	usr := testutil.CreateUser(t, usrRepo, "13800138000", "", "OldPa55word!", false)

	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "phone but no password", args: []string{"resetpassword", "-phone", "13900139000"}, wantErr: errHelp},
		{name: "user not found", args: []string{"resetpassword", "-phone", "13900139000"}, extra: pwdInput{"Bull&Bear2024", "Bull&Bear2024"}, wantErr: user.ErrNotFound},
		{
			name: "weak password", args: []string{"resetpassword", "-phone", usr.Phone},
			extra: pwdInput{"123456789", "123456789"}, wantErrStr: "'pwdnotallnum' tag",
		},
		{name: "reset", args: []string{"resetpassword", "-phone", usr.Phone}, extra: pwdInput{"Bull&Bear2024", "Bull&Bear2024"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)
		mockPasswords(tt.extra)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}

	refreshedUsr, err := cli.usrSvc.GetByID(usr.ID)
	if assert.NoError(t, err) {
		assert.False(t, bytes.Equal(refreshedUsr.PasswordHash, usr.PasswordHash), "failed to update new password")
		assert.NoError(t, refreshedUsr.CheckPassword("Bull&Bear2024"))
	}
}
