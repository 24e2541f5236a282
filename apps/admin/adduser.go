package main

import (
	"github.com/trezcool/stockwise/core/user"
)

// addUser creates an active user.User, validated like a registration.
func (cli *commandLine) addUser(phone, email, pwd, confirm string, isAdmin bool) error {
	nu := user.NewUser{
		Phone:           phone,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: confirm,
		IsAdmin:         isAdmin,
	}
	if err := nu.Validate(cli.validate, cli.usrSvc); err != nil {
		return err
	}
	_, err := cli.usrSvc.Create(nu)
	return err
}
