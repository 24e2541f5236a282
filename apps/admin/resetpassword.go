package main

import (
	"github.com/trezcool/stockwise/core/user"
)

func (cli *commandLine) resetPassword(phone, pwd, confirm string) error {
	usr, err := cli.usrSvc.GetByPhone(phone)
	if err != nil {
		return err
	}
	sp := user.SetPassword{Password: pwd, PasswordConfirm: confirm}
	if err = sp.Validate(cli.validate, usr); err != nil {
		return err
	}
	_, err = cli.usrSvc.SetPassword(usr, sp.Password)
	return err
}
