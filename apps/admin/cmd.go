package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/trezcool/stockwise/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db       *sqlx.DB
	usrSvc   user.Service
	validate *validator.Validate
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -phone PHONE [-email EMAIL] [-admin] - create a user")
	fmt.Println("  resetpassword -phone PHONE - reset user's password")
	fmt.Println("  migrate COMMAND [ARGS...] - run goose migrations (up, up-by-one, up-to, down, down-to, redo, reset, status, version, create, fix)")
}

// readPassword prompts twice for a password on the terminal.
func readPassword() (pwd, confirm string, err error) {
	fmt.Print("Enter password:")
	p1, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", "", err
	}
	fmt.Print("Confirm password:")
	p2, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", "", err
	}
	return string(p1), string(p2), nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserPhone := addUserCmd.String("phone", "", "The user's mobile phone number. The password will be prompted next.")
	addUserEmail := addUserCmd.String("email", "", "The user's email (optional).")
	addUserAdmin := addUserCmd.Bool("admin", false, "Grant access to the admin endpoints.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordPhone := resetPasswordCmd.String("phone", "", "The user's mobile phone number. The password will be prompted next.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserPhone == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, confirm, err := readPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserPhone, *addUserEmail, pwd, confirm, *addUserAdmin)
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordPhone == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, confirm, err := readPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordPhone, pwd, confirm)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}
