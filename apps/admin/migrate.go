package main

import (
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	"github.com/trezcool/stockwise/fs"
)

var (
	gooseRunFunc        = goose.RunFS        // mockable
	gooseSetDialectFunc = goose.SetDialect // mockable
)

// migrate runs a goose command against the embedded migrations, using the dialect of the open database.
func (cli *commandLine) migrate(args []string) error {
	if err := gooseSetDialectFunc(cli.db.DriverName()); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	var arguments []string
	if len(args) > 1 {
		arguments = args[1:]
	}
	return gooseRunFunc(args[0], cli.db.DB, appfs.FS, "migrations", arguments...)
}
