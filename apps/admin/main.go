package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/user"
	logsvc "github.com/trezcool/stockwise/services/logger"
	"github.com/trezcool/stockwise/storage/database"
	sqlxrepos "github.com/trezcool/stockwise/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewStdLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile))

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal(fmt.Sprintf("creating database: %v", err), err)
	}
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}

	validate := validator.New()
	user.InitValidators(validate, core.NewTranslator())

	// start CLI
	cli := commandLine{
		db:       db,
		usrSvc:   user.NewService(sqlxrepos.NewUserRepository(db)),
		validate: validate,
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %v", err), err)
		}
		os.Exit(1)
	}
}
