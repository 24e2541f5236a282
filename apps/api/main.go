package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/trezcool/stockwise/apps/api/echo"
	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/market"
	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/core/symbol"
	"github.com/trezcool/stockwise/core/user"
	cachesvc "github.com/trezcool/stockwise/services/cache"
	emailsvc "github.com/trezcool/stockwise/services/email"
	"github.com/trezcool/stockwise/services/jobs"
	logsvc "github.com/trezcool/stockwise/services/logger"
	quotesvc "github.com/trezcool/stockwise/services/quotes"
	"github.com/trezcool/stockwise/storage/database"
	boiledrepos "github.com/trezcool/stockwise/storage/database/sqlboiler"
	sqlxrepos "github.com/trezcool/stockwise/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			dbLogger.Fatal("Failed to close", err)
		}
	}()
	usrRepo := sqlxrepos.NewUserRepository(db)
	resultRepo := boiledrepos.NewResultRepository(db, sqlx.BindType(db.DriverName()))

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc := user.NewService(usrRepo)

	bank := quiz.DefaultBank
	if conf.Quiz.BankFile != "" {
		if bank, err = quiz.LoadBankFile(conf.Quiz.BankFile); err != nil {
			logger.Fatal(fmt.Sprintf("loading question bank: %v", err), err)
		}
	}

	var (
		quoteCache market.Cache
		jobManager *jobs.Manager
		sink       quiz.ResultSink // nil: results are saved synchronously
	)
	if conf.Redis.Enabled() {
		rdb := cachesvc.NewRedisClient(conf.Redis)
		defer rdb.Close()
		quoteCache = cachesvc.NewQuoteCache(rdb)

		jobManager = jobs.NewManager(conf.Redis, logger)
		sink = jobManager
	} else {
		logger.Warn("redis not configured: using in-memory quote cache and synchronous result saving")
		quoteCache = cachesvc.NewMemoryCache()
	}

	quizSvc := quiz.NewService(quiz.Options{
		Bank:          bank,
		QuestionCount: conf.Quiz.QuestionCount,
		PassScore:     conf.Quiz.PassScore,
		SessionTTL:    conf.Server.SessionTTL,
		Repo:          resultRepo,
		Sink:          sink,
		Logger:        logger,
	})

	table, collisions := symbol.Default()
	for _, c := range collisions {
		if !c.Identical {
			logger.Warn(fmt.Sprintf("symbol %s: keeping %q, dropping %q", c.Code, c.Kept.Name, c.Dropped.Name))
		}
	}
	marketSvc := market.NewService(table, quotesvc.NewHTTPFetcher(conf.Quotes), quoteCache, conf.Quotes, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// =========================================================================
	// Start Background Workers

	if jobManager != nil {
		jobManager.RegisterHandlers(quizSvc, usrSvc, mailSvc)
		if err = jobManager.Start(); err != nil {
			logger.Fatal(fmt.Sprintf("starting job manager: %v", err), err)
		}
		defer jobManager.Stop()
	}

	sweepDone := make(chan struct{})
	defer close(sweepDone)
	go sweepSessions(quizSvc, conf.Server.SessionTTL, logger, sweepDone)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewInt("symbols").Set(int64(table.Len()))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			UserSvc:    usrSvc,
			QuizSvc:    quizSvc,
			Symbols:    table,
			MarketSvc:  marketSvc,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// sweepSessions evicts abandoned quiz sessions until done is closed.
func sweepSessions(svc quiz.Service, ttl time.Duration, logger core.Logger, done <-chan struct{}) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := svc.SweepSessions(); n > 0 {
				logger.Debug(fmt.Sprintf("swept %d expired quiz sessions", n))
			}
		case <-done:
			return
		}
	}
}
