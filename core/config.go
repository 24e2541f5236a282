package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address                   string
		DebugHost                 string
		ReadTimeout               time.Duration
		WriteTimeout              time.Duration
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
		SessionTTL                time.Duration
	}

	DatabaseConfig struct {
		Engine        string // postgres | sqlite3
		Host          string
		Port          int
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	RedisConfig struct {
		Address  string
		Password string
		DB       int
	}

	QuotesConfig struct {
		BaseURL  string
		APIKey   string
		Timeout  time.Duration
		CacheTTL time.Duration
	}

	QuizConfig struct {
		QuestionCount int
		PassScore     int
		BankFile      string
	}

	Config struct {
		Env              string
		Build            string
		Debug            bool
		TestMode         bool
		AppName          string
		SecretKey        string
		DefaultFromEmail string
		FrontendBaseURL  string
		RollbarToken     string
		SendgridApiKey   string
		WorkDir          string

		Server   ServerConfig
		Database DatabaseConfig
		Redis    RedisConfig
		Quotes   QuotesConfig
		Quiz     QuizConfig
	}
)

// Address returns the "host:port" of the database server.
func (db DatabaseConfig) Address() string {
	return net.JoinHostPort(db.Host, strconv.Itoa(db.Port))
}

// Enabled reports whether a redis server is configured.
func (r RedisConfig) Enabled() bool { return r.Address != "" }

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("appName", "Stockwise")
	conf.SetDefault("secretKey", "k2v#8l)tq9w!n3+zr7@x1m(s5e$c4b^d6a&f0h-j*y=p")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("frontendBaseURL", "http://localhost:5173")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("sendgridApiKey", "")

	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.readTimeout", 5*time.Second)
	conf.SetDefault("server.writeTimeout", 10*time.Second)
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("server.jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("server.sessionTTL", 2*time.Hour)

	conf.SetDefault("database.engine", "postgres")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", 5432)
	conf.SetDefault("database.name", "stockwise")
	conf.SetDefault("database.user", "stockwise")
	conf.SetDefault("database.password", "")
	conf.SetDefault("database.adminUser", "")
	conf.SetDefault("database.adminPassword", "")
	conf.SetDefault("database.disableTLS", true)

	conf.SetDefault("redis.address", "")
	conf.SetDefault("redis.password", "")
	conf.SetDefault("redis.db", 0)

	conf.SetDefault("quotes.baseURL", "http://localhost:54321/functions/v1")
	conf.SetDefault("quotes.apiKey", "")
	conf.SetDefault("quotes.timeout", 8*time.Second)
	conf.SetDefault("quotes.cacheTTL", 15*time.Second)

	conf.SetDefault("quiz.questionCount", 10)
	conf.SetDefault("quiz.passScore", 6)
	conf.SetDefault("quiz.bankFile", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd, err := ProjectRoot()
	if err != nil {
		log.Fatalf("config.ProjectRoot: %v", err)
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	// optional yaml config file, env vars still take precedence
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		conf.SetConfigFile(file)
		if err := conf.MergeInConfig(); err != nil {
			log.Fatalf("config.MergeInConfig(%s): %v", file, err)
		}
	}

	return &Config{
		Env:              env,
		Build:            conf.GetString("build"),
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		AppName:          conf.GetString("appName"),
		SecretKey:        conf.GetString("secretKey"),
		DefaultFromEmail: conf.GetString("defaultFromEmail"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		RollbarToken:     conf.GetString("rollbarToken"),
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		WorkDir:          wd,
		Server: ServerConfig{
			Address:                   conf.GetString("server.address"),
			DebugHost:                 conf.GetString("server.debugHost"),
			ReadTimeout:               conf.GetDuration("server.readTimeout"),
			WriteTimeout:              conf.GetDuration("server.writeTimeout"),
			ShutdownTimeout:           conf.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta:        conf.GetDuration("server.jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("server.jwtRefreshExpirationDelta"),
			SessionTTL:                conf.GetDuration("server.sessionTTL"),
		},
		Database: DatabaseConfig{
			Engine:        conf.GetString("database.engine"),
			Host:          conf.GetString("database.host"),
			Port:          conf.GetInt("database.port"),
			Name:          conf.GetString("database.name"),
			User:          conf.GetString("database.user"),
			Password:      conf.GetString("database.password"),
			AdminUser:     conf.GetString("database.adminUser"),
			AdminPassword: conf.GetString("database.adminPassword"),
			DisableTLS:    conf.GetBool("database.disableTLS"),
		},
		Redis: RedisConfig{
			Address:  conf.GetString("redis.address"),
			Password: conf.GetString("redis.password"),
			DB:       conf.GetInt("redis.db"),
		},
		Quotes: QuotesConfig{
			BaseURL:  conf.GetString("quotes.baseURL"),
			APIKey:   conf.GetString("quotes.apiKey"),
			Timeout:  conf.GetDuration("quotes.timeout"),
			CacheTTL: conf.GetDuration("quotes.cacheTTL"),
		},
		Quiz: QuizConfig{
			QuestionCount: conf.GetInt("quiz.questionCount"),
			PassScore:     conf.GetInt("quiz.passScore"),
			BankFile:      conf.GetString("quiz.bankFile"),
		},
	}
}

// NewTestConfig returns a Config suitable for tests: no .env, no external services.
func NewTestConfig() *Config {
	return &Config{
		Env:              "TEST",
		Build:            "test",
		TestMode:         true,
		AppName:          "Stockwise",
		SecretKey:        "test-secret",
		DefaultFromEmail: "noreply@test.local",
		Server: ServerConfig{
			JWTExpirationDelta:        time.Hour,
			JWTRefreshExpirationDelta: time.Hour,
			SessionTTL:                time.Hour,
			ShutdownTimeout:           time.Second,
		},
		Database: DatabaseConfig{Engine: "sqlite3", Name: ":memory:"},
		Quotes:   QuotesConfig{Timeout: time.Second, CacheTTL: time.Minute},
		Quiz:     QuizConfig{QuestionCount: 10, PassScore: 6},
	}
}
