package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/core/user"
)

const (
	TypeSaveResult  = "quiz:save_result"
	TypeResultEmail = "email:quiz_result"

	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

type (
	ResultEmailPayload struct {
		UserID   string `json:"user_id"`
		ResultID string `json:"result_id"`
		Score    int    `json:"score"`
		Total    int    `json:"total"`
		// UTC
		CompletedAt time.Time `json:"completed_at"`
	}

	// ResultEmailData is the template data of the "quiz_result" email.
	ResultEmailData struct {
		Phone       string
		CompletedAt time.Time
		Score       int
		Total       int
		Passed      bool
		Message     string
	}

	// Manager runs the background work: quiz result persistence and result emails.
	Manager struct {
		client *asynq.Client
		server *asynq.Server
		mux    *asynq.ServeMux
		logger core.Logger

		quizSvc quiz.Service
		userSvc user.Service
		mailer  core.EmailService
	}
)

var _ quiz.ResultSink = (*Manager)(nil) // interface compliance check

func NewManager(conf core.RedisConfig, logger core.Logger) *Manager {
	redisOpt := asynq.RedisClientOpt{
		Addr:     conf.Address,
		Password: conf.Password,
		DB:       conf.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			QueueCritical: 6, // result persistence
			QueueDefault:  3,
			QueueLow:      1, // emails
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error(fmt.Sprintf("job failed: type=%s error=%v", task.Type(), err), err)
		}),
		Logger: &AsynqLogger{logger: logger},
	})

	return &Manager{
		client: asynq.NewClient(redisOpt),
		server: server,
		mux:    asynq.NewServeMux(),
		logger: logger,
	}
}

func (m *Manager) RegisterHandlers(quizSvc quiz.Service, userSvc user.Service, mailer core.EmailService) {
	m.quizSvc = quizSvc
	m.userSvc = userSvc
	m.mailer = mailer
	m.mux.HandleFunc(TypeSaveResult, m.HandleSaveResult)
	m.mux.HandleFunc(TypeResultEmail, m.HandleResultEmail)
}

// Start runs the workers in the background.
func (m *Manager) Start() error {
	m.logger.Info("starting job queue workers")
	return m.server.Start(m.mux)
}

func (m *Manager) Stop() {
	m.logger.Info("stopping job queue")
	m.server.Stop()
	m.server.Shutdown()
	_ = m.client.Close()
}

func (m *Manager) enqueue(typename string, payload interface{}, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding task payload")
	}
	return m.client.Enqueue(asynq.NewTask(typename, data), opts...)
}

// SaveResult enqueues the result for persistence. A session is saved at most once.
func (m *Manager) SaveResult(ctx context.Context, res quiz.Result) error {
	if res.ID == "" {
		res.ID = uuid.New().String() // stable across retries
	}
	opts := []asynq.Option{
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	if res.SessionID != "" {
		opts = append(opts, asynq.TaskID(TypeSaveResult+":"+res.SessionID))
	}

	info, err := m.enqueue(TypeSaveResult, res, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "enqueuing quiz result")
	}
	m.logger.Debug(fmt.Sprintf("queued quiz result: task=%s session=%s", info.ID, res.SessionID))
	return nil
}

func (m *Manager) HandleSaveResult(ctx context.Context, task *asynq.Task) error {
	var res quiz.Result
	if err := json.Unmarshal(task.Payload(), &res); err != nil {
		return errors.Wrap(asynq.SkipRetry, err.Error())
	}

	saved, err := m.quizSvc.SaveResult(ctx, res)
	if err != nil {
		return errors.Wrap(err, "saving quiz result")
	}

	payload := ResultEmailPayload{
		UserID:      saved.UserID,
		ResultID:    saved.ID,
		Score:       saved.Score,
		Total:       saved.TotalQuestions,
		CompletedAt: saved.CompletedAt,
	}
	opts := []asynq.Option{
		asynq.Queue(QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(30 * time.Second),
		asynq.TaskID(TypeResultEmail + ":" + saved.ID),
	}
	if _, err = m.enqueue(TypeResultEmail, payload, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		// the result is stored, only the notification is lost
		m.logger.Warn(fmt.Sprintf("enqueuing result email: %v", err), err)
	}
	return nil
}

func (m *Manager) HandleResultEmail(ctx context.Context, task *asynq.Task) error {
	var payload ResultEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return errors.Wrap(asynq.SkipRetry, err.Error())
	}

	usr, err := m.userSvc.GetByID(payload.UserID)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return nil
		}
		return errors.Wrap(err, "getting user")
	}
	if msg := NewResultEmail(usr, payload, m.quizSvc.PassScore()); msg != nil {
		m.mailer.SendMessages(msg)
	}
	return nil
}

// NewResultEmail returns nil when the user has no email address.
func NewResultEmail(usr user.User, payload ResultEmailPayload, passScore int) *core.EmailMessage {
	if usr.Email == "" {
		return nil
	}
	eval := quiz.Evaluate(payload.Score, payload.Total)
	return &core.EmailMessage{
		To:           []mail.Address{{Address: usr.Email}},
		Subject:      "股票知识问卷结果",
		TemplateName: "quiz_result",
		TemplateData: ResultEmailData{
			Phone:       usr.MaskedPhone(),
			CompletedAt: payload.CompletedAt,
			Score:       payload.Score,
			Total:       payload.Total,
			Passed:      quiz.Passed(payload.Score, passScore),
			Message:     eval.Message,
		},
	}
}

// AsynqLogger routes asynq's logs to the app logger.
type AsynqLogger struct {
	logger core.Logger
}

func (l *AsynqLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *AsynqLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l *AsynqLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *AsynqLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }

// Fatal logs at error level and leaves the process running.
func (l *AsynqLogger) Fatal(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }
