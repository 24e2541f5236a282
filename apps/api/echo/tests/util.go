package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/stockwise/apps/api/echo"
	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/market"
	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/core/symbol"
	"github.com/trezcool/stockwise/core/user"
	"github.com/trezcool/stockwise/services/cache"
	"github.com/trezcool/stockwise/services/logger"
	"github.com/trezcool/stockwise/storage/database/inmem"
)

var (
	conf       *core.Config
	usrRepo    user.Repository
	resultRepo quiz.ResultRepository
	quizSvc    quiz.Service
	fetcher    *fakeFetcher

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

type fakeFetcher struct {
	quotes map[string]market.Quote
	calls  int
}

func (f *fakeFetcher) FetchQuote(_ context.Context, code string) (market.Quote, error) {
	f.calls++
	if code == "DOWN" {
		return market.Quote{}, market.ErrQuoteUnavailable
	}
	q, ok := f.quotes[code]
	if !ok {
		return market.Quote{}, market.ErrNotFound
	}
	return q, nil
}

func setup(t *testing.T) Server {
	t.Helper()
	conf = core.NewTestConfig()
	logger := logsvc.NewDiscardLogger()

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// set up DB & repos
	db := inmemdb.Open()
	usrRepo = inmemdb.NewUserRepository(db)
	resultRepo = inmemdb.NewResultRepository(db)

	// set up services
	quizSvc = quiz.NewService(quiz.Options{
		QuestionCount: conf.Quiz.QuestionCount,
		PassScore:     conf.Quiz.PassScore,
		SessionTTL:    conf.Server.SessionTTL,
		Repo:          resultRepo,
		Logger:        logger,
		Rand:          rand.New(rand.NewSource(42)),
	})
	table, _ := symbol.Default()
	fetcher = &fakeFetcher{quotes: map[string]market.Quote{
		"AAPL":   {Symbol: "AAPL", Price: 175.5, Change: 1.5},
		"0700.HK": {Symbol: "0700.HK", Price: 320.4, Change: -3},
	}}
	marketSvc := market.NewService(table, fetcher, cachesvc.NewMemoryCache(), conf.Quotes, logger)

	// set up server
	return NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		DisableReqLogs: true,
		UserSvc:        user.NewService(usrRepo),
		QuizSvc:        quizSvc,
		Symbols:        table,
		MarketSvc:      marketSvc,
		Validate:       validate,
		Translator:     translator,
	})
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(conf, usr)
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("json.Unmarshal(%s) failed: %v", rec.Body.String(), err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	assert.Equal(t, tt.wantCode, rec.Code, "code")
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app Server, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
