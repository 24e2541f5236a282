package tests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/tests"
)

func Test_adminApi_listUsers(t *testing.T) {
	app := setup(t)
	now := time.Now().UTC().Truncate(time.Second)

	usr := testutil.CreateUser(t, usrRepo, "13800138000", "user@stockwise.io", "", false, now.Add(-2*time.Hour))
	usr2 := testutil.CreateUser(t, usrRepo, "13900139000", "", "", false, now.Add(-time.Hour))
	admin := testutil.CreateUser(t, usrRepo, "15000150000", "admin@stockwise.io", "", true, now)
	adminToken := getToken(t, admin)

	tests := []httpTest{
		{name: "missing token", path: "/v1/admin/users", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "not admin", path: "/v1/admin/users", token: getToken(t, usr),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "newest first", path: "/v1/admin/users", token: adminToken,
			wantCode: http.StatusOK, wantData: marchallList(t, admin, usr2, usr),
		},
		{
			name: "ordered by phone", path: "/v1/admin/users?ordering=phone", token: adminToken,
			wantCode: http.StatusOK, wantData: marchallList(t, usr, usr2, admin),
		},
		{
			name: "unknown ordering fields ignored", path: "/v1/admin/users?ordering=-phone,password_hash", token: adminToken,
			wantCode: http.StatusOK, wantData: marchallList(t, admin, usr2, usr),
		},
		{
			name: "search", path: "/v1/admin/users?search=1390", token: adminToken,
			wantCode: http.StatusOK, wantData: marchallList(t, usr2),
		},
		{
			name: "no match", path: "/v1/admin/users?search=nobody", token: adminToken,
			wantCode: http.StatusOK, wantData: marchallList(t),
		},
	}
	runHTTPTests(t, app, tests)
}

func Test_adminApi_listQuizResults(t *testing.T) {
	app := setup(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	usr := testutil.CreateUser(t, usrRepo, "13800138000", "", "", false)
	admin := testutil.CreateUser(t, usrRepo, "15000150000", "", "", true)

	older, err := resultRepo.CreateResult(ctx, quiz.Result{ID: "r1", UserID: usr.ID, Score: 4, TotalQuestions: 10, CompletedAt: now.Add(-time.Hour)})
	if err != nil {
		t.Fatal(err)
	}
	newer, err := resultRepo.CreateResult(ctx, quiz.Result{ID: "r2", UserID: usr.ID, Score: 9, TotalQuestions: 10, CompletedAt: now})
	if err != nil {
		t.Fatal(err)
	}
	profile := quiz.ResultProfile{Phone: usr.Phone}

	tests := []httpTest{
		{name: "missing token", path: "/v1/admin/quiz-results", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "not admin", path: "/v1/admin/quiz-results", token: getToken(t, usr),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "newest first with profile", path: "/v1/admin/quiz-results", token: getToken(t, admin),
			wantCode: http.StatusOK,
			wantData: marchallList(t,
				quiz.ResultWithProfile{Result: newer, Profile: profile},
				quiz.ResultWithProfile{Result: older, Profile: profile},
			),
		},
	}
	runHTTPTests(t, app, tests)
}
