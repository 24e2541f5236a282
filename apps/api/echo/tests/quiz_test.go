package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/stockwise/apps/api/echo"
	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/tests"
)

type submitResponse struct {
	SessionID string    `json:"session_id"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Tier      quiz.Tier `json:"tier"`
	Message   string    `json:"message"`
	Passed    bool      `json:"passed"`
	Saved     bool      `json:"saved"`
	SaveError string    `json:"save_error"`
}

func startSession(t *testing.T, app Server, token string) quiz.SessionView {
	t.Helper()
	req, rec := newAuthRequest(http.MethodPost, "/v1/quiz/sessions", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("startSession() failed: %d %s", rec.Code, rec.Body.String())
	}
	var view quiz.SessionView
	unmarshal(t, rec, &view)
	return view
}

// answerAll answers the first `correct` questions correctly and the rest wrongly.
func answerAll(t *testing.T, app Server, token string, view quiz.SessionView, correct int) {
	t.Helper()
	for i, qv := range view.Questions {
		q, ok := quiz.DefaultBank.Get(qv.ID)
		if !ok {
			t.Fatalf("question %d not in bank", qv.ID)
		}
		options := q.CorrectAnswers
		if i >= correct {
			options = wrongAnswer(q)
		}
		path := fmt.Sprintf("/v1/quiz/sessions/%s/answers/%d", view.ID, qv.ID)
		req, rec := newAuthRequest(http.MethodPut, path, token, marchallObj(t, map[string][]int{"options": options}))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("answer(%d) failed: %d %s", qv.ID, rec.Code, rec.Body.String())
		}
	}
}

func wrongAnswer(q quiz.Question) []int {
	for i := range q.Options {
		if !q.IsCorrect([]int{i}) {
			return []int{i}
		}
	}
	return []int{0}
}

func Test_quizApi_anonymousFlow(t *testing.T) {
	app := setup(t)

	view := startSession(t, app, "")
	assert.Equal(t, quiz.StatusInProgress, view.Status)
	assert.Equal(t, 10, view.Total)
	assert.Len(t, view.Questions, 10)
	assert.Nil(t, view.Evaluation)

	// distinct questions
	seen := make(map[int]bool)
	for _, q := range view.Questions {
		assert.False(t, seen[q.ID], "duplicate question %d", q.ID)
		seen[q.ID] = true
	}

	base := "/v1/quiz/sessions/" + view.ID
	first := view.Questions[0]

	tests := []httpTest{
		{name: "unknown session", path: "/v1/quiz/sessions/nope", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: quiz.ErrSessionNotFound.Error()})},
		{name: "retrieve", path: base, wantCode: http.StatusOK},
		{
			name: "submit incomplete", method: http.MethodPost, path: base + "/submit", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: quiz.ErrIncomplete.Error()}),
		},
		{
			name: "review before completion", path: base + "/review", wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{Error: quiz.ErrNotCompleted.Error()}),
		},
		{
			name: "unknown question", method: http.MethodPut, path: base + "/answers/999", body: []byte(`{"option":0}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: quiz.ErrUnknownQuestion.Error()}),
		},
		{
			name: "option out of range", method: http.MethodPut, path: fmt.Sprintf("%s/answers/%d", base, first.ID),
			body: []byte(`{"option":99}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: quiz.ErrInvalidOption.Error()}),
		},
		{
			name: "answer required", method: http.MethodPut, path: fmt.Sprintf("%s/answers/%d", base, first.ID),
			body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"option": "this field is required"}),
		},
		{
			name: "bad delta", method: http.MethodPost, path: base + "/advance", body: []byte(`{"delta":2}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: quiz.ErrInvalidDelta.Error()}),
		},
		{
			name: "bad index", method: http.MethodPost, path: base + "/advance", body: []byte(`{"index":10}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: quiz.ErrInvalidIndex.Error()}),
		},
	}
	runHTTPTests(t, app, tests)

	t.Run("advance clamps", func(t *testing.T) {
		var v quiz.SessionView
		for _, tc := range []struct {
			body string
			want int
		}{
			{`{"delta":-1}`, 0},
			{`{"delta":1}`, 1},
			{`{"index":9}`, 9},
			{`{"delta":1}`, 9},
			{`{"index":0}`, 0},
		} {
			req, rec := newRequest(http.MethodPost, base+"/advance", []byte(tc.body))
			app.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
			unmarshal(t, rec, &v)
			assert.Equal(t, tc.want, v.CurrentIndex, tc.body)
		}
	})

	t.Run("submit", func(t *testing.T) {
		answerAll(t, app, "", view, 6)

		req, rec := newRequest(http.MethodPost, base+"/submit")
		app.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String()) {
			return
		}
		var out submitResponse
		unmarshal(t, rec, &out)
		assert.Equal(t, 6, out.Score)
		assert.Equal(t, 10, out.Total)
		assert.Equal(t, quiz.Tier3, out.Tier)
		assert.Equal(t, quiz.Tier3.Message(), out.Message)
		assert.True(t, out.Passed)
		assert.False(t, out.Saved) // anonymous

		// completed sessions are terminal
		req, rec = newRequest(http.MethodPost, base+"/submit")
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)

		req, rec = newRequest(http.MethodPut, fmt.Sprintf("%s/answers/%d", base, first.ID), []byte(`{"option":0}`))
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)

		req, rec = newRequest(http.MethodGet, base+"/review")
		app.ServeHTTP(rec, req)
		if assert.Equal(t, http.StatusOK, rec.Code) {
			var items []quiz.ReviewItem
			unmarshal(t, rec, &items)
			assert.Len(t, items, 10)
			var correct int
			for _, it := range items {
				if it.Correct {
					correct++
				}
			}
			assert.Equal(t, 6, correct)
		}
	})
}

func Test_quizApi_multiSelectToggle(t *testing.T) {
	app := setup(t)
	view := startSession(t, app, "")

	var multi *quiz.QuestionView
	for i := range view.Questions {
		if view.Questions[i].Kind == quiz.KindMultiple {
			multi = &view.Questions[i]
			break
		}
	}
	if multi == nil {
		t.Skip("no multi-select question drawn")
	}

	path := fmt.Sprintf("/v1/quiz/sessions/%s/answers/%d", view.ID, multi.ID)
	answer := func(option int) []int {
		req, rec := newRequest(http.MethodPut, path, []byte(fmt.Sprintf(`{"option":%d}`, option)))
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		var v quiz.SessionView
		unmarshal(t, rec, &v)
		for _, q := range v.Questions {
			if q.ID == multi.ID {
				return q.Answer
			}
		}
		return nil
	}

	assert.Equal(t, []int{0}, answer(0))
	assert.Equal(t, []int{0, 1}, answer(1))
	assert.Equal(t, []int{1}, answer(0))
}

func Test_quizApi_ownedSessions(t *testing.T) {
	app := setup(t)
	alice := testutil.CreateUser(t, usrRepo, "13812345678", "", "stock2024!", false)
	bob := testutil.CreateUser(t, usrRepo, "13912345678", "", "stock2024!", false)
	aliceToken, bobToken := getToken(t, alice), getToken(t, bob)

	view := startSession(t, app, aliceToken)
	base := "/v1/quiz/sessions/" + view.ID
	notFound := marchallObj(t, httpErr{Error: quiz.ErrSessionNotFound.Error()})

	tests := []httpTest{
		{name: "owner", path: base, token: aliceToken, wantCode: http.StatusOK},
		{name: "other user", path: base, token: bobToken, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "anonymous", path: base, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "bad token", path: base, token: "bad", wantCode: http.StatusUnauthorized},
		{name: "results need auth", path: "/v1/quiz/results", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "no results yet", path: "/v1/quiz/results", token: aliceToken, wantCode: http.StatusOK, wantData: marchallList(t)},
	}
	runHTTPTests(t, app, tests)

	t.Run("submit saves result", func(t *testing.T) {
		answerAll(t, app, aliceToken, view, 10)

		req, rec := newAuthRequest(http.MethodPost, base+"/submit", aliceToken)
		app.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String()) {
			return
		}
		var out submitResponse
		unmarshal(t, rec, &out)
		assert.Equal(t, 10, out.Score)
		assert.Equal(t, quiz.Tier5, out.Tier)
		assert.True(t, out.Saved)
		assert.Empty(t, out.SaveError)

		req, rec = newAuthRequest(http.MethodGet, "/v1/quiz/results", aliceToken)
		app.ServeHTTP(rec, req)
		var results []quiz.Result
		unmarshal(t, rec, &results)
		if assert.Len(t, results, 1) {
			assert.Equal(t, alice.ID, results[0].UserID)
			assert.Equal(t, view.ID, results[0].SessionID)
			assert.Equal(t, 10, results[0].Score)
			assert.Equal(t, 10, results[0].TotalQuestions)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/quiz/results", bobToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t)}, rec)
	})

	t.Run("new session replaces the previous one", func(t *testing.T) {
		next := startSession(t, app, aliceToken)
		assert.NotEqual(t, view.ID, next.ID)

		req, rec := newAuthRequest(http.MethodGet, base, aliceToken)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
