package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/core/user"
)

type adminApi struct {
	userSvc user.Service
	quizSvc quiz.Service
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, userSvc user.Service, quizSvc quiz.Service) {
	api := adminApi{
		userSvc: userSvc,
		quizSvc: quizSvc,
	}

	ag := g.Group("/admin", jwt, adminMiddleware)
	ag.GET("/users", api.listUsers)
	ag.GET("/quiz-results", api.listQuizResults)
}

// Handlers

func (api *adminApi) listUsers(ctx echo.Context) error {
	filter := new(user.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []user.User{})
	}
	filter.Clean()

	users, err := api.userSvc.Query(filter, bindOrdering(ctx, userOrderingFields...))
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *adminApi) listQuizResults(ctx echo.Context) error {
	results, err := api.quizSvc.AllResults(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying quiz results")
	}
	if results == nil {
		results = []quiz.ResultWithProfile{}
	}
	return ctx.JSON(http.StatusOK, results)
}
