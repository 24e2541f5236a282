package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/quiz"
)

type quizApi struct {
	svc      quiz.Service
	validate *validator.Validate
}

func registerQuizAPI(g *echo.Group, jwt, optionalJWT echo.MiddlewareFunc, svc quiz.Service, validate *validator.Validate) {
	api := quizApi{
		svc:      svc,
		validate: validate,
	}

	qg := g.Group("/quiz")

	// sessions are anonymous unless a token is sent
	sg := qg.Group("/sessions", optionalJWT)
	sg.POST("", api.start)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id/answers/:qid", api.answer)
	sg.POST("/:id/advance", api.advance)
	sg.POST("/:id/submit", api.submit)
	sg.GET("/:id/review", api.review)

	qg.GET("/results", api.results, jwt)
}

func (api *quizApi) session(ctx echo.Context) (*quiz.Session, error) {
	return api.svc.Session(getContextOwner(ctx), ctx.Param("id"))
}

// Handlers

func (api *quizApi) start(ctx echo.Context) error {
	s, err := api.svc.Start(getContextOwner(ctx))
	if err != nil {
		return errors.Wrap(err, "starting quiz session")
	}
	return ctx.JSON(http.StatusCreated, s.View())
}

func (api *quizApi) retrieve(ctx echo.Context) error {
	s, err := api.session(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.View())
}

func (api *quizApi) answer(ctx echo.Context) error {
	s, err := api.session(ctx)
	if err != nil {
		return err
	}
	qid, err := strconv.Atoi(ctx.Param("qid"))
	if err != nil {
		return quiz.ErrUnknownQuestion
	}

	var data AnswerRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AnswerRequest")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	if data.Options != nil {
		err = s.SetAnswer(qid, data.Options)
	} else {
		err = s.RecordAnswer(qid, *data.Option)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.View())
}

func (api *quizApi) advance(ctx echo.Context) error {
	s, err := api.session(ctx)
	if err != nil {
		return err
	}

	var data AdvanceRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AdvanceRequest")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	if data.Index != nil {
		err = s.JumpTo(*data.Index)
	} else {
		_, err = s.Advance(*data.Delta)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.View())
}

func (api *quizApi) submit(ctx echo.Context) error {
	out, err := api.svc.Submit(ctx.Request().Context(), getContextOwner(ctx), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *quizApi) review(ctx echo.Context) error {
	s, err := api.session(ctx)
	if err != nil {
		return err
	}
	items, err := s.Review()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *quizApi) results(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	results, err := api.svc.UserResults(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying quiz results")
	}
	if results == nil {
		results = []quiz.Result{}
	}
	return ctx.JSON(http.StatusOK, results)
}

type (
	// AnswerRequest selects one option (toggled on multi-select questions) or replaces the whole selection.
	AnswerRequest struct {
		Option  *int  `json:"option" validate:"required_without=Options"`
		Options []int `json:"options"`
	}

	// AdvanceRequest moves by one question (delta) or jumps to a question (index).
	AdvanceRequest struct {
		Delta *int `json:"delta" validate:"required_without=Index"`
		Index *int `json:"index"`
	}
)

func (ar *AnswerRequest) Validate(validate *validator.Validate) error {
	if ar.Option != nil && ar.Options != nil {
		return core.NewFieldValidationError("options", "options cannot be used with option")
	}
	return validate.Struct(ar)
}

func (ar *AdvanceRequest) Validate(validate *validator.Validate) error {
	if ar.Delta != nil && ar.Index != nil {
		return core.NewFieldValidationError("index", "index cannot be used with delta")
	}
	return validate.Struct(ar)
}
