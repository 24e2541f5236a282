package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/market"
	"github.com/trezcool/stockwise/core/quiz"
	"github.com/trezcool/stockwise/core/user"
)

// domainErrors maps domain sentinel errors to their HTTP status.
var domainErrors = map[error]int{
	quiz.ErrSessionNotFound:    http.StatusNotFound,
	quiz.ErrUnknownQuestion:    http.StatusBadRequest,
	quiz.ErrInvalidOption:      http.StatusBadRequest,
	quiz.ErrInvalidIndex:       http.StatusBadRequest,
	quiz.ErrInvalidDelta:       http.StatusBadRequest,
	quiz.ErrIncomplete:         http.StatusBadRequest,
	quiz.ErrCompleted:          http.StatusConflict,
	quiz.ErrNotCompleted:       http.StatusConflict,
	market.ErrEmptySymbol:      http.StatusBadRequest,
	market.ErrNotFound:         http.StatusNotFound,
	market.ErrMalformedQuote:   http.StatusBadGateway,
	market.ErrQuoteUnavailable: http.StatusBadGateway,
	user.ErrNotFound:           http.StatusNotFound,
}

// newAppHTTPErrorHandler renders every error returned by a handler as JSON.
// signalShutdown is called when a core shutdown error reaches it.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code, message := classifyError(err, translator)

		switch {
		case code == http.StatusInternalServerError:
			var usr user.User
			if claims, cErr := getContextClaims(ctx); cErr == nil {
				usr.ID = claims.Subject
				usr.Phone = claims.Phone
			}
			logger.Error(http.StatusText(code), errors.Wrap(err, http.StatusText(code)), usr)
			if core.IsShutdown(err) {
				signalShutdown()
			}
		case code > http.StatusInternalServerError:
			logger.Warn(err.Error(), err)
		}

		if ctx.Echo().Debug && code >= http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, message)
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}

// classifyError maps err to a status code and a response body (a string or a field map).
func classifyError(err error, translator ut.Translator) (int, interface{}) {
	cause := errors.Cause(err)
	switch e := cause.(type) {
	case *echo.HTTPError:
		if e == middleware.ErrJWTMissing {
			return http.StatusUnauthorized, e.Message
		}
		if inner, ok := e.Internal.(*echo.HTTPError); ok {
			e = inner
		}
		return e.Code, e.Message
	case validator.ValidationErrors:
		fields := make(map[string]string, len(e))
		for _, fe := range e {
			fields[fe.Field()] = fe.Translate(translator)
		}
		return http.StatusBadRequest, fields
	case *core.ValidationError:
		if len(e.Fields) == 0 {
			return http.StatusBadRequest, e.Error()
		}
		fields := make(map[string]string, len(e.Fields))
		for _, fe := range e.Fields {
			fields[fe.Field] = fe.Error
		}
		return http.StatusBadRequest, fields
	}
	if status, ok := domainErrors[cause]; ok {
		return status, cause.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
