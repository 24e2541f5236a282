package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/stockwise/core/market"
)

type marketApi struct {
	svc *market.Service
}

func registerMarketAPI(g *echo.Group, svc *market.Service) {
	api := marketApi{svc: svc}
	g.GET("/quotes", api.quote)
}

// Handlers

func (api *marketApi) quote(ctx echo.Context) error {
	lookup, err := api.svc.Quote(ctx.Request().Context(), ctx.QueryParam("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lookup)
}
