package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/stockwise/core/symbol"
)

type symbolApi struct {
	table *symbol.Table
}

func registerSymbolAPI(g *echo.Group, table *symbol.Table) {
	api := symbolApi{table: table}

	sg := g.Group("/symbols")
	sg.GET("/resolve", api.resolve)
	sg.GET("/suggest", api.suggest)
	sg.GET("/:code", api.retrieve)
}

type SymbolQuery struct {
	Query string `query:"q"`
	Limit int    `query:"limit"`
}

// Handlers

func (api *symbolApi) resolve(ctx echo.Context) error {
	var q SymbolQuery
	if err := ctx.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	return ctx.JSON(http.StatusOK, api.table.Resolve(q.Query))
}

func (api *symbolApi) suggest(ctx echo.Context) error {
	var q SymbolQuery
	if err := ctx.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if q.Limit <= 0 || q.Limit > symbol.DefaultSuggestLimit {
		q.Limit = symbol.DefaultSuggestLimit
	}
	return ctx.JSON(http.StatusOK, api.table.Suggest(q.Query, q.Limit))
}

func (api *symbolApi) retrieve(ctx echo.Context) error {
	c, ok := api.table.Lookup(ctx.Param("code"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "company not found")
	}
	return ctx.JSON(http.StatusOK, c)
}
