package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/stockwise/core"
)

const orderingParam = "ordering"

// userOrderingFields are the columns /admin/users can be sorted by.
var userOrderingFields = []string{"phone", "email", "created_at", "updated_at", "last_login"}

// bindOrdering reads "?ordering=field,-field" keeping only the allowed fields, in order.
// A "-" prefix sorts descending. Unknown and repeated fields are ignored.
func bindOrdering(ctx echo.Context, allowed ...string) []core.DBOrdering {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return nil
	}
	isAllowed := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		isAllowed[f] = true
	}

	var orderings []core.DBOrdering
	seen := make(map[string]bool)
	for _, field := range strings.Split(val, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")
		if !isAllowed[field] || seen[field] {
			continue
		}
		seen[field] = true
		orderings = append(orderings, core.DBOrdering{Field: field, Ascending: !descending})
	}
	return orderings
}
