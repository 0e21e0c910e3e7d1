package params

import (
	"strconv"

	"vetcare-api/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams holds the standard list-query knobs parsed from the request.
type QueryParams struct {
	Page   int
	Limit  int
	Search string
}

// Parse reads page/limit/search query parameters with sane bounds.
func Parse(c echo.Context) QueryParams {
	p := QueryParams{
		Page:   constants.DefaultPage,
		Limit:  constants.DefaultLimit,
		Search: c.QueryParam("search"),
	}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > constants.MaxLimit {
		p.Limit = constants.MaxLimit
	}
	return p
}

// Slice returns the [start, end) bounds of the requested page over a list of
// length total.
func (p QueryParams) Slice(total int) (int, int) {
	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}
