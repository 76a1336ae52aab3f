package models

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the page window used when the client does not supply
// a usable limit.
const DefaultPageSize = 12

// ProductQuery is the translated form of the list endpoint's query string:
// an exact-match/range filter, a sort order, and a page window.
type ProductQuery struct {
	Page      int
	Limit     int
	Brand     string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	SortField string
	SortDesc  bool
}

// Offset returns the number of matching products to skip before the
// requested page.
func (q ProductQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// HasSort reports whether the client asked for an explicit order.
func (q ProductQuery) HasSort() bool {
	return q.SortField != ""
}

// ParseProductQuery maps raw query parameters to a ProductQuery with
// permissive defaults: un-parseable or non-positive page/limit fall back to
// their defaults, un-parseable price bounds are treated as absent, and a
// sort direction other than "desc" means ascending. It never fails.
func ParseProductQuery(params map[string]string) ProductQuery {
	query := ProductQuery{
		Page:     positiveIntOr(params["page"], 1),
		Limit:    positiveIntOr(params["limit"], DefaultPageSize),
		Brand:    params["brand"],
		Category: params["category"],
		MinPrice: floatOrNil(params["minPrice"]),
		MaxPrice: floatOrNil(params["maxPrice"]),
	}

	if sort := params["sort"]; sort != "" {
		field, direction, _ := strings.Cut(sort, ":")
		query.SortField = field
		query.SortDesc = direction == "desc"
	}

	return query
}

func positiveIntOr(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func floatOrNil(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
