package catalog

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	SortFieldNumber = "number"
	OrderAsc        = "asc"
	OrderDesc       = "desc"
)

// ListParams are the validated query parameters of a listing request.
type ListParams struct {
	Page     int
	PageSize int
	SortBy   string
	Order    string
	// Types holds the requested types, normalized, in request order.
	Types []string
}

// ParseListParams validates the listing query. Checks run in a fixed order and
// the first failure is returned.
func ParseListParams(query url.Values) (ListParams, error) {
	params := ListParams{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		SortBy:   SortFieldNumber,
		Order:    OrderAsc,
	}

	var err error
	if params.Page, err = intParam(query, "page", DefaultPage); err != nil {
		return ListParams{}, invalidArgument("Page and page_size must be integers.")
	}
	if params.PageSize, err = intParam(query, "page_size", DefaultPageSize); err != nil {
		return ListParams{}, invalidArgument("Page and page_size must be integers.")
	}
	if params.Page < 1 || params.PageSize < 1 {
		return ListParams{}, invalidArgument("Page and page_size must be positive integers.")
	}

	if query.Has("sort_by") {
		params.SortBy = query.Get("sort_by")
	}
	if params.SortBy != SortFieldNumber {
		return ListParams{}, invalidArgument("Can only sort by 'number'.")
	}

	if query.Has("order") {
		params.Order = strings.ToLower(query.Get("order"))
	}
	if params.Order != OrderAsc && params.Order != OrderDesc {
		return ListParams{}, invalidArgument("Order must be 'asc' or 'desc'.")
	}

	params.Types = ParseTypes(query.Get("type"))
	return params, nil
}

// ParseTypes splits a comma separated type filter, dropping empty tokens.
func ParseTypes(raw string) []string {
	types := make([]string, 0)
	for _, token := range strings.Split(raw, ",") {
		if t := strings.ToLower(strings.TrimSpace(token)); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// intParam parses an integer parameter. Values beyond the int range are
// clamped to math.MaxInt / math.MinInt rather than rejected.
func intParam(query url.Values, key string, fallback int) (int, error) {
	if !query.Has(key) {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(query.Get(key)))
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return n, err
}
