package catalog

import (
	"net/url"
	"strconv"
)

// BuildPageURL returns base with query re-encoded and page replaced.
// All other parameters, including repeated ones, are kept.
func BuildPageURL(base *url.URL, query url.Values, page int) string {
	params := make(url.Values, len(query)+1)
	for key, values := range query {
		params[key] = append([]string(nil), values...)
	}
	params.Set("page", strconv.Itoa(page))

	target := url.URL{
		Scheme:   base.Scheme,
		Host:     base.Host,
		Path:     base.Path,
		RawQuery: params.Encode(),
	}
	return target.String()
}
