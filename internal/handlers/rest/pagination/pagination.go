// Package pagination parses the skip/limit query parameters shared by
// every collection endpoint.
package pagination

import (
	"errors"
	"net/http"
	"strconv"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

var ErrInvalidPagination = errors.New("invalid pagination parameters")

func FromQuery(r *http.Request) (skip, limit int64, err error) {
	skip, limit = DefaultSkip, DefaultLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || skip < 0 {
			return 0, 0, ErrInvalidPagination
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return 0, 0, ErrInvalidPagination
		}
	}

	return skip, limit, nil
}
