package utils

import (
	"net/url"
	"strconv"
)

// ParsePagination reads skip/limit query parameters with fallbacks.
// Negative or unparsable values fall back to the defaults; limit is capped
// at maxLimit.
func ParsePagination(q url.Values, defaultLimit, maxLimit int) (skip, limit int) {
	skip = 0
	if v, err := strconv.Atoi(q.Get("skip")); err == nil && v >= 0 {
		skip = v
	}

	limit = defaultLimit
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}
