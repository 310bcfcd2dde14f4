package helpers

import (
	"net/http"
	"strconv"
)

// ParseLimit reads an optional positive "limit" query parameter. Missing or
// invalid values yield 0, which lets the service apply its own default.
func ParseLimit(r *http.Request) int {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0
	}
	return v
}
