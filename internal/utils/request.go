package utils

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

// ClientIP returns the caller's address without port. RemoteAddr is expected to
// have been rewritten from proxy headers by the router's RealIP middleware.
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// ParsePagination reads limit/offset query params (limit default 20, max 100)
func ParsePagination(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	limit = 20
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}
	if v := strings.TrimSpace(q.Get("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
