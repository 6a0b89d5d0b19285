package handler

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// requestLogger binds the request ID set by the middleware, if any.
func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normKey normalizes a column name: lower case, punctuation and repeated
// spaces squashed out.
func normKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the actual header matching the requested name: exact
// first, then normalized, then containment either way. Headers are checked
// in sheet order, so the outcome is deterministic.
func resolveKey(headers []string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	for _, h := range headers {
		if h == want {
			return h
		}
	}
	nw := normKey(want)
	if nw == "" {
		return ""
	}
	for _, h := range headers {
		if normKey(h) == nw {
			return h
		}
	}
	for _, h := range headers {
		nh := normKey(h)
		if nh == "" {
			continue
		}
		if strings.Contains(nh, nw) || strings.Contains(nw, nh) {
			return h
		}
	}
	return ""
}

// columnValues pulls one column out of the row maps, preserving row order.
func columnValues(rows []map[string]string, key string) []string {
	out := make([]string, 0, len(rows))
	for _, rec := range rows {
		out = append(out, rec[key])
	}
	return out
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
