// File: protocol/route.go
// License: Apache-2.0

package protocol

import "bytes"

// Route is the closed set of destinations an inbound path can classify to.
type Route int

const (
	RouteRoot Route = iota
	RoutePing
	RouteHealth
	RouteNotFound
)

// String returns the canonical path for the route.
func (r Route) String() string {
	switch r {
	case RouteRoot:
		return "/"
	case RoutePing:
		return "/ping"
	case RouteHealth:
		return "/health"
	default:
		return "/404"
	}
}

var (
	pingPrefix   = []byte("/ping")
	healthPrefix = []byte("/health")
	rootToken    = []byte("/ ")
)

// ClassifyRequest extracts the path token from the request line and maps it
// to a Route. The path starts after the first space; `/ping` and `/health`
// match only when followed immediately by a space or '?', so `/pingx` does
// not match. The second return value is false when the buffer holds no
// space at all (malformed request line, no response owed).
func ClassifyRequest(req []byte) (Route, bool) {
	i := bytes.IndexByte(req, ' ')
	if i < 0 {
		return RouteNotFound, false
	}
	path := req[i+1:]
	switch {
	case matchesPrefix(path, pingPrefix):
		return RoutePing, true
	case matchesPrefix(path, healthPrefix):
		return RouteHealth, true
	case bytes.HasPrefix(path, rootToken):
		return RouteRoot, true
	default:
		return RouteNotFound, true
	}
}

// matchesPrefix reports whether b starts with prefix followed by a space or
// '?'. A prefix that runs to the end of the buffer does not match.
func matchesPrefix(b, prefix []byte) bool {
	if !bytes.HasPrefix(b, prefix) || len(b) <= len(prefix) {
		return false
	}
	c := b[len(prefix)]
	return c == ' ' || c == '?'
}
