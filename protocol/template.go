// File: protocol/template.go
// License: Apache-2.0
//
// Pre-compiled HTTP response templates, one per route. Each template is an
// immutable byte pattern with at most one substitution slot (a fixed-width
// UTC timestamp), so Content-Length is a compile-once constant and the hot
// path only appends bytes into caller-owned scratch.

package protocol

import (
	"fmt"
	"time"
)

// Template is an immutable response pattern. Timestamped templates are
// split around the slot; static ones hold the whole wire image.
type Template struct {
	static []byte
	prefix []byte
	suffix []byte
}

// The Connection header advertises keep-alive on the 200 routes while the
// server closes after one response. Inherited wire behavior; naive clients
// depend on the header being present.
var (
	rootTemplate = newStaticTemplate(
		"200 OK", "keep-alive", "max-age=3600",
		`{"message":"Welcome to the Ping-Pong Server!","endpoints":{"ping":"/ping","health":"/health"}}`,
	)
	pingTemplate = newTimestampedTemplate(
		"200 OK", "keep-alive", "no-cache",
		`{"message":"pong","timestamp":"`, `","success":true}`,
	)
	healthTemplate = newTimestampedTemplate(
		"200 OK", "keep-alive", "no-cache",
		`{"status":"healthy","timestamp":"`, `"}`,
	)
	notFoundTemplate = newTimestampedTemplate(
		"404 Not Found", "close", "no-cache",
		`{"message":"Not Found","timestamp":"`, `","success":false}`,
	)
)

// TemplateFor returns the process-wide template for a route.
func TemplateFor(r Route) *Template {
	switch r {
	case RoutePing:
		return pingTemplate
	case RouteHealth:
		return healthTemplate
	case RouteRoot:
		return rootTemplate
	default:
		return notFoundTemplate
	}
}

// Render appends the full response for this template to dst, substituting
// now into the timestamp slot when the template has one.
func (t *Template) Render(dst []byte, now time.Time) []byte {
	if t.static != nil {
		return append(dst, t.static...)
	}
	dst = append(dst, t.prefix...)
	dst = appendTimestamp(dst, now)
	return append(dst, t.suffix...)
}

// Len returns the rendered response size in bytes.
func (t *Template) Len() int {
	if t.static != nil {
		return len(t.static)
	}
	return len(t.prefix) + TimestampLen + len(t.suffix)
}

func headerBlock(status, connection, cacheControl string, contentLength int) string {
	return fmt.Sprintf(
		"HTTP/1.1 %s\r\n"+
			"Content-Type: application/json\r\n"+
			"Content-Length: %d\r\n"+
			"Access-Control-Allow-Origin: *\r\n"+
			"Connection: %s\r\n"+
			"Cache-Control: %s\r\n"+
			"\r\n",
		status, contentLength, connection, cacheControl)
}

func newStaticTemplate(status, connection, cacheControl, body string) *Template {
	return &Template{
		static: []byte(headerBlock(status, connection, cacheControl, len(body)) + body),
	}
}

func newTimestampedTemplate(status, connection, cacheControl, bodyPrefix, bodySuffix string) *Template {
	length := len(bodyPrefix) + TimestampLen + len(bodySuffix)
	return &Template{
		prefix: []byte(headerBlock(status, connection, cacheControl, length) + bodyPrefix),
		suffix: []byte(bodySuffix),
	}
}
