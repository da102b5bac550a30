// Tests for request-line path classification.
// License: Apache-2.0

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRequest(t *testing.T) {
	tests := []struct {
		name  string
		req   string
		route Route
		ok    bool
	}{
		{"root", "GET / HTTP/1.1\r\n\r\n", RouteRoot, true},
		{"ping", "GET /ping HTTP/1.1\r\n\r\n", RoutePing, true},
		{"ping with query", "GET /ping?x=1 HTTP/1.1\r\n\r\n", RoutePing, true},
		{"health", "GET /health HTTP/1.1\r\n\r\n", RouteHealth, true},
		{"health with query", "GET /health?verbose HTTP/1.1\r\n\r\n", RouteHealth, true},
		{"pingx is not ping", "GET /pingx HTTP/1.1\r\n\r\n", RouteNotFound, true},
		{"pingsomething is not ping", "GET /pingsomething HTTP/1.1\r\n\r\n", RouteNotFound, true},
		{"healthz is not health", "GET /healthz HTTP/1.1\r\n\r\n", RouteNotFound, true},
		{"unknown path", "GET /missing HTTP/1.1\r\n\r\n", RouteNotFound, true},
		{"explicit 404", "GET /404 HTTP/1.1\r\n\r\n", RouteNotFound, true},
		{"post method accepted", "POST /ping HTTP/1.1\r\n\r\n", RoutePing, true},
		{"path at end of buffer", "GET /ping", RouteNotFound, true},
		{"no space at all", "GARBAGE", RouteNotFound, false},
		{"empty request", "", RouteNotFound, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			route, ok := ClassifyRequest([]byte(tc.req))
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.route, route)
			}
		})
	}
}

func TestRouteString(t *testing.T) {
	assert.Equal(t, "/", RouteRoot.String())
	assert.Equal(t, "/ping", RoutePing.String())
	assert.Equal(t, "/health", RouteHealth.String())
	assert.Equal(t, "/404", RouteNotFound.String())
}
