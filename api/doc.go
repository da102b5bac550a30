// Package api defines the small set of contracts shared between the
// concurrency, transport, and server layers of the ping-pong server.
// License: Apache-2.0
package api
