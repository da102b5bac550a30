// Package protocol
// License: Apache-2.0
//
// Minimal HTTP/1.1 request handling for the ping-pong server. Only the
// request line's path token is inspected; responses are emitted from
// pre-compiled byte templates with a single optional timestamp slot. The
// package holds no mutable state after init and needs no locks.
package protocol
