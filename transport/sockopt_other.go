//go:build !linux

// File: transport/sockopt_other.go
// License: Apache-2.0
//
// Non-Linux stub: the Go runtime already sets address reuse on stream
// listeners where the platform supports it, and per-connection TCP_NODELAY
// is applied after accept.

package transport

import "syscall"

func tuneListener(network, address string, c syscall.RawConn) error {
	return nil
}
