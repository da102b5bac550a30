//go:build linux

// File: transport/sockopt_linux.go
// License: Apache-2.0
//
// Listener socket tuning for Linux. Address reuse is mandatory; port reuse
// and Nagle disabling are platform-dependent best effort.

package transport

import (
	"log"
	"syscall"

	"golang.org/x/sys/unix"
)

// tuneListener runs inside net.ListenConfig.Control on the raw fd before
// bind. A SO_REUSEADDR failure aborts the listen; SO_REUSEPORT and
// TCP_NODELAY failures are logged and ignored.
func tuneListener(network, address string, c syscall.RawConn) error {
	var optErr error
	err := c.Control(func(fd uintptr) {
		optErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		if optErr != nil {
			return
		}
		if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
			log.Printf("transport: SO_REUSEPORT not supported, continuing: %v", err)
		}
		if err := unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1); err != nil {
			log.Printf("transport: TCP_NODELAY not set on listener: %v", err)
		}
	})
	if err != nil {
		return err
	}
	return optErr
}
