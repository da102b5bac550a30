// File: transport/listener.go
// License: Apache-2.0

package transport

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/hiperf-bench/pingpong/api"
)

// Backlog is the requested depth of the pending-connection queue. The
// kernel caps it at net.core.somaxconn; per-request hold times here are
// short enough that a deep backlog absorbs accept bursts.
const Backlog = 1024

// Listener wraps the passive socket and its accept loop.
type Listener struct {
	ln net.Listener
}

// Listen creates the listening socket on the wildcard address, applying
// the tuned socket options before bind. Any create/bind/listen failure is
// returned as a *BindError.
func Listen(port int) (*Listener, error) {
	lc := net.ListenConfig{Control: tuneListener}
	ln, err := lc.Listen(context.Background(), "tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, &BindError{Port: port, Err: err}
	}
	return &Listener{ln: ln}, nil
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// AcceptLoop blocks on accept until the listener is closed. Each accepted
// connection is wrapped in a task and handed to the sink by handle; a sink
// that has shut down refuses the task and the connection is closed
// unserved. A failed accept is logged and the loop continues; the error
// raised by Close is the expected quiet exit, not a fault.
func (l *Listener) AcceptLoop(handle func(net.Conn) bool) {
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("transport: accept: %v", err)
			continue
		}
		if tc, ok := conn.(*net.TCPConn); ok {
			_ = tc.SetNoDelay(true)
		}
		if !handle(conn) {
			conn.Close()
		}
	}
}

// Close shuts the listening socket, unblocking a pending accept.
func (l *Listener) Close() error {
	return l.ln.Close()
}

// Dispatch adapts a processor function and a task sink into an AcceptLoop
// handler: each connection becomes one task owned by exactly one worker.
func Dispatch(sink api.TaskSink, process func(net.Conn)) func(net.Conn) bool {
	return func(conn net.Conn) bool {
		return sink.Submit(func() { process(conn) })
	}
}
