// File: server/run.go
// Startup ordering, the serve loop, and graceful teardown.
// License: Apache-2.0

package server

import (
	"errors"
	"log"
	"net"

	"github.com/hiperf-bench/pingpong/transport"
)

// ErrNotListening is returned by Serve when Listen has not succeeded.
var ErrNotListening = errors.New("server: Serve called before Listen")

// Listen binds the listening socket. Failures come back as
// *transport.BindError and must abort startup.
func (s *Server) Listen() error {
	ln, err := transport.Listen(s.cfg.Port)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Serve starts the worker pool, then runs the accept loop, and blocks
// until Shutdown is called. The pool always starts before the first
// accept so no connection can arrive with nobody to service it.
func (s *Server) Serve() error {
	if s.listener == nil {
		return ErrNotListening
	}
	defer close(s.doneCh)

	s.workers.Start()

	log.Printf("pingpong: %d workers, listening on http://localhost:%d", s.workers.Size(), s.addrPort())
	log.Printf("pingpong: SO_REUSEADDR on, TCP_NODELAY best-effort, backlog %d requested", transport.Backlog)

	acceptDone := make(chan struct{})
	go func() {
		defer close(acceptDone)
		s.listener.AcceptLoop(transport.Dispatch(s.workers, s.processor.Process))
	}()

	<-s.shutdownCh

	// Teardown order: stop accepting, let the loop wind down, then drain
	// queued tasks and join the workers.
	s.listener.Close()
	<-acceptDone
	s.workers.Stop()

	log.Printf("pingpong: server stopped")
	return nil
}

// Run is Listen followed by Serve.
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown signals Serve to stop and waits for teardown to complete:
// listener closed, queue drained, all workers joined. Idempotent and safe
// to call from any goroutine while Serve is running.
func (s *Server) Shutdown() error {
	s.stopOnce.Do(func() { close(s.shutdownCh) })
	<-s.doneCh
	return nil
}

func (s *Server) addrPort() int {
	if addr := s.Addr(); addr != nil {
		if tcp, ok := addr.(*net.TCPAddr); ok {
			return tcp.Port
		}
	}
	return s.cfg.Port
}
