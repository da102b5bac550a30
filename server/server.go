// File: server/server.go
// License: Apache-2.0

package server

import (
	"net"
	"sync"

	"github.com/hiperf-bench/pingpong/api"
	"github.com/hiperf-bench/pingpong/internal/concurrency"
	"github.com/hiperf-bench/pingpong/pool"
	"github.com/hiperf-bench/pingpong/protocol"
	"github.com/hiperf-bench/pingpong/transport"
)

// Server aggregates the worker pool, scratch pool, processor, and listener
// behind one facade. Construct with NewServer, bind with Listen, block in
// Serve, stop with Shutdown.
type Server struct {
	cfg       *Config
	workers   *concurrency.WorkerPool
	processor *protocol.Processor
	listener  *transport.Listener

	shutdownCh chan struct{}
	doneCh     chan struct{}
	stopOnce   sync.Once
}

// NewServer builds a server from cfg (nil means DefaultConfig) with the
// given options applied on top. No sockets are touched until Listen.
func NewServer(cfg *Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	for _, opt := range opts {
		opt(cfg)
	}
	scratch := pool.NewScratchPool(cfg.ReadBufSize, cfg.WriteBufSize)
	return &Server{
		cfg:        cfg,
		workers:    concurrency.NewWorkerPool(cfg.Workers),
		processor:  protocol.NewProcessor(scratch),
		shutdownCh: make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Addr returns the bound address; valid only after a successful Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Workers reports the configured worker count.
func (s *Server) Workers() int {
	return s.workers.Size()
}

var _ api.GracefulShutdown = (*Server)(nil)
