// File: protocol/processor.go
// License: Apache-2.0
//
// Processor serves exactly one request per accepted connection: a single
// read, a path classification, a template render, a single write, then an
// unconditional close. Per-connection I/O failures abort that one request
// silently; nothing propagates past the worker running the task.

package protocol

import (
	"net"
	"time"

	"github.com/hiperf-bench/pingpong/pool"
)

// Processor turns one accepted connection into one templated response.
// Safe for concurrent use: per-request state lives in pooled scratch.
type Processor struct {
	scratch *pool.ScratchPool
}

// NewProcessor builds a processor drawing buffers from sp.
func NewProcessor(sp *pool.ScratchPool) *Processor {
	if sp == nil {
		sp = pool.NewScratchPool(0, 0)
	}
	return &Processor{scratch: sp}
}

// Process handles a single connection end to end. The connection is closed
// on every path; read or parse failures produce no response at all.
func (p *Processor) Process(conn net.Conn) {
	defer conn.Close()

	s := p.scratch.Get()
	defer p.scratch.Put(s)

	n, err := conn.Read(s.Req)
	if err != nil || n <= 0 {
		return
	}

	route, ok := ClassifyRequest(s.Req[:n])
	if !ok {
		return
	}

	var now time.Time
	if route != RouteRoot {
		// The root template is fully static; skip the clock read for it.
		now = time.Now()
	}
	out := TemplateFor(route).Render(s.Resp[:0], now)

	// Best-effort delivery: a broken pipe here is the client's problem.
	_, _ = conn.Write(out)
}
