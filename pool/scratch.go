// File: pool/scratch.go
// License: Apache-2.0

package pool

import "sync"

// Scratch is one worker's reusable request/response buffer pair. Req is
// sized for the single-read request parse; Resp backs template rendering.
type Scratch struct {
	Req  []byte
	Resp []byte
}

// ScratchPool recycles Scratch buffers across requests via sync.Pool.
type ScratchPool struct {
	p        sync.Pool
	reqSize  int
	respSize int
}

// NewScratchPool builds a pool handing out buffers of the given sizes.
func NewScratchPool(reqSize, respSize int) *ScratchPool {
	if reqSize <= 0 {
		reqSize = 8192
	}
	if respSize <= 0 {
		respSize = 1024
	}
	sp := &ScratchPool{reqSize: reqSize, respSize: respSize}
	sp.p.New = func() any {
		return &Scratch{
			Req:  make([]byte, sp.reqSize),
			Resp: make([]byte, 0, sp.respSize),
		}
	}
	return sp
}

// Get returns a scratch buffer pair, reusing a previous one when possible.
func (sp *ScratchPool) Get() *Scratch {
	return sp.p.Get().(*Scratch)
}

// Put returns a scratch to the pool. The caller must not retain any slice
// derived from it afterwards.
func (sp *ScratchPool) Put(s *Scratch) {
	if s == nil {
		return
	}
	s.Resp = s.Resp[:0]
	sp.p.Put(s)
}

// ReqSize reports the request buffer size handed out by Get.
func (sp *ScratchPool) ReqSize() int { return sp.reqSize }
