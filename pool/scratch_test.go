// License: Apache-2.0

package pool_test

import (
	"testing"

	"github.com/hiperf-bench/pingpong/pool"
)

func TestScratchSizes(t *testing.T) {
	sp := pool.NewScratchPool(8192, 1024)
	s := sp.Get()
	if len(s.Req) != 8192 {
		t.Errorf("expected 8192-byte request buffer, got %d", len(s.Req))
	}
	if cap(s.Resp) < 1024 {
		t.Errorf("expected response capacity >= 1024, got %d", cap(s.Resp))
	}
	sp.Put(s)
}

func TestScratchReuse(t *testing.T) {
	sp := pool.NewScratchPool(128, 64)
	s1 := sp.Get()
	s1.Resp = append(s1.Resp, "leftover"...)
	sp.Put(s1)

	s2 := sp.Get()
	// a recycled scratch comes back with an empty response slice
	if len(s2.Resp) != 0 {
		t.Errorf("expected reset response slice, got %d bytes", len(s2.Resp))
	}
}

func TestScratchDefaults(t *testing.T) {
	sp := pool.NewScratchPool(0, 0)
	if sp.ReqSize() != 8192 {
		t.Errorf("expected default request size 8192, got %d", sp.ReqSize())
	}
}
