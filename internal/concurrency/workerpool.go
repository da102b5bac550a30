// File: internal/concurrency/workerpool.go
// License: Apache-2.0
//
// WorkerPool runs a fixed number of long-lived goroutines draining a
// TaskQueue. The pool owns the queue: closing the pool closes the queue,
// and workers exit only after the queue has drained.

package concurrency

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hiperf-bench/pingpong/api"
)

// DefaultWorkers returns max(4, 2 × available parallelism). The
// over-subscription is deliberate: tasks block on socket I/O, not CPU.
func DefaultWorkers() int {
	n := 2 * runtime.NumCPU()
	if n < 4 {
		n = 4
	}
	return n
}

// WorkerPool dispatches tasks across a fixed set of worker goroutines.
type WorkerPool struct {
	queue   *TaskQueue
	size    int
	wg      sync.WaitGroup
	started atomic.Bool
	stopped atomic.Bool
}

// NewWorkerPool creates a pool of n workers around a fresh queue. A
// non-positive n falls back to DefaultWorkers.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = DefaultWorkers()
	}
	return &WorkerPool{queue: NewTaskQueue(), size: n}
}

// Start spawns the worker goroutines. Calling Start twice is a no-op.
func (p *WorkerPool) Start() {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
}

// Submit hands a task to the pool. Returns false after Stop has begun.
func (p *WorkerPool) Submit(t api.Task) bool {
	return p.queue.Submit(t)
}

// Stop closes the queue and joins all workers. Queued tasks are drained
// before workers exit. Idempotent; must not race with Start.
func (p *WorkerPool) Stop() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	p.queue.Close()
	p.wg.Wait()
}

// Size reports the configured worker count.
func (p *WorkerPool) Size() int {
	return p.size
}

func (p *WorkerPool) run(id int) {
	defer p.wg.Done()
	for {
		t, ok := p.queue.Take()
		if !ok {
			return
		}
		p.safeExecute(id, t)
	}
}

// safeExecute isolates task faults: a panic inside one task is logged and
// the worker resumes its loop.
func (p *WorkerPool) safeExecute(id int, t api.Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("worker %d: task panic recovered: %v", id, r)
		}
	}()
	t()
}

var _ api.TaskSink = (*WorkerPool)(nil)
