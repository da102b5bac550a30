// File: internal/concurrency/taskqueue.go
// License: Apache-2.0
//
// TaskQueue is a blocking multi-producer/multi-consumer FIFO of tasks.
// Consumers park on a condition variable rather than spinning; the backing
// store is the eapache ring queue, which grows without per-element
// allocation churn.

package concurrency

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/hiperf-bench/pingpong/api"
)

// TaskQueue delivers each submitted task to exactly one consumer, in FIFO
// order per producer. After Close, Submit drops tasks silently while Take
// keeps draining whatever was queued before the close.
type TaskQueue struct {
	mu     sync.Mutex
	notify *sync.Cond
	fifo   *queue.Queue
	closed bool
}

// NewTaskQueue returns an empty, open queue.
func NewTaskQueue() *TaskQueue {
	q := &TaskQueue{fifo: queue.New()}
	q.notify = sync.NewCond(&q.mu)
	return q
}

// Submit appends a task and wakes one waiting consumer. It returns false
// once shutdown has begun; the task is dropped in that case.
func (q *TaskQueue) Submit(t api.Task) bool {
	if t == nil {
		return false
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.fifo.Add(t)
	q.mu.Unlock()
	q.notify.Signal()
	return true
}

// Take blocks until a task is available or until the queue is closed and
// empty. The second return value is false only for the shutdown signal;
// queued tasks are still delivered after Close.
func (q *TaskQueue) Take() (api.Task, bool) {
	q.mu.Lock()
	for q.fifo.Length() == 0 && !q.closed {
		q.notify.Wait()
	}
	if q.fifo.Length() == 0 {
		q.mu.Unlock()
		return nil, false
	}
	t := q.fifo.Remove().(api.Task)
	q.mu.Unlock()
	return t, true
}

// Close marks the queue as shut down and wakes every parked consumer.
// Idempotent.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notify.Broadcast()
}

// Len reports the number of queued tasks.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.fifo.Length()
}

var _ api.TaskSink = (*TaskQueue)(nil)
