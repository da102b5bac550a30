// File: api/task.go
// License: Apache-2.0

package api

// Task is one heap-erased unit of queued work, typically a closure over a
// single accepted connection. A Task is consumed exactly once by exactly
// one worker and discarded after invocation.
type Task func()

// TaskSink accepts tasks for asynchronous execution.
type TaskSink interface {
	// Submit enqueues a task. It returns false if the sink has already
	// begun shutdown, in which case the task is dropped.
	Submit(Task) bool
}
