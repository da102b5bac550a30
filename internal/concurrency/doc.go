// Package concurrency
// License: Apache-2.0
//
// Producer/consumer machinery for the ping-pong server: a blocking FIFO
// task queue and the fixed-size worker pool that drains it. The queue is
// the only piece of mutable state shared between the accept thread and the
// workers; everything downstream of a dequeue runs lock-free.
package concurrency
