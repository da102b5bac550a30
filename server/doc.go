// Package server is the lifecycle controller and facade for the ping-pong
// server: it wires the worker pool, scratch buffers, request processor,
// and listener together, and owns startup ordering and graceful shutdown.
// License: Apache-2.0
package server
