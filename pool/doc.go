// Package pool
// License: Apache-2.0
//
// Reusable per-request scratch memory for the ping-pong server. Request
// parsing and response assembly both run against pooled byte slices so the
// hot path performs no per-request heap allocation.
package pool
