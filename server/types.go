// File: server/types.go
// License: Apache-2.0

package server

import "github.com/hiperf-bench/pingpong/internal/concurrency"

// Config holds all server configuration, immutable once the server runs.
type Config struct {
	Port         int // TCP port bound on the wildcard address
	Workers      int // worker goroutine count; 0 means the default formula
	ReadBufSize  int // per-request read buffer size in bytes
	WriteBufSize int // initial response scratch capacity in bytes
}

// DefaultConfig returns the canonical configuration: port 8000, an
// oversubscribed worker pool, an 8 KiB single-read request buffer.
func DefaultConfig() *Config {
	return &Config{
		Port:         8000,
		Workers:      concurrency.DefaultWorkers(),
		ReadBufSize:  8192,
		WriteBufSize: 1024,
	}
}
