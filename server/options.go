// File: server/options.go
// Functional options for the server facade.
// License: Apache-2.0

package server

// Option customizes server initialization.
type Option func(*Config)

// WithPort overrides the listening port. Port 0 asks the OS for an
// ephemeral port, which the tests rely on.
func WithPort(port int) Option {
	return func(c *Config) {
		c.Port = port
	}
}

// WithWorkers sets the worker goroutine count.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithReadBufSize sets the single-read request buffer size.
func WithReadBufSize(n int) Option {
	return func(c *Config) {
		c.ReadBufSize = n
	}
}
