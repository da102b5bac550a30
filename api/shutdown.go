// File: api/shutdown.go
// Package api defines the unified graceful shutdown contract.
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that can stop all internal
// services and release their resources in an orderly fashion.
type GracefulShutdown interface {
	// Shutdown performs an orderly stop. It is idempotent and returns an
	// error only when teardown itself fails.
	Shutdown() error
}
