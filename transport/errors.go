// File: transport/errors.go
// License: Apache-2.0

package transport

import "fmt"

// BindError wraps a socket create/bind/listen failure. Bind failures are
// the only errors that surface to the process boundary; callers should
// abort startup on one.
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind :%d: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }
