// Package transport owns the passive socket: creation with tuned options,
// bind, listen, and the accept loop that turns each accepted connection
// into one queued task.
// License: Apache-2.0
package transport
