// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that drain work before exit.
type GracefulShutdown interface {
	// Shutdown flushes pending work and releases resources.
	Shutdown() error
}
