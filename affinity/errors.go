// File: affinity/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import "github.com/brickingsoft/errors"

var (
	// ErrNotConfigured means the CPU set environment variable is absent; pinning is off.
	ErrNotConfigured = errors.Define("affinity: cpu set not configured")
	// ErrInvalidCPUSet wraps a parse failure of the configured CPU list.
	ErrInvalidCPUSet = errors.Define("affinity: invalid cpu set")
	// ErrEmptySet means the configured list selects no usable CPU.
	ErrEmptySet = errors.Define("affinity: empty cpu set")
	// ErrBindFailed reports that one or more threads could not be pinned.
	ErrBindFailed = errors.Define("affinity: bind failed")
	// ErrNotSupported is returned on platforms without thread affinity control.
	ErrNotSupported = errors.Define("affinity: not supported on this platform")
)

const (
	errMetaPkgKey    = "pkg"
	errMetaPkgVal    = "affinity"
	errMetaEnvKey    = "env"
	errMetaValueKey  = "value"
	errMetaThreadKey = "thread"
	errMetaFailedKey = "failed"
)

// IsNotConfigured reports whether err only says that pinning was not requested.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}
