// File: cpuset/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for CPU set parsing.

package cpuset

import "github.com/brickingsoft/errors"

var (
	// ErrInvalidSize is returned when a set is requested for a non-positive CPU count.
	ErrInvalidSize = errors.Define("cpuset: invalid cpu count")
	// ErrSyntax reports a malformed range list (bad number, start > end, zero stride).
	ErrSyntax = errors.Define("cpuset: invalid cpu list")
	// ErrOutOfRange reports a CPU index beyond the set capacity in strict list parsing.
	ErrOutOfRange = errors.Define("cpuset: cpu index out of range")
	// ErrInvalidMask reports a non-hex character in a mask string.
	ErrInvalidMask = errors.Define("cpuset: invalid cpu mask")
)

const (
	errMetaPkgKey   = "pkg"
	errMetaPkgVal   = "cpuset"
	errMetaTokenKey = "token"
	errMetaCPUKey   = "cpu"
	errMetaCharKey  = "char"
)

// IsSyntax reports whether err is a range-list syntax error.
func IsSyntax(err error) bool {
	return errors.Is(err, ErrSyntax)
}

// IsOutOfRange reports whether err is a strict-mode capacity violation.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
