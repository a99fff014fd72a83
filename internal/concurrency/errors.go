// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for concurrency module.

package concurrency

import "github.com/brickingsoft/errors"

var (
	// ErrInvalidCapacity indicates a queue capacity below one.
	ErrInvalidCapacity = errors.Define("invalid queue capacity")
)

const (
	errMetaPkgKey      = "pkg"
	errMetaPkgVal      = "concurrency"
	errMetaCapacityKey = "capacity"
)
