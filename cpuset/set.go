// File: cpuset/set.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Set is a bounds-checked CPU bitset packed into 64-bit words, bit i of word
// i/64 standing for CPU i. This matches the kernel cpu_set_t layout on
// little-endian machines.

package cpuset

import (
	"math/bits"
	"strconv"

	"github.com/brickingsoft/errors"
)

const wordBits = 64

// Set is a fixed-capacity CPU bitset. The zero value has no capacity.
type Set struct {
	words []uint64
	nbits int
}

// New allocates an empty set able to hold ncpus CPUs. Capacity is rounded up
// to the next multiple of 64.
func New(ncpus int) (*Set, error) {
	if ncpus <= 0 {
		return nil, errors.From(
			ErrInvalidSize,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaCPUKey, strconv.Itoa(ncpus)),
		)
	}
	nwords := (ncpus + wordBits - 1) / wordBits
	return &Set{
		words: make([]uint64, nwords),
		nbits: nwords * wordBits,
	}, nil
}

// SizeInBits returns the capacity of the set.
func (s *Set) SizeInBits() int {
	return s.nbits
}

// SizeInBytes returns the storage size, as passed to sched_setaffinity(2).
func (s *Set) SizeInBytes() int {
	return len(s.words) * (wordBits / 8)
}

// Set adds cpu to the set. Indices outside [0, SizeInBits) are ignored.
func (s *Set) Set(cpu int) {
	if cpu < 0 || cpu >= s.nbits {
		return
	}
	s.words[cpu/wordBits] |= 1 << (uint(cpu) % wordBits)
}

// Clear removes cpu from the set.
func (s *Set) Clear(cpu int) {
	if cpu < 0 || cpu >= s.nbits {
		return
	}
	s.words[cpu/wordBits] &^= 1 << (uint(cpu) % wordBits)
}

// IsSet reports whether cpu is in the set.
func (s *Set) IsSet(cpu int) bool {
	if cpu < 0 || cpu >= s.nbits {
		return false
	}
	return s.words[cpu/wordBits]&(1<<(uint(cpu)%wordBits)) != 0
}

// Zero clears every bit.
func (s *Set) Zero() {
	clear(s.words)
}

// Count returns the number of CPUs in the set.
func (s *Set) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Equal reports whether both sets contain the same CPUs. Capacity is not compared.
func (s *Set) Equal(o *Set) bool {
	a, b := s.words, o.words
	if len(a) < len(b) {
		a, b = b, a
	}
	for i := range a {
		var w uint64
		if i < len(b) {
			w = b[i]
		}
		if a[i] != w {
			return false
		}
	}
	return true
}

// CPUs returns the set members in ascending order.
func (s *Set) CPUs() []int {
	out := make([]int, 0, s.Count())
	for i, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, i*wordBits+tz)
			w &^= 1 << uint(tz)
		}
	}
	return out
}

// Words exposes the packed storage. Callers must not retain it past the set.
func (s *Set) Words() []uint64 {
	return s.words
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{words: make([]uint64, len(s.words)), nbits: s.nbits}
	copy(c.words, s.words)
	return c
}

// IndexOf returns the index of the first set in sets that contains cpu.
func IndexOf(cpu int, sets []*Set) (int, bool) {
	for i, s := range sets {
		if s != nil && s.IsSet(cpu) {
			return i, true
		}
	}
	return -1, false
}
