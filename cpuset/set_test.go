// File: cpuset/set_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuset

import (
	"testing"

	"github.com/brickingsoft/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundsToWords(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)
	assert.Equal(t, 64, s.SizeInBits())
	assert.Equal(t, 8, s.SizeInBytes())

	s, err = New(65)
	require.NoError(t, err)
	assert.Equal(t, 128, s.SizeInBits())
	assert.Equal(t, 16, s.SizeInBytes())
	assert.Len(t, s.Words(), 2)
}

func TestNewRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -4} {
		_, err := New(n)
		assert.True(t, errors.Is(err, ErrInvalidSize))
	}
}

func TestSetBounds(t *testing.T) {
	s := mustSet(t, 64)
	s.Set(-1)
	s.Set(64)
	s.Set(1000)
	assert.Zero(t, s.Count())
	assert.False(t, s.IsSet(-1))
	assert.False(t, s.IsSet(64))

	s.Set(0)
	s.Set(63)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, uint64(1<<63|1), s.Words()[0])

	s.Clear(63)
	s.Clear(99)
	assert.Equal(t, []int{0}, s.CPUs())

	s.Zero()
	assert.Zero(t, s.Count())
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := mustSet(t, 64, 1, 5)
	b := mustSet(t, 256, 1, 5)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.Set(200)
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))
}

func TestCloneIsIndependent(t *testing.T) {
	a := mustSet(t, 64, 3)
	b := a.Clone()
	b.Set(4)
	assert.Equal(t, []int{3}, a.CPUs())
	assert.Equal(t, []int{3, 4}, b.CPUs())
}

func TestIndexOf(t *testing.T) {
	sets := []*Set{mustSet(t, 64, 1), nil, mustSet(t, 64, 2, 3), mustSet(t, 64, 3)}
	idx, ok := IndexOf(3, sets)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = IndexOf(9, sets)
	assert.False(t, ok)
}

func TestMaxCPUs(t *testing.T) {
	assert.GreaterOrEqual(t, MaxCPUs(), 1)
}
