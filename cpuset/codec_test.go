// File: cpuset/codec_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuset

import (
	"math/rand"
	"testing"

	"github.com/brickingsoft/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, ncpus int, cpus ...int) *Set {
	t.Helper()
	s, err := New(ncpus)
	require.NoError(t, err)
	for _, c := range cpus {
		s.Set(c)
	}
	return s
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		name string
		cpus []int
		want string
	}{
		{"empty", nil, ""},
		{"single", []int{7}, "7"},
		{"pair", []int{3, 4}, "3,4"},
		{"run", []int{3, 4, 5}, "3-5"},
		{"mixed", []int{0, 1, 3, 4, 5, 9}, "0,1,3-5,9"},
		{"word boundary", []int{62, 63, 64, 65}, "62-65"},
		{"last bit", []int{127}, "127"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatList(mustSet(t, 128, tt.cpus...)))
		})
	}
}

func TestFormatMask(t *testing.T) {
	tests := []struct {
		name string
		cpus []int
		want string
	}{
		{"empty", nil, "0"},
		{"cpu0", []int{0}, "1"},
		{"low nibble", []int{0, 1, 2, 3}, "f"},
		{"second nibble", []int{4}, "10"},
		{"mixed", []int{0, 1, 3, 4, 5, 9}, "23b"},
		{"high", []int{127}, "80000000000000000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMask(mustSet(t, 128, tt.cpus...)))
		})
	}
}

func TestParseListStride(t *testing.T) {
	s, err := ParseList("2-10:2", 16, true)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, s.CPUs())
}

func TestParseListGrammar(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", []int{}},
		{"0", []int{0}},
		{"0,1,3-5,9", []int{0, 1, 3, 4, 5, 9}},
		{"1-7:3", []int{1, 4, 7}},
		{"0-3:10", []int{0}},
		{"5-5", []int{5}},
		{"3,1,3", []int{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ParseList(tt.in, 64, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.CPUs())
		})
	}
}

func TestParseListSyntaxErrors(t *testing.T) {
	for _, in := range []string{"5-2", "a", "1,", ",1", "1,,2", "-1", "1-", "1-3:", "1-3:0", "1x", "1-3:2x", " 1", "1:2", "99999999999"} {
		t.Run(in, func(t *testing.T) {
			s, err := New(64)
			require.NoError(t, err)
			s.Set(1)
			err = s.ParseList(in, false)
			require.Error(t, err)
			assert.True(t, IsSyntax(err), "got %v", err)
			assert.Zero(t, s.Count())
		})
	}
}

func TestParseListOutOfRange(t *testing.T) {
	_, err := ParseList("0,70", 64, true)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))
	assert.False(t, IsSyntax(err))

	s, err := ParseList("0,62-70,1000", 64, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 62, 63}, s.CPUs())
}

func TestParseListHugeRangeIgnored(t *testing.T) {
	s, err := ParseList("0-4294967295", 64, false)
	require.NoError(t, err)
	assert.Equal(t, 64, s.Count())
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"0", []int{}},
		{"1", []int{0}},
		{"0x1", []int{0}},
		{"23b", []int{0, 1, 3, 4, 5, 9}},
		{"F0", []int{4, 5, 6, 7}},
		{"1,00000001", []int{0, 32}},
		{"", []int{}},
		{"0x", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ParseMask(tt.in, 64)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.CPUs())
		})
	}
}

func TestParseMaskErrors(t *testing.T) {
	for _, in := range []string{"g", "0x1z", "12 3", "-1"} {
		_, err := ParseMask(in, 64)
		assert.True(t, errors.Is(err, ErrInvalidMask), in)
	}
}

func TestParseMaskDropsHighBits(t *testing.T) {
	s, err := ParseMask("1"+"0000000000000000"+"1", 64)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, s.CPUs())
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		ncpus := 1 + rng.Intn(300)
		s := mustSet(t, ncpus)
		k := rng.Intn(s.SizeInBits() + 1)
		for i := 0; i < k; i++ {
			s.Set(rng.Intn(s.SizeInBits()))
		}

		list := FormatList(s)
		fromList, err := ParseList(list, ncpus, true)
		require.NoError(t, err, list)
		require.True(t, s.Equal(fromList), "list %q", list)

		mask := FormatMask(s)
		fromMask, err := ParseMask(mask, ncpus)
		require.NoError(t, err, mask)
		require.True(t, s.Equal(fromMask), "mask %q", mask)
	}
}
