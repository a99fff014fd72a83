// File: cpuset/codec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Conversion between Set and its range-list and hex-mask notations.

package cpuset

import (
	"strconv"
	"strings"

	"github.com/brickingsoft/errors"
)

// FormatList renders the set as a range list, e.g. "0,1,3-9".
// Runs of two are written as two singles; runs of three or more collapse to "a-b".
func FormatList(s *Set) string {
	var b strings.Builder
	for i := 0; i < s.nbits; i++ {
		if !s.IsSet(i) {
			continue
		}
		run := 0
		for j := i + 1; j < s.nbits && s.IsSet(j); j++ {
			run++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		switch run {
		case 0:
			b.WriteString(strconv.Itoa(i))
		case 1:
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(i + 1))
			i++
		default:
			b.WriteString(strconv.Itoa(i))
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(i + run))
			i += run
		}
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

// FormatMask renders the set as a hex mask, highest CPUs first, without
// leading zero digits. An empty set yields "0".
func FormatMask(s *Set) string {
	buf := make([]byte, 0, s.nbits/4)
	for cpu := s.nbits - 4; cpu >= 0; cpu -= 4 {
		var v byte
		for k := 0; k < 4; k++ {
			if s.IsSet(cpu + k) {
				v |= 1 << k
			}
		}
		if v == 0 && len(buf) == 0 {
			continue
		}
		buf = append(buf, hexDigits[v])
	}
	if len(buf) == 0 {
		return "0"
	}
	return string(buf)
}

// ParseList parses a range list into a new set of capacity ncpus.
// See (*Set).ParseList for the grammar.
func ParseList(str string, ncpus int, failOnOutOfRange bool) (*Set, error) {
	s, err := New(ncpus)
	if err != nil {
		return nil, err
	}
	if err = s.ParseList(str, failOnOutOfRange); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseList replaces the contents of s with the CPUs named by str.
//
// The grammar is a comma-separated list of N, N-M or N-M:S tokens, where S
// selects every S-th CPU from N through M. An empty string selects nothing.
// When failOnOutOfRange is set, a CPU index at or beyond SizeInBits yields
// ErrOutOfRange; otherwise such indices are dropped. On error the set is
// left cleared.
func (s *Set) ParseList(str string, failOnOutOfRange bool) error {
	s.Zero()
	if str == "" {
		return nil
	}
	for _, tok := range strings.Split(str, ",") {
		if err := s.parseToken(tok, failOnOutOfRange); err != nil {
			s.Zero()
			return err
		}
	}
	return nil
}

func (s *Set) parseToken(tok string, failOnOutOfRange bool) error {
	a, rest, ok := leadingNumber(tok)
	if !ok {
		return syntaxErr(tok)
	}
	b, stride := a, uint64(1)
	if strings.HasPrefix(rest, "-") {
		if b, rest, ok = leadingNumber(rest[1:]); !ok {
			return syntaxErr(tok)
		}
		if strings.HasPrefix(rest, ":") {
			if stride, rest, ok = leadingNumber(rest[1:]); !ok || stride == 0 {
				return syntaxErr(tok)
			}
		}
	}
	if rest != "" || a > b {
		return syntaxErr(tok)
	}
	limit := uint64(s.nbits)
	for cpu := a; cpu <= b; cpu += stride {
		if cpu >= limit {
			if failOnOutOfRange {
				return errors.From(
					ErrOutOfRange,
					errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
					errors.WithMeta(errMetaCPUKey, strconv.FormatUint(cpu, 10)),
				)
			}
			break
		}
		s.Set(int(cpu))
	}
	return nil
}

// leadingNumber consumes a run of decimal digits from the head of str.
func leadingNumber(str string) (uint64, string, bool) {
	n := 0
	for n < len(str) && str[n] >= '0' && str[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, str, false
	}
	v, err := strconv.ParseUint(str[:n], 10, 32)
	if err != nil {
		return 0, str, false
	}
	return v, str[n:], true
}

func syntaxErr(tok string) error {
	return errors.From(
		ErrSyntax,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaTokenKey, tok),
	)
}

// ParseMask parses a hex mask into a new set of capacity ncpus.
func ParseMask(str string, ncpus int) (*Set, error) {
	s, err := New(ncpus)
	if err != nil {
		return nil, err
	}
	if err = s.ParseMask(str); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseMask replaces the contents of s with the CPUs named by a hex mask.
// A leading "0x" is accepted and commas are skipped as group separators.
// Bits beyond SizeInBits are dropped. On error the set is left cleared.
func (s *Set) ParseMask(str string) error {
	s.Zero()
	if len(str) > 1 && (str[:2] == "0x" || str[:2] == "0X") {
		str = str[2:]
	}
	cpu := 0
	for i := len(str) - 1; i >= 0; i-- {
		c := str[i]
		if c == ',' {
			continue
		}
		v, ok := hexValue(c)
		if !ok {
			s.Zero()
			return errors.From(
				ErrInvalidMask,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaCharKey, string(c)),
			)
		}
		for k := 0; k < 4; k++ {
			if v&(1<<k) != 0 {
				s.Set(cpu + k)
			}
		}
		cpu += 4
	}
	return nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// String implements fmt.Stringer using the range-list notation.
func (s *Set) String() string {
	return FormatList(s)
}
