package address

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultPattern is used when no pattern is given.
	DefaultPattern = "192.168"

	// Wildcard marks a free segment in a pattern string.
	Wildcard = "x"

	maxSegments = 4
)

// ErrInvalidPattern is returned for patterns that do not leave 2 or 3 free octets.
var ErrInvalidPattern = errors.New("invalid ip pattern")

// Pattern is the fixed prefix of an address space: one or two octets.
// Patterns are comparable with ==.
type Pattern struct {
	prefix string
	fixed  int
}

// ParsePattern validates a dotted pattern such as "192.168", "10" or "172.16.x.x".
func ParsePattern(pattern string) (Pattern, error) {
	parts := strings.Split(pattern, ".")
	if len(parts) > maxSegments {
		return Pattern{}, fmt.Errorf("%w: too many segments", ErrInvalidPattern)
	}

	fixed := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != Wildcard {
			fixed = append(fixed, p)
		}
	}

	if len(fixed) < 1 || len(fixed) > 2 {
		return Pattern{}, fmt.Errorf("%w: must leave room for at least 2 octets", ErrInvalidPattern)
	}

	return Pattern{prefix: strings.Join(fixed, "."), fixed: len(fixed)}, nil
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(pattern string) Pattern {
	p, err := ParsePattern(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of fixed octets (1 or 2).
func (p Pattern) Len() int {
	return p.fixed
}

// FreeOctets returns the number of octets left to the hash (3 or 2).
func (p Pattern) FreeOctets() int {
	return maxSegments - p.fixed
}

// String returns the fixed segments joined by dots.
func (p Pattern) String() string {
	return p.prefix
}
