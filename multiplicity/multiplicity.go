package multiplicity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for multiplicity parsing.
var (
	// ErrEmpty indicates an absent (empty or blank) multiplicity label.
	ErrEmpty = errors.New("multiplicity: empty label")

	// ErrSyntax indicates a label outside the "l..u" grammar.
	ErrSyntax = errors.New("multiplicity: malformed label")
)

// Range is a parsed multiplicity. When Unbounded is true, Upper is
// meaningless and the range is Lower..∞.
type Range struct {
	Lower     uint64
	Upper     uint64
	Unbounded bool
}

// Parse converts a multiplicity label into a Range.
// It is total over arbitrary strings and never panics.
func Parse(s string) (Range, error) {
	s = strings.TrimSpace(s)

	// 1. Absent label.
	if s == "" {
		return Range{}, ErrEmpty
	}

	// 2. Bare star: zero to many.
	if s == "*" {
		return Range{Lower: 0, Unbounded: true}, nil
	}

	// 3. Explicit range "l..u" / "l..*".
	if lo, hi, ok := strings.Cut(s, ".."); ok {
		lower, err := strconv.ParseUint(strings.TrimSpace(lo), 10, 64)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		hi = strings.TrimSpace(hi)
		if hi == "*" {
			return Range{Lower: lower, Unbounded: true}, nil
		}
		upper, err := strconv.ParseUint(hi, 10, 64)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}

		return Range{Lower: lower, Upper: upper}, nil
	}

	// 4. Bare integer "n" means exactly n.
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return Range{Lower: n, Upper: n}, nil
}

// Valid reports whether the range is internally consistent (lower ≤ upper).
// Unbounded ranges are always consistent.
func (r Range) Valid() bool {
	return r.Unbounded || r.Lower <= r.Upper
}

// IsExactly reports whether the range admits exactly n, i.e. n..n.
func (r Range) IsExactly(n uint64) bool {
	return !r.Unbounded && r.Lower == n && r.Upper == n
}

// LowerAtLeast reports whether the range requires at least n participants.
func (r Range) LowerAtLeast(n uint64) bool {
	return r.Lower >= n
}

// String renders the range back in label syntax.
func (r Range) String() string {
	switch {
	case r.Unbounded && r.Lower == 0:
		return "*"
	case r.Unbounded:
		return fmt.Sprintf("%d..*", r.Lower)
	case r.Lower == r.Upper:
		return strconv.FormatUint(r.Lower, 10)
	default:
		return fmt.Sprintf("%d..%d", r.Lower, r.Upper)
	}
}
