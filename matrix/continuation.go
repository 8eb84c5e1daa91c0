package matrix

import (
	"fmt"
	"strings"
)

// Continuation is the boundary-extension policy for samples read outside
// the matrix during a filter pass.
type Continuation int

const (
	// ContinuationNone leaves the choice to the filter, which picks its
	// fastest legal extension. Today every filter in this module resolves
	// it like Cyclic; callers that depend on boundary values must set a
	// mode explicitly.
	ContinuationNone Continuation = iota
	// Cyclic wraps each axis independently: x → x mod cols, y → y mod rows.
	Cyclic
	// PseudoCyclic treats the matrix as one flat row-major sequence and
	// wraps the linear index, so stepping past the end of a row lands on
	// the start of the next one.
	PseudoCyclic
	// Mirror reflects each axis at the border, repeating the edge sample
	// (x = -1 reads column 0, x = cols reads column cols-1).
	Mirror
	// ZeroConstant reads zero (false for Bit) outside the matrix.
	ZeroConstant
)

var continuationNames = [...]string{
	ContinuationNone: "none",
	Cyclic:           "cyclic",
	PseudoCyclic:     "pseudo-cyclic",
	Mirror:           "mirror",
	ZeroConstant:     "zero",
}

// String implements fmt.Stringer.
func (c Continuation) String() string {
	if c < 0 || int(c) >= len(continuationNames) {
		return fmt.Sprintf("Continuation(%d)", int(c))
	}

	return continuationNames[c]
}

// ParseContinuation maps a configuration name back to a Continuation.
// Matching is case-insensitive; the empty string means ContinuationNone.
func ParseContinuation(name string) (Continuation, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "unset" {
		return ContinuationNone, nil
	}
	for i, s := range continuationNames {
		if s == n {
			return Continuation(i), nil
		}
	}

	return ContinuationNone, fmt.Errorf("ParseContinuation(%q): %w", name, ErrUnknownContinuation)
}

// Resolve returns the effective mode a filter applies: ContinuationNone
// becomes Cyclic, every other mode is returned unchanged.
func (c Continuation) Resolve() Continuation {
	if c == ContinuationNone {
		return Cyclic
	}

	return c
}

// Wrap maps a coordinate i on an axis of length n to an in-range index
// under a separable mode (Cyclic, Mirror, ZeroConstant; None acts as
// Cyclic). ok is false when the sample lies outside under ZeroConstant.
// PseudoCyclic is not separable; use Locate for it.
// Complexity: O(1).
func (c Continuation) Wrap(i, n int) (idx int, ok bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch c.Resolve() {
	case Mirror:
		p := floorMod(i, 2*n)
		if p >= n {
			p = 2*n - 1 - p
		}
		return p, true
	case ZeroConstant:
		return 0, false
	default:
		return floorMod(i, n), true
	}
}

// Locate maps (x, y) on a rows×cols matrix to a flat row-major index under
// any mode. ok is false when the sample lies outside under ZeroConstant.
// Complexity: O(1).
func (c Continuation) Locate(x, y, cols, rows int) (idx int, ok bool) {
	if c.Resolve() == PseudoCyclic {
		return floorMod(y*cols+x, rows*cols), true
	}
	xi, okX := c.Wrap(x, cols)
	yi, okY := c.Wrap(y, rows)
	if !okX || !okY {
		return 0, false
	}

	return yi*cols + xi, true
}

// floorMod is the mathematical modulus: the result is always in [0, n).
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
