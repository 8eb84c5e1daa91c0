// Package pattern provides immutable structuring elements: finite sets of
// integer offsets used by Minkowski-sum dilation and erosion.
//
// Patterns are stored sorted (by Y, then X) and de-duplicated, so two
// patterns built from the same points in any order compare Equal.
// The origin is an ordinary point; a pattern may or may not contain it.
package pattern

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for pattern construction.
var (
	// ErrEmpty indicates a pattern with no points was requested.
	ErrEmpty = errors.New("pattern: pattern must contain at least one point")
	// ErrInvalidSize indicates a non-positive extent or negative radius.
	ErrInvalidSize = errors.New("pattern: size must be positive")
)

// Connectivity selects the 3×3 neighborhood: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W (the cross).
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity (the 3×3 square).
	Conn8
)

// Point is an integer offset. X addresses columns, Y addresses rows.
type Point struct {
	X, Y int
}

// Neg returns the point reflected through the origin.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Pattern is an immutable, non-empty, sorted set of points.
// The zero value is an empty pattern and is rejected by every consumer.
type Pattern struct {
	points []Point
}

// New builds a pattern from the given points, dropping duplicates.
// Returns ErrEmpty if no points are given.
// Complexity: O(n log n).
func New(points ...Point) (Pattern, error) {
	if len(points) == 0 {
		return Pattern{}, ErrEmpty
	}
	ps := make([]Point, len(points))
	copy(ps, points)
	sort.Slice(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
	out := ps[:1]
	for _, p := range ps[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}

	return Pattern{points: out}, nil
}

// mustNew is New for fixed, known-good point sets.
func mustNew(points ...Point) Pattern {
	p, err := New(points...)
	if err != nil {
		panic(err)
	}

	return p
}

// Single returns the one-point pattern {(x,y)}.
func Single(x, y int) Pattern { return Pattern{points: []Point{{x, y}}} }

// Pair returns the two-point pattern {(0,0),(dx,dy)}.
// Pair(0,0) degenerates to {(0,0)}.
func Pair(dx, dy int) Pattern { return mustNew(Point{}, Point{dx, dy}) }

var (
	square3x3 = mustNew(
		Point{-1, -1}, Point{0, -1}, Point{1, -1},
		Point{-1, 0}, Point{0, 0}, Point{1, 0},
		Point{-1, 1}, Point{0, 1}, Point{1, 1},
	)
	cross = mustNew(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{-1, 0}, Point{0, -1})
)

// Square3x3 returns the centered 3×3 square (the Conn8 neighborhood plus origin).
func Square3x3() Pattern { return square3x3 }

// Cross returns the 5-point diamond {(0,0),(1,0),(0,1),(-1,0),(0,-1)}
// (the Conn4 neighborhood plus origin).
func Cross() Pattern { return cross }

// Neighborhood returns Cross for Conn4 and Square3x3 for Conn8.
func Neighborhood(conn Connectivity) Pattern {
	if conn == Conn8 {
		return square3x3
	}

	return cross
}

// Rectangle returns every point of [minX, minX+sizeX) × [minY, minY+sizeY).
// Returns ErrInvalidSize if either size is < 1.
// Complexity: O(sizeX*sizeY).
func Rectangle(minX, minY, sizeX, sizeY int) (Pattern, error) {
	if sizeX < 1 || sizeY < 1 {
		return Pattern{}, ErrInvalidSize
	}
	ps := make([]Point, 0, sizeX*sizeY)
	for y := minY; y < minY+sizeY; y++ {
		for x := minX; x < minX+sizeX; x++ {
			ps = append(ps, Point{x, y})
		}
	}

	return Pattern{points: ps}, nil
}

// Len returns the number of points.
func (p Pattern) Len() int { return len(p.points) }

// IsEmpty reports whether p has no points (the zero value).
func (p Pattern) IsEmpty() bool { return len(p.points) == 0 }

// Points returns a copy of the points in sorted order.
func (p Pattern) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)

	return out
}

// Contains reports whether q is a point of p.
// Complexity: O(log n).
func (p Pattern) Contains(q Point) bool {
	i := sort.Search(len(p.points), func(i int) bool { return !less(p.points[i], q) })

	return i < len(p.points) && p.points[i] == q
}

// IncludesOrigin reports whether (0,0) is a point of p.
func (p Pattern) IncludesOrigin() bool { return p.Contains(Point{}) }

// WithOrigin returns p ∪ {(0,0)}.
func (p Pattern) WithOrigin() Pattern {
	if p.IncludesOrigin() {
		return p
	}

	return mustNew(append(p.Points(), Point{})...)
}

// Symmetric returns the point reflection {-q : q ∈ p}.
func (p Pattern) Symmetric() Pattern {
	if p.IsEmpty() {
		return p
	}
	ps := make([]Point, len(p.points))
	for i, q := range p.points {
		ps[i] = q.Neg()
	}

	return mustNew(ps...)
}

// Bounds returns the minimal and maximal coordinates over all points.
// Both are the zero Point for an empty pattern.
func (p Pattern) Bounds() (lo, hi Point) {
	if p.IsEmpty() {
		return Point{}, Point{}
	}
	lo, hi = p.points[0], p.points[0]
	for _, q := range p.points[1:] {
		lo.X, lo.Y = min(lo.X, q.X), min(lo.Y, q.Y)
		hi.X, hi.Y = max(hi.X, q.X), max(hi.Y, q.Y)
	}

	return lo, hi
}

// Equal reports whether p and q contain the same points.
func (p Pattern) Equal(q Pattern) bool {
	if len(p.points) != len(q.points) {
		return false
	}
	for i := range p.points {
		if p.points[i] != q.points[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (p Pattern) String() string { return fmt.Sprint(p.points) }

// less orders points by Y, then X.
func less(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}
