package pattern

// MinkowskiSum returns {a+b : a ∈ p, b ∈ q}.
// The sum is associative and commutative, which is what lets a long
// segment be built from a logarithmic chain of two-point patterns.
// Complexity: O(|p|·|q|·log(|p|·|q|)).
func MinkowskiSum(p, q Pattern) (Pattern, error) {
	if p.IsEmpty() || q.IsEmpty() {
		return Pattern{}, ErrEmpty
	}
	ps := make([]Point, 0, len(p.points)*len(q.points))
	for _, a := range p.points {
		for _, b := range q.points {
			ps = append(ps, a.Add(b))
		}
	}

	return New(ps...)
}

// Octagon returns the explicit point set of the disk approximation:
// ceil(radius/2) crosses summed with a centered square of side
// 2*floor(radius/2)+1 (+1 when addHalf). The square spans
// [-side/2, side-side/2-1] on each axis.
//
// It is a reference shape: the morphology engine never materializes it,
// it composes the same steps directly on the data.
// Returns ErrInvalidSize for a negative radius.
func Octagon(radius int, addHalf bool) (Pattern, error) {
	if radius < 0 {
		return Pattern{}, ErrInvalidSize
	}
	side := 2*(radius/2) + 1
	if addHalf {
		side++
	}
	acc, err := Rectangle(-side/2, -side/2, side, side)
	if err != nil {
		return Pattern{}, err
	}
	for i := 0; i < (radius+1)/2; i++ {
		if acc, err = MinkowskiSum(acc, cross); err != nil {
			return Pattern{}, err
		}
	}

	return acc, nil
}
