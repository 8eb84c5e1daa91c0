package rectmorph

import "errors"

// Sentinel errors for engine operations. Every one of them is a usage
// error raised before any buffer is touched.
var (
	// ErrNegativeSize indicates a rectangle or square with a negative extent.
	ErrNegativeSize = errors.New("rectmorph: rectangle size must be >= 0")
	// ErrNegativeRadius indicates an octagon with a negative radius or diameter.
	ErrNegativeRadius = errors.New("rectmorph: octagon radius must be >= 0")
	// ErrNoTarget indicates a processing call before BindTarget succeeded.
	ErrNoTarget = errors.New("rectmorph: no target matrix bound")
	// ErrNilScratch indicates New was given a nil scratch matrix.
	ErrNilScratch = errors.New("rectmorph: scratch matrix is nil")
)
