package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/matrix"
)

// ExampleContinuation_Wrap shows how each boundary policy resolves the
// sample one step left of column 0 on a 5-wide row.
func ExampleContinuation_Wrap() {
	for _, mode := range []matrix.Continuation{matrix.Cyclic, matrix.Mirror, matrix.ZeroConstant} {
		idx, inside := mode.Wrap(-1, 5)
		fmt.Printf("%s: index=%d inside=%v\n", mode, idx, inside)
	}

	// Output:
	// cyclic: index=4 inside=true
	// mirror: index=0 inside=true
	// zero: index=0 inside=false
}
