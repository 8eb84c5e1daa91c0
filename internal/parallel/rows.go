// Package parallel splits row-major passes into horizontal bands and runs
// them on separate goroutines.
//
// Bands write disjoint row ranges of the destination, so no locking is
// needed; Rows joins every band before returning.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerBand keeps bands large enough that goroutine start-up does not
// dominate small matrices.
const minRowsPerBand = 16

// Bands returns how many bands Rows would use for the given height.
// It is 1 when enabled is false, when GOMAXPROCS is 1, or when the height
// is too small to split.
func Bands(rows int, enabled bool) int {
	if !enabled || rows <= 0 {
		return 1
	}
	n := runtime.GOMAXPROCS(0)
	if limit := rows / minRowsPerBand; limit < n {
		n = limit
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Rows calls fn(y0, y1) for consecutive half-open row ranges covering
// [0, rows). With one band fn runs on the calling goroutine.
func Rows(rows int, enabled bool, fn func(y0, y1 int)) {
	n := Bands(rows, enabled)
	if n == 1 {
		fn(0, rows)
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		y0 := rows * i / n
		y1 := rows * (i + 1) / n
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}
