// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Dense[T]: the concrete row-major Matrix, one flat slice per matrix.
//  - Bounds-checked At/Set, whole-matrix Fill/CopyFrom/Equal, Like and Clone.
//
// Complexity:
//  - At/Set O(1); Fill, CopyFrom, Equal and Clone O(rows·cols).
//
// Note:
//  - Indexers return ErrOutOfRange and never panic.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Element] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom builds a Dense matrix from a non-empty rectangular [][]T,
// deep-copying the input.
// Returns ErrInvalidDimensions for empty or ragged input.
func NewDenseFrom[T Element](values [][]T) (*Dense[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(values), len(values[0])
	m := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for y, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d: %w", y, ErrDimensionMismatch)
		}
		copy(m.data[y*cols:(y+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// ElementType returns the element type of T.
func (m *Dense[T]) ElementType() ElementType { return elementTypeOf[T]() }

// Data exposes the row-major backing slice. Writes through it are visible
// to the matrix.
func (m *Dense[T]) Data() []T { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Fill assigns v to every element.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Like returns a zero-filled matrix of the same shape and element type.
func (m *Dense[T]) Like() Matrix {
	return &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() Matrix {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// CopyFrom overwrites m with the content of src.
// Stage 1 (Validate): src non-nil, same element type, same shape.
// Stage 2 (Execute): bulk copy of the backing slice.
// Complexity: O(r*c).
func (m *Dense[T]) CopyFrom(src Matrix) error {
	if err := ValidateCompatible(m, src); err != nil {
		return fmt.Errorf("Dense.CopyFrom: %w", err)
	}
	s, ok := src.(*Dense[T])
	if !ok {
		return fmt.Errorf("Dense.CopyFrom: %w", ErrUnsupportedType)
	}
	if s != m {
		copy(m.data, s.data)
	}

	return nil
}

// Equal reports whether other has the same shape and identical elements.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
