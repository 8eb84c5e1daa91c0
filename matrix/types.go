// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every array implementation.
// Errors live in errors.go, boundary policy in continuation.go.
package matrix

// Bit is the element type of binary matrices. Only 0 and 1 are meaningful:
// on them max and min act as OR and AND. Other values are not normalized.
type Bit uint8

// Element lists the element types a Dense matrix may hold.
// All of them are ordered, so max/min act as OR/AND on Bit.
type Element interface {
	Bit | uint8 | uint16 | int16 | int32 | float32 | float64
}

// ElementType identifies the element type of a Matrix at run time.
type ElementType int

const (
	// TypeBit marks binary matrices (Dense[Bit]).
	TypeBit ElementType = iota
	// TypeUint8 marks Dense[uint8].
	TypeUint8
	// TypeUint16 marks Dense[uint16].
	TypeUint16
	// TypeInt16 marks Dense[int16].
	TypeInt16
	// TypeInt32 marks Dense[int32].
	TypeInt32
	// TypeFloat32 marks Dense[float32].
	TypeFloat32
	// TypeFloat64 marks Dense[float64].
	TypeFloat64
)

var elementTypeNames = [...]string{
	TypeBit:     "bit",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
}

// String implements fmt.Stringer.
func (t ElementType) String() string {
	if t < 0 || int(t) >= len(elementTypeNames) {
		return "unknown"
	}

	return elementTypeNames[t]
}

// IsBinary reports whether t is the binary element type.
func (t ElementType) IsBinary() bool { return t == TypeBit }

// elementTypeOf resolves the ElementType of T.
func elementTypeOf[T Element]() ElementType {
	var zero T
	switch any(zero).(type) {
	case Bit:
		return TypeBit
	case uint8:
		return TypeUint8
	case uint16:
		return TypeUint16
	case int16:
		return TypeInt16
	case int32:
		return TypeInt32
	case float32:
		return TypeFloat32
	default:
		return TypeFloat64
	}
}

// Matrix represents a fixed-shape two-dimensional array of one element type.
// Rows is the Y extent, Cols the X extent; storage is row-major.
//
// Complexity notes: all methods are expected O(1) except Like, Clone and
// CopyFrom (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows (Y extent).
	Rows() int

	// Cols returns the number of columns (X extent).
	Cols() int

	// ElementType returns the run-time element type.
	ElementType() ElementType

	// Like returns a new zero-filled matrix with the same shape and element type.
	Like() Matrix

	// Clone returns a deep copy of the matrix.
	Clone() Matrix

	// CopyFrom overwrites the receiver with the content of src.
	// Returns ErrNilMatrix, ErrTypeMismatch or ErrDimensionMismatch.
	CopyFrom(src Matrix) error
}
