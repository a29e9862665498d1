package tensor

import "fmt"

// DType identifies the element type of a Buffer.
type DType uint8

const (
	// Float32 is 32-bit floating point.
	Float32 DType = iota
	// Float64 is 64-bit floating point.
	Float64
)

// String returns the name of the dtype.
func (d DType) String() string {
	if d == Float32 {
		return "float32"
	}
	return "float64"
}

// Buffer is a 2-dimensional, row-addressable numeric payload.
//
// The element stores never depend on a specific numeric or ML runtime;
// they only enforce shape invariants and delegate row selection to the
// Buffer itself, so the owning application can inject an accelerator
// tensor, a plain dense matrix or a memory-mapped buffer.
type Buffer interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// DType returns the element type.
	DType() DType

	// Gather returns a new Buffer whose i-th row is row rows[i] of the
	// receiver, preserving order and duplicates. Out-of-range rows fail
	// with a *RowOutOfRangeError.
	Gather(rows []int) (Buffer, error)
}

// RowOutOfRangeError indicates a Gather row index outside the buffer.
type RowOutOfRangeError struct {
	Row  int
	Rows int
}

func (e *RowOutOfRangeError) Error() string {
	return fmt.Sprintf("row %d out of range for buffer with %d rows", e.Row, e.Rows)
}
