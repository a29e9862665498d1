package tensor

import "fmt"

// Dense is a flat row-major Buffer implementation. Exactly one of the
// backing slices is populated, selected by the dtype.
type Dense struct {
	rows, cols int
	dtype      DType
	f32        []float32
	f64        []float64
}

var _ Buffer = (*Dense)(nil)

// NewDense32 creates a float32 Dense over data, which must hold
// rows*cols values in row-major order. The slice is not copied.
func NewDense32(rows, cols int, data []float32) (*Dense, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("expected %d values for %dx%d buffer, found %d", rows*cols, rows, cols, len(data))
	}
	return &Dense{rows: rows, cols: cols, dtype: Float32, f32: data}, nil
}

// NewDense64 creates a float64 Dense over data, which must hold
// rows*cols values in row-major order. The slice is not copied.
func NewDense64(rows, cols int, data []float64) (*Dense, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("expected %d values for %dx%d buffer, found %d", rows*cols, rows, cols, len(data))
	}
	return &Dense{rows: rows, cols: cols, dtype: Float64, f64: data}, nil
}

// Dims implements Buffer.
func (d *Dense) Dims() (rows, cols int) { return d.rows, d.cols }

// DType implements Buffer.
func (d *Dense) DType() DType { return d.dtype }

// Row32 returns row i without copying if the dtype is Float32.
func (d *Dense) Row32(i int) []float32 {
	if d.dtype != Float32 {
		return nil
	}
	return d.f32[i*d.cols : (i+1)*d.cols]
}

// Row64 returns row i without copying if the dtype is Float64.
func (d *Dense) Row64(i int) []float64 {
	if d.dtype != Float64 {
		return nil
	}
	return d.f64[i*d.cols : (i+1)*d.cols]
}

// Gather implements Buffer.
func (d *Dense) Gather(rows []int) (Buffer, error) {
	for _, r := range rows {
		if r < 0 || r >= d.rows {
			return nil, &RowOutOfRangeError{Row: r, Rows: d.rows}
		}
	}

	out := &Dense{rows: len(rows), cols: d.cols, dtype: d.dtype}
	switch d.dtype {
	case Float32:
		out.f32 = make([]float32, len(rows)*d.cols)
		for i, r := range rows {
			copy(out.f32[i*d.cols:(i+1)*d.cols], d.f32[r*d.cols:(r+1)*d.cols])
		}
	default:
		out.f64 = make([]float64, len(rows)*d.cols)
		for i, r := range rows {
			copy(out.f64[i*d.cols:(i+1)*d.cols], d.f64[r*d.cols:(r+1)*d.cols])
		}
	}
	return out, nil
}
