package tensor

import "gonum.org/v1/gonum/mat"

// Mat adapts a gonum dense matrix to the Buffer interface, so callers
// already working in gonum can inject feature payloads without copying.
type Mat struct {
	m *mat.Dense
}

var _ Buffer = (*Mat)(nil)

// NewMat wraps m. The matrix is shared, not copied, and must not be
// mutated while a store references it.
func NewMat(m *mat.Dense) *Mat {
	return &Mat{m: m}
}

// Dims implements Buffer.
func (t *Mat) Dims() (rows, cols int) { return t.m.Dims() }

// DType implements Buffer. Gonum matrices are always float64.
func (t *Mat) DType() DType { return Float64 }

// Dense returns the underlying gonum matrix.
func (t *Mat) Dense() *mat.Dense { return t.m }

// Gather implements Buffer.
func (t *Mat) Gather(rows []int) (Buffer, error) {
	r, c := t.m.Dims()
	for _, row := range rows {
		if row < 0 || row >= r {
			return nil, &RowOutOfRangeError{Row: row, Rows: r}
		}
	}

	// gonum rejects zero-sized matrices.
	if len(rows) == 0 {
		return &Dense{rows: 0, cols: c, dtype: Float64}, nil
	}

	out := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		out.SetRow(i, t.m.RawRowView(row))
	}
	return &Mat{m: out}, nil
}
