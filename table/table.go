package table

import (
	"sort"

	"github.com/hupe1980/graphdata/model"
)

// ColumnKind identifies the element type stored in a Column.
type ColumnKind uint8

const (
	// KindInvalid represents an invalid column.
	KindInvalid ColumnKind = iota
	// KindInt represents an int64 column.
	KindInt
	// KindFloat represents a float64 column.
	KindFloat
)

// String returns the name of the kind.
func (k ColumnKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Column is a dense, kind-tagged attribute column.
//
// Exactly one of the backing slices is populated, selected by Kind.
// Keeping columns as raw slices (rather than per-row boxed values)
// makes positional indexing orders of magnitude faster than any keyed
// lookup, which is what every downstream store relies on.
type Column struct {
	kind ColumnKind
	i64  []int64
	f64  []float64
}

// IntColumn returns a Column backed by vs. The slice is not copied.
func IntColumn(vs []int64) Column {
	return Column{kind: KindInt, i64: vs}
}

// FloatColumn returns a Column backed by vs. The slice is not copied.
func FloatColumn(vs []float64) Column {
	return Column{kind: KindFloat, f64: vs}
}

// Kind returns the element kind of the column.
func (c Column) Kind() ColumnKind { return c.kind }

// Len returns the number of rows in the column.
func (c Column) Len() int {
	switch c.kind {
	case KindInt:
		return len(c.i64)
	case KindFloat:
		return len(c.f64)
	default:
		return 0
	}
}

// Int64s returns the backing int64 slice if Kind is KindInt.
func (c Column) Int64s() ([]int64, bool) {
	return c.i64, c.kind == KindInt
}

// Float64s returns the backing float64 slice if Kind is KindFloat.
func (c Column) Float64s() ([]float64, bool) {
	return c.f64, c.kind == KindFloat
}

// Append returns a column holding c's rows followed by other's. Both
// must share the same kind.
func (c Column) Append(other Column) (Column, error) {
	if c.kind == KindInvalid {
		return other, nil
	}
	if other.kind == KindInvalid {
		return c, nil
	}
	if c.kind != other.kind {
		return Column{}, &KindMismatchError{Left: c.kind, Right: other.kind}
	}
	switch c.kind {
	case KindInt:
		merged := make([]int64, 0, len(c.i64)+len(other.i64))
		merged = append(merged, c.i64...)
		merged = append(merged, other.i64...)
		return IntColumn(merged), nil
	default:
		merged := make([]float64, 0, len(c.f64)+len(other.f64))
		merged = append(merged, c.f64...)
		merged = append(merged, other.f64...)
		return FloatColumn(merged), nil
	}
}

// Table is the tabular-data capability consumed by the element stores:
// named dense columns plus a row label per row. The label becomes the
// element's external identifier.
//
// Implementations must be immutable once handed to a store.
type Table interface {
	// NumRows returns the number of rows.
	NumRows() int

	// Labels returns the per-row labels, in row order.
	Labels() []model.ID

	// ColumnNames returns the names of all columns, sorted.
	ColumnNames() []string

	// Column returns the named column, if present.
	Column(name string) (Column, bool)
}

// Mem is the in-memory column-oriented Table implementation.
type Mem struct {
	labels []model.ID
	cols   map[string]Column
	names  []string
}

var _ Table = (*Mem)(nil)

// New creates a Mem table from row labels and named columns. Every
// column must have exactly one row per label.
func New(labels []model.ID, cols map[string]Column) (*Mem, error) {
	names := make([]string, 0, len(cols))
	for name, col := range cols {
		if col.Len() != len(labels) {
			return nil, &LengthMismatchError{
				Column:   name,
				Expected: len(labels),
				Actual:   col.Len(),
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return &Mem{labels: labels, cols: cols, names: names}, nil
}

// NumRows implements Table.
func (t *Mem) NumRows() int { return len(t.labels) }

// Labels implements Table.
func (t *Mem) Labels() []model.ID { return t.labels }

// ColumnNames implements Table.
func (t *Mem) ColumnNames() []string { return t.names }

// Column implements Table.
func (t *Mem) Column(name string) (Column, bool) {
	col, ok := t.cols[name]
	return col, ok
}
