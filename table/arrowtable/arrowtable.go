// Package arrowtable adapts Apache Arrow records to the graphdata
// table capability.
//
// Columnar pipelines that already hold element attributes as Arrow
// record batches can hand them to the element stores without going
// through row-oriented reshaping:
//
//	tbl, err := arrowtable.FromRecord(rec, "id")
//	nodes, err := graphdata.NewNodeStore(map[string]table.Table{"paper": tbl}, nil)
//
// Values are materialized into dense Go slices; the record can be
// released afterwards.
package arrowtable

import (
	"fmt"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"

	"github.com/hupe1980/graphdata/model"
	"github.com/hupe1980/graphdata/table"
)

// FromRecord converts an Arrow record into an in-memory table. The
// labelCol column supplies the per-row labels (external IDs) and is not
// carried as an attribute column; it must be an integer or string
// column. Integer attribute columns widen to int64, floating-point
// columns to float64. Null values are rejected: dense columns have no
// hole representation.
func FromRecord(rec arrow.Record, labelCol string) (*table.Mem, error) {
	schema := rec.Schema()

	labelIdx := -1
	for i, f := range schema.Fields() {
		if f.Name == labelCol {
			labelIdx = i
			break
		}
	}
	if labelIdx < 0 {
		return nil, fmt.Errorf("label column %q not found in record schema", labelCol)
	}

	labels, err := labelIDs(rec.Column(labelIdx), labelCol)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]table.Column, int(rec.NumCols())-1)
	for i, f := range schema.Fields() {
		if i == labelIdx {
			continue
		}
		col, err := attrColumn(rec.Column(i), f.Name)
		if err != nil {
			return nil, err
		}
		cols[f.Name] = col
	}

	return table.New(labels, cols)
}

func labelIDs(arr arrow.Array, name string) ([]model.ID, error) {
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("column %q: null labels are not supported", name)
	}

	ids := make([]model.ID, arr.Len())
	switch a := arr.(type) {
	case *array.Int64:
		for i := range ids {
			ids[i] = model.Int(a.Value(i))
		}
	case *array.Int32:
		for i := range ids {
			ids[i] = model.Int(int64(a.Value(i)))
		}
	case *array.Uint32:
		for i := range ids {
			ids[i] = model.Int(int64(a.Value(i)))
		}
	case *array.String:
		for i := range ids {
			ids[i] = model.String(a.Value(i))
		}
	case *array.LargeString:
		for i := range ids {
			ids[i] = model.String(a.Value(i))
		}
	default:
		return nil, fmt.Errorf("column %q: unsupported label type %s", name, arr.DataType())
	}
	return ids, nil
}

func attrColumn(arr arrow.Array, name string) (table.Column, error) {
	if arr.NullN() > 0 {
		return table.Column{}, fmt.Errorf("column %q: null values are not supported", name)
	}

	switch a := arr.(type) {
	case *array.Int64:
		vs := make([]int64, a.Len())
		copy(vs, a.Int64Values())
		return table.IntColumn(vs), nil
	case *array.Int32:
		vs := make([]int64, a.Len())
		for i := range vs {
			vs[i] = int64(a.Value(i))
		}
		return table.IntColumn(vs), nil
	case *array.Uint32:
		vs := make([]int64, a.Len())
		for i := range vs {
			vs[i] = int64(a.Value(i))
		}
		return table.IntColumn(vs), nil
	case *array.Float64:
		vs := make([]float64, a.Len())
		copy(vs, a.Float64Values())
		return table.FloatColumn(vs), nil
	case *array.Float32:
		vs := make([]float64, a.Len())
		for i := range vs {
			vs[i] = float64(a.Value(i))
		}
		return table.FloatColumn(vs), nil
	default:
		return table.Column{}, fmt.Errorf("column %q: unsupported type %s", name, arr.DataType())
	}
}
