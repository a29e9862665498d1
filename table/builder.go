package table

import (
	"fmt"

	"github.com/hupe1980/graphdata/model"
)

// Row is one labelled record used by FromRows.
type Row struct {
	Label  model.ID
	Ints   map[string]int64
	Floats map[string]float64
}

// FromRows builds a Mem table from labelled rows. The column schema is
// taken from the first row; every later row must supply exactly the
// same columns (dense columns cannot represent holes).
func FromRows(rows []Row) (*Mem, error) {
	labels := make([]model.ID, len(rows))
	intCols := make(map[string][]int64)
	floatCols := make(map[string][]float64)

	if len(rows) > 0 {
		for name := range rows[0].Ints {
			intCols[name] = make([]int64, len(rows))
		}
		for name := range rows[0].Floats {
			floatCols[name] = make([]float64, len(rows))
		}
	}

	for i, row := range rows {
		labels[i] = row.Label

		if len(row.Ints) != len(intCols) || len(row.Floats) != len(floatCols) {
			return nil, fmt.Errorf("row %d: schema differs from first row", i)
		}

		for name, v := range row.Ints {
			col, ok := intCols[name]
			if !ok {
				return nil, fmt.Errorf("row %d: unexpected column %q", i, name)
			}
			col[i] = v
		}
		for name, v := range row.Floats {
			col, ok := floatCols[name]
			if !ok {
				return nil, fmt.Errorf("row %d: unexpected column %q", i, name)
			}
			col[i] = v
		}
	}

	cols := make(map[string]Column, len(intCols)+len(floatCols))
	for name, vs := range intCols {
		cols[name] = IntColumn(vs)
	}
	for name, vs := range floatCols {
		cols[name] = FloatColumn(vs)
	}

	return New(labels, cols)
}
