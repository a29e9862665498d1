// Package table defines the tabular-data capability consumed by the
// graphdata element stores.
//
// A Table is a set of named dense columns plus a row label per row;
// the label becomes the element's external identifier. Validation at
// the store boundary is against this capability, never a concrete
// container type.
//
// # Building Tables
//
// Column-oriented:
//
//	tbl, _ := table.New(model.Strings([]string{"a", "b"}), map[string]table.Column{
//	    "source": table.IntColumn([]int64{0, 1}),
//	    "target": table.IntColumn([]int64{1, 0}),
//	    "weight": table.FloatColumn([]float64{1.0, 2.5}),
//	})
//
// Row-oriented, via FromRows:
//
//	tbl, _ := table.FromRows([]table.Row{
//	    {Label: model.String("a"), Ints: map[string]int64{"source": 0, "target": 1}},
//	})
//
// The arrowtable subpackage adapts Apache Arrow records to this
// capability for zero-copy interchange with columnar pipelines.
package table
