package graphdata

import (
	"fmt"
	"sort"

	"github.com/hupe1980/graphdata/idindex"
	"github.com/hupe1980/graphdata/model"
	"github.com/hupe1980/graphdata/table"
)

// columnSpec declares a column a concrete store requires from every
// per-type table.
type columnSpec struct {
	name string
	kind table.ColumnKind
}

// ElementStore holds the shared information for a set of graph
// elements (nodes or edges) of one or more declared types.
//
// Elements of the same type occupy one contiguous iloc block, assigned
// in sorted type-name order with the original per-type row order
// preserved. All attribute data lives in flat dense columns indexed by
// iloc, which is orders of magnitude faster than any keyed lookup.
//
// An ElementStore is immutable after construction and safe for
// concurrent readers.
type ElementStore struct {
	ids        *idindex.Index
	types      *idindex.Index
	columns    map[string]table.Column
	typeRanges map[string]model.Range
	typeCodes  []model.TypeCode
	typeNames  []string
}

// newElementStore unifies the per-type tables in shared into one flat
// columnar store. Concrete stores declare their required columns via
// specs.
func newElementStore(shared map[string]table.Table, specs []columnSpec, o options) (*ElementStore, error) {
	for typeName, tbl := range shared {
		if tbl == nil {
			return nil, fmt.Errorf("shared[%q]: expected a table, found nil", typeName)
		}

		var missing []string
		for _, spec := range specs {
			col, ok := tbl.Column(spec.name)
			if !ok {
				missing = append(missing, spec.name)
				continue
			}
			if col.Kind() != spec.kind {
				return nil, &ColumnKindError{
					TypeName: typeName,
					Column:   spec.name,
					Expected: spec.kind,
					Actual:   col.Kind(),
				}
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return nil, &MissingColumnsError{TypeName: typeName, Missing: missing}
		}
	}

	typeNames := make([]string, 0, len(shared))
	for typeName := range shared {
		typeNames = append(typeNames, typeName)
	}
	sort.Strings(typeNames)

	total := 0
	typeRanges := make(map[string]model.Range, len(typeNames))
	for _, typeName := range typeNames {
		size := shared[typeName].NumRows()
		typeRanges[typeName] = model.Range{
			Start: model.ILoc(total),
			Stop:  model.ILoc(total + size),
		}
		total += size
	}

	labels := make([]model.ID, 0, total)
	for _, typeName := range typeNames {
		labels = append(labels, shared[typeName].Labels()...)
	}

	columns, err := concatColumns(shared, typeNames, specs)
	if err != nil {
		return nil, err
	}

	ids, err := idindex.New(labels)
	if err != nil {
		return nil, err
	}

	types, err := idindex.New(model.Strings(typeNames))
	if err != nil {
		return nil, err
	}

	typeCodes := make([]model.TypeCode, total)
	for code, typeName := range typeNames {
		r := typeRanges[typeName]
		for i := r.Start; i < r.Stop; i++ {
			typeCodes[i] = model.TypeCode(code)
		}
		o.logger.Debug("assigned element type range",
			"type", typeName, "start", int64(r.Start), "stop", int64(r.Stop))
	}

	return &ElementStore{
		ids:        ids,
		types:      types,
		columns:    columns,
		typeRanges: typeRanges,
		typeCodes:  typeCodes,
		typeNames:  typeNames,
	}, nil
}

// concatColumns concatenates the per-type columns, in sorted type-name
// order, for every column present in all per-type tables. Declared
// required columns are always carried, even when there are no types.
func concatColumns(shared map[string]table.Table, typeNames []string, specs []columnSpec) (map[string]table.Column, error) {
	if len(typeNames) == 0 {
		empty := make(map[string]table.Column, len(specs))
		for _, spec := range specs {
			switch spec.kind {
			case table.KindInt:
				empty[spec.name] = table.IntColumn(nil)
			default:
				empty[spec.name] = table.FloatColumn(nil)
			}
		}
		return empty, nil
	}

	// Dense typed columns cannot represent holes, so only columns
	// common to every type survive concatenation.
	kept := append([]string(nil), shared[typeNames[0]].ColumnNames()...)
	for _, typeName := range typeNames[1:] {
		tbl := shared[typeName]
		shrunk := kept[:0]
		for _, name := range kept {
			if _, ok := tbl.Column(name); ok {
				shrunk = append(shrunk, name)
			}
		}
		kept = shrunk
	}

	columns := make(map[string]table.Column, len(kept))
	for _, name := range kept {
		var merged table.Column
		for _, typeName := range typeNames {
			col, _ := shared[typeName].Column(name)
			var err error
			merged, err = merged.Append(col)
			if err != nil {
				return nil, err
			}
		}
		columns[name] = merged
	}
	return columns, nil
}

// Len returns the total number of elements across all types.
func (s *ElementStore) Len() int { return s.ids.Len() }

// Contains reports whether the external ID refers to an element of the
// store.
func (s *ElementStore) Contains(id model.ID) bool {
	return s.ids.Contains(id)
}

// IDs returns the index over all element identifiers.
func (s *ElementStore) IDs() *idindex.Index { return s.ids }

// Types returns the index over all type names.
func (s *ElementStore) Types() *idindex.Index { return s.types }

// Column returns the named flat attribute column, covering all
// elements in iloc order.
func (s *ElementStore) Column(name string) (table.Column, bool) {
	col, ok := s.columns[name]
	return col, ok
}

// TypeRange returns the contiguous iloc interval owned by the type.
func (s *ElementStore) TypeRange(typeName string) (model.Range, error) {
	r, ok := s.typeRanges[typeName]
	if !ok {
		return model.Range{}, &UnknownTypeError{TypeName: typeName}
	}
	return r, nil
}

// TypeILocs returns the per-element type codes, in iloc order. The
// returned slice is shared and must not be modified.
func (s *ElementStore) TypeILocs() []model.TypeCode { return s.typeCodes }

// TypeOf returns the type name for each of the ilocs. Out-of-range
// ilocs are the caller's responsibility and yield the empty string.
func (s *ElementStore) TypeOf(ilocs []model.ILoc) []string {
	names := make([]string, len(ilocs))
	n := model.ILoc(len(s.typeCodes))
	for i, loc := range ilocs {
		if 0 <= loc && loc < n {
			names[i] = s.typeNames[s.typeCodes[loc]]
		}
	}
	return names
}
