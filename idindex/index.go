package idindex

import (
	"github.com/hupe1980/graphdata/model"
)

// Index maps between external IDs and integer locations ("ilocs").
//
// It allows all internal computation to run on efficient dense
// integers while still accepting arbitrary user-facing identifiers at
// the boundary. Position in the construction order is the iloc.
//
// An Index is immutable after construction and safe for concurrent
// readers.
type Index struct {
	ids   []model.ID
	pos   map[model.ID]model.ILoc
	width model.Width
}

// New builds an Index over ids. Every identifier must appear exactly
// once; duplicates fail with a *DuplicateIDsError naming the distinct
// repeated values.
func New(ids []model.ID) (*Index, error) {
	pos := make(map[model.ID]model.ILoc, len(ids))

	var dups []model.ID
	seenDup := make(map[model.ID]struct{})

	for i, id := range ids {
		if _, ok := pos[id]; ok {
			if _, counted := seenDup[id]; !counted {
				seenDup[id] = struct{}{}
				dups = append(dups, id)
			}
			continue
		}
		pos[id] = model.ILoc(i)
	}

	if len(dups) > 0 {
		return nil, &DuplicateIDsError{IDs: dups}
	}

	return &Index{
		ids:   ids,
		pos:   pos,
		width: model.MinWidth(len(ids)),
	}, nil
}

// Len returns the number of indexed identifiers.
func (ix *Index) Len() int { return len(ix.ids) }

// Width returns the minimal unsigned width able to hold every iloc of
// the index plus the unknown-ID sentinel.
func (ix *Index) Width() model.Width { return ix.width }

// Contains reports whether the external ID is indexed.
func (ix *Index) Contains(id model.ID) bool {
	_, ok := ix.pos[id]
	return ok
}

// Values returns all indexed identifiers in iloc order. The returned
// slice is shared and must not be modified.
func (ix *Index) Values() []model.ID { return ix.ids }

// IsValid flags, per position, the ilocs that fall inside the index
// (that is, where a lookup did not miss).
func (ix *Index) IsValid(ilocs []model.ILoc) []bool {
	valid := make([]bool, len(ilocs))
	n := model.ILoc(len(ix.ids))
	for i, loc := range ilocs {
		valid[i] = 0 <= loc && loc < n
	}
	return valid
}

// RequireValid fails with a *MissingIDsError naming the original
// queried identifiers whose ilocs fall outside the index.
func (ix *Index) RequireValid(queried []model.ID, ilocs []model.ILoc) error {
	var missing []model.ID
	n := model.ILoc(len(ix.ids))
	for i, loc := range ilocs {
		if loc < 0 || loc >= n {
			missing = append(missing, queried[i])
		}
	}
	if len(missing) > 0 {
		return &MissingIDsError{IDs: missing}
	}
	return nil
}

// LookupOption configures ToILocs.
type LookupOption func(*lookupConfig)

type lookupConfig struct {
	strict bool
	wide   bool
}

// Strict makes ToILocs fail with a *MissingIDsError instead of
// returning sentinels for unknown identifiers.
func Strict() LookupOption {
	return func(c *lookupConfig) { c.strict = true }
}

// WideSentinel makes ToILocs mark unknown identifiers with -1 instead
// of the compact-width sentinel. Useful when the result is transient
// and the caller wants sign-based miss checks.
func WideSentinel() LookupOption {
	return func(c *lookupConfig) { c.wide = true }
}

// ToILocs converts external IDs to integer locations.
//
// Unknown identifiers map to the compact-width sentinel (the maximum
// value representable in Width), or to -1 under WideSentinel. Under
// Strict any unknown identifier fails instead.
func (ix *Index) ToILocs(ids []model.ID, opts ...LookupOption) ([]model.ILoc, error) {
	var cfg lookupConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sentinel := ix.width.Sentinel()
	if cfg.wide {
		sentinel = model.WideSentinel
	}

	ilocs := make([]model.ILoc, len(ids))
	var missing []model.ID
	for i, id := range ids {
		loc, ok := ix.pos[id]
		if !ok {
			if cfg.strict {
				missing = append(missing, id)
			}
			ilocs[i] = sentinel
			continue
		}
		ilocs[i] = loc
	}

	if len(missing) > 0 {
		return nil, &MissingIDsError{IDs: missing}
	}
	return ilocs, nil
}

// ToILoc converts a single external ID to its integer location.
func (ix *Index) ToILoc(id model.ID) (model.ILoc, bool) {
	loc, ok := ix.pos[id]
	return loc, ok
}

// FromILocs converts integer locations back to their external IDs.
// Out-of-range ilocs are the caller's responsibility and yield the
// zero ID rather than a panic.
func (ix *Index) FromILocs(ilocs []model.ILoc) []model.ID {
	ids := make([]model.ID, len(ilocs))
	n := model.ILoc(len(ix.ids))
	for i, loc := range ilocs {
		if 0 <= loc && loc < n {
			ids[i] = ix.ids[loc]
		}
	}
	return ids
}

// FromILoc converts a single integer location back to its external ID.
func (ix *Index) FromILoc(loc model.ILoc) (model.ID, bool) {
	if loc < 0 || loc >= model.ILoc(len(ix.ids)) {
		return model.ID{}, false
	}
	return ix.ids[loc], true
}
