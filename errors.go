package graphdata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/graphdata/model"
	"github.com/hupe1980/graphdata/table"
)

var (
	// ErrDirection is returned when a query requests neither incoming
	// nor outgoing edges.
	ErrDirection = errors.New("expected at least one of 'ins' or 'outs' to be true, found neither")
)

// MissingColumnsError indicates a per-type table without the columns
// the store requires.
type MissingColumnsError struct {
	TypeName string
	Missing  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf(
		"shared[%q]: expected columns %s, found them missing",
		e.TypeName, strings.Join(e.Missing, ", "),
	)
}

// ColumnKindError indicates a required column with the wrong element
// kind.
type ColumnKindError struct {
	TypeName string
	Column   string
	Expected table.ColumnKind
	Actual   table.ColumnKind
}

func (e *ColumnKindError) Error() string {
	return fmt.Sprintf(
		"shared[%q]: column %q: expected %s, found %s",
		e.TypeName, e.Column, e.Expected, e.Actual,
	)
}

// UnknownTypeError indicates a query for a type name the store does
// not hold.
type UnknownTypeError struct {
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown element type: %q", e.TypeName)
}

// NoFeaturesError indicates a feature query for a type that was
// constructed without a feature payload.
type NoFeaturesError struct {
	TypeName string
}

func (e *NoFeaturesError) Error() string {
	return fmt.Sprintf("features[%q]: no feature payload attached", e.TypeName)
}

// RowCountMismatchError indicates a feature payload whose row count
// does not match its type's element count.
type RowCountMismatchError struct {
	TypeName string
	Expected int
	Actual   int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf(
		"features[%q]: expected one feature per ID, found %d IDs and %d feature rows",
		e.TypeName, e.Expected, e.Actual,
	)
}

// UnknownIDsError indicates a feature query whose ilocs fall outside
// the requested type's range (they belong to another type, or were
// unknown-ID sentinels).
type UnknownIDsError struct {
	TypeName string
	ILocs    []model.ILoc
}

func (e *UnknownIDsError) Error() string {
	parts := make([]string, len(e.ILocs))
	for i, loc := range e.ILocs {
		parts[i] = fmt.Sprintf("%d", loc)
	}
	return fmt.Sprintf(
		"features[%q]: unknown IDs at ilocs %s",
		e.TypeName, strings.Join(parts, ", "),
	)
}

// NodeILocRangeError indicates an edge endpoint outside the node iloc
// space the edge store was constructed for.
type NodeILocRangeError struct {
	TypeName string
	ILoc     model.ILoc
	NumNodes int
}

func (e *NodeILocRangeError) Error() string {
	return fmt.Sprintf(
		"shared[%q]: node iloc %d outside [0, %d)",
		e.TypeName, e.ILoc, e.NumNodes,
	)
}
