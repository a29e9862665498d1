package table

import "fmt"

// LengthMismatchError indicates a column whose row count does not match
// the table's label count.
type LengthMismatchError struct {
	Column   string
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf(
		"column %q: expected %d rows to match labels, found %d",
		e.Column, e.Expected, e.Actual,
	)
}

// KindMismatchError indicates an append of two columns with different
// element kinds.
type KindMismatchError struct {
	Left  ColumnKind
	Right ColumnKind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot append %s column to %s column", e.Right, e.Left)
}
