package idindex

import (
	"fmt"
	"strings"

	"github.com/hupe1980/graphdata/model"
)

// DuplicateIDsError indicates that one or more identifiers appeared
// more than once during index construction.
type DuplicateIDsError struct {
	// IDs holds the distinct duplicated identifiers, in first-seen order.
	IDs []model.ID
}

func (e *DuplicateIDsError) Error() string {
	return fmt.Sprintf(
		"expected IDs to appear once, found some that appeared more: %s",
		commaSep(e.IDs),
	)
}

// MissingIDsError indicates that a query referenced identifiers outside
// the index.
type MissingIDsError struct {
	IDs []model.ID
}

func (e *MissingIDsError) Error() string {
	if len(e.IDs) == 1 {
		return fmt.Sprintf("missing identifier: %s", e.IDs[0])
	}
	return fmt.Sprintf("missing identifiers: %s", commaSep(e.IDs))
}

func commaSep(ids []model.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
