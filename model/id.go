package model

import (
	"encoding/hex"
	"strconv"
	"unique"
)

// IDKind identifies the concrete type stored in an ID.
type IDKind uint8

const (
	// KindInvalid represents the zero ID.
	KindInvalid IDKind = iota
	// KindInt represents an integer identifier.
	KindInt
	// KindString represents a string identifier.
	KindString
	// KindHandle represents an opaque 16-byte handle (e.g. a UUID).
	KindHandle
)

// ID is a user-facing element identifier.
//
// It is a small kind-tagged value rather than an interface so that it
// is comparable (usable as a map key) without boxing, and so lookups
// never touch reflection or fmt. Strings are interned, which keeps
// repeated identifiers cheap in large indexes.
type ID struct {
	kind IDKind
	i64  int64
	s    unique.Handle[string]
	h    [16]byte
}

// Int returns an integer ID.
func Int(v int64) ID {
	return ID{kind: KindInt, i64: v}
}

// String returns a string ID.
func String(s string) ID {
	return ID{kind: KindString, s: unique.Make(s)}
}

// Handle returns an opaque-handle ID.
func Handle(h [16]byte) ID {
	return ID{kind: KindHandle, h: h}
}

// Ints converts a slice of integers to IDs.
func Ints(vs []int64) []ID {
	ids := make([]ID, len(vs))
	for i, v := range vs {
		ids[i] = Int(v)
	}
	return ids
}

// Strings converts a slice of strings to IDs.
func Strings(ss []string) []ID {
	ids := make([]ID, len(ss))
	for i, s := range ss {
		ids[i] = String(s)
	}
	return ids
}

// Kind returns the kind of the ID.
func (id ID) Kind() IDKind { return id.kind }

// IsZero reports whether the ID is the invalid zero value.
func (id ID) IsZero() bool { return id.kind == KindInvalid }

// Int64 returns the integer value if Kind is KindInt.
func (id ID) Int64() (int64, bool) {
	return id.i64, id.kind == KindInt
}

// StringValue returns the string value if Kind is KindString, otherwise
// the empty string.
func (id ID) StringValue() string {
	if id.kind == KindString {
		return id.s.Value()
	}
	return ""
}

// HandleValue returns the handle bytes if Kind is KindHandle.
func (id ID) HandleValue() ([16]byte, bool) {
	return id.h, id.kind == KindHandle
}

// String returns a diagnostic representation of the ID. It is intended
// for error messages and logging, not as a stable serialization.
func (id ID) String() string {
	switch id.kind {
	case KindInt:
		return strconv.FormatInt(id.i64, 10)
	case KindString:
		return id.s.Value()
	case KindHandle:
		return hex.EncodeToString(id.h[:])
	default:
		return "<invalid>"
	}
}
