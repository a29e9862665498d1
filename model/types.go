package model

import (
	"fmt"
	"math"
)

// ILoc is a dense, zero-based integer location for a graph element.
// It is stable only for the lifetime of the store that assigned it.
type ILoc int64

// TypeCode is the integer location of a type name within a store's
// type index. There is typically a small number of types, so codes
// stay tiny even for very large graphs.
type TypeCode int32

// WideSentinel is the unknown-ID marker returned by lookups that opt
// out of compact-width sentinels.
const WideSentinel ILoc = -1

// Width is the minimal unsigned-integer width (in bits) able to hold
// every valid iloc of an index, plus its length as a sentinel.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// MinWidth returns the smallest Width whose value range holds n.
// Sizing for n (the index length) rather than n-1 keeps the sentinel
// distinct from every valid iloc.
func MinWidth(n int) Width {
	switch {
	case n <= math.MaxUint8:
		return Width8
	case n <= math.MaxUint16:
		return Width16
	case n <= math.MaxUint32:
		return Width32
	default:
		return Width64
	}
}

// Sentinel returns the unknown-ID marker for the width: the maximum
// value representable in it. For Width64 the marker is capped at
// MaxInt64, which no real store can reach.
func (w Width) Sentinel() ILoc {
	if w == Width64 {
		return math.MaxInt64
	}
	return ILoc(uint64(1)<<w - 1)
}

// Range is the half-open interval [Start, Stop) of ilocs owned by a
// single element type.
type Range struct {
	Start ILoc
	Stop  ILoc
}

// Len returns the number of ilocs in the range.
func (r Range) Len() int {
	return int(r.Stop - r.Start)
}

// Contains reports whether i falls inside the range.
func (r Range) Contains(i ILoc) bool {
	return r.Start <= i && i < r.Stop
}

// String returns a string representation of the Range.
func (r Range) String() string {
	return fmt.Sprintf("Range[%d:%d)", r.Start, r.Stop)
}
