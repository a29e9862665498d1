// Package tensor defines the row-addressable numeric buffer boundary
// used for node feature payloads.
//
// The element stores only enforce shape and row-count invariants; the
// actual gather primitive lives behind the Buffer interface so any
// numeric runtime can back it:
//
//   - Dense: flat row-major float32/float64 storage
//   - Mat: adapter over gonum.org/v1/gonum/mat.Dense
package tensor
