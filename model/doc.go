// Package model defines core types used throughout graphdata.
//
// # Identity Types
//
//   - ID: User-facing element identifier (int, string or opaque handle)
//   - ILoc: Dense, zero-based internal integer location
//   - TypeCode: Integer location of a type name in a type index
//   - Range: Contiguous iloc interval owned by one element type
//   - Width: Minimal unsigned width for compact iloc storage
//
// # Identifiers
//
// IDs are kind-tagged values, comparable and cheap to hash:
//
//	node := model.String("paper-17")
//	edge := model.Int(42)
//	blob := model.Handle(uuidBytes)
package model
