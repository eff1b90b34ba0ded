// Package domain holds the model/event value types and the pure functions
// that decorate them. It is structured into small files by concern:
//
//   - eventtype.go: the closed EventType enum and boundary parsing.
//   - name.go: model-type name canonicalization and the event naming scheme.
//   - errors.go: error types and helpers (IsInvalidArgument, IsUnregisteredModel, ...).
//   - enrich.go: the decorator pipelines applied to freshly constructed
//     attribute bags (id, name, timestamp) before sealing.
//   - model.go: the immutable Model value and its accessors.
//   - event.go: the immutable Event value and its accessors.
//
// Nothing in this package performs I/O. Model and Event are plain values:
// once sealed by the enrichment pipeline they cannot be mutated through any
// exported surface, and accessors return defensive copies.
package domain
