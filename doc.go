// Package retsu implements a generic, structure-of-arrays container for Go.
//
// An ArrayN stores each of its N fields in its own contiguous buffer while
// presenting a single logical sequence of N-tuples indexed by position.
// Iterating a subset of fields never touches the memory of the others.
//
// Features:
//   - One buffer per field, all sharing a single size and capacity.
//   - Pluggable allocation: per-field buffers or a single-pass block sliced
//     into aligned per-field regions, optionally under a byte budget.
//   - Pluggable growth policy (default 2*capacity+2).
//   - Zipped iterators and views over all fields or any subset of them,
//     including duplicated and reordered selections.
//   - Bulk byte copies for pointer-free fields, typed copies otherwise.
//   - Unused capacity never holds references, so the GC never retains
//     values outside the live prefix.
//
// Array and Array2..Array6 are provided; the multi-field types are generated.
//
//go:generate go run ./cmd/generate
package retsu
