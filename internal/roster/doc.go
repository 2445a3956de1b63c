// Package roster holds the pure functions over a fetched dog roster:
// the combined name/status filter and prev/next adjacency resolution.
// Everything here is order-preserving and side-effect free; the roster
// slice is treated as immutable once fetched.
package roster
