// Package query provides pure filters over in-memory collections of
// game records. Filters never mutate their input, preserve input
// order, and cannot fail: no match is an empty slice, not an error.
package query
