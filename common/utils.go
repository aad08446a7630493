package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Upto returns s truncated to at most max elements. The result shares memory with s.
func Upto[T any](s []T, max int) []T {
	if max < 0 {
		return s[:0]
	}
	if len(s) > max {
		return s[:max]
	}
	return s
}

// Run is a contiguous block of present values taken from a sparse slice.
type Run[U any] struct {
	Start  int
	Values []U
}

// ConsecutiveRuns groups the non-nil entries of a sparse slice into contiguous runs,
// converting each entry with f. A nil entry ends the current run.
//
// Parameters:
//   - sparse: an index-aligned slice where nil means "absent"
//   - f: conversion applied to every present entry
//
// Returns:
//   - []Run[U]: the runs in ascending index order; each run's Start is the index of its first value
func ConsecutiveRuns[T, U any](sparse []*T, f func(*T) U) []Run[U] {
	var runs []Run[U]
	open := false
	for i, v := range sparse {
		if v == nil {
			open = false
			continue
		}
		if !open {
			runs = append(runs, Run[U]{Start: i})
			open = true
		}
		last := &runs[len(runs)-1]
		last.Values = append(last.Values, f(v))
	}
	return runs
}
