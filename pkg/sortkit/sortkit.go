// Package sortkit implements ordering algorithms over slices: full sorting, selection and extremes.
//
// Every function takes its ordering as a strict weak ordering (compare.LessFunc).
// Elements that are equivalent under the ordering may end up in any relative order,
// unless the function is documented to be stable.
// Include tie-break fields in the ordering (compare.Then) when the order of ties matters.
package sortkit

import (
	"cmp"
	"slices"

	"go.llib.dev/algokit/pkg/compare"
	"go.llib.dev/algokit/pkg/errorkit"
)

const ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"

// Sort sorts s in place in the order defined by less.
// The sort is not guaranteed to be stable.
func Sort[S ~[]E, E any](s S, less compare.LessFunc[E]) {
	slices.SortFunc(s, compare.ToCmp(less))
}

// SortStable sorts s in place while keeping the original order of equivalent elements.
func SortStable[S ~[]E, E any](s S, less compare.LessFunc[E]) {
	slices.SortStableFunc(s, compare.ToCmp(less))
}

// IsSorted reports whether s is sorted in the order defined by less.
func IsSorted[S ~[]E, E any](s S, less compare.LessFunc[E]) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// Min returns the smallest element of s by its natural ordering.
// When multiple elements are the smallest, the first one is returned.
func Min[S ~[]E, E cmp.Ordered](s S) (E, bool) {
	return MinFunc(s, compare.Less[E])
}

// Max returns the largest element of s by its natural ordering.
// When multiple elements are the largest, the first one is returned.
func Max[S ~[]E, E cmp.Ordered](s S) (E, bool) {
	return MaxFunc(s, compare.Less[E])
}

func MinFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) (E, bool) {
	return valueAt(s, MinIndexFunc(s, less))
}

func MaxFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) (E, bool) {
	return valueAt(s, MaxIndexFunc(s, less))
}

// MinIndexFunc returns the position of the first smallest element, or -1 when s is empty.
func MinIndexFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) int {
	if len(s) == 0 {
		return -1
	}
	var index int
	for i := 1; i < len(s); i++ {
		if less(s[i], s[index]) {
			index = i
		}
	}
	return index
}

// MaxIndexFunc returns the position of the first largest element, or -1 when s is empty.
func MaxIndexFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) int {
	if len(s) == 0 {
		return -1
	}
	var index int
	for i := 1; i < len(s); i++ {
		if less(s[index], s[i]) {
			index = i
		}
	}
	return index
}

func valueAt[S ~[]E, E any](s S, index int) (E, bool) {
	if index < 0 {
		var zero E
		return zero, false
	}
	return s[index], true
}
