package sortkit

import (
	"go.llib.dev/algokit/pkg/compare"
)

// NthElement partially sorts s so that the element at position n is the one
// that would be there if s were fully sorted by less.
// Every element before n is not greater than s[n], and every element after it is not less.
// The order within the two sides is unspecified.
//
// NthElement runs in linear time.
// It is a quickselect with median-of-three pivots that switches to median-of-medians pivots
// when partitioning stops shrinking the range, so adversarial inputs can't make it quadratic.
//
// NthElement panics with ErrIndexOutOfRange when n is not a valid index of a non-empty s.
func NthElement[S ~[]E, E any](s S, n int, less compare.LessFunc[E]) {
	if len(s) == 0 {
		return
	}
	if n < 0 || len(s) <= n {
		panic(ErrIndexOutOfRange.F("n=%d len=%d", n, len(s)))
	}
	nthElement(s, n, less)
}

// Median moves the median element of s to the middle of s, at len(s)/2, and returns it.
// For an even number of elements this is the upper median.
func Median[S ~[]E, E any](s S, less compare.LessFunc[E]) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	NthElement(s, len(s)/2, less)
	return s[len(s)/2], true
}

const (
	insertionSortThreshold = 12
	// badRoundLimit is how many partitions may keep more than 3/4 of the range
	// before pivot selection switches to median-of-medians.
	badRoundLimit = 4
)

func nthElement[E any](s []E, n int, less compare.LessFunc[E]) {
	var badRounds int
	for insertionSortThreshold < len(s) {
		var pivot int
		if badRounds < badRoundLimit {
			pivot = medianOfThree(s, 0, len(s)/2, len(s)-1, less)
		} else {
			pivot = medianOfMedians(s, less)
		}

		size := len(s)
		lt, gt := partition3(s, pivot, less)
		switch {
		case n < lt:
			s = s[:lt]
		case gt <= n:
			s = s[gt:]
			n -= gt
		default: // s[lt:gt] holds the elements equivalent to the pivot
			return
		}
		if 3*size < 4*len(s) {
			badRounds++
		}
	}
	insertionSort(s, less)
}

// partition3 rearranges s into three parts around the pivot value:
// s[:lt] is less, s[lt:gt] is equivalent and s[gt:] is greater than the pivot.
func partition3[E any](s []E, pivot int, less compare.LessFunc[E]) (lt, gt int) {
	s[0], s[pivot] = s[pivot], s[0]
	var (
		p = s[0]
		i = 1
	)
	lt, gt = 0, len(s)
	for i < gt {
		switch {
		case less(s[i], p):
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case less(p, s[i]):
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}

func medianOfThree[E any](s []E, a, b, c int, less compare.LessFunc[E]) int {
	if less(s[b], s[a]) {
		a, b = b, a
	}
	if less(s[c], s[b]) {
		b = c
		if less(s[b], s[a]) {
			b = a
		}
	}
	return b
}

// medianOfMedians returns the index of an element that is guaranteed
// to have at least 30% of s on both of its sides.
func medianOfMedians[E any](s []E, less compare.LessFunc[E]) int {
	if len(s) < 5 {
		insertionSort(s, less)
		return len(s) / 2
	}
	var medians int
	for i := 0; i+5 <= len(s); i += 5 {
		insertionSort(s[i:i+5], less)
		s[medians], s[i+2] = s[i+2], s[medians]
		medians++
	}
	nthElement(s[:medians], medians/2, less)
	return medians / 2
}

func insertionSort[E any](s []E, less compare.LessFunc[E]) {
	for i := 1; i < len(s); i++ {
		for j := i; 0 < j && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
