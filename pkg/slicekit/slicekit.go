// Package slicekit implements the in-memory sequence algorithms over Go slices.
//
// Operations that mutate do so in place and never change the length of the passed slice,
// except RemoveIf, which returns the shortened slice the same way append does.
// None of the functions retain the passed slice after they return.
package slicekit

import (
	"fmt"

	"go.llib.dev/algokit/pkg/mathkit"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("slicekit.Must: %w", err))
	}
	return v
}

// FillRange overwrites every position of s with start, start+step, start+2*step, ...
func FillRange[S ~[]E, E mathkit.Number](s S, start, step E) {
	Generate(s, mathkit.Step(start, step))
}

// Iota fills s with sequentially increasing values, starting with start.
func Iota[S ~[]E, E mathkit.Number](s S, start E) {
	FillRange(s, start, 1)
}

// Generate overwrites every position of s, in position order, with the successive results of gen.
func Generate[S ~[]E, E any](s S, gen func() E) {
	for i := range s {
		s[i] = gen()
	}
}

// Transform replaces every element of s in place with the result of fn.
func Transform[S ~[]E, E any](s S, fn func(E) E) {
	for i, v := range s {
		s[i] = fn(v)
	}
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any, FN mapFunc[O, I]](s []I, fn FN) ([]O, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out    = make([]O, len(s))
		mapper = toMapFunc[O, I](fn)
	)
	for index, v := range s {
		o, err := mapper(v)
		if err != nil {
			return out, err
		}
		out[index] = o
	}
	return out, nil
}

// ZipMap applies fn pairwise over as and bs.
// The result has as many elements as the shorter input.
func ZipMap[O, A, B any](as []A, bs []B, fn func(A, B) O) []O {
	n := min(len(as), len(bs))
	out := make([]O, n)
	for i := 0; i < n; i++ {
		out[i] = fn(as[i], bs[i])
	}
	return out
}

// Reduce iterates over a slice, combining elements using the reducer function.
// The evaluation is strictly left to right: fn(fn(fn(initial, s[0]), s[1]), s[2])...
func Reduce[O, I any, FN reduceFunc[O, I]](s []I, initial O, fn FN) (O, error) {
	var (
		result  = initial
		reducer = toReduceFunc[O, I](fn)
	)
	for _, i := range s {
		o, err := reducer(result, i)
		if err != nil {
			return result, err
		}
		result = o
	}
	return result, nil
}

// Count returns the number of elements that satisfy the predicate.
func Count[S ~[]E, E any](s S, pred func(E) bool) int {
	var total int
	for _, v := range s {
		if pred(v) {
			total++
		}
	}
	return total
}

// Find returns the first element that satisfies the predicate.
func Find[S ~[]E, E any](s S, pred func(E) bool) (E, bool) {
	if i, ok := FindIndex(s, pred); ok {
		return s[i], true
	}
	var zero E
	return zero, false
}

// FindIndex returns the position of the first element that satisfies the predicate.
func FindIndex[S ~[]E, E any](s S, pred func(E) bool) (int, bool) {
	for i, v := range s {
		if pred(v) {
			return i, true
		}
	}
	return -1, false
}

// ReplaceIf overwrites every element that satisfies the predicate with v.
func ReplaceIf[S ~[]E, E any](s S, pred func(E) bool, v E) {
	for i, e := range s {
		if pred(e) {
			s[i] = v
		}
	}
}

// Partition moves every element that satisfies keep to the front of s,
// preserving their original relative order, and returns their count.
// The order of the elements after the returned index is unspecified.
func Partition[S ~[]E, E any](s S, keep func(E) bool) int {
	var n int
	for i := range s {
		if keep(s[i]) {
			s[n], s[i] = s[i], s[n]
			n++
		}
	}
	return n
}

// RemoveIf removes every element that satisfies the predicate.
// The retained elements keep their original order.
// RemoveIf returns the shortened slice, the elements between the new length and the original length are zeroed.
func RemoveIf[S ~[]E, E any](s S, pred func(E) bool) S {
	n := Partition(s, func(v E) bool { return !pred(v) })
	clear(s[n:])
	return s[:n]
}

// AdjacentFind returns the index of the first element that satisfies pred together with its successor.
func AdjacentFind[S ~[]E, E any](s S, pred func(current, next E) bool) (int, bool) {
	for i := 0; i+1 < len(s); i++ {
		if pred(s[i], s[i+1]) {
			return i, true
		}
	}
	return -1, false
}

// AdjacentDifference returns a slice where the first element is s[0] unchanged,
// and every following element is s[i] - s[i-1].
func AdjacentDifference[S ~[]E, E mathkit.Number](s S) S {
	return AdjacentDifferenceFunc(s, mathkit.Difference[E])
}

// AdjacentDifferenceFunc is AdjacentDifference with a custom step function.
// op receives the current element and its predecessor.
func AdjacentDifferenceFunc[S ~[]E, E any](s S, op func(current, previous E) E) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	for i, v := range s {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = op(v, s[i-1])
	}
	return out
}

// PartialSum returns the running totals of s.
// It is the inverse of AdjacentDifference.
func PartialSum[S ~[]E, E mathkit.Number](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	var total E
	for i, v := range s {
		total += v
		out[i] = total
	}
	return out
}

// --------------------------------------------------------------------------------- //

type reduceFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toReduceFunc[O, I any, FN reduceFunc[O, I]](m FN) func(O, I) (O, error) {
	switch fn := any(m).(type) {
	case func(O, I) O:
		return func(o O, i I) (O, error) {
			return fn(o, i), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, MF mapFunc[O, I]](m MF) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
