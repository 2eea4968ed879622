// Package iterkit provides lazy counterparts of the slicekit algorithms over iter.Seq.
//
// # Summary
//
// An iterator decouples the origin of the data from the consumer who uses that data.
// The consumer doesn't need to know whether the values come from a slice,
// a slice walked backwards, or a stream of text read from standard input.
// Views over slices, such as Slice and Backward, never copy the underlying slice.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package iterkit

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"slices"

	"go.llib.dev/algokit/pkg/errorkit"
	"go.llib.dev/algokit/pkg/mathkit"
)

type I1[T any] interface {
	iter.Seq[T] | ErrSeq[T]
}

// ErrSeq is an iterator that can tell if a currently returned value has an issue or not.
type ErrSeq[T any] = iter.Seq2[T, error]

// Slice is a forward view over s.
func Slice[T any](s []T) iter.Seq[T] {
	return slices.Values(s)
}

// Backward is a view that walks s from its last element to its first.
// Unlike Reverse, it doesn't copy the elements.
func Backward[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; 0 <= i; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
// Prefer Backward when the source is a slice.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Error returns an ErrSeq that only yields the error.
func Error[T any](err error) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// ReduceErr is Reduce with a failable reducer.
// Iteration stops at the first error, and the result reduced up to that point is returned with it.
func ReduceErr[R, T any, I I1[T]](i I, initial R, fn func(R, T) (R, error)) (result R, rErr error) {
	var v = initial
	for c, err := range castToErrSeq[T](i) {
		if err != nil {
			return v, err
		}
		v, err = fn(v, c)
		if err != nil {
			return v, err
		}
	}
	return v, nil
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// CollectErr collects the values of an ErrSeq.
// The errors are merged together and returned alongside the successfully yielded values.
func CollectErr[T any](i ErrSeq[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var (
		vs   []T
		errs []error
	)
	for v, err := range i {
		if err == nil {
			vs = append(vs, v)
		} else {
			errs = append(errs, err)
		}
	}
	return vs, errorkit.Merge(errs...)
}

func Filter[T any, Iter I1[T]](i Iter, filter func(T) bool) Iter {
	if i == nil {
		return nil
	}
	switch i := any(i).(type) {
	case iter.Seq[T]:
		var itr iter.Seq[T] = func(yield func(T) bool) {
			for v := range i {
				if filter(v) {
					if !yield(v) {
						break
					}
				}
			}
		}
		return any(itr).(Iter)
	case ErrSeq[T]:
		var itr ErrSeq[T] = func(yield func(T, error) bool) {
			for v, err := range i {
				if err != nil {
					var zero T
					if !yield(zero, err) {
						return
					}
					continue
				}
				if filter(v) {
					if !yield(v, nil) {
						return
					}
				}
			}
		}
		return any(itr).(Iter)
	default:
		panic("not-implemented")
	}
}

// First decode the first next value of the iterator and close the iterator
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](i iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range i {
		last = v
		ok = true
	}
	return last, ok
}

// Head takes the first n element, similarly how the coreutils "head" app works.
func Head[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var taken int
		for v := range i {
			if !yield(v) {
				return
			}
			taken++
			if n <= taken {
				return
			}
		}
	}
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				break
			}
		}
	}
}

func MapErr[To any, From any, Iter I1[From]](i Iter, transform func(From) (To, error)) ErrSeq[To] {
	var src ErrSeq[From] = castToErrSeq[From](i)
	return func(yield func(To, error) bool) {
		for v, err := range src {
			if err != nil {
				var zero To
				if !yield(zero, err) {
					return
				}
				continue
			}
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// AdjacentDifference yields the first value unchanged,
// then the difference of every value and its predecessor.
func AdjacentDifference[N mathkit.Number](i iter.Seq[N]) iter.Seq[N] {
	return AdjacentDifferenceFunc(i, mathkit.Difference[N])
}

// AdjacentDifferenceFunc is AdjacentDifference with a custom step function.
func AdjacentDifferenceFunc[T any](i iter.Seq[T], op func(current, previous T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			prev  T
			first = true
		)
		for v := range i {
			out := v
			if !first {
				out = op(v, prev)
			}
			first = false
			prev = v
			if !yield(out) {
				return
			}
		}
	}
}

// BufioScanner turns a bufio.Scanner into an ErrSeq.
// The scanner's error is yielded as the last element,
// and the closer, when given, is closed once the iteration is over.
func BufioScanner[T string | []byte](s *bufio.Scanner, closer io.Closer) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		var zero T
		for s.Scan() {
			var v T
			switch any(v).(type) {
			case string:
				v = T(s.Text())
			case []byte:
				v = T(bytes.Clone(s.Bytes()))
			}
			if !yield(v, nil) {
				if closer != nil {
					_ = closer.Close()
				}
				return
			}
		}
		var errs = []error{s.Err()}
		if closer != nil {
			errs = append(errs, closer.Close())
		}
		if err := errorkit.Merge(errs...); err != nil {
			yield(zero, err)
		}
	}
}

func castToErrSeq[T any, I I1[T]](i I) ErrSeq[T] {
	switch i := any(i).(type) {
	case iter.Seq[T]:
		return func(yield func(T, error) bool) {
			for v := range i {
				if !yield(v, nil) {
					return
				}
			}
		}
	case ErrSeq[T]:
		return i
	default:
		panic("not-implemented")
	}
}
