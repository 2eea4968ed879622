// Package compare defines the ordering primitives used by the sorting and selection algorithms.
//
// Two shapes of comparison are supported:
//
//   - LessFunc, a strict weak ordering (irreflexive, asymmetric, transitive,
//     with transitive incomparability), the shape sort and selection algorithms consume.
//   - a three-way compare function that returns -1, 0 or +1, the shape of cmp.Compare and slices.SortFunc.
//
// ToLess and ToCmp convert between the two.
package compare

import (
	"cmp"
	"strings"

	"github.com/maruel/natural"
	"go.llib.dev/algokit/pkg/mathkit"
)

// LessFunc reports whether a must be ordered before b.
// Elements where neither a < b nor b < a are treated as equivalent,
// and their relative order after sorting is unspecified.
type LessFunc[T any] func(a, b T) bool

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

func Numbers[T mathkit.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Less is the natural ordering of any ordered type.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Natural orders strings the way humans read them,
// so digit runs are compared by their numeric value: "item2" < "item10".
func Natural[S ~string](a, b S) bool {
	return natural.Less(string(a), string(b))
}

// ToLess turns a three-way compare function into a LessFunc.
func ToLess[T any](cmp func(a, b T) int) LessFunc[T] {
	return func(a, b T) bool { return IsLess(cmp(a, b)) }
}

// ToCmp turns a LessFunc into a three-way compare function.
func ToCmp[T any](less LessFunc[T]) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse flips the direction of an ordering.
func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool { return less(b, a) }
}

// By orders values by a key extracted from them.
//
//	byAge := compare.By(func(p Person) int { return p.Age })
func By[T any, K cmp.Ordered](key func(T) K) LessFunc[T] {
	return func(a, b T) bool { return cmp.Less(key(a), key(b)) }
}

// Then combines orderings lexicographically.
// The tie-breaks are consulted in order, only when every ordering before them found the two values equivalent.
// Use it when the relative order of equivalent elements must be deterministic.
func Then[T any](primary LessFunc[T], tieBreaks ...LessFunc[T]) LessFunc[T] {
	orderings := append([]LessFunc[T]{primary}, tieBreaks...)
	return func(a, b T) bool {
		for _, less := range orderings {
			if less(a, b) {
				return true
			}
			if less(b, a) {
				return false
			}
		}
		return false
	}
}
