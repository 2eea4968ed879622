// Package mathkit holds the numeric constraints and the small arithmetic helpers
// that the sequence algorithms are parameterised with.
package mathkit

import "golang.org/x/exp/constraints"

type (
	Int    constraints.Signed
	UInt   constraints.Unsigned
	Float  constraints.Float
	Number interface {
		constraints.Integer | constraints.Float
	}
	// Signed covers every number type where negation is meaningful.
	Signed interface {
		constraints.Signed | constraints.Float
	}
)

// Abs returns the absolute value of n.
//
// For signed integers the minimum value has no positive counterpart,
// Abs(math.MinInt64) overflows back into math.MinInt64, just like -n would.
func Abs[N Signed](n N) N {
	if n < 0 {
		return -n
	}
	return n
}

// Sum is the binary form of addition, usable as a fold accumulator.
func Sum[N Number](a, b N) N { return a + b }

// Difference returns current minus previous.
// It is the default step function of an adjacent difference.
func Difference[N Number](current, previous N) N { return current - previous }

// Step returns a generator that yields start, start+step, start+2*step, ...
// Each call advances the captured state.
func Step[N Number](start, step N) func() N {
	next := start
	return func() N {
		v := next
		next += step
		return v
	}
}
