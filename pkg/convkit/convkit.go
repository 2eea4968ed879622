// Package convkit turns whitespace separated numeric text into sequences of numbers.
package convkit

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"
	"reflect"
	"strconv"
	"strings"

	"go.llib.dev/algokit/pkg/errorkit"
	"go.llib.dev/algokit/pkg/iterkit"
	"go.llib.dev/algokit/pkg/mathkit"
)

const ErrMalformedNumber errorkit.Error = "malformed number"

// Parse parses a single numeric token into N.
// The token must hold a value that N can represent, otherwise ErrMalformedNumber is returned.
func Parse[N mathkit.Number](raw string) (N, error) {
	rv, err := ParseReflect(reflect.TypeFor[N](), raw)
	if err != nil {
		return *new(N), err
	}
	return rv.Interface().(N), nil
}

// ParseReflect parses raw into a value of typ.
// Besides the numeric kinds, it supports strings and booleans.
func ParseReflect(typ reflect.Type, raw string) (reflect.Value, error) {
	rv := reflect.New(typ).Elem()
	switch typ.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return rv, fmt.Errorf("convkit.ParseReflect: %w", err)
		}
		rv.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return rv, ErrMalformedNumber.Wrap(err)
		}
		rv.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return rv, ErrMalformedNumber.Wrap(err)
		}
		rv.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := parseFloat(raw, typ.Bits())
		if err != nil {
			return rv, err
		}
		rv.SetFloat(v)
	default:
		return rv, fmt.Errorf("convkit.ParseReflect: unsupported kind: %s", typ.Kind())
	}
	return rv, nil
}

// parseFloat accepts decimal notation only.
// NaN, infinities and hexadecimal mantissas are malformed.
func parseFloat(raw string, bits int) (float64, error) {
	if strings.ContainsAny(raw, "xX") {
		return 0, ErrMalformedNumber.F("hexadecimal notation: %q", raw)
	}
	v, err := strconv.ParseFloat(raw, bits)
	if err != nil {
		return 0, ErrMalformedNumber.Wrap(err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformedNumber.F("not a finite number: %q", raw)
	}
	return v, nil
}

// ParseNumbers tokenizes text on whitespace and parses every token as N, preserving their order.
// Parsing stops at the first malformed token, the numbers parsed before it are returned.
func ParseNumbers[N mathkit.Number](text string) []N {
	out := iterkit.Collect(ScanNumbers[N](strings.NewReader(text)))
	if len(out) == 0 {
		return nil
	}
	return out
}

// ScanNumbers is the streaming form of ParseNumbers.
// The iteration ends quietly at the first malformed token or read failure.
func ScanNumbers[N mathkit.Number](r io.Reader) iter.Seq[N] {
	return func(yield func(N) bool) {
		for n, err := range ScanNumbersErr[N](r) {
			if err != nil {
				return
			}
			if !yield(n) {
				return
			}
		}
	}
}

// ScanNumbersErr is ScanNumbers that reports why the iteration stopped.
// A malformed token is yielded as an ErrMalformedNumber error, a failing reader yields its error,
// and in both cases it is the last element of the sequence.
func ScanNumbersErr[N mathkit.Number](r io.Reader) iterkit.ErrSeq[N] {
	return func(yield func(N, error) bool) {
		var zero N
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for token, err := range iterkit.BufioScanner[string](sc, nil) {
			if err != nil {
				yield(zero, err)
				return
			}
			n, err := Parse[N](token)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(n, nil) {
				return
			}
		}
	}
}
