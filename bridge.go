// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"iter"
)

// CastErrs converts a sequence of value-and-error pairs produced by
// collecting nested pipelines into a validated sequence over the collected
// values.
//
// Every pair with a nil error becomes an accepted outcome; every pair with
// a non-nil error becomes a rejection of kind [KindBridged]. The inner
// error is discarded: once bridged, the outer pipeline knows only that the
// nested validation failed somewhere, which is exactly the granularity an
// aggregate check needs.
//
// CastErrs and [LiftErrs] share one contract and differ only in intent at
// the call site: use CastErrs when the inner errors are this package's own
// validation failures, re-typed across the element-type boundary that
// collecting creates.
//
// Example:
//
//	// Validate each row independently, then require the collected rows
//	// to be non-empty and uniform in length.
//	rows := func(yield func([]float64, error) bool) {
//	    for _, raw := range rawRows {
//	        if !yield(validseq.Collect(validateRow(raw))) {
//	            return
//	        }
//	    }
//	}
//	outer := validseq.ConstOver(
//	    validseq.AtLeast(validseq.CastErrs(rows), 1),
//	    func(r []float64) int { return len(r) },
//	)
func CastErrs[T any](src iter.Seq2[T, error], opts ...Option[T]) Seq[T] {
	return bridge(src, opts)
}

// LiftErrs converts a sequence of value-and-error pairs with an arbitrary
// error type into a validated sequence, mapping every non-nil error to a
// rejection of kind [KindBridged].
//
// LiftErrs and [CastErrs] share one contract; use LiftErrs when the errors
// come from outside this package entirely, such as parse failures feeding
// a pipeline.
//
// Example:
//
//	parsed := func(yield func(float64, error) bool) {
//	    for field := range fields {
//	        if !yield(strconv.ParseFloat(field, 64)) {
//	            return
//	        }
//	    }
//	}
//	pipeline := validseq.Ensure(validseq.LiftErrs(parsed), isNonNegative)
func LiftErrs[T any](src iter.Seq2[T, error], opts ...Option[T]) Seq[T] {
	return bridge(src, opts)
}

func bridge[T any](src iter.Seq2[T, error], opts []Option[T]) Seq[T] {
	cfg := newSettings(opts)
	return func(yield func(Outcome[T]) bool) {
		for v, err := range src {
			o := Accepted(v)
			if err != nil {
				o = cfg.rejectValueless(KindBridged)
			}
			if !yield(o) {
				return
			}
		}
	}
}
