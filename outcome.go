// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"iter"
)

// An Outcome is the per-element result produced by every pipeline stage.
//
// Each element of a validated sequence is either accepted, carrying the
// element's value, or rejected, carrying a [*ValidationError] describing
// why. Outcomes are immutable once produced: adapters never modify an
// outcome they receive, they only decide whether to forward it or replace
// an accepted one with a rejection.
type Outcome[T any] struct {
	value T
	err   *ValidationError
}

// Accepted wraps a value in an accepted outcome.
func Accepted[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Rejected wraps a validation error in a rejected outcome.
func Rejected[T any](err *ValidationError) Outcome[T] {
	return Outcome[T]{err: err}
}

// IsAccepted reports whether the outcome carries an accepted value.
func (o Outcome[T]) IsAccepted() bool {
	return o.err == nil
}

// IsRejected reports whether the outcome carries a rejection.
func (o Outcome[T]) IsRejected() bool {
	return o.err != nil
}

// Value returns the accepted value. For rejected outcomes it returns the
// zero value; check [Outcome.IsAccepted] or use [Outcome.Get] instead when
// the distinction matters.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the rejection reason, or nil for accepted outcomes.
func (o Outcome[T]) Err() error {
	if o.err == nil {
		return nil
	}
	return o.err
}

// Get unpacks the outcome into the familiar value-and-error pair.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.Err()
}

// A Seq is a validated sequence: a lazy stream of per-element outcomes.
//
// Seq is the contract every adapter in this package consumes and produces.
// Ranging over a Seq pulls one outcome at a time through the whole adapter
// chain; stopping early simply stops pulling, which is always safe. The
// number of outcomes equals the number of source elements, except that
// [AtLeast] may append exactly one synthetic trailing rejection at natural
// end of source.
type Seq[T any] = iter.Seq[Outcome[T]]

// Validate lifts an ordinary sequence into a validated one, tagging every
// element as accepted. It is the entry point into a pipeline: adapters
// operate on [Seq] values, so a plain sequence must pass through Validate
// (or arrive via [CastErrs] or [LiftErrs]) first.
//
// Example:
//
//	pipeline := validseq.Between(
//	    validseq.Validate(slices.Values(readings)),
//	    0.0, 100.0,
//	)
func Validate[T any](src iter.Seq[T]) Seq[T] {
	return func(yield func(Outcome[T]) bool) {
		for v := range src {
			if !yield(Accepted(v)) {
				return
			}
		}
	}
}
