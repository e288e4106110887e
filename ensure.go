// SPDX-License-Identifier: Apache-2.0

package validseq

// A Predicate reports whether an element satisfies a rule.
//
// Predicates may close over mutable state at the caller's discretion; the
// pipeline calls them once per accepted element, in order, from a single
// goroutine.
type Predicate[T any] = func(T) bool

// Ensure requires every accepted element to satisfy the predicate.
//
// Elements failing the predicate are rejected as [KindInvalid]. Rejections
// arriving from upstream pass through unchanged and are never evaluated,
// so chained Ensure stages apply in order and an element failing an
// earlier one is invisible to later ones.
//
// Example:
//
//	validseq.Ensure(validseq.Validate(seq), func(n int) bool {
//	    return n%2 == 0
//	})
func Ensure[T any](src Seq[T], pred Predicate[T], opts ...Option[T]) Seq[T] {
	cfg := newSettings(opts)
	return func(yield func(Outcome[T]) bool) {
		for o := range src {
			if o.IsAccepted() && !pred(o.value) {
				o = cfg.reject(KindInvalid, o.value)
			}
			if !yield(o) {
				return
			}
		}
	}
}

// Not negates a predicate, returning true when the predicate returns false
// and vice versa.
//
// Example:
//
//	validseq.Ensure(src, validseq.Not(isBlank))
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !pred(v)
	}
}

// And combines multiple predicates with logical AND.
//
// All predicates must return true for the result to be true. Evaluation
// short-circuits on the first false.
//
// Example:
//
//	validseq.Ensure(src, validseq.And(isPositive, isFinite))
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range predicates {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or combines multiple predicates with logical OR.
//
// Returns true if any predicate returns true. Evaluation short-circuits on
// the first true.
//
// Example:
//
//	validseq.Ensure(src, validseq.Or(isZero, isPositive))
func Or[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range predicates {
			if p(v) {
				return true
			}
		}
		return false
	}
}
