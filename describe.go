// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"fmt"
)

// Describe rewrites the message of every rejection flowing through it.
//
// The describe function receives the rejection and returns its new
// message; the kind and offending value are preserved, and the original
// outcome is left untouched (a copy carries the new message downstream).
// Accepted outcomes pass through unchanged.
//
// Describe is purely cosmetic: it is the one stage that replaces
// rejections in flight, and it may only change the string payload, never
// the accept/reject decision or any adapter's state.
//
// Example:
//
//	validseq.Describe(pipeline, func(err *validseq.ValidationError) string {
//	    return fmt.Sprintf("row check: %v", err)
//	})
func Describe[T any](src Seq[T], describe func(*ValidationError) string) Seq[T] {
	return func(yield func(Outcome[T]) bool) {
		for o := range src {
			if o.IsRejected() {
				rewritten := *o.err
				rewritten.Message = describe(o.err)
				o = Rejected[T](&rewritten)
			}
			if !yield(o) {
				return
			}
		}
	}
}

// Named prefixes the message of every rejection with a stage name,
// separated by a colon.
//
// This is useful for telling apart rejections from identically-kinded
// stages in a long chain, in the same way one would name steps of a
// workflow.
//
// Example:
//
//	validseq.Named("header", validseq.AtLeast(src, 1))
func Named[T any](name string, src Seq[T]) Seq[T] {
	return Describe(src, func(err *ValidationError) string {
		return fmt.Sprintf("%s: %v", name, err)
	})
}
