// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"cmp"
)

// Between requires every accepted element to lie within the inclusive
// range [lo, hi].
//
// Elements outside the range are rejected as [KindOutOfBounds]. The check
// uses the type's native ordering, so values that compare as neither
// inside nor outside — a float NaN against any bound — fail the check and
// are rejected. Rejections arriving from upstream pass through unchanged.
//
// Example:
//
//	// 0..=4 with bounds (1, 3): OutOfBounds(0), Accepted(1..=3), OutOfBounds(4).
//	validseq.Between(validseq.Validate(seq), 1, 3)
func Between[T cmp.Ordered](src Seq[T], lo, hi T, opts ...Option[T]) Seq[T] {
	cfg := newSettings(opts)
	return func(yield func(Outcome[T]) bool) {
		for o := range src {
			if o.IsAccepted() && !(o.value >= lo && o.value <= hi) {
				o = cfg.reject(KindOutOfBounds, o.value)
			}
			if !yield(o) {
				return
			}
		}
	}
}
