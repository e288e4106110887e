// SPDX-License-Identifier: Apache-2.0

package validseq

// AtLeast requires the source to produce at least min accepted elements.
//
// Every outcome is forwarded unchanged. When the source is exhausted with
// fewer than min accepted elements seen, exactly one synthetic trailing
// rejection of kind [KindTooFew] is appended; it carries no element,
// because none exists. Rejections arriving from upstream pass through
// without counting toward min.
//
// The trailing rejection fires only at natural end of source. A consumer
// that stops pulling early never sees it: "too few" cannot be detected
// without observing the whole source. This asymmetry is deliberate; see
// the package documentation.
//
// Example:
//
//	// 0..10 with min 100: ten accepted outcomes, then one TooFew.
//	validseq.AtLeast(validseq.Validate(seq), 100)
func AtLeast[T any](src Seq[T], min int, opts ...Option[T]) Seq[T] {
	cfg := newSettings(opts)
	return func(yield func(Outcome[T]) bool) {
		count := 0
		for o := range src {
			if o.IsAccepted() {
				count++
			}
			if !yield(o) {
				return
			}
		}
		if count < min {
			yield(cfg.rejectValueless(KindTooFew))
		}
	}
}

// AtMost caps the number of accepted elements at max.
//
// The first max accepted elements are forwarded unchanged. Every accepted
// element after that is replaced by a rejection of kind [KindTooMany]
// carrying the element; it is not counted as accepted, so once the cap is
// reached the adapter rejects all further accepted elements and never
// recovers. Rejections arriving from upstream pass through without
// counting toward the cap.
//
// Example:
//
//	// 0..10 with max 5: Accepted(0..5), then TooMany(5..10).
//	validseq.AtMost(validseq.Validate(seq), 5)
func AtMost[T any](src Seq[T], max int, opts ...Option[T]) Seq[T] {
	cfg := newSettings(opts)
	return func(yield func(Outcome[T]) bool) {
		count := 0
		for o := range src {
			if o.IsAccepted() {
				if count < max {
					count++
				} else {
					o = cfg.reject(KindTooMany, o.value)
				}
			}
			if !yield(o) {
				return
			}
		}
	}
}
