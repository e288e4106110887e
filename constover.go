// SPDX-License-Identifier: Apache-2.0

package validseq

// ConstOver requires a property derived from every accepted element to be
// constant across the sequence.
//
// The first accepted element fixes the reference: it is never itself
// checked, and its extracted property becomes the value all later accepted
// elements must match. Elements whose extracted property differs are
// rejected as [KindBrokenConstant]. Rejections arriving from upstream pass
// through unchanged and never touch the reference.
//
// Example:
//
//	// Require all rows to have the same length.
//	validseq.ConstOver(rows, func(r []float64) int { return len(r) })
func ConstOver[T any, A comparable](src Seq[T], extract func(T) A, opts ...Option[T]) Seq[T] {
	cfg := newSettings(opts)
	return func(yield func(Outcome[T]) bool) {
		var reference A
		armed := false
		for o := range src {
			if o.IsAccepted() {
				if !armed {
					reference = extract(o.value)
					armed = true
				} else if extract(o.value) != reference {
					o = cfg.reject(KindBrokenConstant, o.value)
				}
			}
			if !yield(o) {
				return
			}
		}
	}
}
