// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"fmt"
)

// LookBack validates each accepted element against the one immediately
// before it. It is [LookBackN] with a window of one.
//
// Example:
//
//	// Require a strictly increasing sequence.
//	validseq.LookBack(src,
//	    func(n int) int { return n },
//	    func(prev, curr int) bool { return prev < curr },
//	)
func LookBack[T, A any](src Seq[T], extract func(T) A, test func(prev A, curr T) bool, opts ...Option[T]) Seq[T] {
	return LookBackN(src, 1, extract, test, opts...)
}

// LookBackN validates each accepted element against a property extracted
// from the element n accepted steps before it.
//
// The adapter keeps the extracted properties of the last n accepted
// elements in a fixed circular buffer. The first n accepted elements have
// no counterpart yet; they are accepted unconditionally and seed the
// buffer. From then on, each accepted element is tested against the
// property stored n steps back: test(prev, curr) returning true accepts
// the element and rotates it into the buffer, false rejects it as
// [KindLookBackFailed].
//
// A rejected candidate neither advances the position nor overwrites the
// buffer, so the next element is compared against the same historical
// value, not against the failure. Rejections arriving from upstream
// likewise never touch the buffer.
//
// A window of zero disables validation entirely: the source is returned
// as-is. A negative window is a construction error and panics.
//
// Example:
//
//	// Each value must exceed the value three accepted steps earlier.
//	validseq.LookBackN(src, 3,
//	    func(n int) int { return n },
//	    func(prev, curr int) bool { return prev < curr },
//	)
func LookBackN[T, A any](src Seq[T], n int, extract func(T) A, test func(prev A, curr T) bool, opts ...Option[T]) Seq[T] {
	if n < 0 {
		panic(fmt.Sprintf("validseq: negative look-back window %d", n))
	}
	if n == 0 {
		return src
	}
	cfg := newSettings(opts)
	return func(yield func(Outcome[T]) bool) {
		buffer := make([]A, n)
		position := 0
		for o := range src {
			if !o.IsAccepted() {
				if !yield(o) {
					return
				}
				continue
			}
			if position < n {
				buffer[position] = extract(o.value)
				position++
				if !yield(o) {
					return
				}
				continue
			}
			idx := position % n
			if test(buffer[idx], o.value) {
				buffer[idx] = extract(o.value)
				position++
				if !yield(o) {
					return
				}
			} else if !yield(cfg.reject(KindLookBackFailed, o.value)) {
				return
			}
		}
	}
}
