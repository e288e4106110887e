// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"log/slog"
)

// Logged passes outcomes through unchanged, logging every rejection to the
// given structured logger.
//
// Rejections are logged at warn level with the outcome's position, the
// rejection kind, and the formatted error. If logger is nil,
// [slog.Default] is used. Logging never affects the outcome stream; this
// decorator can be inserted anywhere in a chain to observe what an
// upstream stage rejects.
//
// Example:
//
//	pipeline := validseq.AtMost(
//	    validseq.Logged(logger, validseq.Between(src, 1, 3)),
//	    100,
//	)
func Logged[T any](logger *slog.Logger, src Seq[T]) Seq[T] {
	return func(yield func(Outcome[T]) bool) {
		log := logger
		if log == nil {
			log = slog.Default()
		}
		i := 0
		for o := range src {
			if o.IsRejected() {
				log.Warn("element rejected",
					slog.Int("index", i),
					slog.String("kind", o.err.Kind.String()),
					slog.String("error", o.err.Error()),
				)
			}
			i++
			if !yield(o) {
				return
			}
		}
	}
}
