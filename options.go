// SPDX-License-Identifier: Apache-2.0

package validseq

// An Option customizes the rejections an adapter produces.
//
// Options affect only the message payload of a rejection, never the
// accept/reject decision, counting, or ordering.
type Option[T any] func(*settings[T])

// settings holds the per-adapter rejection configuration.
type settings[T any] struct {
	message  string
	messagef func(T) string
}

// WithMessage sets a fixed human-readable message on every rejection the
// adapter produces.
//
// Example:
//
//	validseq.AtMost(src, 100, validseq.WithMessage[Row]("batch too large"))
func WithMessage[T any](msg string) Option[T] {
	return func(s *settings[T]) {
		s.message = msg
	}
}

// WithMessagef sets a message factory invoked with the offending element
// when the adapter constructs a rejection. It takes precedence over
// [WithMessage] if both are given.
//
// The factory is only called for rejections that carry an element; the
// synthetic trailing rejection of [AtLeast] has none, so that adapter
// falls back to the fixed message.
//
// Example:
//
//	validseq.Ensure(src, isASCII, validseq.WithMessagef(func(s string) string {
//	    return fmt.Sprintf("%q contains non-ASCII characters", s)
//	}))
func WithMessagef[T any](f func(T) string) Option[T] {
	return func(s *settings[T]) {
		s.messagef = f
	}
}

// newSettings applies opts over the zero configuration.
func newSettings[T any](opts []Option[T]) settings[T] {
	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// reject builds a rejected outcome carrying the offending element.
func (s settings[T]) reject(kind Kind, v T) Outcome[T] {
	err := &ValidationError{Kind: kind, Value: v}
	switch {
	case s.messagef != nil:
		err.Message = s.messagef(v)
	case s.message != "":
		err.Message = s.message
	}
	return Rejected[T](err)
}

// rejectValueless builds a rejected outcome for kinds that carry no
// element (TooFew, Bridged).
func (s settings[T]) rejectValueless(kind Kind) Outcome[T] {
	err := &ValidationError{Kind: kind}
	if s.message != "" {
		err.Message = s.message
	}
	return Rejected[T](err)
}
