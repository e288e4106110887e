// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"fmt"
)

// Kind identifies which rule rejected an element.
//
// The set of kinds is closed: every rejection produced by this package
// carries exactly one of the kinds below, one per adapter family, plus
// [KindBridged] for failures carried over from a nested pipeline.
type Kind uint8

const (
	// KindTooMany marks elements arriving after an [AtMost] cap is reached.
	KindTooMany Kind = iota + 1

	// KindTooFew marks the single synthetic outcome [AtLeast] emits when
	// the source ends before enough elements were accepted.
	KindTooFew

	// KindOutOfBounds marks elements outside a [Between] range.
	KindOutOfBounds

	// KindInvalid marks elements failing an [Ensure] predicate.
	KindInvalid

	// KindBrokenConstant marks elements whose extracted property differs
	// from the reference fixed by [ConstOver].
	KindBrokenConstant

	// KindLookBackFailed marks elements failing a [LookBack] or
	// [LookBackN] comparison against their historical counterpart.
	KindLookBackFailed

	// KindBridged marks failures carried over from a nested pipeline by
	// [CastErrs] or [LiftErrs]. The inner detail is discarded.
	KindBridged
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTooMany:
		return "too many elements"
	case KindTooFew:
		return "too few elements"
	case KindOutOfBounds:
		return "out of bounds"
	case KindInvalid:
		return "invalid element"
	case KindBrokenConstant:
		return "broken constant"
	case KindLookBackFailed:
		return "look-back failed"
	case KindBridged:
		return "bridged failure"
	default:
		return "unknown"
	}
}

// A ValidationError is the reason an element was rejected.
//
// Every rejection in a validated sequence carries exactly one
// ValidationError. Use [errors.Is] with the Err* sentinels to match on the
// kind without inspecting fields:
//
//	_, err := validseq.Collect(pipeline)
//	if errors.Is(err, validseq.ErrTooFew) {
//	    // the source ended before enough elements were accepted
//	}
type ValidationError struct {
	// Kind identifies the rule that rejected the element.
	Kind Kind

	// Value is the offending element, where one exists. It is nil for
	// KindTooFew (no element exists) and KindBridged (the inner detail
	// is deliberately discarded).
	Value any

	// Message is an optional human-readable description, set by
	// [WithMessage], [WithMessagef], or [Describe]. It never influences
	// the accept/reject decision.
	Message string
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Value != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Value)
	}
	return e.Kind.String()
}

// Is reports whether target is a *ValidationError of the same kind,
// enabling errors.Is matching against the Err* sentinels.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinel values for matching rejections by kind with [errors.Is].
var (
	ErrTooMany        = &ValidationError{Kind: KindTooMany}
	ErrTooFew         = &ValidationError{Kind: KindTooFew}
	ErrOutOfBounds    = &ValidationError{Kind: KindOutOfBounds}
	ErrInvalid        = &ValidationError{Kind: KindInvalid}
	ErrBrokenConstant = &ValidationError{Kind: KindBrokenConstant}
	ErrLookBackFailed = &ValidationError{Kind: KindLookBackFailed}
	ErrBridged        = &ValidationError{Kind: KindBridged}
)

// IndexedError wraps an error with the position at which it occurred in a
// sequence.
//
// [Collect] returns an IndexedError when it hits a rejection, making it
// easy to report which element caused an all-or-nothing collection to fail.
//
// Example:
//
//	_, err := validseq.Collect(pipeline)
//	var ie *validseq.IndexedError
//	if errors.As(err, &ie) {
//	    fmt.Printf("failed at element %d: %v\n", ie.Index, ie.Err)
//	}
type IndexedError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *IndexedError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for inspection via errors.Is and errors.As.
func (e *IndexedError) Unwrap() error {
	return e.Err
}
