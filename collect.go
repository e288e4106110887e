// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"iter"
)

// Collect drains the sequence into a slice, all-or-nothing.
//
// The first rejection in iteration order stops the pull and is returned as
// an [IndexedError] wrapping the [*ValidationError] with the outcome's
// position. On success the full slice of accepted values is returned.
//
// Because Collect stops pulling at the first rejection, stages upstream
// never see the rest of the source. In particular, an [AtLeast] further
// down the chain cannot emit its trailing rejection once an earlier
// rejection short-circuits the collection.
//
// Example:
//
//	values, err := validseq.Collect(
//	    validseq.Between(validseq.Validate(seq), 1, 3),
//	)
func Collect[T any](src Seq[T]) ([]T, error) {
	var collected []T
	i := 0
	for o := range src {
		if o.IsRejected() {
			return nil, &IndexedError{Index: i, Err: o.Err()}
		}
		collected = append(collected, o.value)
		i++
	}
	return collected, nil
}

// Values filters the sequence down to its accepted values, discarding
// rejections.
//
// Unlike [Collect] this never short-circuits: the whole source is pulled
// as the result is ranged, so trailing synthetic rejections are produced
// (and dropped) as usual.
func Values[T any](src Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range src {
			if o.IsAccepted() && !yield(o.value) {
				return
			}
		}
	}
}

// Failures filters the sequence down to its rejections, discarding
// accepted values.
func Failures[T any](src Seq[T]) iter.Seq[*ValidationError] {
	return func(yield func(*ValidationError) bool) {
		for o := range src {
			if o.IsRejected() && !yield(o.err) {
				return
			}
		}
	}
}

// Partition drains the sequence, splitting it into accepted values and
// rejections. Relative order is preserved within each slice.
func Partition[T any](src Seq[T]) ([]T, []*ValidationError) {
	var values []T
	var errs []*ValidationError
	for o := range src {
		if o.IsAccepted() {
			values = append(values, o.value)
		} else {
			errs = append(errs, o.err)
		}
	}
	return values, errs
}
