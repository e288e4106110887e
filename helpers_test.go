// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==== Test Helpers: Sources ====

// rangeSeq yields the integers in [lo, hi).
func rangeSeq(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i < hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// valuesSeq yields the given values in order.
func valuesSeq[T any](vs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

// ==== Test Helpers: Draining ====

// drain pulls every outcome from the sequence.
func drain[T any](src Seq[T]) []Outcome[T] {
	var outcomes []Outcome[T]
	for o := range src {
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// take pulls exactly n outcomes from the sequence (fewer if it ends
// early), then stops pulling. The n-th pull is the last one.
func take[T any](src Seq[T], n int) []Outcome[T] {
	var outcomes []Outcome[T]
	if n == 0 {
		return outcomes
	}
	for o := range src {
		outcomes = append(outcomes, o)
		if len(outcomes) == n {
			break
		}
	}
	return outcomes
}

// ==== Test Helpers: Expected Outcomes ====

// expect describes one expected outcome. A zero kind means accepted.
type expect[T any] struct {
	kind     Kind
	value    T
	hasValue bool
}

// ok expects an accepted outcome with the given value.
func ok[T any](v T) expect[T] {
	return expect[T]{value: v, hasValue: true}
}

// rejected expects a rejection of the given kind carrying the given value.
func rejected[T any](kind Kind, v T) expect[T] {
	return expect[T]{kind: kind, value: v, hasValue: true}
}

// rejectedNoValue expects a rejection of the given kind carrying no value.
func rejectedNoValue[T any](kind Kind) expect[T] {
	return expect[T]{kind: kind}
}

// assertOutcomes checks that got matches want, element by element.
func assertOutcomes[T any](t *testing.T, got []Outcome[T], want []expect[T]) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		o := got[i]
		if w.kind == 0 {
			require.True(t, o.IsAccepted(), "outcome %d should be accepted, got %v", i, o.Err())
			assert.Equal(t, w.value, o.Value(), "outcome %d", i)
			continue
		}
		require.True(t, o.IsRejected(), "outcome %d should be rejected", i)
		assert.Equal(t, w.kind, o.err.Kind, "outcome %d kind", i)
		if w.hasValue {
			assert.Equal(t, w.value, o.err.Value, "outcome %d value", i)
		} else {
			assert.Nil(t, o.err.Value, "outcome %d should carry no value", i)
		}
	}
}

// ==== Test Helpers: Predicates and Extractors ====

func isEven(n int) bool { return n%2 == 0 }

func never(int) bool { return false }

func identity(n int) int { return n }

func increasing(prev, curr int) bool { return prev < curr }

// allRejected builds a sequence whose every element is already rejected,
// for pass-through tests.
func allRejected(n int) Seq[int] {
	return Ensure(Validate(rangeSeq(0, n)), never)
}
