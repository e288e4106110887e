// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsure(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		seq  Seq[int]
		want []expect[int]
	}{
		{
			name: "RejectsFailingElements",
			seq: Ensure(Validate(rangeSeq(0, 10)), func(n int) bool {
				return n%3 == 2
			}),
			want: []expect[int]{
				rejected(KindInvalid, 0),
				rejected(KindInvalid, 1),
				ok(2),
				rejected(KindInvalid, 3),
				rejected(KindInvalid, 4),
				ok(5),
				rejected(KindInvalid, 6),
				rejected(KindInvalid, 7),
				ok(8),
				rejected(KindInvalid, 9),
			},
		},
		{
			name: "AllPass",
			seq:  Ensure(Validate(rangeSeq(0, 3)), func(int) bool { return true }),
			want: []expect[int]{ok(0), ok(1), ok(2)},
		},
		{
			name: "EmptySource",
			seq:  Ensure(Validate(rangeSeq(0, 0)), never),
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertOutcomes(t, drain(tc.seq), tc.want)
		})
	}
}

func TestEnsureChainingOrder(t *testing.T) {
	t.Parallel()
	// An element failing the first predicate must never reach the second.
	var secondSaw []int
	seq := Ensure(
		Ensure(Validate(rangeSeq(0, 6)), isEven),
		func(n int) bool {
			secondSaw = append(secondSaw, n)
			return n < 4
		},
	)
	assertOutcomes(t, drain(seq), []expect[int]{
		ok(0),
		rejected(KindInvalid, 1),
		ok(2),
		rejected(KindInvalid, 3),
		rejected(KindInvalid, 4),
		rejected(KindInvalid, 5),
	})
	assert.Equal(t, []int{0, 2, 4}, secondSaw)
}

func TestPredicateCombinators(t *testing.T) {
	t.Parallel()
	positive := func(n int) bool { return n > 0 }

	testCases := []struct {
		name string
		pred Predicate[int]
		in   int
		want bool
	}{
		{"NotInverts", Not(isEven), 3, true},
		{"NotInvertsBack", Not(isEven), 4, false},
		{"AndAllTrue", And(isEven, positive), 4, true},
		{"AndOneFalse", And(isEven, positive), -4, false},
		{"AndEmpty", And[int](), 7, true},
		{"OrOneTrue", Or(isEven, positive), 3, true},
		{"OrAllFalse", Or(isEven, positive), -3, false},
		{"OrEmpty", Or[int](), 7, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.pred(tc.in))
		})
	}
}

func TestPredicateShortCircuit(t *testing.T) {
	t.Parallel()
	called := false
	spy := func(int) bool {
		called = true
		return true
	}

	And(never, spy)(1)
	assert.False(t, called, "And must not evaluate past the first false")

	Or(func(int) bool { return true }, func(n int) bool {
		called = true
		return false
	})(1)
	assert.False(t, called, "Or must not evaluate past the first true")
}
