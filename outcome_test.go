// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	t.Run("Accepted", func(t *testing.T) {
		t.Parallel()
		o := Accepted(42)
		assert.True(t, o.IsAccepted())
		assert.False(t, o.IsRejected())
		assert.Equal(t, 42, o.Value())
		assert.NoError(t, o.Err())

		v, err := o.Get()
		assert.Equal(t, 42, v)
		assert.NoError(t, err)
	})

	t.Run("Rejected", func(t *testing.T) {
		t.Parallel()
		o := Rejected[int](&ValidationError{Kind: KindInvalid, Value: 42})
		assert.False(t, o.IsAccepted())
		assert.True(t, o.IsRejected())
		assert.Zero(t, o.Value())
		assert.ErrorIs(t, o.Err(), ErrInvalid)

		_, err := o.Get()
		require.Error(t, err)
	})

	t.Run("AcceptedErrIsUntypedNil", func(t *testing.T) {
		t.Parallel()
		// Err must return an untyped nil, not a typed nil wrapped in the
		// error interface.
		assert.Nil(t, Accepted("x").Err())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("LiftsEveryElement", func(t *testing.T) {
		t.Parallel()
		assertOutcomes(t, drain(Validate(rangeSeq(0, 4))), []expect[int]{
			ok(0), ok(1), ok(2), ok(3),
		})
	})

	t.Run("EmptySource", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, drain(Validate(rangeSeq(0, 0))))
	})

	t.Run("StopsWithConsumer", func(t *testing.T) {
		t.Parallel()
		pulled := 0
		src := func(yield func(int) bool) {
			for i := range 10 {
				pulled++
				if !yield(i) {
					return
				}
			}
		}
		got := take(Validate(src), 3)
		assert.Len(t, got, 3)
		assert.Equal(t, 3, pulled)
	})
}
