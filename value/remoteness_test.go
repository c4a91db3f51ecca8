package value

import (
	"errors"
	"math"
	"testing"

	"retrograde/game"

	"github.com/stretchr/testify/require"
)

func TestRemotenessOrder(t *testing.T) {
	require.Less(t, Remoteness(0), Remoteness(1))
	require.Less(t, Remoteness(math.MaxUint32-1), Infinite)
	require.False(t, Infinite < Remoteness(math.MaxUint32-1))
	require.Less(t, Remoteness(0), Infinite)
}

func TestRemotenessNext(t *testing.T) {
	require.Equal(t, Remoteness(1), Remoteness(0).Next())
	require.Equal(t, Infinite, Infinite.Next(), "Infinite should saturate")
	require.Equal(t, Infinite, Remoteness(math.MaxUint32-1).Next())
	require.Equal(t, "inf", Infinite.String())
	require.Equal(t, "7", Remoteness(7).String())
}

func TestResultFromPrimitive(t *testing.T) {
	got, ok := ResultRule{}.FromPrimitive(game.Lose)
	require.True(t, ok)
	require.Equal(t, Result{Outcome: Lose, Remoteness: 0}, got)

	_, ok = ResultRule{}.FromPrimitive(game.NotPrimitive)
	require.False(t, ok)
}

func TestResultAggregate(t *testing.T) {
	rule := ResultRule{}

	t.Run("win takes the fastest losing child", func(t *testing.T) {
		got := rule.Aggregate([]Result{
			{Outcome: Lose, Remoteness: 4},
			{Outcome: Win, Remoteness: 1},
			{Outcome: Lose, Remoteness: 2},
		})
		require.Equal(t, Result{Outcome: Win, Remoteness: 3}, got)
	})

	t.Run("tie takes the fastest tying child", func(t *testing.T) {
		got := rule.Aggregate([]Result{
			{Outcome: Tie, Remoteness: 6},
			{Outcome: Win, Remoteness: 1},
			{Outcome: Tie, Remoteness: 3},
		})
		require.Equal(t, Result{Outcome: Tie, Remoteness: 4}, got)
	})

	t.Run("lose delays with the slowest winning child", func(t *testing.T) {
		got := rule.Aggregate([]Result{
			{Outcome: Win, Remoteness: 1},
			{Outcome: Win, Remoteness: 5},
		})
		require.Equal(t, Result{Outcome: Lose, Remoteness: 6}, got)
	})

	t.Run("draw is infinitely remote", func(t *testing.T) {
		got := rule.Aggregate([]Result{
			{Outcome: Draw, Remoteness: Infinite},
			{Outcome: Win, Remoteness: 2},
		})
		require.Equal(t, Result{Outcome: Draw, Remoteness: Infinite}, got)
	})

	t.Run("outcome matches the plain rule", func(t *testing.T) {
		children := []Result{
			{Outcome: Win, Remoteness: 2},
			{Outcome: Draw, Remoteness: Infinite},
			{Outcome: Tie, Remoteness: 1},
		}
		plain := OutcomeRule{}.Aggregate([]Outcome{Win, Draw, Tie})
		require.Equal(t, plain, rule.Aggregate(children).Outcome)
	})

	t.Run("panics without children", func(t *testing.T) {
		require.PanicsWithError(t, ErrNoChildren.Error(), func() {
			rule.Aggregate([]Result{})
		})
	})
}

func TestQualifyingPanicsOnInconsistentOutcome(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "should panic")
		err, ok := r.(error)
		require.True(t, ok, "should panic with an error")
		require.True(t, errors.Is(err, ErrNoQualifyingChild))
	}()

	qualifying([]Result{{Outcome: Tie, Remoteness: 1}}, Win, Lose)
}
