package vote

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		expected float64
	}{
		{"Half", 2, 0.5},
		{"Quarter", 4, 0.25},
		{"One", 1, 1},
		{"ExactMatch", 0, 1},
		{"Close", 0.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Weight(tt.distance))
		})
	}
}

func TestTally(t *testing.T) {
	t.Run("WeightedWinner", func(t *testing.T) {
		tally := New(3)
		tally.Add("A", 2)
		tally.Add("A", 4)
		tally.Add("B", 1)

		assert.Equal(t, []Vote{{Label: "B", Weight: 1}, {Label: "A", Weight: 0.75}}, tally.Votes())

		label, ok := tally.Winner()
		require.True(t, ok)
		assert.Equal(t, "B", label)
	})

	t.Run("ZeroDistanceEqualsUnitDistance", func(t *testing.T) {
		tally := New(2)
		tally.Add("exact", 0)
		tally.Add("unit", 1)

		votes := tally.Votes()
		require.Len(t, votes, 2)
		assert.Equal(t, votes[0].Weight, votes[1].Weight)
	})

	t.Run("TieBreaksByLabel", func(t *testing.T) {
		for range 20 {
			tally := New(3)
			tally.Add("zeta", 2)
			tally.Add("alpha", 2)
			tally.Add("mid", 2)

			label, ok := tally.Winner()
			require.True(t, ok)
			assert.Equal(t, "alpha", label)
		}
	})

	t.Run("NaNRanksLast", func(t *testing.T) {
		tally := New(3)
		tally.Add("nan", math.NaN())
		tally.Add("far", 5)

		votes := tally.Votes()
		require.Len(t, votes, 2)
		assert.Equal(t, "far", votes[0].Label)
		assert.True(t, math.IsNaN(votes[1].Weight))

		label, ok := tally.Winner()
		require.True(t, ok)
		assert.Equal(t, "far", label)
	})

	t.Run("Empty", func(t *testing.T) {
		tally := New(1)
		_, ok := tally.Winner()
		assert.False(t, ok)
		assert.Empty(t, tally.Votes())
		assert.Equal(t, 0, tally.Len())
	})

	t.Run("VotesOrdering", func(t *testing.T) {
		tally := New(4)
		tally.Add("c", 2)
		tally.Add("b", 1)
		tally.Add("a", 2)
		tally.Add("b", 4)

		assert.Equal(t, []Vote{
			{Label: "b", Weight: 1.25},
			{Label: "a", Weight: 0.5},
			{Label: "c", Weight: 0.5},
		}, tally.Votes())
	})
}
