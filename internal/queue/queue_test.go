package queue

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offerAll(q *BoundedMax, distances ...float64) {
	for i, d := range distances {
		q.Offer(Item{Index: i, Distance: d})
	}
}

func distancesOf(items []Item) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = it.Distance
	}
	return out
}

func indicesOf(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Index
	}
	return out
}

func TestBoundedMax(t *testing.T) {
	t.Run("FillsToCapacity", func(t *testing.T) {
		q := NewBoundedMax(3)
		offerAll(q, 4, 2)

		assert.Equal(t, 2, q.Len())
		assert.False(t, q.Full())

		top, ok := q.Top()
		require.True(t, ok)
		assert.Equal(t, 4.0, top.Distance)
	})

	t.Run("EvictsFarthest", func(t *testing.T) {
		q := NewBoundedMax(2)
		offerAll(q, 5, 3, 8, 1, 9)

		require.True(t, q.Full())
		assert.Equal(t, 2, q.Len())
		assert.Equal(t, []float64{1, 3}, distancesOf(q.Sorted()))

		top, _ := q.Top()
		assert.Equal(t, Item{Index: 1, Distance: 3}, top)
	})

	t.Run("EqualDistanceDoesNotEvict", func(t *testing.T) {
		q := NewBoundedMax(2)
		offerAll(q, 5, 3, 8, 1, 9)

		retained := q.Offer(Item{Index: 5, Distance: 3})
		assert.False(t, retained)
		assert.Equal(t, []Item{{Index: 3, Distance: 1}, {Index: 1, Distance: 3}}, q.Sorted())
	})

	t.Run("EvictsLatestAmongEqualTops", func(t *testing.T) {
		q := NewBoundedMax(2)
		offerAll(q, 3, 3, 1)

		assert.Equal(t, []Item{{Index: 2, Distance: 1}, {Index: 0, Distance: 3}}, q.Sorted())
	})

	t.Run("EmptyTop", func(t *testing.T) {
		q := NewBoundedMax(2)
		_, ok := q.Top()
		assert.False(t, ok)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("NaNIsFarthest", func(t *testing.T) {
		nan := math.NaN()
		q := NewBoundedMax(2)
		offerAll(q, nan, 5, 1, 1.1)

		assert.Equal(t, []Item{{Index: 2, Distance: 1}, {Index: 3, Distance: 1.1}}, q.Sorted())
	})

	t.Run("NaNFillsFreeSlots", func(t *testing.T) {
		nan := math.NaN()
		q := NewBoundedMax(3)
		offerAll(q, nan, 2, nan)

		sorted := q.Sorted()
		require.Len(t, sorted, 3)
		assert.Equal(t, Item{Index: 1, Distance: 2}, sorted[0])
		assert.Equal(t, 0, sorted[1].Index)
		assert.Equal(t, 2, sorted[2].Index)
		assert.True(t, math.IsNaN(sorted[2].Distance))

		// A NaN never displaces another NaN.
		assert.False(t, q.Offer(Item{Index: 3, Distance: nan}))
		// Any number displaces the latest NaN.
		assert.True(t, q.Offer(Item{Index: 4, Distance: 100}))
		top, _ := q.Top()
		assert.Equal(t, 0, top.Index)
	})

	t.Run("InvalidCapacity", func(t *testing.T) {
		assert.Panics(t, func() { NewBoundedMax(0) })
	})
}

func TestBoundedMaxMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(200)
		k := 1 + rng.Intn(20)

		items := make([]Item, n)
		q := NewBoundedMax(k)
		for i := range items {
			// Coarse values force plenty of ties; 9 stands in for NaN.
			d := float64(rng.Intn(10))
			if d == 9 {
				d = math.NaN()
			}
			items[i] = Item{Index: i, Distance: d}
			q.Offer(items[i])
		}

		slices.SortStableFunc(items, func(a, b Item) int {
			switch {
			case farther(b.Distance, a.Distance):
				return -1
			case farther(a.Distance, b.Distance):
				return 1
			default:
				return 0
			}
		})
		want := items[:min(k, n)]

		assert.Equal(t, indicesOf(want), indicesOf(q.Sorted()), "round %d (n=%d, k=%d)", round, n, k)

		heapOrder := q.Items()
		top, _ := q.Top()
		for _, it := range heapOrder {
			assert.False(t, worse(it, top))
		}
	}
}
