// Package queue provides the bounded max-heap used to keep the k nearest
// candidates seen so far during a linear scan.
package queue

import (
	"math"
	"slices"
)

// Item is a candidate: the position of a sample in the scanned input and its
// distance from the query.
type Item struct {
	Index    int     // Index is the position of the sample in the input sequence.
	Distance float64 // Distance is the priority of the item in the queue.
}

// farther orders distances with NaN beyond every number.
func farther(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	return !math.IsNaN(b) && a > b
}

// worse reports whether a should be evicted before b.
// Ties on distance are broken by index descending, so the latest-seen item is
// evicted first.
func worse(a, b Item) bool {
	if farther(a.Distance, b.Distance) {
		return true
	}
	if farther(b.Distance, a.Distance) {
		return false
	}
	return a.Index > b.Index
}

// BoundedMax is a max-heap by distance holding at most capacity items.
// The top is always the farthest retained candidate.
type BoundedMax struct {
	capacity int
	items    []Item // Value-based storage (no pointer indirection)
}

// NewBoundedMax creates a bounded max-heap. capacity must be positive.
func NewBoundedMax(capacity int) *BoundedMax {
	if capacity < 1 {
		panic("queue: capacity must be positive")
	}
	return &BoundedMax{
		capacity: capacity,
		items:    make([]Item, 0, capacity),
	}
}

// Offer inserts item if the heap is not full. Once full, item replaces the
// current farthest candidate only if it is strictly closer; an item at the
// same distance as the top is rejected. NaN counts as farther than any
// number. Reports whether item was retained.
//
// Items must be offered in increasing Index order for the tie policy to hold.
func (q *BoundedMax) Offer(item Item) bool {
	if !q.Full() {
		q.items = append(q.items, item)
		q.siftUp(len(q.items) - 1)
		return true
	}
	if !farther(q.items[0].Distance, item.Distance) {
		return false
	}
	q.items[0] = item
	q.siftDown(0)
	return true
}

// Top returns the farthest retained item.
func (q *BoundedMax) Top() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Len returns the number of retained items.
func (q *BoundedMax) Len() int { return len(q.items) }

// Full reports whether the heap holds capacity items.
func (q *BoundedMax) Full() bool { return len(q.items) == q.capacity }

// Items returns a copy of the retained items in heap order.
func (q *BoundedMax) Items() []Item { return slices.Clone(q.items) }

// Sorted returns the retained items nearest first. Equal distances are
// ordered by index.
func (q *BoundedMax) Sorted() []Item {
	out := slices.Clone(q.items)
	slices.SortFunc(out, func(a, b Item) int {
		switch {
		case worse(b, a):
			return -1
		case worse(a, b):
			return 1
		default:
			return 0
		}
	})
	return out
}

func (q *BoundedMax) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !worse(q.items[i], q.items[p]) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *BoundedMax) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && worse(q.items[r], q.items[l]) {
			best = r
		}
		if !worse(q.items[best], q.items[i]) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
