// Package vote aggregates distance-weighted votes per label.
package vote

import (
	"cmp"
	"slices"
)

// Vote is the accumulated weight of a label.
type Vote struct {
	Label  string
	Weight float64
}

// Tally accumulates weights per label. The zero value is not usable; use New.
type Tally struct {
	weights map[string]float64
	order   []string // labels in first-seen order
}

// New creates a tally sized for k neighbors.
func New(k int) *Tally {
	return &Tally{
		weights: make(map[string]float64, k),
		order:   make([]string, 0, k),
	}
}

// Weight returns the contribution of a neighbor at distance d: 1/d, except
// that an exact match (d == 0) counts as 1.
func Weight(d float64) float64 {
	if d == 0 {
		d = 1
	}
	return 1 / d
}

// Add accumulates the weight of a neighbor with the given label and distance.
func (t *Tally) Add(label string, distance float64) {
	if _, ok := t.weights[label]; !ok {
		t.order = append(t.order, label)
	}
	t.weights[label] += Weight(distance)
}

// Len returns the number of distinct labels.
func (t *Tally) Len() int { return len(t.order) }

// Winner returns the first entry of Votes: the label with the largest
// weight, exact ties going to the lexicographically smallest label and NaN
// weights ranking last. ok is false when nothing was added.
func (t *Tally) Winner() (label string, ok bool) {
	votes := t.Votes()
	if len(votes) == 0 {
		return "", false
	}
	return votes[0].Label, true
}

// Votes returns every label with its weight, heaviest first, ties by label.
// NaN weights sort after all numbers.
func (t *Tally) Votes() []Vote {
	out := make([]Vote, 0, len(t.order))
	for _, l := range t.order {
		out = append(out, Vote{Label: l, Weight: t.weights[l]})
	}
	slices.SortFunc(out, func(a, b Vote) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return out
}
