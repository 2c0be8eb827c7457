package vecknn

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/vecknn/internal/search"
	"github.com/hupe1980/vecknn/internal/vote"
	"github.com/hupe1980/vecknn/vector"
)

// Neighbor is a sample retained among the k nearest.
type Neighbor struct {
	Index    int // Index is the sample's position in the input slice.
	Label    string
	Distance float64
	Weight   float64 // Weight is the vote contributed by this neighbor.
}

// Vote is the accumulated weight of one label.
type Vote struct {
	Label  string
	Weight float64
}

// Result is the outcome of a classification.
type Result struct {
	// Label is the winning label. Empty if Found is false.
	Label string
	// Found is false when no sample took part in the vote.
	Found bool
	// Neighbors are the retained samples, nearest first.
	Neighbors []Neighbor
	// Votes are the per-label weights, heaviest first. Ties are ordered by
	// label, which is also how the winner is chosen.
	Votes []Vote
	// Scanned is the number of samples whose distance was computed.
	Scanned int
}

// Classifier labels query vectors by distance-weighted k-NN vote.
// A Classifier holds no per-query state and is safe for concurrent use as
// long as concurrent calls do not share samples. Within one call, the same
// *Sample may appear several times in the input, also with WithParallelism.
type Classifier struct {
	opts options
}

// New creates a Classifier.
func New(optFns ...Option) *Classifier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{opts: opts}
}

// Classify finds the k samples nearest to target and returns the label with
// the largest vote, where each neighbor votes 1/distance (1 for an exact
// match).
//
// Every scanned sample gets its distance from target recorded. An empty
// sample slice is not an error: the result has Found set to false.
// Dimensions are validated for all samples before any distance is computed.
func (c *Classifier) Classify(ctx context.Context, k int, samples []*Sample, target *vector.Vector) (res *Result, err error) {
	start := time.Now()
	defer func() {
		found := res != nil && res.Found
		c.opts.metricsCollector.RecordClassify(k, len(samples), found, time.Since(start), err)
		c.opts.logger.LogClassify(ctx, k, len(samples), res, err)
	}()

	if k < 1 {
		return nil, ErrInvalidK
	}
	if target == nil {
		return nil, fmt.Errorf("query: %w", ErrNilVector)
	}
	for i, s := range samples {
		if s == nil || s.Data == nil {
			return nil, fmt.Errorf("sample %d: %w", i, ErrNilVector)
		}
		if err := vector.CheckDimension(target, s.Data); err != nil {
			return nil, translateError(i, err)
		}
	}

	for _, s := range samples {
		s.clearDistance()
	}

	scan, err := search.TopK(ctx, k, len(samples), func(i int) float64 {
		// Dimensions were checked above.
		d, _ := vector.ComputeDistance(samples[i].Data, target)
		return d
	}, search.Options{
		Filter:      c.opts.filter,
		Parallelism: c.opts.parallelism,
	})
	if err != nil {
		return nil, err
	}

	// Written back here rather than in the scan: the same *Sample may occur
	// more than once in samples.
	for i, ok := range scan.Computed {
		if ok {
			samples[i].setDistance(scan.Distances[i])
		}
	}

	tally := vote.New(len(scan.Neighbors))
	neighbors := make([]Neighbor, 0, len(scan.Neighbors))
	for _, it := range scan.Neighbors {
		s := samples[it.Index]
		tally.Add(s.Label, it.Distance)
		neighbors = append(neighbors, Neighbor{
			Index:    it.Index,
			Label:    s.Label,
			Distance: it.Distance,
			Weight:   vote.Weight(it.Distance),
		})
	}

	votes := make([]Vote, 0, tally.Len())
	for _, v := range tally.Votes() {
		votes = append(votes, Vote{Label: v.Label, Weight: v.Weight})
	}

	label, found := tally.Winner()
	return &Result{
		Label:     label,
		Found:     found,
		Neighbors: neighbors,
		Votes:     votes,
		Scanned:   scan.Scanned,
	}, nil
}

// Predict is like Classify but returns only the winning label.
func (c *Classifier) Predict(ctx context.Context, k int, samples []*Sample, target *vector.Vector) (string, bool, error) {
	res, err := c.Classify(ctx, k, samples, target)
	if err != nil {
		return "", false, err
	}
	return res.Label, res.Found, nil
}

// FindKNN classifies target against samples with a default Classifier.
// ok is false when samples is empty.
func FindKNN(k int, samples []*Sample, target *vector.Vector) (label string, ok bool, err error) {
	return New().Predict(context.Background(), k, samples, target)
}
