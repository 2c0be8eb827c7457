// Package search runs the linear k-nearest scan over a labelled sample set.
package search

import (
	"context"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecknn/internal/queue"
)

// cancelCheckInterval is how many samples are scanned between context checks.
const cancelCheckInterval = 1024

// DistanceFunc computes the distance of the i-th sample from the query.
// It may be called concurrently for distinct i when Parallelism > 1 and must
// not mutate shared state.
type DistanceFunc func(i int) float64

// Options controls a scan.
type Options struct {
	// Filter restricts the scan to sample indices contained in the bitmap.
	// A nil filter admits every sample.
	Filter *roaring.Bitmap

	// Parallelism is the number of shards scanned concurrently.
	// Values <= 1 scan sequentially.
	Parallelism int
}

// Result is the outcome of a scan.
type Result struct {
	// Neighbors are the retained candidates, nearest first.
	Neighbors []queue.Item
	// Scanned is the number of samples whose distance was computed.
	Scanned int
	// Distances holds the distance of every sample, indexed like the input.
	// Only entries with Computed set are meaningful.
	Distances []float64
	// Computed reports, per input index, whether the filter admitted the sample.
	Computed []bool
}

// TopK scans n samples and keeps the k nearest under the bounded-heap policy
// of queue.BoundedMax. Samples are offered in index order; a sharded scan
// merges shard results in index order and therefore retains exactly the same
// candidates as a sequential one.
func TopK(ctx context.Context, k, n int, dist DistanceFunc, opts Options) (Result, error) {
	if n == 0 {
		return Result{}, nil
	}
	k = min(k, n)
	sc := &scan{
		dist:      dist,
		filter:    opts.Filter,
		distances: make([]float64, n),
		computed:  make([]bool, n),
	}

	shards := max(1, min(opts.Parallelism, n))
	if shards == 1 {
		q := queue.NewBoundedMax(k)
		scanned, err := sc.run(ctx, q, 0, n)
		if err != nil {
			return Result{}, err
		}
		return sc.result(q, scanned), nil
	}

	size := (n + shards - 1) / shards
	partial := make([][]queue.Item, shards)
	counts := make([]int, shards)

	g, gctx := errgroup.WithContext(ctx)
	for s := range shards {
		start := s * size
		end := min(start+size, n)
		if start >= end {
			continue
		}
		g.Go(func() error {
			q := queue.NewBoundedMax(k)
			scanned, err := sc.run(gctx, q, start, end)
			if err != nil {
				return err
			}
			items := q.Items()
			slices.SortFunc(items, byIndex)
			partial[s] = items
			counts[s] = scanned
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	merged := queue.NewBoundedMax(k)
	scanned := 0
	for s := range shards {
		for _, it := range partial[s] {
			merged.Offer(it)
		}
		scanned += counts[s]
	}
	return sc.result(merged, scanned), nil
}

// scan holds the per-index outputs of one TopK call. Shards write disjoint
// index ranges.
type scan struct {
	dist      DistanceFunc
	filter    *roaring.Bitmap
	distances []float64
	computed  []bool
}

func (sc *scan) run(ctx context.Context, q *queue.BoundedMax, start, end int) (int, error) {
	scanned := 0
	for i := start; i < end; i++ {
		if (i-start)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return scanned, err
			}
		}
		if sc.filter != nil && !sc.filter.Contains(uint32(i)) {
			continue
		}
		d := sc.dist(i)
		sc.distances[i] = d
		sc.computed[i] = true
		q.Offer(queue.Item{Index: i, Distance: d})
		scanned++
	}
	return scanned, nil
}

func (sc *scan) result(q *queue.BoundedMax, scanned int) Result {
	return Result{
		Neighbors: q.Sorted(),
		Scanned:   scanned,
		Distances: sc.distances,
		Computed:  sc.computed,
	}
}

func byIndex(a, b queue.Item) int { return a.Index - b.Index }
