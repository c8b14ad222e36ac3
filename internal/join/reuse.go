package join

import (
	"context"
	"time"

	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/letters"
	"github.com/Tydus/wordleharmony/internal/partition"
	"golang.org/x/sync/errgroup"
)

// Reuse produces the same buckets as Partitioned in two passes. The first
// pass only counts the records of every bucket pair, so the capacity check
// happens before anything is allocated. The output buckets are then sized
// exactly once and every pair fills its own disjoint slots, without locks
// and without intermediate chunks.
func (e *Engine) Reuse(ctx context.Context, left, right *partition.Index, limit int) (*partition.Index, Stats, error) {
	start := time.Now()

	arity, err := e.validate(left, right)
	if err != nil {
		return nil, Stats{}, err
	}

	tri := partition.NewTriangle(letters.Alphabet)
	counts := make([][letters.Alphabet]int, tri.Total())
	t := &tracker{total: 2 * tri.Total(), progress: e.progress}

	tailOf := func(r2 combo.Record) int { return e.tail(r2) }

	err = e.eachPair(ctx, tri, func(gctx context.Context, idx int, p partition.Pair) error {
		defer t.step()
		return count(gctx, left.Bucket(p.Left).Records(), right.Bucket(p.Right).Records(), tailOf, &counts[idx])
	})
	if err != nil {
		return nil, Stats{}, err
	}

	// offsets[idx][key] is where pair idx starts writing inside bucket key.
	offsets := make([][letters.Alphabet]int, tri.Total())
	var sizes [letters.Alphabet]int
	total := 0
	for idx := range counts {
		for key, n := range counts[idx] {
			offsets[idx][key] = sizes[key]
			sizes[key] += n
			total += n
		}
	}

	if limit > 0 && total > limit {
		return nil, Stats{}, &combo.CapacityError{Arity: arity, Attempted: total, Limit: limit}
	}

	slots := make([][]combo.Record, letters.Alphabet)
	for key, n := range sizes {
		slots[key] = make([]combo.Record, n)
	}

	err = e.eachPair(ctx, tri, func(gctx context.Context, idx int, p partition.Pair) error {
		defer t.step()

		next := offsets[idx]
		for _, r1 := range left.Bucket(p.Left).Records() {
			if err := gctx.Err(); err != nil {
				return err
			}

			mask, last := r1.Mask(), r1.Last()
			for _, r2 := range right.Bucket(p.Right).Records() {
				if mask&r2.Mask() != 0 || last >= r2.First() {
					continue
				}
				key := e.tail(r2)
				slots[key][next[key]] = combo.Concat(r1, r2)
				next[key]++
			}
		}

		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}

	var buckets partition.Buckets
	for key, records := range slots {
		buckets[key], err = combo.Wrap(arity, 0, records)
		if err != nil {
			return nil, Stats{}, err
		}
	}

	out := partition.FromBuckets(arity, partition.Tail, buckets)

	return out, Stats{
		Arity:   arity,
		Left:    left.Len(),
		Right:   right.Len(),
		Output:  out.Len(),
		Tasks:   2 * tri.Total(),
		Elapsed: time.Since(start),
	}, nil
}

// eachPair runs fn for every upper triangular bucket pair on the worker pool
// and waits for all of them.
func (e *Engine) eachPair(ctx context.Context, tri *partition.Triangle, fn func(ctx context.Context, idx int, p partition.Pair) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	idx := 0
	for p := range tri.All() {
		i := idx
		idx++
		g.Go(func() error {
			return fn(gctx, i, p)
		})
	}

	return g.Wait()
}
