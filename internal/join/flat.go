package join

import (
	"context"
	"time"

	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/pkg"
	"golang.org/x/sync/errgroup"
)

// FlatParallel splits the left operand into contiguous ranges, scans each
// range against the whole right operand concurrently and concatenates the
// chunks in range order. The output equals Flat record for record.
func (e *Engine) FlatParallel(ctx context.Context, d1, d2 *combo.Dictionary, limit int) (*combo.Dictionary, Stats, error) {
	start := time.Now()

	arity, err := outputArity(d1.Arity(), d2.Arity())
	if err != nil {
		return nil, Stats{}, err
	}

	ranges, err := pkg.SplitRange(d1.Len(), e.workers)
	if err != nil {
		return nil, Stats{}, err
	}

	left, right := d1.Records(), d2.Records()
	chunks := make([][]combo.Record, len(ranges))
	b := &budget{arity: arity, limit: limit}
	t := &tracker{total: len(ranges), progress: e.progress}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, rng := range ranges {
		g.Go(func() error {
			defer t.step()

			chunk, err := scan(gctx, nil, left[rng.Start:rng.End], right, arity, limit)
			if err != nil {
				return err
			}
			if err := b.take(len(chunk)); err != nil {
				return err
			}

			chunks[i] = chunk
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	parts := make([]*combo.Dictionary, len(chunks))
	for i, chunk := range chunks {
		parts[i], err = combo.Wrap(arity, 0, chunk)
		if err != nil {
			return nil, Stats{}, err
		}
	}

	out, err := combo.Merge(arity, limit, parts...)
	if err != nil {
		return nil, Stats{}, err
	}

	return out, Stats{
		Arity:   arity,
		Left:    d1.Len(),
		Right:   d2.Len(),
		Output:  out.Len(),
		Tasks:   len(ranges),
		Elapsed: time.Since(start),
	}, nil
}
