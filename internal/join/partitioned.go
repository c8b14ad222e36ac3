package join

import (
	"context"
	"fmt"
	"time"

	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/letters"
	"github.com/Tydus/wordleharmony/internal/partition"
)

// Partitioned joins two partitioned operands bucket pair by bucket pair.
//
// The left operand must be keyed by the initial of its last word and the
// right one by the initial of its first word. Ids follow the sorted word
// order, so a right bucket keyed below the left one can only hold smaller
// ids, and equal keys share a letter. Only the 325 pairs with
// left key < right key can produce records; each pair is an independent
// task writing its own chunk. The output is keyed by the initial of the
// last word of each record, ready to be the left operand of the next join.
func (e *Engine) Partitioned(ctx context.Context, left, right *partition.Index, limit int) (*partition.Index, Stats, error) {
	start := time.Now()

	arity, err := e.validate(left, right)
	if err != nil {
		return nil, Stats{}, err
	}

	tri := partition.NewTriangle(letters.Alphabet)
	chunks := make([][]combo.Record, tri.Total())
	b := &budget{arity: arity, limit: limit}
	t := &tracker{total: tri.Total(), progress: e.progress}

	err = e.eachPair(ctx, tri, func(gctx context.Context, idx int, p partition.Pair) error {
		defer t.step()

		l, r := left.Bucket(p.Left).Records(), right.Bucket(p.Right).Records()
		if len(l) == 0 || len(r) == 0 {
			return nil
		}

		chunk, err := scan(gctx, nil, l, r, arity, limit)
		if err != nil {
			return err
		}
		if err := b.take(len(chunk)); err != nil {
			return err
		}

		chunks[idx] = chunk
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := e.gather(arity, tri, chunks, right.Arity() == 1)
	if err != nil {
		return nil, Stats{}, err
	}

	return out, Stats{
		Arity:   arity,
		Left:    left.Len(),
		Right:   right.Len(),
		Output:  out.Len(),
		Tasks:   tri.Total(),
		Elapsed: time.Since(start),
	}, nil
}

// gather concatenates pair chunks into output buckets, in pair order.
func (e *Engine) gather(arity int, tri *partition.Triangle, chunks [][]combo.Record, byPair bool) (*partition.Index, error) {
	var sizes [letters.Alphabet]int
	for idx, chunk := range chunks {
		if byPair {
			p, _ := tri.At(idx)
			sizes[p.Right] += len(chunk)
			continue
		}
		for _, rec := range chunk {
			sizes[e.tail(rec)]++
		}
	}

	var buckets partition.Buckets
	for key, n := range sizes {
		d, err := combo.WithSize(arity, 0, n)
		if err != nil {
			return nil, err
		}
		buckets[key] = d
	}

	for idx, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}

		if byPair {
			p, _ := tri.At(idx)
			if err := buckets[p.Right].Append(chunk...); err != nil {
				return nil, err
			}
			continue
		}

		for _, rec := range chunk {
			if err := buckets[e.tail(rec)].Append(rec); err != nil {
				return nil, err
			}
		}
	}

	return partition.FromBuckets(arity, partition.Tail, buckets), nil
}

func (e *Engine) validate(left, right *partition.Index) (int, error) {
	arity, err := outputArity(left.Arity(), right.Arity())
	if err != nil {
		return 0, err
	}

	if !left.KeyedBy(partition.Tail) {
		return 0, fmt.Errorf("%w: left operand keyed by %s, want %s", ErrKeying, left.Keying(), partition.Tail)
	}

	if !right.KeyedBy(partition.Lead) {
		return 0, fmt.Errorf("%w: right operand keyed by %s, want %s", ErrKeying, right.Keying(), partition.Lead)
	}

	return arity, nil
}

// tail returns the bucket key of a record: the initial of its last word.
func (e *Engine) tail(r combo.Record) int {
	return int(e.initials[r.Last()])
}
