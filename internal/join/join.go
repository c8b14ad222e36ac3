// Package join grows combination dictionaries by one join at a time.
//
// A join pairs every record r1 of the left operand with every record r2 of
// the right operand and keeps the pair only when the two letter sets are
// disjoint and every word id of r1 is below every word id of r2. The second
// rule keeps one canonical ascending tuple per set of words, which makes a
// join directional: operands must be supplied in id-range order.
package join

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/letters"
)

// Options tune the parallel joins.
type Options struct {
	// Workers bounds concurrent tasks. Zero means GOMAXPROCS.
	Workers int

	// Progress, if set, is called from worker goroutines after each task.
	Progress func(done, total int)
}

// Engine runs joins over words of one catalog.
type Engine struct {
	initials []uint8
	workers  int
	progress func(done, total int)
}

func New(cat *catalog.Catalog, opts Options) *Engine {
	initials := make([]uint8, cat.Len())
	for i := range initials {
		initials[i] = uint8(cat.Initial(catalog.ID(i)))
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Engine{
		initials: initials,
		workers:  workers,
		progress: opts.Progress,
	}
}

func (e *Engine) Workers() int {
	return e.workers
}

// Flat is the reference join: a single nested scan over both operands.
// limit bounds the output size; zero means unbounded.
func Flat(d1, d2 *combo.Dictionary, limit int) (*combo.Dictionary, error) {
	arity, err := outputArity(d1.Arity(), d2.Arity())
	if err != nil {
		return nil, err
	}

	records, err := scan(context.Background(), nil, d1.Records(), d2.Records(), arity, limit)
	if err != nil {
		return nil, err
	}

	return combo.Wrap(arity, limit, records)
}

func outputArity(k1, k2 int) (int, error) {
	if k1 < 1 || k2 < 1 || k1+k2 > combo.MaxArity {
		return 0, fmt.Errorf("%w: %d + %d > %d", ErrArityOverflow, k1, k2, combo.MaxArity)
	}

	return k1 + k2, nil
}

// scan appends every compatible (r1, r2) union to dst. A single scan
// exceeding limit fails immediately; the shared budget catches the sum.
func scan(ctx context.Context, dst, left, right []combo.Record, arity, limit int) ([]combo.Record, error) {
	for _, r1 := range left {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mask, last := r1.Mask(), r1.Last()
		for _, r2 := range right {
			if mask&r2.Mask() != 0 || last >= r2.First() {
				continue
			}
			dst = append(dst, combo.Concat(r1, r2))
		}

		if limit > 0 && len(dst) > limit {
			return nil, &combo.CapacityError{Arity: arity, Attempted: len(dst), Limit: limit}
		}
	}

	return dst, nil
}

// count is scan without materialising the records.
func count(ctx context.Context, left, right []combo.Record, keys func(combo.Record) int, out *[letters.Alphabet]int) error {
	for _, r1 := range left {
		if err := ctx.Err(); err != nil {
			return err
		}

		mask, last := r1.Mask(), r1.Last()
		for _, r2 := range right {
			if mask&r2.Mask() != 0 || last >= r2.First() {
				continue
			}
			out[keys(r2)]++
		}
	}

	return nil
}

// budget tracks records emitted by concurrent tasks against the output limit.
type budget struct {
	arity int
	limit int
	used  atomic.Int64
}

func (b *budget) take(n int) error {
	if b.limit <= 0 {
		return nil
	}

	if used := b.used.Add(int64(n)); used > int64(b.limit) {
		return &combo.CapacityError{Arity: b.arity, Attempted: int(used), Limit: b.limit}
	}

	return nil
}

type tracker struct {
	total    int
	done     atomic.Int64
	progress func(done, total int)
}

func (t *tracker) step() {
	done := t.done.Add(1)
	if t.progress != nil {
		t.progress(int(done), t.total)
	}
}
