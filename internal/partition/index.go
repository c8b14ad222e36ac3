// Package partition groups combination records into 26 buckets keyed by the
// initial letter of one designated word of each record.
package partition

import (
	"errors"
	"fmt"

	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/letters"
)

var ErrNotBase = errors.New("base partition requires an arity-1 dictionary")

// Keying selects which word of a record decides its bucket.
type Keying int

const (
	// Lead keys a record by the initial of its first word.
	Lead Keying = iota
	// Tail keys a record by the initial of its last word.
	Tail
)

func (k Keying) String() string {
	switch k {
	case Lead:
		return "lead"
	case Tail:
		return "tail"
	default:
		return fmt.Sprintf("keying(%d)", int(k))
	}
}

// Buckets is one dictionary per letter of the alphabet.
type Buckets [letters.Alphabet]*combo.Dictionary

type Index struct {
	arity   int
	keying  Keying
	buckets Buckets
}

// ByInitial partitions the arity-1 base dictionary by the first letter of each word.
func ByInitial(base *combo.Dictionary, cat *catalog.Catalog) (*Index, error) {
	if base.Arity() != 1 {
		return nil, fmt.Errorf("%w: got arity %d", ErrNotBase, base.Arity())
	}

	return Keyed(base, cat, Lead)
}

// Keyed partitions a dictionary of any arity by the given keying.
func Keyed(d *combo.Dictionary, cat *catalog.Catalog, keying Keying) (*Index, error) {
	ix := &Index{arity: d.Arity(), keying: keying}
	for i := range ix.buckets {
		ix.buckets[i] = combo.New(d.Arity(), 0)
	}

	for _, r := range d.Records() {
		id := r.First()
		if keying == Tail {
			id = r.Last()
		}

		if err := ix.buckets[cat.Initial(id)].Append(r); err != nil {
			return nil, err
		}
	}

	return ix, nil
}

// FromBuckets wraps already partitioned dictionaries. Nil buckets are
// replaced with empty ones.
func FromBuckets(arity int, keying Keying, buckets Buckets) *Index {
	ix := &Index{arity: arity, keying: keying, buckets: buckets}
	for i, b := range ix.buckets {
		if b == nil {
			ix.buckets[i] = combo.New(arity, 0)
		}
	}

	return ix
}

func (ix *Index) Arity() int { return ix.arity }

func (ix *Index) Keying() Keying { return ix.keying }

// KeyedBy reports whether the index can be used where keying k is required.
// Arity-1 records have one word, so both keyings coincide.
func (ix *Index) KeyedBy(k Keying) bool {
	return ix.arity == 1 || ix.keying == k
}

func (ix *Index) Bucket(key int) *combo.Dictionary {
	return ix.buckets[key]
}

func (ix *Index) Len() int {
	total := 0
	for _, b := range ix.buckets {
		total += b.Len()
	}

	return total
}

// Sizes returns the number of records per bucket.
func (ix *Index) Sizes() [letters.Alphabet]int {
	var sizes [letters.Alphabet]int
	for i, b := range ix.buckets {
		sizes[i] = b.Len()
	}

	return sizes
}

// Flatten concatenates the buckets in key order.
func (ix *Index) Flatten(capacity int) (*combo.Dictionary, error) {
	return combo.Merge(ix.arity, capacity, ix.buckets[:]...)
}
