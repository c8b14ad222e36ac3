// Package combo holds combination records and the append-only dictionaries
// the join engine builds from them.
package combo

import (
	"fmt"

	"github.com/Tydus/wordleharmony/internal/catalog"
)

// Dictionary is an append-only list of records sharing one arity. A
// positive capacity is a hard ceiling: Append fails instead of growing
// past it. Zero or negative capacity means unbounded.
type Dictionary struct {
	arity    int
	capacity int
	records  []Record
}

func New(arity, capacity int) *Dictionary {
	return &Dictionary{
		arity:    arity,
		capacity: capacity,
	}
}

// WithSize preallocates room for n records. n above the capacity is
// rejected up front.
func WithSize(arity, capacity, n int) (*Dictionary, error) {
	if capacity > 0 && n > capacity {
		return nil, &CapacityError{Arity: arity, Attempted: n, Limit: capacity}
	}

	return &Dictionary{
		arity:    arity,
		capacity: capacity,
		records:  make([]Record, 0, n),
	}, nil
}

// FromCatalog builds the arity-1 dictionary with one record per word.
func FromCatalog(cat *catalog.Catalog) *Dictionary {
	d := &Dictionary{
		arity:   1,
		records: make([]Record, cat.Len()),
	}
	for i, w := range cat.All() {
		d.records[i] = Single(w.ID, w.Mask)
	}

	return d
}

// Wrap adopts records produced elsewhere. All records must have the given arity.
func Wrap(arity, capacity int, records []Record) (*Dictionary, error) {
	if arity < 1 || arity > MaxArity {
		return nil, fmt.Errorf("%w: %d", ErrInvalidArity, arity)
	}

	if capacity > 0 && len(records) > capacity {
		return nil, &CapacityError{Arity: arity, Attempted: len(records), Limit: capacity}
	}

	for _, r := range records {
		if r.Arity() != arity {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, r.Arity(), arity)
		}
	}

	return &Dictionary{arity: arity, capacity: capacity, records: records}, nil
}

func (d *Dictionary) Append(records ...Record) error {
	if d.capacity > 0 && len(d.records)+len(records) > d.capacity {
		return &CapacityError{Arity: d.arity, Attempted: len(d.records) + len(records), Limit: d.capacity}
	}

	for _, r := range records {
		if r.Arity() != d.arity {
			return fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, r.Arity(), d.arity)
		}
	}

	d.records = append(d.records, records...)
	return nil
}

func (d *Dictionary) Arity() int { return d.arity }

func (d *Dictionary) Capacity() int { return d.capacity }

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records exposes the backing slice. Dictionaries are read-only once built.
func (d *Dictionary) Records() []Record {
	if d == nil {
		return nil
	}
	return d.records
}

// Merge concatenates dictionaries of one arity in order into a new dictionary.
func Merge(arity, capacity int, parts ...*Dictionary) (*Dictionary, error) {
	total := 0
	for _, p := range parts {
		if p.Len() > 0 && p.arity != arity {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, p.arity, arity)
		}
		total += p.Len()
	}

	out, err := WithSize(arity, capacity, total)
	if err != nil {
		return nil, err
	}

	for _, p := range parts {
		out.records = append(out.records, p.Records()...)
	}

	return out, nil
}
