package combo

import (
	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/letters"
)

// MaxArity is the largest number of words a record can hold.
const MaxArity = 5

// Record is a set of words with pairwise disjoint letters, stored as
// strictly increasing word ids plus the union of their masks.
type Record struct {
	mask  letters.Mask
	ids   [MaxArity]catalog.ID
	arity uint8
}

func Single(id catalog.ID, mask letters.Mask) Record {
	r := Record{mask: mask, arity: 1}
	r.ids[0] = id
	return r
}

// Concat joins two records without checking the pruning rules.
// Callers are expected to have checked Compatible first.
func Concat(r1, r2 Record) Record {
	out := Record{
		mask:  r1.mask | r2.mask,
		arity: r1.arity + r2.arity,
	}
	copy(out.ids[:], r1.ids[:r1.arity])
	copy(out.ids[r1.arity:], r2.ids[:r2.arity])
	return out
}

// Compatible reports whether r1 followed by r2 is a valid record: no
// shared letters and every id of r1 below every id of r2.
func Compatible(r1, r2 Record) bool {
	return r1.mask&r2.mask == 0 && r1.ids[r1.arity-1] < r2.ids[0]
}

func (r Record) Mask() letters.Mask { return r.mask }

func (r Record) Arity() int { return int(r.arity) }

func (r Record) First() catalog.ID { return r.ids[0] }

func (r Record) Last() catalog.ID { return r.ids[r.arity-1] }

// IDs returns a copy of the word ids in ascending order.
func (r Record) IDs() []catalog.ID {
	out := make([]catalog.ID, r.arity)
	copy(out, r.ids[:r.arity])
	return out
}

// Key is a comparable form of the id sequence, usable as a map key.
func (r Record) Key() [MaxArity]catalog.ID {
	return r.ids
}
