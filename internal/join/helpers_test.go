package join

import (
	"testing"

	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/partition"
	"github.com/Tydus/wordleharmony/pkg/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureWords contains four known 25-letter sets plus filler words.
var fixtureWords = []string{
	"nymph", "fjord", "gucks", "vibex", "waltz",
	"brick", "glent", "jumpy", "vozhd", "waqfs",
	"bemix", "clunk", "grypt",
	"chunk", "gymps",
	"blond", "crwth", "fight", "women", "gawky", "quick", "dwarf", "glyph", "verbs",
	"hello", "apple", "mango",
}

type fixture struct {
	cat  *catalog.Catalog
	base *combo.Dictionary
	solo *partition.Index
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cat, err := catalog.Build(fixtureWords, 1000)
	require.NoError(t, err)

	base := combo.FromCatalog(cat)
	solo, err := partition.ByInitial(base, cat)
	require.NoError(t, err)

	return fixture{cat: cat, base: base, solo: solo}
}

func recordKeys(t *testing.T, records []combo.Record) set.Set[[combo.MaxArity]catalog.ID] {
	t.Helper()

	keys := set.New[[combo.MaxArity]catalog.ID](len(records))
	for _, r := range records {
		assert.True(t, keys.Insert(r.Key()), "duplicate record %v", r.IDs())
	}

	return keys
}

// requireValid checks the disjointness, ordering and arity invariants of
// every record of out, and that it splits into one record of each operand.
func requireValid(t *testing.T, cat *catalog.Catalog, out []combo.Record, d1, d2 []combo.Record, k1, k2 int) {
	t.Helper()

	left := recordKeys(t, d1)
	right := recordKeys(t, d2)

	for _, r := range out {
		ids := r.IDs()
		require.Len(t, ids, k1+k2)
		assert.Equal(t, (k1+k2)*5, r.Mask().Count())

		for i := range ids {
			for j := i + 1; j < len(ids); j++ {
				assert.Less(t, ids[i], ids[j], "ids must be strictly increasing")
				assert.False(t, cat.Mask(ids[i]).Overlaps(cat.Mask(ids[j])), "words %d and %d share a letter", ids[i], ids[j])
			}
		}

		var prefix, suffix [combo.MaxArity]catalog.ID
		copy(prefix[:], ids[:k1])
		copy(suffix[:], ids[k1:])
		assert.True(t, left.Contains(prefix), "prefix %v not in left operand", ids[:k1])
		assert.True(t, right.Contains(suffix), "suffix %v not in right operand", ids[k1:])
	}
}

func flatten(t *testing.T, ix *partition.Index) *combo.Dictionary {
	t.Helper()

	d, err := ix.Flatten(0)
	require.NoError(t, err)
	return d
}

func words(cat *catalog.Catalog, r combo.Record) []string {
	return cat.Texts(r.IDs())
}
