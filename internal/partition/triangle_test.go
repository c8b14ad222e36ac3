package partition

import (
	"testing"

	"github.com/Tydus/wordleharmony/internal/letters"
	"github.com/stretchr/testify/assert"
)

func TestTriangle_Total(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{
			name: "empty grid",
			n:    0,
			want: 0,
		},
		{
			name: "single bucket has no pairs",
			n:    1,
			want: 0,
		},
		{
			name: "two buckets",
			n:    2,
			want: 1,
		},
		{
			name: "four buckets",
			n:    4,
			want: 6, // 3 + 2 + 1
		},
		{
			name: "alphabet",
			n:    letters.Alphabet,
			want: 325, // 26 * 25 / 2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTriangle(tt.n).Total())
		})
	}
}

func TestTriangle_At(t *testing.T) {
	t.Run("four buckets", func(t *testing.T) {
		// Index mapping:
		// 0 -> (0,1), 1 -> (0,2), 2 -> (0,3)
		// 3 -> (1,2), 4 -> (1,3)
		// 5 -> (2,3)
		tr := NewTriangle(4)

		tests := []struct {
			index int
			want  Pair
		}{
			{0, Pair{0, 1}},
			{1, Pair{0, 2}},
			{2, Pair{0, 3}},
			{3, Pair{1, 2}},
			{4, Pair{1, 3}},
			{5, Pair{2, 3}},
		}

		for _, tt := range tests {
			got, ok := tr.At(tt.index)
			assert.True(t, ok, "index %d", tt.index)
			assert.Equal(t, tt.want, got, "index %d", tt.index)
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		tr := NewTriangle(4)

		_, ok := tr.At(6)
		assert.False(t, ok)

		_, ok = tr.At(-1)
		assert.False(t, ok)
	})
}

func TestTriangle_Consistency(t *testing.T) {
	t.Run("All matches At and Index", func(t *testing.T) {
		tr := NewTriangle(letters.Alphabet)

		i := 0
		for p := range tr.All() {
			assert.Less(t, p.Left, p.Right)

			got, ok := tr.At(i)
			assert.True(t, ok)
			assert.Equal(t, p, got)

			idx, ok := tr.Index(p)
			assert.True(t, ok)
			assert.Equal(t, i, idx)
			i++
		}

		assert.Equal(t, tr.Total(), i)
	})

	t.Run("diagonal and lower triangle are not indexed", func(t *testing.T) {
		tr := NewTriangle(4)

		_, ok := tr.Index(Pair{2, 2})
		assert.False(t, ok)

		_, ok = tr.Index(Pair{3, 1})
		assert.False(t, ok)

		_, ok = tr.Index(Pair{1, 4})
		assert.False(t, ok)
	})

	t.Run("early stop", func(t *testing.T) {
		count := 0
		for range NewTriangle(5).All() {
			count++
			if count == 3 {
				break
			}
		}
		assert.Equal(t, 3, count)
	})
}
