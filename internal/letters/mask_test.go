package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		want    string
		wantErr error
	}{
		{
			name: "distinct letters",
			word: "waltz",
			want: "altwz",
		},
		{
			name: "first and last letters of the alphabet",
			word: "zebra",
			want: "aberz",
		},
		{
			name:    "repeated letter",
			word:    "hello",
			wantErr: ErrRepeatedLetter,
		},
		{
			name:    "repeated letter apart",
			word:    "apple",
			wantErr: ErrRepeatedLetter,
		},
		{
			name:    "digit",
			word:    "abc1e",
			wantErr: ErrInvalidLetter,
		},
		{
			name:    "uppercase is not normalized",
			word:    "Waltz",
			wantErr: ErrInvalidLetter,
		},
		{
			name:    "apostrophe",
			word:    "don't",
			wantErr: ErrInvalidLetter,
		},
		{
			name:    "too short",
			word:    "abcd",
			wantErr: ErrWordLength,
		},
		{
			name:    "too long",
			word:    "abcdef",
			wantErr: ErrWordLength,
		},
		{
			name:    "empty",
			word:    "",
			wantErr: ErrWordLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.word)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, WordLength, got.Count())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMask_SetOperations(t *testing.T) {
	nymph, err := Encode("nymph")
	require.NoError(t, err)
	fjord, err := Encode("fjord")
	require.NoError(t, err)
	handy, err := Encode("handy")
	require.NoError(t, err)

	assert.False(t, nymph.Overlaps(fjord))
	assert.True(t, nymph.Overlaps(handy))

	union := nymph.Union(fjord)
	assert.Equal(t, 10, union.Count())
	assert.True(t, union.Has('j'))
	assert.False(t, union.Has('a'))
	assert.False(t, union.Has('!'))
}

func TestMask_Missing(t *testing.T) {
	var m Mask
	for _, w := range []string{"nymph", "fjord", "gucks", "vibex", "waltz"} {
		wm, err := Encode(w)
		require.NoError(t, err)
		m = m.Union(wm)
	}

	assert.Equal(t, 25, m.Count())
	assert.Equal(t, "q", m.Missing())
	assert.Equal(t, "", Full.Missing())
	assert.Equal(t, Alphabet, Full.Count())
}

func TestIndex(t *testing.T) {
	idx, ok := Index('a')
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = Index('z')
	assert.True(t, ok)
	assert.Equal(t, 25, idx)

	_, ok = Index('A')
	assert.False(t, ok)
}
