// Package letters encodes words as sets of lowercase latin letters.
package letters

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// Alphabet is the number of letters a Mask can hold.
	Alphabet = 26
	// WordLength is the only word length the codec accepts.
	WordLength = 5
)

// Mask is a set of letters: bit i is set when letter 'a'+i is present.
type Mask uint32

// Full has every letter of the alphabet set.
const Full Mask = 1<<Alphabet - 1

// Index returns the bit position of a lowercase letter.
func Index(letter byte) (int, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}

	return int(letter - 'a'), true
}

// Encode converts a five letter word into its letter set.
// Words with repeated letters or characters outside a-z are rejected.
func Encode(word string) (Mask, error) {
	if len(word) != WordLength {
		return 0, fmt.Errorf("%w: %q has %d bytes", ErrWordLength, word, len(word))
	}

	var mask Mask
	for i := 0; i < len(word); i++ {
		idx, ok := Index(word[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, word)
		}
		mask |= 1 << idx
	}

	if mask.Count() != WordLength {
		return 0, fmt.Errorf("%w: %q", ErrRepeatedLetter, word)
	}

	return mask, nil
}

func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

func (m Mask) Overlaps(other Mask) bool {
	return m&other != 0
}

func (m Mask) Union(other Mask) Mask {
	return m | other
}

func (m Mask) Has(letter byte) bool {
	idx, ok := Index(letter)
	return ok && m&(1<<idx) != 0
}

// Missing lists the letters of the alphabet absent from m.
func (m Mask) Missing() string {
	return (Full &^ m).String()
}

// String lists the letters of m in alphabet order.
func (m Mask) String() string {
	var sb strings.Builder
	for rest := uint32(m & Full); rest != 0; rest &= rest - 1 {
		sb.WriteByte(byte('a' + bits.TrailingZeros32(rest)))
	}

	return sb.String()
}
