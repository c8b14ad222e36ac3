// Package catalog builds the sorted, deduplicated list of candidate words.
//
// Word ids are dense and assigned in lexicographic order, so the initial
// letter of a word never decreases as its id grows. The join engine relies
// on that when it skips bucket pairs.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Tydus/wordleharmony/internal/letters"
	"github.com/Tydus/wordleharmony/pkg/set"
)

// MaxIDs is the number of distinct ids a 16-bit word id can address.
const MaxIDs = 1 << 16

type ID = uint16

type Word struct {
	ID   ID
	Text string
	Mask letters.Mask
}

// Stats summarises an ingestion run.
type Stats struct {
	Lines      int `json:"lines"`
	Rejected   int `json:"rejected"`
	Duplicates int `json:"duplicates"`
	Words      int `json:"words"`
}

type Catalog struct {
	words []Word
	stats Stats
}

// Build filters raw lines into a catalog. Lines that are not valid five
// letter words are dropped without error. maxSize bounds the number of
// distinct valid words.
func Build(lines []string, maxSize int) (*Catalog, error) {
	b, err := newBuilder(maxSize)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		b.add(line)
	}

	return b.finish()
}

// Read is Build over a newline delimited stream.
func Read(r io.Reader, maxSize int) (*Catalog, error) {
	b, err := newBuilder(maxSize)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		b.add(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return b.finish()
}

type builder struct {
	maxSize int
	seen    set.Set[string]
	masks   map[string]letters.Mask
	stats   Stats
}

func newBuilder(maxSize int) (*builder, error) {
	if maxSize <= 0 || maxSize > MaxIDs {
		return nil, fmt.Errorf("%w: %d (must be in 1..%d)", ErrInvalidLimit, maxSize, MaxIDs)
	}

	return &builder{
		maxSize: maxSize,
		seen:    set.New[string](),
		masks:   make(map[string]letters.Mask),
	}, nil
}

func (b *builder) add(line string) {
	b.stats.Lines++

	word := strings.ToLower(strings.TrimRight(line, "\r\n"))
	mask, err := letters.Encode(word)
	if err != nil {
		b.stats.Rejected++
		return
	}

	if !b.seen.Insert(word) {
		b.stats.Duplicates++
		return
	}

	b.masks[word] = mask
}

func (b *builder) finish() (*Catalog, error) {
	if b.seen.Size() > b.maxSize {
		return nil, fmt.Errorf("%w: %d words, limit %d", ErrCatalogTooLarge, b.seen.Size(), b.maxSize)
	}

	sorted := set.Sorted(b.seen)
	words := make([]Word, len(sorted))
	for i, text := range sorted {
		words[i] = Word{
			ID:   ID(i),
			Text: text,
			Mask: b.masks[text],
		}
	}

	b.stats.Words = len(words)

	return &Catalog{words: words, stats: b.stats}, nil
}

func (c *Catalog) Len() int {
	return len(c.words)
}

func (c *Catalog) Stats() Stats {
	return c.stats
}

// All returns the words in id order. The slice must not be modified.
func (c *Catalog) All() []Word {
	return c.words
}

func (c *Catalog) Word(id ID) (Word, error) {
	if int(id) >= len(c.words) {
		return Word{}, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}

	return c.words[id], nil
}

// Text returns the letters of word id. It panics on an unknown id.
func (c *Catalog) Text(id ID) string {
	return c.words[id].Text
}

func (c *Catalog) Mask(id ID) letters.Mask {
	return c.words[id].Mask
}

// Initial returns the alphabet index of the first letter of word id.
func (c *Catalog) Initial(id ID) int {
	return int(c.words[id].Text[0] - 'a')
}

// Texts resolves a sequence of ids to their words.
func (c *Catalog) Texts(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = c.words[id].Text
	}

	return out
}

// Lookup finds the id of a word in the sorted catalog.
func (c *Catalog) Lookup(text string) (ID, bool) {
	idx, ok := slices.BinarySearchFunc(c.words, text, func(w Word, target string) int {
		return strings.Compare(w.Text, target)
	})
	if !ok {
		return 0, false
	}

	return ID(idx), true
}
