// Package report renders search results and dictionary diagnostics.
package report

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/partition"
)

// DefaultPerLine is how many records share one output line.
const DefaultPerLine = 6

// WriteSolutions prints each record as its words in ascending id order,
// perLine records per line separated by two spaces.
func WriteSolutions(w io.Writer, cat *catalog.Catalog, records []combo.Record, perLine int) error {
	if perLine <= 0 {
		perLine = 1
	}

	bw := bufio.NewWriter(w)
	for i, rec := range records {
		if i%perLine != 0 {
			if _, err := bw.WriteString("  "); err != nil {
				return err
			}
		}

		if _, err := bw.WriteString(strings.Join(cat.Texts(rec.IDs()), " ")); err != nil {
			return err
		}

		if (i+1)%perLine == 0 || i == len(records)-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write solutions: %w", err)
	}

	return nil
}

// LogBuckets logs the size of every bucket of an index at debug level and
// the total at info level.
func LogBuckets(logger *slog.Logger, name string, ix *partition.Index) {
	for key, size := range ix.Sizes() {
		logger.Debug("bucket",
			slog.String("dict", name),
			slog.String("key", string(rune('a'+key))),
			slog.Int("arity", ix.Arity()),
			slog.Int("size", size),
		)
	}

	logger.Info("dictionary built",
		slog.String("dict", name),
		slog.Int("arity", ix.Arity()),
		slog.Int("total", ix.Len()),
	)
}
