package harmony

import (
	"context"

	"github.com/Tydus/wordleharmony/internal/catalog"
)

// Service searches a catalog for sets of five words with disjoint letters.
type Service interface {
	Run(ctx context.Context, cat *catalog.Catalog) (*Result, error)
	Progress() *Progress
}
