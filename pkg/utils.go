package pkg

import (
	"fmt"
)

// Range represents a range [Start, End)
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// SplitRange splits [0, totalSize) into at most parts contiguous ranges of
// near equal length. Fewer ranges are returned when totalSize < parts.
func SplitRange(totalSize int, parts int) ([]Range, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("parts must be positive, got %d", parts)
	}

	if totalSize < 0 {
		return nil, fmt.Errorf("negative total size %d", totalSize)
	}

	if totalSize == 0 {
		return []Range{}, nil
	}

	if parts > totalSize {
		parts = totalSize
	}

	ranges := make([]Range, parts)
	baseSize := totalSize / parts
	remainder := totalSize % parts

	start := 0
	for i := 0; i < parts; i++ {
		size := baseSize
		if i < remainder {
			size++ // distribute remainder among first ranges
		}

		ranges[i] = Range{
			Start: start,
			End:   start + size,
		}
		start += size
	}

	return ranges, nil
}
