package join

import (
	"log/slog"
	"time"
)

// Stats describes one finished join.
type Stats struct {
	Arity   int           `json:"arity"`
	Left    int           `json:"left"`
	Right   int           `json:"right"`
	Output  int           `json:"output"`
	Tasks   int           `json:"tasks"`
	Elapsed time.Duration `json:"elapsed"`
}

// Sources is the size of the unpruned cross product.
func (s Stats) Sources() int {
	return s.Left * s.Right
}

// Ratio is Output / (Left * Right); it shrinks as the arity grows.
func (s Stats) Ratio() float64 {
	if s.Sources() == 0 {
		return 0
	}
	return float64(s.Output) / float64(s.Sources())
}

func (s Stats) PerSource() time.Duration {
	if s.Sources() == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.Sources())
}

func (s Stats) PerOutput() time.Duration {
	if s.Output == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.Output)
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("arity", s.Arity),
		slog.Int("left", s.Left),
		slog.Int("right", s.Right),
		slog.Int("output", s.Output),
		slog.Float64("ratio_pct", 100*s.Ratio()),
		slog.Int("tasks", s.Tasks),
		slog.Duration("elapsed", s.Elapsed),
		slog.Duration("per_source", s.PerSource()),
		slog.Duration("per_output", s.PerOutput()),
	)
}
