package notifier

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Tydus/wordleharmony/internal/join"
	"github.com/Tydus/wordleharmony/internal/services/harmony"
	"golang.org/x/time/rate"
)

type slogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *slogNotifier {
	return &slogNotifier{logger: logger}
}

func (n *slogNotifier) Notify(stats *join.Stats) error {
	if stats == nil {
		return fmt.Errorf("nil join stats")
	}

	n.logger.Info("join finished",
		slog.String("stage", string(harmony.StageFor(stats.Arity))),
		slog.Any("stats", *stats),
	)

	return nil
}

// ProgressLogger logs task progress at most once per period.
type ProgressLogger struct {
	logger    *slog.Logger
	sometimes *rate.Sometimes
}

// NewProgressLogger returns nil when period is not positive; a nil
// ProgressLogger ignores every observation.
func NewProgressLogger(logger *slog.Logger, period time.Duration) *ProgressLogger {
	if period <= 0 {
		return nil
	}

	return &ProgressLogger{
		logger:    logger,
		sometimes: &rate.Sometimes{First: 1, Interval: period},
	}
}

func (l *ProgressLogger) Observe(p *harmony.Progress) {
	if l == nil || p == nil {
		return
	}

	l.sometimes.Do(func() {
		l.logger.Info("join in progress",
			slog.String("run_id", p.RunID.String()),
			slog.String("stage", string(p.Stage)),
			slog.Int("tasks_done", p.TasksDone),
			slog.Int("total_tasks", p.TotalTasks),
		)
	})
}
