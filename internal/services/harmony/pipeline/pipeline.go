// Package pipeline grows the word dictionary from single words to sets of
// five words with pairwise disjoint letters.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/combo"
	"github.com/Tydus/wordleharmony/internal/join"
	"github.com/Tydus/wordleharmony/internal/partition"
	"github.com/Tydus/wordleharmony/internal/report"
	"github.com/Tydus/wordleharmony/internal/services/harmony"
	"github.com/Tydus/wordleharmony/internal/services/harmony/notifier"
	"github.com/google/uuid"
)

type pipelineImpl struct {
	cfg       *harmony.Config
	logger    *slog.Logger
	notifiers []notifier.Notifier
	observer  *notifier.ProgressLogger

	progress atomic.Pointer[harmony.Progress]
}

var _ harmony.Service = (*pipelineImpl)(nil)

func New(cfg *harmony.Config, logger *slog.Logger, notifiers ...notifier.Notifier) *pipelineImpl {
	if logger == nil {
		logger = slog.Default()
	}

	p := &pipelineImpl{
		cfg:       cfg,
		logger:    logger,
		notifiers: notifiers,
		observer:  notifier.NewProgressLogger(logger, cfg.ProgressPeriod),
	}
	p.progress.Store(&harmony.Progress{Status: harmony.StatusNotStarted})

	return p
}

func (p *pipelineImpl) Progress() *harmony.Progress {
	return p.progress.Load()
}

// Run builds solo, duo, trio, quadro and pento in turn. The right operand of
// every join is the arity-1 base; each intermediate dictionary is dropped
// as soon as the next one exists.
func (p *pipelineImpl) Run(ctx context.Context, cat *catalog.Catalog) (*harmony.Result, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := p.logger.With(slog.String("run_id", runID.String()))

	p.setProgress(&harmony.Progress{RunID: runID, Status: harmony.StatusInProgress, Stage: harmony.StageSolo})

	engine := join.New(cat, join.Options{
		Workers:  p.cfg.Workers,
		Progress: p.trackTasks,
	})

	logger.Info("pipeline started",
		slog.String("strategy", string(p.cfg.Strategy)),
		slog.Int("words", cat.Len()),
		slog.Int("workers", engine.Workers()),
	)

	var (
		pento *combo.Dictionary
		stats []join.Stats
		err   error
	)

	switch p.cfg.Strategy {
	case harmony.StrategyFlat:
		pento, stats, err = p.runFlat(ctx, logger, engine, cat)
	default:
		pento, stats, err = p.runPartitioned(ctx, logger, engine, cat)
	}

	if err != nil {
		p.fail(runID)
		logger.Error("pipeline failed", slog.Any("error", err))
		return nil, err
	}

	p.setProgress(&harmony.Progress{RunID: runID, Status: harmony.StatusReady, Stage: harmony.StagePento})
	logger.Info("pipeline finished", slog.Int("records", pento.Len()))

	return &harmony.Result{
		RunID:   runID,
		Catalog: cat,
		Pento:   pento,
		Stats:   stats,
	}, nil
}

func (p *pipelineImpl) runPartitioned(ctx context.Context, logger *slog.Logger, engine *join.Engine, cat *catalog.Catalog) (*combo.Dictionary, []join.Stats, error) {
	solo, err := partition.ByInitial(combo.FromCatalog(cat), cat)
	if err != nil {
		return nil, nil, err
	}
	report.LogBuckets(logger, string(harmony.StageSolo), solo)

	joinFn := engine.Partitioned
	if p.cfg.Strategy == harmony.StrategyReuse {
		joinFn = engine.Reuse
	}

	stats := make([]join.Stats, 0, combo.MaxArity-1)
	current := solo
	for arity := 2; arity <= combo.MaxArity; arity++ {
		stage := p.enterStage(arity)

		next, st, err := joinFn(ctx, current, solo, p.cfg.Cap(arity))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", stage, err)
		}

		p.notify(logger, &st)
		report.LogBuckets(logger, string(stage), next)
		stats = append(stats, st)
		current = next
	}

	pento, err := current.Flatten(p.cfg.Cap(combo.MaxArity))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", harmony.StagePento, err)
	}

	return pento, stats, nil
}

func (p *pipelineImpl) runFlat(ctx context.Context, logger *slog.Logger, engine *join.Engine, cat *catalog.Catalog) (*combo.Dictionary, []join.Stats, error) {
	base := combo.FromCatalog(cat)
	logger.Info("dictionary built",
		slog.String("dict", string(harmony.StageSolo)),
		slog.Int("arity", 1),
		slog.Int("total", base.Len()),
	)

	stats := make([]join.Stats, 0, combo.MaxArity-1)
	current := base
	for arity := 2; arity <= combo.MaxArity; arity++ {
		stage := p.enterStage(arity)

		next, st, err := engine.FlatParallel(ctx, current, base, p.cfg.Cap(arity))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", stage, err)
		}

		p.notify(logger, &st)
		stats = append(stats, st)
		current = next
	}

	return current, stats, nil
}

func (p *pipelineImpl) enterStage(arity int) harmony.Stage {
	stage := harmony.StageFor(arity)
	prev := p.progress.Load()
	p.setProgress(&harmony.Progress{
		RunID:  prev.RunID,
		Status: harmony.StatusInProgress,
		Stage:  stage,
	})

	return stage
}

func (p *pipelineImpl) trackTasks(done, total int) {
	prev := p.progress.Load()
	p.setProgress(&harmony.Progress{
		RunID:      prev.RunID,
		Status:     prev.Status,
		Stage:      prev.Stage,
		TasksDone:  done,
		TotalTasks: total,
	})
}

func (p *pipelineImpl) setProgress(progress *harmony.Progress) {
	p.progress.Store(progress)
	p.observer.Observe(progress)
}

func (p *pipelineImpl) fail(runID uuid.UUID) {
	prev := p.progress.Load()
	p.progress.Store(&harmony.Progress{
		RunID:  runID,
		Status: harmony.StatusError,
		Stage:  prev.Stage,
	})
}

func (p *pipelineImpl) notify(logger *slog.Logger, stats *join.Stats) {
	for _, n := range p.notifiers {
		if err := n.Notify(stats); err != nil {
			logger.Warn("notify failed", slog.Any("error", err))
		}
	}
}
