package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tydus/wordleharmony/internal/catalog"
	"github.com/Tydus/wordleharmony/internal/report"
	"github.com/Tydus/wordleharmony/internal/services/harmony"
	"github.com/Tydus/wordleharmony/internal/services/harmony/notifier"
	"github.com/Tydus/wordleharmony/internal/services/harmony/pipeline"
	"github.com/Tydus/wordleharmony/internal/wordfile"
	"github.com/Tydus/wordleharmony/pkg/logging"
	"github.com/spf13/cobra"
)

type options struct {
	cfgPath  string
	wordFile string
	strategy string
	workers  int
	coverage int
	perLine  int
	verbose  bool
}

func New() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "wordleharmony",
		Short:         "Find sets of five words that use 25 distinct letters",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.cfgPath)
			if err != nil {
				return err
			}

			if err := applyFlags(cmd, opts, cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.cfgPath, "config", "c", "", "path to configuration file")
	flags.StringVarP(&opts.wordFile, "word-file", "w", "", "path to the word list (.gz, .zst and .lz4 are decompressed)")
	flags.StringVar(&opts.strategy, "strategy", string(harmony.StrategyPartitioned), "join strategy: flat, partitioned or partitioned-with-reuse")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent join tasks, 0 means one per CPU")
	flags.IntVar(&opts.coverage, "coverage", harmony.DefaultCoverage, "minimum number of distinct letters in a printed solution")
	flags.IntVar(&opts.perLine, "per-line", report.DefaultPerLine, "solutions printed per output line")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-letter bucket sizes")

	return rootCmd
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg *Config) error {
	flags := cmd.Flags()

	if flags.Changed("strategy") {
		strategy, err := harmony.ParseStrategy(opts.strategy)
		if err != nil {
			return err
		}
		cfg.Harmony.Strategy = strategy
	}

	if flags.Changed("workers") {
		cfg.Harmony.Workers = opts.workers
	}

	if flags.Changed("coverage") {
		cfg.Harmony.Coverage = opts.coverage
	}

	if opts.verbose {
		cfg.Logger.Level = "debug"
	}

	return nil
}

func run(ctx context.Context, cfg *Config, opts *options, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger := logging.InitLogger(cfg.Logger, stderr, slog.String("service", "wordleharmony"))

	cat, err := loadCatalog(opts.wordFile, cfg.Harmony.MaxCatalogSize)
	if err != nil {
		logger.Error("load word file failed", slog.Any("error", err))
		return err
	}

	stats := cat.Stats()
	logger.Info("words loaded",
		slog.String("path", opts.wordFile),
		slog.Int("lines", stats.Lines),
		slog.Int("rejected", stats.Rejected),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("words", stats.Words),
	)

	p := pipeline.New(cfg.Harmony, logger, notifier.NewSlogNotifier(logger))

	res, err := p.Run(ctx, cat)
	if err != nil {
		return err
	}

	solutions := res.Solutions(cfg.Harmony.Coverage)
	if err := report.WriteSolutions(stdout, cat, solutions, opts.perLine); err != nil {
		return err
	}

	logger.Info("solutions found",
		slog.Int("solutions", len(solutions)),
		slog.Int("coverage", cfg.Harmony.Coverage),
		slog.Uint64("words_used", res.UsedWords(cfg.Harmony.Coverage).GetCardinality()),
	)

	return nil
}

func loadCatalog(path string, maxSize int) (*catalog.Catalog, error) {
	rc, err := wordfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return catalog.Read(rc, maxSize)
}
