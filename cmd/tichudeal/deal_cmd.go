package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tichudeal/internal/config"
	"github.com/lox/tichudeal/internal/deal"
	"github.com/lox/tichudeal/internal/export"
	"github.com/lox/tichudeal/internal/fileutil"
	"github.com/lox/tichudeal/internal/randutil"
)

// DealFlags override the config file when set
type DealFlags struct {
	Rounds      int      `short:"n" help:"Number of boards to deal (overrides config)" env:"TICHU_ROUNDS"`
	Seed        int64    `help:"Master RNG seed, 0 for a time-based seed (overrides config)" env:"TICHU_SEED"`
	Players     []string `help:"Seat labels in dealing order (overrides config)"`
	Concurrency int      `help:"Boards dealt in parallel (0 = number of CPUs)"`
}

func (f DealFlags) apply(cfg *config.Config) {
	if f.Rounds != 0 {
		cfg.Rounds = f.Rounds
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if len(f.Players) > 0 {
		cfg.Players = f.Players
	}
}

// OutputFlags override the config output block when set
type OutputFlags struct {
	Format   []string `short:"f" help:"Export formats: pdf, json, xml, toml, text (overrides config)"`
	Output   string   `short:"o" help:"Output directory (overrides config)" type:"path"`
	Basename string   `help:"Output file name without extension (overrides config)"`
	Images   string   `help:"Directory of card and suit icon images (overrides config)" type:"path"`
}

func (f OutputFlags) apply(out *config.OutputConfig) {
	if len(f.Format) > 0 {
		out.Formats = f.Format
	}
	if f.Output != "" {
		out.Dir = f.Output
	}
	if f.Basename != "" {
		out.Basename = f.Basename
	}
	if f.Images != "" {
		out.Images = f.Images
	}
}

// DealCmd deals a batch and writes every configured export
type DealCmd struct {
	DealFlags
	OutputFlags
}

func (cmd *DealCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	cmd.DealFlags.apply(cfg)
	cmd.OutputFlags.apply(cfg.Output)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	doc, err := dealDocument(ctx, cfg, cmd.Concurrency, logger)
	if err != nil {
		return err
	}
	return writeExports(doc, cfg.Output, logger)
}

// dealDocument generates the configured batch and wraps it for export
func dealDocument(ctx context.Context, cfg *config.Config, concurrency int, logger *log.Logger) (export.Document, error) {
	opts := cfg.DealOptions()
	opts.Concurrency = concurrency
	opts.Logger = logger
	if opts.Seed == 0 {
		opts.Seed = randutil.TimeSeed()
		logger.Info("Using time-based seed", "seed", opts.Seed)
	}

	rounds, err := deal.Generate(ctx, opts)
	if err != nil {
		return export.Document{}, fmt.Errorf("dealing boards: %w", err)
	}
	logger.Info("Dealt boards", "rounds", len(rounds), "seed", opts.Seed)

	return export.NewDocument(opts.Players, rounds, quartz.NewReal())
}

// writeExports writes doc once per configured format
func writeExports(doc export.Document, out *config.OutputConfig, logger *log.Logger) error {
	settings := export.Settings{Images: out.Images, ImageExt: out.ImageExt}

	// Resolve every format before writing anything.
	exporters := make([]export.Exporter, 0, len(out.Formats))
	for _, format := range out.Formats {
		e, err := export.New(format, settings)
		if err != nil {
			return err
		}
		exporters = append(exporters, e)
	}

	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, e := range exporters {
		path := filepath.Join(out.Dir, out.Basename+"."+e.Extension())
		err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
			return e.Export(w, doc)
		})
		if err != nil {
			return fmt.Errorf("writing %s export: %w", e.Format(), err)
		}
		logger.Info("Wrote export", "format", e.Format(), "path", path, "rounds", len(doc.Rounds))
	}
	return nil
}
