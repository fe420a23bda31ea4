package main

import (
	"io"
	"os"

	"github.com/lox/tichudeal/internal/export"
)

// PreviewCmd deals a batch and prints it instead of writing files
type PreviewCmd struct {
	DealFlags

	stdout io.Writer
}

func (cmd *PreviewCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	cmd.DealFlags.apply(cfg)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	doc, err := dealDocument(ctx, cfg, cmd.Concurrency, logger)
	if err != nil {
		return err
	}

	out := cmd.stdout
	if out == nil {
		out = os.Stdout
	}
	return export.TextExporter{}.Export(out, doc)
}
