package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/tichudeal/internal/export"
)

// RenderCmd re-exports an archived batch
type RenderCmd struct {
	Archive string `arg:"" name:"archive" help:"JSON or TOML archive written by deal" type:"existingfile"`

	OutputFlags
}

func (cmd *RenderCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Clean(cmd.Archive))
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := export.Decode(bufio.NewReader(f), cmd.Archive)
	if err != nil {
		return err
	}
	if len(doc.Rounds) == 0 {
		return fmt.Errorf("no boards found in %s", cmd.Archive)
	}
	logger.Info("Loaded archive", "path", cmd.Archive, "id", doc.ID, "rounds", len(doc.Rounds))

	out := *cfg.Output
	// Default to the archive's own name so render sits next to its source.
	out.Basename = strings.TrimSuffix(filepath.Base(cmd.Archive), filepath.Ext(cmd.Archive))
	cmd.OutputFlags.apply(&out)

	return writeExports(doc, &out, logger)
}
