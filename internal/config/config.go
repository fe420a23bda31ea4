// Package config loads tichudeal settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/tichudeal/internal/deal"
)

// DefaultFile is the config file read when none is given
const DefaultFile = "tichudeal.hcl"

// Config represents the complete configuration
type Config struct {
	Rounds         int      `hcl:"rounds,optional"`
	Seed           int64    `hcl:"seed,optional"`
	Players        []string `hcl:"players,optional"`
	InitialCount   int      `hcl:"initial_count,optional"`
	RemainingCount int      `hcl:"remaining_count,optional"`
	LogLevel       string   `hcl:"log_level,optional"`

	Output *OutputConfig `hcl:"output,block"`
}

// OutputConfig controls where and how exports are written
type OutputConfig struct {
	Dir      string   `hcl:"dir,optional"`
	Basename string   `hcl:"basename,optional"`
	Formats  []string `hcl:"formats,optional"`
	Images   string   `hcl:"images,optional"`
	ImageExt string   `hcl:"image_ext,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Rounds:         deal.DefaultRounds,
		Players:        deal.DefaultPlayers(),
		InitialCount:   deal.DefaultInitialCount,
		RemainingCount: deal.DefaultRemainingCount,
		LogLevel:       "info",
		Output: &OutputConfig{
			Dir:      ".",
			Basename: "tichu_hands",
			Formats:  []string{"pdf"},
			Images:   "images",
			ImageExt: "JPG",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. Unset values fall back to the defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Rounds == 0 {
		c.Rounds = def.Rounds
	}
	if len(c.Players) == 0 {
		c.Players = def.Players
	}
	// Zero counts are indistinguishable from unset ones.
	if c.InitialCount == 0 {
		c.InitialCount = def.InitialCount
	}
	if c.RemainingCount == 0 {
		c.RemainingCount = def.RemainingCount
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}

	if c.Output == nil {
		c.Output = def.Output
		return
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Output.Basename == "" {
		c.Output.Basename = def.Output.Basename
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = def.Output.Formats
	}
	if c.Output.Images == "" {
		c.Output.Images = def.Output.Images
	}
	if c.Output.ImageExt == "" {
		c.Output.ImageExt = def.Output.ImageExt
	}
}

// Validate checks the deal settings and log level
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return c.DealOptions().Validate()
}

// DealOptions converts the config into options for deal.Generate
func (c *Config) DealOptions() deal.Options {
	return deal.Options{
		Rounds:         c.Rounds,
		Seed:           c.Seed,
		Players:        append([]string(nil), c.Players...),
		InitialCount:   c.InitialCount,
		RemainingCount: c.RemainingCount,
	}
}
