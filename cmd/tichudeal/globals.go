package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/tichudeal/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `help:"Path to HCL config file" default:"${config_file}" env:"TICHU_CONFIG"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)" env:"TICHU_LOG_LEVEL"`
	Debug    bool   `help:"Enable debug logging" env:"TICHU_DEBUG"`
}

// load reads the config file and builds the logger it asks for
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	path := g.Config
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	logger, err := setupLogger(level, g.Debug)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded config", "path", path, "rounds", cfg.Rounds, "players", cfg.Players)
	return cfg, logger, nil
}

// setupLogger creates a stderr logger at the named level
func setupLogger(level string, debug bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "tichudeal",
	}), nil
}

// setupSignalHandler returns a context cancelled on interrupt signals
func setupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
