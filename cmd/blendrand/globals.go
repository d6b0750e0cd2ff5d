package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/blendrand/internal/blend"
	"github.com/lox/blendrand/internal/config"
	"github.com/mattn/go-isatty"
)

// Globals are flags shared by every command.
type Globals struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"blendrand.hcl" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
}

// env carries the process collaborators so commands can run under test.
type env struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	clock       blend.Clock
	interactive bool
	styled      bool
}

func processEnv() env {
	stdinTTY := isatty.IsTerminal(os.Stdin.Fd())
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd())
	return env{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		clock:       blend.SystemClock(),
		interactive: stdinTTY && isatty.IsTerminal(os.Stderr.Fd()),
		styled:      stdoutTTY && colorCapable(),
	}
}

// setup loads the config, applies flag overrides and builds the logger.
func (g *Globals) setup(stderr io.Writer) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(stderr, log.Options{
		Level:  cfg.Level(),
		Prefix: "blendrand",
	})
	logger.Debug("Loaded configuration", "file", g.Config, "level", cfg.LogLevel)
	return cfg, logger, nil
}
