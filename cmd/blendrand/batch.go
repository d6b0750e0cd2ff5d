package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/blendrand/internal/batch"
	"github.com/lox/blendrand/internal/seedinput"
)

// BatchCmd blends many values and reports their statistics.
type BatchCmd struct {
	Seed    string `short:"s" help:"First seed (default 1)"`
	Samples int    `short:"n" help:"Number of values to blend (overrides config)"`
	Workers int    `short:"w" help:"Parallel workers (overrides config)"`
	Buckets int    `help:"Histogram buckets for the uniformity check (overrides config)"`
	Format  string `short:"f" help:"Output format: text or json (overrides config)"`
}

func (cmd *BatchCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cmd.run(ctx, g, processEnv())
}

func (cmd *BatchCmd) run(ctx context.Context, g *Globals, e env) error {
	cfg, logger, err := g.setup(e.stderr)
	if err != nil {
		return err
	}

	if cmd.Samples != 0 {
		cfg.Batch.Samples = cmd.Samples
	}
	if cmd.Workers != 0 {
		cfg.Batch.Workers = cmd.Workers
	}
	if cmd.Buckets != 0 {
		cfg.Batch.Buckets = cmd.Buckets
	}
	if cmd.Format != "" {
		cfg.Batch.Format = cmd.Format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seedText := cmd.Seed
	if seedText == "" {
		seedText = cfg.Seed
	}
	seed, err := seedinput.Parse(seedText)
	if err != nil {
		return err
	}

	report, err := batch.Run(ctx, batch.Options{
		Seed:    seed,
		Samples: cfg.Batch.Samples,
		Workers: cfg.Batch.Workers,
		Buckets: cfg.Batch.Buckets,
		Clock:   e.clock,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	switch cfg.Batch.Format {
	case "json":
		return renderJSON(e.stdout, report)
	case "text":
		return renderText(e.stdout, report, e.styled)
	default:
		return fmt.Errorf("unknown format %q", cfg.Batch.Format)
	}
}
