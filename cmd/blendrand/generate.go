package main

import (
	"context"
	"fmt"

	"github.com/lox/blendrand/internal/blend"
	"github.com/lox/blendrand/internal/seedinput"
)

// GenerateCmd prints a single blended value.
type GenerateCmd struct {
	Seed      string `short:"s" help:"Seed value; skips the prompt"`
	Breakdown bool   `short:"b" help:"Log each engine's contribution"`
}

func (cmd *GenerateCmd) Run(g *Globals) error {
	return cmd.run(context.Background(), g, processEnv())
}

func (cmd *GenerateCmd) run(ctx context.Context, g *Globals, e env) error {
	cfg, logger, err := g.setup(e.stderr)
	if err != nil {
		return err
	}

	seed, err := cmd.resolveSeed(ctx, cfg.Seed, e)
	if err != nil {
		return err
	}

	combiner := blend.NewCombiner(e.clock, blend.WithLogger(logger))
	res, err := combiner.Combine(seed)
	if err != nil {
		return err
	}

	if cmd.Breakdown {
		for _, d := range res.Draws {
			logger.Info("Engine draw", "engine", d.Engine, "value", d.Value)
		}
		logger.Info("Master seed", "seed", seed, "clock", res.Clock, "master", res.Master)
	}

	_, err = fmt.Fprintln(e.stdout, "Combined Random Number:", res.Value)
	return err
}

// resolveSeed prefers the flag, then the config file, then asks the user.
func (cmd *GenerateCmd) resolveSeed(ctx context.Context, configured string, e env) (blend.Seed, error) {
	switch {
	case cmd.Seed != "":
		return seedinput.Parse(cmd.Seed)
	case configured != "":
		return seedinput.Parse(configured)
	case e.interactive:
		return seedinput.Prompt(ctx, e.stdin, e.stderr)
	default:
		return seedinput.ReadLine(e.stdin, e.stderr)
	}
}
