// Package batch draws many blended values over consecutive seeds and
// summarises them.
package batch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/lox/blendrand/internal/blend"
	"github.com/lox/blendrand/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Options configures a batch run
type Options struct {
	Seed    blend.Seed // first seed; absent means 1
	Samples int
	Workers int
	Buckets int
	Clock   blend.Clock
	Logger  *log.Logger
}

// Report is the outcome of a batch run
type Report struct {
	StartSeed int64              `json:"start_seed"`
	Clock     int64              `json:"clock_ms"`
	Samples   []float64          `json:"-"`
	Summary   statistics.Summary `json:"summary"`
	Digest    string             `json:"digest"`
}

func (o Options) validate() error {
	if o.Samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", o.Samples)
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", o.Workers)
	}
	if o.Buckets < 1 {
		return fmt.Errorf("buckets must be positive, got %d", o.Buckets)
	}
	if o.Clock == nil {
		return errors.New("clock is required")
	}
	return nil
}

// Run reads the clock once and computes Combine(start+i, clock) for each
// sample i. Results do not depend on the worker count.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("batch")

	now, err := opts.Clock()
	if err != nil {
		return nil, fmt.Errorf("failed to read clock: %w", err)
	}

	start, ok := opts.Seed.Value()
	if !ok {
		start = 1
	}

	logger.Info("Starting batch", "samples", opts.Samples, "workers", opts.Workers, "start", start, "clock", now)

	samples := make([]float64, opts.Samples)
	chunk := (opts.Samples + opts.Workers - 1) / opts.Workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for lo := 0; lo < opts.Samples; lo += chunk {
		hi := min(lo+chunk, opts.Samples)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				samples[i] = blend.Combine(blend.SeedOf(start+int64(i)), now).Value
			}
			logger.Debug("Chunk complete", "from", lo, "to", hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	stats := &statistics.Statistics{}
	for _, v := range samples {
		stats.Add(v)
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		StartSeed: start,
		Clock:     now,
		Samples:   samples,
		Summary:   stats.Summarize(opts.Buckets),
		Digest:    fmt.Sprintf("%016x", Digest(samples)),
	}
	logger.Info("Batch complete", "mean", report.Summary.Mean, "digest", report.Digest)
	return report, nil
}

// Digest hashes the IEEE-754 bits of the samples in order.
func Digest(samples []float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range samples {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
