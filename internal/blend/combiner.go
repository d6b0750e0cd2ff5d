// Package blend derives a master seed and averages one draw from each engine.
package blend

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blendrand/internal/engine"
)

// Factory constructs one engine from the master seed.
type Factory struct {
	Name string
	New  func(master int64) engine.Engine
}

// DefaultFactories returns the five standard engines in draw order.
func DefaultFactories() []Factory {
	kinds := engine.Kinds()
	factories := make([]Factory, 0, len(kinds))
	for _, k := range kinds {
		factories = append(factories, Factory{
			Name: k.String(),
			New: func(master int64) engine.Engine {
				return engine.New(k, master)
			},
		})
	}
	return factories
}

// Draw is the single value one engine contributed to a result.
type Draw struct {
	Engine string  `json:"engine"`
	Value  float64 `json:"value"`
}

// Result is one blended value with its provenance.
type Result struct {
	Seed   Seed    `json:"-"`
	Clock  int64   `json:"clock_ms"`
	Master int64   `json:"master"`
	Draws  []Draw  `json:"draws"`
	Value  float64 `json:"value"`
}

// Combine blends one draw from each of the default engines. It reads no
// clock and is fully determined by its arguments.
func Combine(seed Seed, clockMillis int64) Result {
	return combineWith(DefaultFactories(), seed, clockMillis)
}

func combineWith(factories []Factory, seed Seed, clockMillis int64) Result {
	master := DeriveMaster(seed, clockMillis)
	res := Result{
		Seed:   seed,
		Clock:  clockMillis,
		Master: master,
		Draws:  make([]Draw, 0, len(factories)),
	}
	var sum float64
	for _, f := range factories {
		v := f.New(master).Next()
		res.Draws = append(res.Draws, Draw{Engine: f.Name, Value: v})
		sum += v
	}
	if len(factories) > 0 {
		res.Value = sum / float64(len(factories))
	}
	return res
}

// Combiner reads the clock once per combination.
type Combiner struct {
	clock     Clock
	factories []Factory
	logger    *log.Logger
}

// Option configures a Combiner.
type Option func(*Combiner)

// WithFactories replaces the engine set, typically with test doubles.
func WithFactories(factories ...Factory) Option {
	return func(c *Combiner) {
		c.factories = factories
	}
}

// WithLogger sets the logger used for per-engine debug output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Combiner) {
		c.logger = logger.WithPrefix("blend")
	}
}

// NewCombiner creates a combiner reading the given clock.
func NewCombiner(clock Clock, opts ...Option) *Combiner {
	c := &Combiner{
		clock:     clock,
		factories: DefaultFactories(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Combine reads the clock and blends one draw from each engine.
func (c *Combiner) Combine(seed Seed) (Result, error) {
	now, err := c.clock()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read clock: %w", err)
	}

	res := combineWith(c.factories, seed, now)
	c.logger.Debug("Derived master seed", "seed", seed, "clock", now, "master", res.Master)
	for _, d := range res.Draws {
		c.logger.Debug("Engine draw", "engine", d.Engine, "value", d.Value)
	}
	return res, nil
}
