// Package config loads the blendrand HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Seed     string         `hcl:"seed,optional"`
	Batch    *BatchSettings `hcl:"batch,block"`
}

// BatchSettings controls the batch command
type BatchSettings struct {
	Samples int    `hcl:"samples,optional"`
	Workers int    `hcl:"workers,optional"`
	Buckets int    `hcl:"buckets,optional"`
	Format  string `hcl:"format,optional"`
}

const (
	DefaultLogLevel = "info"
	DefaultSamples  = 1000
	DefaultWorkers  = 4
	DefaultBuckets  = 10
	DefaultFormat   = "text"
)

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Batch: &BatchSettings{
			Samples: DefaultSamples,
			Workers: DefaultWorkers,
			Buckets: DefaultBuckets,
			Format:  DefaultFormat,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Batch == nil {
		c.Batch = &BatchSettings{}
	}
	if c.Batch.Samples == 0 {
		c.Batch.Samples = DefaultSamples
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = DefaultWorkers
	}
	if c.Batch.Buckets == 0 {
		c.Batch.Buckets = DefaultBuckets
	}
	if c.Batch.Format == "" {
		c.Batch.Format = DefaultFormat
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Batch == nil {
		return fmt.Errorf("batch settings missing")
	}
	if c.Batch.Samples < 1 {
		return fmt.Errorf("batch samples must be positive, got %d", c.Batch.Samples)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch workers must be positive, got %d", c.Batch.Workers)
	}
	if c.Batch.Buckets < 2 {
		return fmt.Errorf("batch buckets must be at least 2, got %d", c.Batch.Buckets)
	}
	switch c.Batch.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid batch format %q", c.Batch.Format)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
