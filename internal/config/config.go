package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/taprand/internal/draw"
)

// Config represents the complete taprand configuration
type Config struct {
	Seed     *int64          `hcl:"seed,optional"`
	LogLevel string          `hcl:"log_level,optional"`
	Draw     *DrawSettings   `hcl:"draw,block"`
	Bench    *BenchSettings  `hcl:"bench,block"`
	Server   *ServerSettings `hcl:"server,block"`
}

// DrawSettings describes the default stream for draw and stats
type DrawSettings struct {
	Kind   string  `hcl:"kind,optional"`
	Count  int     `hcl:"count,optional"`
	Bound  int64   `hcl:"bound,optional"`
	S      float64 `hcl:"s,optional"`
	V      int64   `hcl:"v,optional"`
	Mean   float64 `hcl:"mean,optional"`
	StdDev float64 `hcl:"stddev,optional"`
	Shared bool    `hcl:"shared,optional"`
}

// BenchSettings controls the concurrent throughput run
type BenchSettings struct {
	Workers int  `hcl:"workers,optional"`
	Draws   int  `hcl:"draws,optional"`
	Shared  bool `hcl:"shared,optional"`
}

// ServerSettings contains streaming server configuration
type ServerSettings struct {
	Address         string `hcl:"address,optional"`
	StreamTimeoutMs int    `hcl:"stream_timeout_ms,optional"`
	MaxCount        int    `hcl:"max_count,optional"`
}

const (
	defaultLogLevel        = "info"
	defaultKind            = string(draw.KindInt64)
	defaultCount           = 10
	defaultBound           = 100
	defaultZipfS           = 1.5
	defaultZipfV           = 100
	defaultStdDev          = 1
	defaultBenchDraws      = 1_000_000
	defaultBenchWorkers    = 8
	defaultAddress         = "localhost:8080"
	defaultStreamTimeoutMs = 30_000
	defaultMaxCount        = 1_000_000
)

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Draw == nil {
		c.Draw = &DrawSettings{}
	}
	if c.Draw.Kind == "" {
		c.Draw.Kind = defaultKind
	}
	if c.Draw.Count == 0 {
		c.Draw.Count = defaultCount
	}
	if c.Draw.Bound == 0 {
		c.Draw.Bound = defaultBound
	}
	if c.Draw.S == 0 {
		c.Draw.S = defaultZipfS
	}
	if c.Draw.V == 0 {
		c.Draw.V = defaultZipfV
	}
	if c.Draw.StdDev == 0 {
		c.Draw.StdDev = defaultStdDev
	}

	if c.Bench == nil {
		c.Bench = &BenchSettings{}
	}
	if c.Bench.Workers == 0 {
		c.Bench.Workers = defaultBenchWorkers
	}
	if c.Bench.Draws == 0 {
		c.Bench.Draws = defaultBenchDraws
	}

	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
	if c.Server.StreamTimeoutMs == 0 {
		c.Server.StreamTimeoutMs = defaultStreamTimeoutMs
	}
	if c.Server.MaxCount == 0 {
		c.Server.MaxCount = defaultMaxCount
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if err := c.DrawSpec().Validate(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if c.Draw.Count < 0 {
		return fmt.Errorf("draw: count must not be negative, got %d", c.Draw.Count)
	}

	if c.Bench.Workers < 1 {
		return fmt.Errorf("bench: workers must be positive, got %d", c.Bench.Workers)
	}
	if c.Bench.Draws < 1 {
		return fmt.Errorf("bench: draws must be positive, got %d", c.Bench.Draws)
	}

	if c.Server.StreamTimeoutMs < 0 {
		return fmt.Errorf("server: stream timeout must not be negative, got %d", c.Server.StreamTimeoutMs)
	}
	if c.Server.MaxCount < 1 {
		return fmt.Errorf("server: max count must be positive, got %d", c.Server.MaxCount)
	}
	return nil
}

// DrawSpec converts the draw block into a draw.Spec.
func (c *Config) DrawSpec() draw.Spec {
	kind, err := draw.ParseKind(c.Draw.Kind)
	if err != nil {
		kind = draw.Kind(c.Draw.Kind)
	}
	return draw.Spec{
		Kind:   kind,
		Bound:  c.Draw.Bound,
		Mean:   c.Draw.Mean,
		StdDev: c.Draw.StdDev,
		S:      c.Draw.S,
		V:      c.Draw.V,
	}
}

// StreamTimeout returns the server stream timeout as a duration.
func (c *Config) StreamTimeout() time.Duration {
	return time.Duration(c.Server.StreamTimeoutMs) * time.Millisecond
}

// SeedOr returns the configured seed, or fallback when none is set.
func (c *Config) SeedOr(fallback int64) int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return fallback
}
