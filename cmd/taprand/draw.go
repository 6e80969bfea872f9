package main

import (
	"fmt"
	"io"

	"github.com/lox/taprand/internal/draw"
	"github.com/lox/taprand/internal/entropy"
	"github.com/lox/taprand/internal/fileutil"
	"github.com/lox/taprand/internal/randutil"
	"github.com/lox/taprand/srand"
)

// DistFlags select a value kind and its parameters. Unset flags fall back
// to the draw block of the config file.
type DistFlags struct {
	Kind   string   `short:"k" help:"Value kind (${kinds})" placeholder:"KIND"`
	Bound  *int64   `short:"b" help:"Exclusive upper bound for int32n and int64n"`
	S      *float64 `name:"zipf-s" help:"Zipf exponent, must be greater than 1"`
	V      *int64   `name:"zipf-v" help:"Zipf domain size"`
	Mean   *float64 `help:"Normal mean"`
	StdDev *float64 `name:"stddev" help:"Normal standard deviation"`
}

func (f *DistFlags) spec(g *Globals) (draw.Spec, error) {
	spec := g.cfg.DrawSpec()
	if f.Kind != "" {
		kind, err := draw.ParseKind(f.Kind)
		if err != nil {
			return draw.Spec{}, err
		}
		spec.Kind = kind
	}
	if f.Bound != nil {
		spec.Bound = *f.Bound
	}
	if f.S != nil {
		spec.S = *f.S
	}
	if f.V != nil {
		spec.V = *f.V
	}
	if f.Mean != nil {
		spec.Mean = *f.Mean
	}
	if f.StdDev != nil {
		spec.StdDev = *f.StdDev
	}
	return spec, spec.Validate()
}

// DrawCmd prints values from a seeded generator, one per line
type DrawCmd struct {
	DistFlags `embed:""`

	Count  *int   `short:"n" help:"Number of values to draw"`
	Seed   *int64 `short:"s" help:"Generator seed (default: config, then entropy)"`
	Shared *bool  `negatable:"" help:"Draw through the mutex-guarded source (default: config)"`
	Output string `short:"o" type:"path" help:"Write values to this file instead of stdout"`
}

func (c *DrawCmd) Run(g *Globals) error {
	if err := g.load(); err != nil {
		return err
	}
	spec, err := c.spec(g)
	if err != nil {
		return err
	}
	count := g.cfg.Draw.Count
	if c.Count != nil {
		count = *c.Count
	}
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}
	seed, err := g.resolveSeed(c.Seed)
	if err != nil {
		return err
	}

	shared := g.cfg.Draw.Shared
	if c.Shared != nil {
		shared = *c.Shared
	}

	var d draw.Drawer
	if shared {
		d, err = draw.New(randutil.NewShared(seed), spec)
	} else {
		d, err = draw.New(randutil.New(seed), spec)
	}
	if err != nil {
		return err
	}

	g.log.Debug("Drawing", "kind", spec.Kind, "count", count, "seed", seed)
	write := func(w io.Writer) error {
		for i := 0; i < count; i++ {
			if _, err := fmt.Fprintln(w, d.Next().String()); err != nil {
				return err
			}
		}
		return nil
	}

	if c.Output == "" {
		return write(g.out)
	}
	if err := fileutil.WriteAtomic(c.Output, 0o644, write); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}
	g.log.Info("Wrote values", "path", c.Output, "count", count)
	return nil
}

// ShuffleCmd prints its arguments in a seeded random order
type ShuffleCmd struct {
	Items []string `arg:"" optional:"" help:"Items to shuffle"`
	Seed  *int64   `short:"s" help:"Generator seed (default: config, then entropy)"`
}

func (c *ShuffleCmd) Run(g *Globals) error {
	if err := g.load(); err != nil {
		return err
	}
	seed, err := g.resolveSeed(c.Seed)
	if err != nil {
		return err
	}

	items := append([]string(nil), c.Items...)
	srand.ShuffleSlice(randutil.New(seed), items)

	for _, item := range items {
		if _, err := fmt.Fprintln(g.out, item); err != nil {
			return err
		}
	}
	return nil
}

// SeedCmd prints a seed read from the operating system
type SeedCmd struct{}

func (c *SeedCmd) Run(g *Globals) error {
	if err := g.load(); err != nil {
		return err
	}
	seed, err := entropy.Seed()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.out, seed)
	return err
}
