package main

import (
	"fmt"

	"github.com/lox/taprand/internal/bench"
)

// BenchCmd runs concurrent draws and reports throughput
type BenchCmd struct {
	Workers *int   `short:"w" help:"Number of goroutines drawing at once"`
	Draws   *int   `short:"n" help:"Total number of draws across all workers"`
	Seed    *int64 `short:"s" help:"Generator seed (default: config, then entropy)"`
	Shared  *bool  `negatable:"" help:"Share one mutex-guarded source between workers (default: config)"`
	Verify  bool   `default:"true" negatable:"" help:"Check draws for duplicates and losses"`
}

func (c *BenchCmd) Run(g *Globals) error {
	if err := g.load(); err != nil {
		return err
	}
	seed, err := g.resolveSeed(c.Seed)
	if err != nil {
		return err
	}

	opts := bench.Options{
		Workers: g.cfg.Bench.Workers,
		Draws:   g.cfg.Bench.Draws,
		Seed:    seed,
		Shared:  g.cfg.Bench.Shared,
		Verify:  c.Verify,
		Logger:  g.log,
	}
	if c.Workers != nil {
		opts.Workers = *c.Workers
	}
	if c.Draws != nil {
		opts.Draws = *c.Draws
	}
	if c.Shared != nil {
		opts.Shared = *c.Shared
	}

	ctx := setupSignalHandler(g.log)
	res, err := bench.Run(ctx, opts)
	if err != nil {
		return err
	}

	mode := "exclusive"
	if res.Shared {
		mode = "shared"
	}
	lines := []string{
		titleStyle.Render(fmt.Sprintf("bench: %d workers, %s sources", res.Workers, mode)),
		row("draws", fmt.Sprintf("%d", res.Draws)),
		row("elapsed", res.Elapsed.String()),
		row("rate", fmt.Sprintf("%.0f draws/s", res.Throughput())),
	}
	if res.Verified {
		status := passStyle.Render("ok")
		if res.Duplicates > 0 || res.Missing > 0 {
			status = failStyle.Render("FAIL")
		}
		lines = append(lines,
			row("duplicates", fmt.Sprintf("%d", res.Duplicates)),
			row("missing", fmt.Sprintf("%d", res.Missing)),
			row("verify", status),
		)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(g.out, l); err != nil {
			return err
		}
	}

	if res.Duplicates > 0 || res.Missing > 0 {
		return fmt.Errorf("verification failed: %d duplicates, %d missing", res.Duplicates, res.Missing)
	}
	return nil
}
