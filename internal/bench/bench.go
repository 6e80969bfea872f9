// Package bench drives generators from many goroutines at once, either
// sharing one locked stream or giving each worker its own, and checks that
// no draws are lost or duplicated.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/taprand/internal/randutil"
	"github.com/lox/taprand/srand"
)

// checkEvery is how many draws a worker makes between context checks.
const checkEvery = 1024

// Options configures a run.
type Options struct {
	Workers int
	Draws   int // total across all workers
	Seed    int64
	Shared  bool // one LockedSource for all workers instead of one RngSource each
	Verify  bool // keep every value and check for duplicates
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Result reports what a run did.
type Result struct {
	Workers    int
	Draws      int
	Shared     bool
	Elapsed    time.Duration
	PerWorker  []int
	Duplicates int
	// Missing counts values of the sequential stream that no worker drew.
	// Only computed for verified shared runs.
	Missing  int
	Verified bool
}

// Throughput returns draws per second, or zero when no time was measured.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Draws) / r.Elapsed.Seconds()
}

// Run executes the benchmark described by opts.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Workers < 1 {
		return Result{}, fmt.Errorf("workers must be positive, got %d", opts.Workers)
	}
	if opts.Draws < 0 {
		return Result{}, fmt.Errorf("draws must not be negative, got %d", opts.Draws)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("bench")

	res := Result{
		Workers:   opts.Workers,
		Draws:     opts.Draws,
		Shared:    opts.Shared,
		PerWorker: make([]int, opts.Workers),
	}

	// Divide draws among workers
	perWorker := opts.Draws / opts.Workers
	remainder := opts.Draws % opts.Workers

	var values [][]int64
	if opts.Verify {
		values = make([][]int64, opts.Workers)
	}

	var shared *srand.Rand[*srand.LockedSource]
	var seeds []int64
	if opts.Shared {
		shared = randutil.NewShared(opts.Seed)
	} else {
		seeds = randutil.WorkerSeeds(opts.Seed, opts.Workers)
	}

	logger.Debug("Starting workers",
		"workers", opts.Workers,
		"draws", opts.Draws,
		"shared", opts.Shared,
		"seed", opts.Seed)

	start := opts.Clock.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < opts.Workers; w++ {
		n := perWorker
		if w < remainder {
			n++ // Distribute remainder draws
		}
		res.PerWorker[w] = n

		var draw func() int64
		if opts.Shared {
			draw = shared.Int64
		} else {
			draw = randutil.New(seeds[w]).Int64
		}

		g.Go(func() error {
			var out []int64
			if opts.Verify {
				out = make([]int64, 0, n)
			}
			for i := 0; i < n; i++ {
				if i%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				v := draw()
				if opts.Verify {
					out = append(out, v)
				}
			}
			if opts.Verify {
				values[w] = out
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	res.Elapsed = opts.Clock.Since(start)

	if opts.Verify {
		res.Verified = true
		res.Duplicates, res.Missing = verify(values, opts)
	}

	logger.Debug("Workers finished",
		"elapsed", res.Elapsed,
		"duplicates", res.Duplicates,
		"missing", res.Missing)

	return res, nil
}

// verify counts repeated values across all workers. For shared runs it also
// replays the sequential stream and counts values nobody drew.
func verify(values [][]int64, opts Options) (duplicates, missing int) {
	seen := make(map[int64]struct{}, opts.Draws)
	for _, vals := range values {
		for _, v := range vals {
			if _, ok := seen[v]; ok {
				duplicates++
				continue
			}
			seen[v] = struct{}{}
		}
	}

	if opts.Shared {
		seq := randutil.New(opts.Seed)
		for i := 0; i < opts.Draws; i++ {
			if _, ok := seen[seq.Int64()]; !ok {
				missing++
			}
		}
	}
	return duplicates, missing
}
