package main

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/taprand/internal/draw"
	"github.com/lox/taprand/internal/randutil"
	"github.com/lox/taprand/internal/statistics"
)

// maxZipfStatsDomain bounds the zipf domain the stats command will normalize
// over.
const maxZipfStatsDomain = 1 << 22

// StatsCmd summarizes a sample and tests it against its distribution
type StatsCmd struct {
	DistFlags `embed:""`

	Samples int     `short:"n" default:"100000" help:"Number of values to draw"`
	Buckets int     `default:"16" help:"Number of chi-square buckets"`
	Alpha   float64 `default:"0.01" help:"Significance level for the goodness-of-fit test"`
	Seed    *int64  `short:"s" help:"Generator seed (default: config, then entropy)"`
}

func (c *StatsCmd) Run(g *Globals) error {
	if err := g.load(); err != nil {
		return err
	}
	spec, err := c.spec(g)
	if err != nil {
		return err
	}
	seed, err := g.resolveSeed(c.Seed)
	if err != nil {
		return err
	}

	d, err := draw.New(randutil.New(seed), spec)
	if err != nil {
		return err
	}

	g.log.Debug("Sampling", "kind", spec.Kind, "samples", c.Samples, "buckets", c.Buckets, "seed", seed)
	report, err := collectStats(d, c.Samples, c.Buckets)
	if err != nil {
		return err
	}
	report.Seed = seed
	report.Alpha = c.Alpha
	return report.render(g.out)
}

// statsReport holds everything the stats command prints.
type statsReport struct {
	Spec     draw.Spec
	Seed     int64
	Alpha    float64
	Summary  statistics.Summary
	Observed []int
	Expected []float64
	Result   statistics.ChiSquareResult
}

// collectStats draws samples values from d, bucketing each one for a
// chi-square test against the kind's distribution.
func collectStats(d draw.Drawer, samples, buckets int) (*statsReport, error) {
	if samples < 1 {
		return nil, fmt.Errorf("samples must be positive, got %d", samples)
	}
	if buckets < 2 {
		return nil, fmt.Errorf("buckets must be at least 2, got %d", buckets)
	}

	spec := d.Spec()
	bucket, expected, err := bucketing(spec, buckets, samples)
	if err != nil {
		return nil, err
	}

	report := &statsReport{
		Spec:     spec,
		Observed: make([]int, len(expected)),
		Expected: expected,
	}
	for i := 0; i < samples; i++ {
		v := d.Next()
		report.Summary.Add(asFloat(v))
		report.Observed[bucket(v)]++
	}

	report.Result, err = statistics.ChiSquare(report.Observed, report.Expected)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// bucketing returns the bucket function for a kind and the expected
// count in each bucket.
func bucketing(spec draw.Spec, buckets, samples int) (func(draw.Value) int, []float64, error) {
	switch spec.Kind {
	case draw.KindInt32n, draw.KindInt64n:
		n := spec.Bound
		nb := int(min(int64(buckets), n))
		if nb < 2 {
			return nil, nil, fmt.Errorf("bound %d is too small to test", n)
		}
		return func(v draw.Value) int {
			return statistics.RangeBucket(v.Int, n, nb)
		}, statistics.RangeExpected(n, nb, samples), nil

	case draw.KindZipf:
		if spec.V > maxZipfStatsDomain {
			return nil, nil, fmt.Errorf("zipf domain %d is too large to test, maximum is %d", spec.V, maxZipfStatsDomain)
		}
		nb := int(min(int64(buckets), spec.V))
		if nb < 2 {
			return nil, nil, fmt.Errorf("zipf domain %d is too small to test", spec.V)
		}
		// Ranks past the last bucket are pooled into it.
		full := statistics.ZipfExpected(spec.S, int(spec.V), samples)
		expected := make([]float64, nb)
		copy(expected, full[:nb-1])
		for _, e := range full[nb-1:] {
			expected[nb-1] += e
		}
		return func(v draw.Value) int {
			return int(min(v.Int, int64(nb-1)))
		}, expected, nil

	case draw.KindNormal:
		mean, stddev := spec.Mean, spec.StdDev
		return func(v draw.Value) int {
			return statistics.NormalBucket(v.Float, mean, stddev, buckets)
		}, statistics.UniformExpected(buckets, samples), nil
	}

	scale := unitScale(spec.Kind)
	return func(v draw.Value) int {
		return statistics.UnitBucket(asFloat(v)*scale, buckets)
	}, statistics.UniformExpected(buckets, samples), nil
}

// unitScale maps a kind's full range onto [0, 1).
func unitScale(k draw.Kind) float64 {
	switch k {
	case draw.KindInt32:
		return 1.0 / (1 << 31)
	case draw.KindUint32:
		return 1.0 / (1 << 32)
	case draw.KindInt64:
		return 1.0 / (1 << 63)
	case draw.KindUint64:
		return 1.0 / (1 << 64)
	}
	return 1
}

func asFloat(v draw.Value) float64 {
	switch {
	case v.Kind().IsFloat():
		return v.Float
	case v.Kind() == draw.KindUint32 || v.Kind() == draw.KindUint64:
		return float64(v.Uint)
	}
	return float64(v.Int)
}

func (r *statsReport) render(w io.Writer) error {
	s := &r.Summary
	lo, hi := s.ConfidenceInterval95()

	verdict := passStyle.Render("pass")
	if r.Result.Reject(r.Alpha) {
		verdict = failStyle.Render("FAIL")
	}

	var out []string
	out = append(out, titleStyle.Render(fmt.Sprintf("%s sample, seed %d", r.Spec.Kind, r.Seed)))
	out = append(out,
		row("samples", fmt.Sprintf("%d", s.Count)),
		row("mean", fmt.Sprintf("%.6g", s.Mean())),
		row("stddev", fmt.Sprintf("%.6g", s.StdDev())),
		row("95% CI", fmt.Sprintf("[%.6g, %.6g]", lo, hi)),
		row("min", fmt.Sprintf("%.6g", s.Min)),
		row("median", fmt.Sprintf("%.6g", s.Median())),
		row("max", fmt.Sprintf("%.6g", s.Max)),
		"",
		headerStyle.Render(fmt.Sprintf("%-8s %12s %14s %9s", "bucket", "observed", "expected", "dev")),
	)
	for i, o := range r.Observed {
		e := r.Expected[i]
		dev := (float64(o) - e) / math.Sqrt(e)
		line := fmt.Sprintf("%-8d %12d %14.1f %+9.2f", i, o, e, dev)
		if math.Abs(dev) > 3 {
			line = warnStyle.Render(line)
		}
		out = append(out, line)
	}
	out = append(out,
		"",
		row("chi2", fmt.Sprintf("%.4f", r.Result.Statistic)),
		row("dof", fmt.Sprintf("%d", r.Result.DOF)),
		row("p-value", fmt.Sprintf("%.4f", r.Result.PValue)),
		row(fmt.Sprintf("alpha %.3g", r.Alpha), verdict),
	)

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, out...))
	return err
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + value
}
