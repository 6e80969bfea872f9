package statistics

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInsufficientData is returned when a test has too few buckets or samples.
var ErrInsufficientData = errors.New("statistics: insufficient data")

// ChiSquareResult is the outcome of a Pearson goodness-of-fit test.
type ChiSquareResult struct {
	Statistic float64
	DOF       int
	PValue    float64
}

// Reject reports whether the fit is rejected at significance level alpha.
func (r ChiSquareResult) Reject(alpha float64) bool {
	return r.PValue < alpha
}

// ChiSquare compares observed bucket counts against expected counts.
func ChiSquare(observed []int, expected []float64) (ChiSquareResult, error) {
	if len(observed) != len(expected) {
		return ChiSquareResult{}, fmt.Errorf("observed has %d buckets, expected has %d", len(observed), len(expected))
	}
	if len(observed) < 2 {
		return ChiSquareResult{}, fmt.Errorf("%w: need at least 2 buckets, got %d", ErrInsufficientData, len(observed))
	}

	var stat float64
	for i, o := range observed {
		e := expected[i]
		if !(e > 0) {
			return ChiSquareResult{}, fmt.Errorf("%w: bucket %d has expected count %v", ErrInsufficientData, i, e)
		}
		d := float64(o) - e
		stat += d * d / e
	}

	dof := len(observed) - 1
	chi := distuv.ChiSquared{K: float64(dof)}
	return ChiSquareResult{
		Statistic: stat,
		DOF:       dof,
		PValue:    chi.Survival(stat),
	}, nil
}

// UniformExpected returns the expected counts for total samples spread
// evenly over buckets.
func UniformExpected(buckets, total int) []float64 {
	expected := make([]float64, buckets)
	for i := range expected {
		expected[i] = float64(total) / float64(buckets)
	}
	return expected
}

// ZipfExpected returns the expected counts for ranks [0, v) when P(k) is
// proportional to (k+1)**(-s).
func ZipfExpected(s float64, v int, total int) []float64 {
	expected := make([]float64, v)
	var norm float64
	for k := range expected {
		expected[k] = math.Pow(float64(k+1), -s)
		norm += expected[k]
	}
	for k := range expected {
		expected[k] = expected[k] / norm * float64(total)
	}
	return expected
}

// NormalBucket maps x onto one of buckets equal-probability buckets of the
// normal distribution with the given mean and stddev.
func NormalBucket(x, mean, stddev float64, buckets int) int {
	u := distuv.Normal{Mu: mean, Sigma: stddev}.CDF(x)
	return UnitBucket(u, buckets)
}

// UnitBucket maps u in [0,1] onto one of buckets equal-width buckets.
func UnitBucket(u float64, buckets int) int {
	b := int(u * float64(buckets))
	if b >= buckets {
		b = buckets - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

// RangeBucket maps v in [0, n) onto one of buckets contiguous buckets
// using floor(v*buckets/n) without overflowing.
func RangeBucket(v, n int64, buckets int) int {
	hi, lo := bits.Mul64(uint64(v), uint64(buckets))
	q, _ := bits.Div64(hi, lo, uint64(n))
	return int(q)
}

// RangeExpected returns the expected counts for total samples drawn
// uniformly from [0, n) and bucketed with RangeBucket.
func RangeExpected(n int64, buckets, total int) []float64 {
	expected := make([]float64, buckets)
	start := rangeStart(0, n, buckets)
	for b := range expected {
		end := rangeStart(b+1, n, buckets)
		expected[b] = float64(end-start) / float64(n) * float64(total)
		start = end
	}
	return expected
}

// rangeStart returns the smallest v with RangeBucket(v, n, buckets) >= b,
// that is ceil(b*n/buckets).
func rangeStart(b int, n int64, buckets int) uint64 {
	hi, lo := bits.Mul64(uint64(b), uint64(n))
	lo, carry := bits.Add64(lo, uint64(buckets-1), 0)
	q, _ := bits.Div64(hi+carry, lo, uint64(buckets))
	return q
}
