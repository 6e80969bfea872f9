package statistics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChiSquarePerfectFit(t *testing.T) {
	res, err := ChiSquare([]int{25, 25, 25, 25}, UniformExpected(4, 100))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Statistic)
	assert.Equal(t, 3, res.DOF)
	assert.InDelta(t, 1.0, res.PValue, 1e-12)
	assert.False(t, res.Reject(0.01))
}

func TestChiSquareKnownValue(t *testing.T) {
	// (60-50)^2/50 + (40-50)^2/50 = 4, P(chi2_1 > 4) = 0.0455.
	res, err := ChiSquare([]int{60, 40}, UniformExpected(2, 100))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Statistic, 1e-12)
	assert.InDelta(t, 0.0455, res.PValue, 1e-4)
	assert.True(t, res.Reject(0.05))
	assert.False(t, res.Reject(0.01))
}

func TestChiSquareErrors(t *testing.T) {
	_, err := ChiSquare([]int{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = ChiSquare([]int{1}, []float64{1})
	assert.True(t, errors.Is(err, ErrInsufficientData))

	_, err = ChiSquare([]int{1, 2}, []float64{1, 0})
	assert.True(t, errors.Is(err, ErrInsufficientData))
}

func TestZipfExpected(t *testing.T) {
	e := ZipfExpected(1.0001, 2, 300)
	require.Len(t, e, 2)
	assert.InDelta(t, 200, e[0], 0.1)
	assert.InDelta(t, 100, e[1], 0.1)
	assert.InDelta(t, 300, e[0]+e[1], 1e-9)
}

func TestBuckets(t *testing.T) {
	assert.Equal(t, 0, UnitBucket(0, 10))
	assert.Equal(t, 9, UnitBucket(0.95, 10))
	assert.Equal(t, 9, UnitBucket(1, 10))
	assert.Equal(t, 0, UnitBucket(-0.1, 10))

	assert.Equal(t, 2, NormalBucket(0.01, 0, 1, 4))
	assert.Equal(t, 1, NormalBucket(-0.01, 0, 1, 4))
	assert.Equal(t, 0, NormalBucket(-10, 0, 1, 4))
	assert.Equal(t, 3, NormalBucket(10, 5, 1, 4))
}

func TestRangeBuckets(t *testing.T) {
	for _, n := range []int64{1, 7, 100, 1000} {
		for _, buckets := range []int{1, 3, 16} {
			if int64(buckets) > n {
				continue
			}
			counts := make([]int, buckets)
			for v := int64(0); v < n; v++ {
				counts[RangeBucket(v, n, buckets)]++
			}
			expected := RangeExpected(n, buckets, int(n))
			for b := range counts {
				assert.InDelta(t, float64(counts[b]), expected[b], 1e-9, "n=%d buckets=%d bucket=%d", n, buckets, b)
			}
		}
	}

	const max = int64(1<<63 - 1)
	assert.Equal(t, 0, RangeBucket(0, max, 10))
	assert.Equal(t, 9, RangeBucket(max-1, max, 10))

	var sum float64
	for _, e := range RangeExpected(max, 10, 1000) {
		sum += e
	}
	assert.InDelta(t, 1000, sum, 1e-6)
}
