package srand

import (
	"fmt"
	"math"
)

/*
 * Normal distribution
 *
 * See "The Ziggurat Method for Generating Random Variables"
 * (Marsaglia & Tsang, 2000)
 * http://www.jstatsoft.org/v05/i08/paper [pdf]
 */

// rn is the right edge of the base strip; beyond it lies the tail.
const rn = 3.442619855899

// Normal samples normally distributed values from a Rand.
type Normal[S Source] struct {
	r      *Rand[S]
	mean   float64
	stddev float64
}

// NewNormal returns a sampler for the standard normal distribution
// (mean = 0, stddev = 1).
func NewNormal[S Source](r *Rand[S]) *Normal[S] {
	return &Normal[S]{r: r, mean: 0, stddev: 1}
}

// NewNormalWithParams returns a sampler for the normal distribution with
// the given mean and standard deviation. stddev must be positive and both
// values finite.
func NewNormalWithParams[S Source](r *Rand[S], mean, stddev float64) (*Normal[S], error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("%w: normal mean %v", ErrInvalidParameter, mean)
	}
	if !(stddev > 0) || math.IsInf(stddev, 0) {
		return nil, fmt.Errorf("%w: normal stddev %v", ErrInvalidParameter, stddev)
	}
	return &Normal[S]{r: r, mean: mean, stddev: stddev}, nil
}

// Mean returns the distribution mean.
func (n *Normal[S]) Mean() float64 { return n.mean }

// StdDev returns the distribution standard deviation.
func (n *Normal[S]) StdDev() float64 { return n.stddev }

// Draw returns a normally distributed float64. For the standard sampler the
// result is in [-math.MaxFloat64, +math.MaxFloat64].
func (n *Normal[S]) Draw() float64 {
	x := n.standard()
	if n.mean == 0 && n.stddev == 1 {
		return x
	}
	return x*n.stddev + n.mean
}

func (n *Normal[S]) standard() float64 {
	r := n.r
	for {
		j := int32(r.Uint32()) // Possibly negative
		i := j & 0x7F
		x := float64(j) * float64(wn[i])
		if absInt32(j) < kn[i] {
			// This case should be hit better than 99% of the time.
			return x
		}

		if i == 0 {
			// Base strip: sample the tail beyond rn.
			for {
				x = -math.Log(r.Float64()) * (1.0 / rn)
				y := -math.Log(r.Float64())
				if y+y >= x*x {
					break
				}
			}
			if j > 0 {
				return rn + x
			}
			return -rn - x
		}
		if fn[i]+float32(r.Float64())*(fn[i-1]-fn[i]) < float32(math.Exp(-.5*x*x)) {
			return x
		}
	}
}

func absInt32(i int32) uint32 {
	if i < 0 {
		return uint32(-i)
	}
	return uint32(i)
}
