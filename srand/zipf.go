package srand

import (
	"fmt"
	"math"
)

// Zipf samples ranks k in [0, v) with probability proportional to
// (k+1)**(-s), using Devroye's rejection method ("Non-Uniform Random Variate
// Generation", 1986, p. 551).
//
// Draw has no iteration limit. For s very close to 1 the acceptance rate of
// the untruncated proposal falls towards zero and a single Draw can take
// arbitrarily many rounds; capping it would bias the output.
type Zipf[S Source] struct {
	r   *Rand[S]
	s   float64
	v   int64
	vf  float64
	b   float64 // 2**(s-1)
	exp float64 // -1/(s-1)
}

// NewZipf returns a Zipf sampler with exponent s over a domain of v ranks.
// It requires s > 1 and v >= 1.
func NewZipf[S Source](r *Rand[S], s float64, v int64) (*Zipf[S], error) {
	if !(s > 1) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: zipf exponent %v must exceed 1", ErrInvalidParameter, s)
	}
	if v <= 0 {
		return nil, fmt.Errorf("%w: zipf domain size %d must be positive", ErrInvalidParameter, v)
	}
	return &Zipf[S]{
		r:   r,
		s:   s,
		v:   v,
		vf:  float64(v),
		b:   math.Pow(2, s-1),
		exp: -1 / (s - 1),
	}, nil
}

// S returns the exponent.
func (z *Zipf[S]) S() float64 { return z.s }

// V returns the domain size.
func (z *Zipf[S]) V() int64 { return z.v }

// Draw returns a rank in [0, v).
func (z *Zipf[S]) Draw() int64 {
	for {
		u := z.r.Float64()
		w := z.r.Float64()
		// u == 0 gives +Inf, which falls outside the domain below. float64(v)
		// rounds up to 1<<63 for v near MaxInt64, so that rank is rejected too.
		x := math.Floor(math.Pow(u, z.exp))
		if x > z.vf || x >= 1<<63 {
			continue
		}
		t := math.Pow(1+1/x, z.s-1)
		if w*x*(t-1)/(z.b-1) <= t/z.b {
			return int64(x) - 1
		}
	}
}
