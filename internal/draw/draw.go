// Package draw maps named value kinds onto a generator so the CLI and the
// server can stream any of them from a single description.
package draw

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lox/taprand/srand"
)

// Kind names a type of value that can be drawn.
type Kind string

const (
	KindInt32   Kind = "int32"
	KindUint32  Kind = "uint32"
	KindInt64   Kind = "int64"
	KindUint64  Kind = "uint64"
	KindInt32n  Kind = "int32n"
	KindInt64n  Kind = "int64n"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
	KindNormal  Kind = "normal"
	KindZipf    Kind = "zipf"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{
	KindInt32, KindUint32, KindInt64, KindUint64,
	KindInt32n, KindInt64n, KindFloat32, KindFloat64,
	KindNormal, KindZipf,
}

// ParseKind parses a kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown draw kind %q", s)
}

// IsFloat reports whether the kind produces floating-point values.
func (k Kind) IsFloat() bool {
	switch k {
	case KindFloat32, KindFloat64, KindNormal:
		return true
	}
	return false
}

// Bounded reports whether the kind draws from a finite integer range [0, n).
func (k Kind) Bounded() bool {
	switch k {
	case KindInt32n, KindInt64n, KindZipf:
		return true
	}
	return false
}

// Spec describes a stream of values.
type Spec struct {
	Kind   Kind
	Bound  int64   // int32n, int64n
	Mean   float64 // normal
	StdDev float64 // normal
	S      float64 // zipf exponent
	V      int64   // zipf domain size
}

// Validate checks the parameters its kind needs.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindInt32n:
		if s.Bound <= 0 || s.Bound > math.MaxInt32 {
			return fmt.Errorf("int32n bound must be in [1, %d], got %d", math.MaxInt32, s.Bound)
		}
	case KindInt64n:
		if s.Bound <= 0 {
			return fmt.Errorf("int64n bound must be positive, got %d", s.Bound)
		}
	case KindNormal, KindZipf:
		// Checked by the sampler constructors in New.
	case "":
		return fmt.Errorf("draw kind is required")
	default:
		if _, err := ParseKind(string(s.Kind)); err != nil {
			return err
		}
	}
	return nil
}

// Range returns the number of distinct values a bounded kind can produce.
func (s Spec) Range() int64 {
	switch s.Kind {
	case KindInt32n, KindInt64n:
		return s.Bound
	case KindZipf:
		return s.V
	}
	return 0
}

// Value is a single drawn value.
type Value struct {
	Int   int64
	Uint  uint64
	Float float64
	kind  Kind
}

// Kind returns the kind the value was drawn as.
func (v Value) Kind() Kind { return v.kind }

// String formats the value the way the CLI prints it.
func (v Value) String() string {
	switch v.kind {
	case KindUint32, KindUint64:
		return strconv.FormatUint(v.Uint, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.Float, 'g', -1, 32)
	case KindFloat64, KindNormal:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(v.Int, 10)
}

// MarshalJSON encodes the value as a bare JSON number.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind.IsFloat() && (math.IsNaN(v.Float) || math.IsInf(v.Float, 0)) {
		return nil, fmt.Errorf("cannot encode %v as JSON", v.Float)
	}
	return []byte(v.String()), nil
}

// Drawer produces successive values of one kind.
type Drawer interface {
	Next() Value
	Spec() Spec
}

type drawer struct {
	spec Spec
	next func() Value
}

func (d *drawer) Next() Value { return d.next() }
func (d *drawer) Spec() Spec  { return d.spec }

// New returns a Drawer for spec backed by r.
func New[S srand.Source](r *srand.Rand[S], spec Spec) (Drawer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	k := spec.Kind
	d := &drawer{spec: spec}
	switch k {
	case KindInt32:
		d.next = func() Value { return Value{Int: int64(r.Int32()), kind: k} }
	case KindUint32:
		d.next = func() Value { return Value{Uint: uint64(r.Uint32()), kind: k} }
	case KindInt64:
		d.next = func() Value { return Value{Int: r.Int64(), kind: k} }
	case KindUint64:
		d.next = func() Value { return Value{Uint: r.Uint64(), kind: k} }
	case KindInt32n:
		n := int32(spec.Bound)
		d.next = func() Value { return Value{Int: int64(r.Int32n(n)), kind: k} }
	case KindInt64n:
		n := spec.Bound
		d.next = func() Value { return Value{Int: r.Int64n(n), kind: k} }
	case KindFloat32:
		d.next = func() Value { return Value{Float: float64(r.Float32()), kind: k} }
	case KindFloat64:
		d.next = func() Value { return Value{Float: r.Float64(), kind: k} }
	case KindNormal:
		n, err := srand.NewNormalWithParams(r, spec.Mean, spec.StdDev)
		if err != nil {
			return nil, err
		}
		d.next = func() Value { return Value{Float: n.Draw(), kind: k} }
	case KindZipf:
		z, err := srand.NewZipf(r, spec.S, spec.V)
		if err != nil {
			return nil, err
		}
		d.next = func() Value { return Value{Int: z.Draw(), kind: k} }
	}
	return d, nil
}
