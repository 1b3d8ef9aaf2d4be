// Package siglist implements the sample-list and index data model: a
// homogeneous ordered sequence of real or complex samples carrying a
// time scale and cached statistics, plus a doubly-linked indexed
// catalogue of named lists sharing a parent pointer.
//
// Indices in the public contract are 1-based; out-of-range access fails.
package siglist

import (
	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/stats"
)

// Kind fixes a List's storage variant at construction. Switching kind
// requires an explicit conversion (see ToComplex/ToReal) that reshapes
// storage rather than reinterpreting it in place.
type Kind int

const (
	// Real lists store one float64 per sample.
	Real Kind = iota
	// Complex lists store one complex128 per sample.
	Complex
)

// TimeScale carries a list's time axis: starting time, sample interval,
// and the normalized-time origin.
type TimeScale struct {
	T0     float64
	DeltaT float64
	N0     float64
}

// Stats holds the cached descriptive statistics of a list, with a
// validity flag invalidated by any mutation (Set/Add/Resize).
type Stats struct {
	Valid bool
	Sum   complex128
	Avg   complex128
	Var   complex128
	Std   complex128
	Max   complex128
	Min   complex128
}

// List is a homogeneous ordered sequence of real or complex samples.
type List struct {
	kind  Kind
	real  []float64
	cplx  []complex128
	scale TimeScale
	stats Stats
}

// New creates an empty list of the given kind and time scale.
func New(kind Kind, scale TimeScale) *List {
	return &List{kind: kind, scale: scale}
}

// Kind returns the list's fixed storage variant.
func (l *List) Kind() Kind { return l.kind }

// TimeScale returns the list's time axis.
func (l *List) TimeScale() TimeScale { return l.scale }

// SetTimeScale replaces the list's time axis without touching samples.
func (l *List) SetTimeScale(scale TimeScale) { l.scale = scale }

// Len returns the number of samples currently stored.
func (l *List) Len() int {
	if l.kind == Real {
		return len(l.real)
	}
	return len(l.cplx)
}

func (l *List) invalidate() { l.stats.Valid = false }

// Resize grows the list to n samples (new tail samples are zero), or, at
// n=0, frees the underlying storage. Shrinking (0 < n < Len()) truncates.
func (l *List) Resize(n int) error {
	if n < 0 {
		return errs.New(errs.Domain, "siglist.Resize", "negative size")
	}
	l.invalidate()
	switch l.kind {
	case Real:
		if n == 0 {
			l.real = nil
			return nil
		}
		if n <= len(l.real) {
			l.real = l.real[:n]
			return nil
		}
		grown := make([]float64, n)
		copy(grown, l.real)
		l.real = grown
	case Complex:
		if n == 0 {
			l.cplx = nil
			return nil
		}
		if n <= len(l.cplx) {
			l.cplx = l.cplx[:n]
			return nil
		}
		grown := make([]complex128, n)
		copy(grown, l.cplx)
		l.cplx = grown
	}
	return nil
}

func (l *List) checkPos(op string, pos int) error {
	if pos < 1 || pos > l.Len() {
		return errs.New(errs.Domain, op, "sample position out of range")
	}
	return nil
}

// Get returns the 1-based pos-th sample, as a complex value (real lists
// report a zero imaginary part).
func (l *List) Get(pos int) (complex128, error) {
	if err := l.checkPos("siglist.Get", pos); err != nil {
		return 0, err
	}
	if l.kind == Real {
		return complex(l.real[pos-1], 0), nil
	}
	return l.cplx[pos-1], nil
}

// Set overwrites the 1-based pos-th sample. For Real lists only the
// real part of v is stored.
func (l *List) Set(pos int, v complex128) error {
	if err := l.checkPos("siglist.Set", pos); err != nil {
		return err
	}
	l.invalidate()
	if l.kind == Real {
		l.real[pos-1] = real(v)
	} else {
		l.cplx[pos-1] = v
	}
	return nil
}

// Add appends one sample to the tail of the list.
func (l *List) Add(v complex128) error {
	l.invalidate()
	if l.kind == Real {
		l.real = append(l.real, real(v))
	} else {
		l.cplx = append(l.cplx, v)
	}
	return nil
}

// RealSamples returns the backing slice for a Real list directly, for
// hot-path callers (framing, FFT) that need to avoid the complex128
// round-trip per sample. It returns nil for a Complex list.
func (l *List) RealSamples() []float64 {
	if l.kind != Real {
		return nil
	}
	return l.real
}

// ComplexSamples returns the backing slice for a Complex list directly.
// It returns nil for a Real list.
func (l *List) ComplexSamples() []complex128 {
	if l.kind != Complex {
		return nil
	}
	return l.cplx
}

// ToComplex returns a new Complex-kind list with the same samples
// (imaginary part zero) and time scale, leaving l unchanged.
func (l *List) ToComplex() *List {
	out := New(Complex, l.scale)
	if l.kind == Complex {
		out.cplx = append([]complex128(nil), l.cplx...)
		return out
	}
	out.cplx = make([]complex128, len(l.real))
	for i, x := range l.real {
		out.cplx[i] = complex(x, 0)
	}
	return out
}

// ToReal returns a new Real-kind list keeping only the real part of each
// sample, leaving l unchanged.
func (l *List) ToReal() *List {
	out := New(Real, l.scale)
	if l.kind == Real {
		out.real = append([]float64(nil), l.real...)
		return out
	}
	out.real = make([]float64, len(l.cplx))
	for i, z := range l.cplx {
		out.real[i] = real(z)
	}
	return out
}

// Clone returns an independent copy of l.
func (l *List) Clone() *List {
	out := New(l.kind, l.scale)
	out.real = append([]float64(nil), l.real...)
	out.cplx = append([]complex128(nil), l.cplx...)
	out.stats = l.stats
	return out
}

// CalculateStatistics repopulates the cached statistics from the current
// samples and marks them valid. It is a no-op result-wise on an empty
// list (all fields zero, Valid true).
func (l *List) CalculateStatistics() {
	var re, im stats.IncStats
	n := l.Len()
	for i := 1; i <= n; i++ {
		v, _ := l.Get(i)
		re.Add(real(v), 0)
		im.Add(imag(v), 0)
	}
	l.stats = Stats{
		Valid: true,
		Sum:   complex(re.SumX(), im.SumX()),
		Avg:   complex(re.AvgX(), im.AvgX()),
		Var:   complex(re.VarX(), im.VarX()),
		Std:   complex(re.StdX(), im.StdX()),
		Max:   complex(re.MaxX(), im.MaxX()),
		Min:   complex(re.MinX(), im.MinX()),
	}
}

// Statistics returns the cached statistics and whether they are valid.
func (l *List) Statistics() (Stats, bool) { return l.stats, l.stats.Valid }
