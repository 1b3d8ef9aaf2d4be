package frame

import (
	"math"

	"github.com/atmafra/poli-sub001/internal/errs"
)

// WindowKind selects one of the recognized windowing functions.
type WindowKind int

const (
	Rectangular WindowKind = iota
	Bartlett
	Triangular
	Hamming
	Hanning
	Blackman
	KaiserBessel
)

// TriangularParams fixes the shape of a generic Triangular window: the
// centred index of the peak, its left/right zero-crossing indices, and
// the value at the peak.
type TriangularParams struct {
	Central      float64
	Low          float64
	High         float64
	CentralValue float64
}

// Window evaluates one windowing function over a frame of width W,
// centred around zero (i' = i - W/2). Each Window value is scoped to
// its own instance rather than a package-level cache, per the object-
// scoped redesign applied throughout this toolkit: a Kaiser-Bessel
// window memoizes its I0(B) the first time it is evaluated and reuses
// it for as long as Beta is unchanged, mirroring the original's
// last_B memo cell but without a shared global.
type Window struct {
	Kind       WindowKind
	Triangular TriangularParams
	Beta       float64 // Kaiser-Bessel B parameter

	kaiserI0  float64
	kaiserB   float64
	kaiserSet bool
}

// NewWindow returns a Window of the given kind, ready to evaluate.
// Triangular and KaiserBessel parameters are zero-valued until set on
// the returned Window directly.
func NewWindow(kind WindowKind) *Window { return &Window{Kind: kind} }

func zeroOrderBessel(x float64) float64 {
	return 1.0 +
		math.Pow(x, 2)/4.0 +
		math.Pow(x, 4)/64.0 +
		math.Pow(x, 6)/2304.0 +
		math.Pow(x, 8)/147456.0 +
		math.Pow(x, 10)/14745600.0
}

func raisedCosine(a float64, i int, n int) (float64, error) {
	if a < epsilon || a > 1.0-epsilon {
		return 0, errs.New(errs.Domain, "frame.raisedCosine", "raised-cosine coefficient out of range")
	}
	if n < 1 {
		return 0, errs.New(errs.Domain, "frame.raisedCosine", "window width must be positive")
	}
	return a + (1.0-a)*math.Cos(2.0*math.Pi*float64(i)/float64(n)), nil
}

func bartlett(i, n int) float64 {
	if i <= 0 {
		return 1.0 + (2.0/float64(n))*float64(i)
	}
	return 1.0 - (2.0/float64(n))*float64(i)
}

func triangular(i int, p TriangularParams) float64 {
	fi := float64(i)
	if fi-p.Low <= epsilon || p.High-fi <= epsilon {
		return 0
	}
	if p.Central-fi > epsilon {
		return p.CentralValue * ((fi - p.Low) / (p.Central - p.Low))
	}
	if fi-p.Central > epsilon {
		return p.CentralValue * ((p.High - fi) / (p.High - p.Central))
	}
	return p.CentralValue
}

func blackman(i, n int) float64 {
	fi, fn := float64(i), float64(n)
	return 0.42 + 0.5*math.Cos(2.0*math.Pi*fi/fn) + 0.08*math.Cos(4.0*math.Pi*fi/fn)
}

// kaiserBessel evaluates the Kaiser-Bessel window at centred index i
// for a frame of width n, memoizing I0(Beta) on w.
func (w *Window) kaiserBessel(i, n int) (float64, error) {
	if !w.kaiserSet || w.kaiserB != w.Beta {
		w.kaiserI0 = zeroOrderBessel(w.Beta)
		w.kaiserB = w.Beta
		w.kaiserSet = true
	}
	var num float64
	if 2*intAbs(i) >= n-1 {
		num = 0
	} else {
		arg := (2.0 * float64(i)) / (float64(n) - 1.0)
		inner := 1.0 - arg*arg
		if inner < 0 {
			inner = 0
		}
		num = w.Beta * math.Sqrt(inner)
	}
	return zeroOrderBessel(num) / w.kaiserI0, nil
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// value evaluates the window at centred index i for a frame of width n.
func (w *Window) value(i, n int) (float64, error) {
	switch w.Kind {
	case Rectangular:
		return 1.0, nil
	case Bartlett:
		return bartlett(i, n), nil
	case Triangular:
		return triangular(i, w.Triangular), nil
	case Hamming:
		return raisedCosine(0.54, i, n)
	case Hanning:
		return raisedCosine(0.50, i, n)
	case Blackman:
		return blackman(i, n), nil
	case KaiserBessel:
		return w.kaiserBessel(i, n)
	default:
		return 0, errs.New(errs.Domain, "frame.Window.value", "unrecognized window kind")
	}
}

// Apply evaluates the window over a full frame of width n and returns
// the per-sample multipliers indexed 0..n-1 (sample position i
// corresponds to centred index i + 1 - n/2, the 1-based position minus
// n/2, matching the original's aux_pos = pos - samples/2).
func (w *Window) Apply(n int) ([]float64, error) {
	out := make([]float64, n)
	half := n / 2
	for i := 0; i < n; i++ {
		v, err := w.value(i+1-half, n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
