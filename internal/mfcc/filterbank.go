package mfcc

import (
	"math"

	"github.com/atmafra/poli-sub001/internal/errs"
)

// FilterBank describes a bank of M triangular mel filters evenly
// spaced DeltaMel apart in the mel domain, plus a cached table of
// their Hz-domain endpoints. The cache is rebuilt only when DeltaMel
// or M changes (an object-scoped replacement for the original's
// delta_mel/total_filters-keyed static table).
type FilterBank struct {
	DeltaMel float64
	M        int

	cachedDeltaMel float64
	cachedM        int
	endpoints      []float64 // endpoints[i] is the Hz endpoint at mel = i*DeltaMel, i = 0..M+1
}

func (fb *FilterBank) ensure() error {
	if fb.DeltaMel < epsilon {
		return errs.New(errs.Domain, "mfcc.FilterBank", "non-positive mel frequency interval")
	}
	if fb.M <= 0 {
		return errs.New(errs.Domain, "mfcc.FilterBank", "non-positive filter count")
	}
	if fb.endpoints != nil && fb.cachedDeltaMel == fb.DeltaMel && fb.cachedM == fb.M {
		return nil
	}
	endpoints := make([]float64, fb.M+2)
	for i := 1; i <= fb.M+1; i++ {
		endpoints[i] = MelToHz(float64(i) * fb.DeltaMel)
	}
	fb.endpoints = endpoints
	fb.cachedDeltaMel = fb.DeltaMel
	fb.cachedM = fb.M
	return nil
}

// Endpoints returns the (low, mid, high) Hz frequencies of filter k
// (1-based, 1 <= k <= M), rebuilding the cached endpoints table first
// if DeltaMel or M has changed since the last call.
func (fb *FilterBank) Endpoints(k int) (lo, mid, hi float64, err error) {
	if err := fb.ensure(); err != nil {
		return 0, 0, 0, err
	}
	if k < 1 || k > fb.M {
		return 0, 0, 0, errs.New(errs.Domain, "mfcc.FilterBank.Endpoints", "filter index out of range")
	}
	return fb.endpoints[k-1], fb.endpoints[k], fb.endpoints[k+1], nil
}

const epsilon = 1e-12

// Trifilter evaluates the triangular filter with the given endpoints
// and peak value at continuous frequency f: a linear ramp from (lo,0)
// up to (mid,peak) and back down to (hi,0), and 0 outside [lo,hi].
func Trifilter(f, lo, mid, hi, peak float64) float64 {
	if f-lo <= epsilon || hi-f <= epsilon {
		return 0
	}
	if mid-f > epsilon {
		return peak * ((f - lo) / (mid - lo))
	}
	if f-mid > epsilon {
		return peak * ((hi - f) / (hi - mid))
	}
	return peak
}

// floorDiv truncates x/y toward zero the way the original's C-style
// integer cast does, which coincides with math.Floor for the
// non-negative frequencies and deltas this package always sees.
func floorDiv(x, y float64) int {
	return int(math.Floor(x / y))
}
