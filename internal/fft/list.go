package fft

import (
	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/siglist"
)

func listToComplex(list *siglist.List) []complex128 {
	if list.Kind() == siglist.Complex {
		return append([]complex128(nil), list.ComplexSamples()...)
	}
	real := list.RealSamples()
	out := make([]complex128, len(real))
	for i, x := range real {
		out[i] = complex(x, 0)
	}
	return out
}

// FFT runs Transform over list's samples and returns the result as a
// new Complex-kind list (or, with inPlace set, overwrites list itself).
// In-place calculation is rejected for a Real-kind list, since it has
// no storage for the imaginary half the transform produces — matching
// the original's own in-place/Real rejection.
func (c *Context) FFT(list *siglist.List, direction Direction, domain Domain, inPlace bool) (*siglist.List, error) {
	if inPlace && list.Kind() == siglist.Real {
		return nil, errs.New(errs.Mode, "fft.FFT", "in-place FFT requires a Complex list")
	}

	data := listToComplex(list)
	out, err := c.Transform(data, direction, domain)
	if err != nil {
		return nil, err
	}

	scale := list.TimeScale()
	if direction == Forward && len(data) > 0 && scale.DeltaT != 0 {
		n, _, err := SupPower(2, len(data))
		if err != nil {
			return nil, err
		}
		scale.DeltaT = 1.0 / (scale.DeltaT * float64(n))
	}

	dst := list
	if !inPlace {
		dst = siglist.New(siglist.Complex, scale)
	} else {
		dst.SetTimeScale(scale)
	}
	if err := dst.Resize(len(out)); err != nil {
		return nil, err
	}
	for i, v := range out {
		if err := dst.Set(i+1, v); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// FCT runs the Type-II DCT (Forward) or its exact Type-III inverse
// (Inverse) over list's (real or real-part-of-complex) samples:
// fctDirected dispatches to FCTSlice's even-symmetric-extension/FFT
// construction or to idctSlice's direct synthesis accordingly, so
// FCT(FCT(x, Forward), Inverse) recovers x. With inPlace set, list
// (which must be Complex-kind) is overwritten with the coefficients in
// its real part and a zeroed imaginary part, matching the original's
// own "future in-place FCT" comment on its Complex-kind MFCC lists;
// otherwise a new Real-kind list is returned and list is untouched.
func (c *Context) FCT(list *siglist.List, direction Direction, inPlace bool) (*siglist.List, error) {
	if inPlace && list.Kind() != siglist.Complex {
		return nil, errs.New(errs.Mode, "fft.FCT", "in-place FCT requires a Complex list")
	}

	data := make([]float64, list.Len())
	for i := range data {
		v, err := list.Get(i + 1)
		if err != nil {
			return nil, err
		}
		data[i] = real(v)
	}

	out, err := c.fctDirected(data, direction)
	if err != nil {
		return nil, err
	}

	if inPlace {
		if err := list.Resize(len(out)); err != nil {
			return nil, err
		}
		for i, v := range out {
			if err := list.Set(i+1, complex(v, 0)); err != nil {
				return nil, err
			}
		}
		return list, nil
	}

	dst := siglist.New(siglist.Real, list.TimeScale())
	if err := dst.Resize(len(out)); err != nil {
		return nil, err
	}
	for i, v := range out {
		if err := dst.Set(i+1, complex(v, 0)); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
