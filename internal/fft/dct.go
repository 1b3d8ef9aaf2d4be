package fft

import (
	"math"

	"github.com/atmafra/poli-sub001/internal/errs"
)

// dctExtend builds the 2N-point even-symmetric extension of data
// required by the DCT-II construction: x[2N-k+1] = x[k] (1-based),
// i.e. extended[2N-1-k] = data[k] in 0-based terms.
func dctExtend(data []float64) []complex128 {
	n := len(data)
	out := make([]complex128, 2*n)
	for k := 0; k < n; k++ {
		out[k] = complex(data[k], 0)
		out[2*n-1-k] = complex(data[k], 0)
	}
	return out
}

// dctAlpha returns the orthonormal DCT-II/DCT-III scale factor for
// coefficient k of an N-point transform: sqrt(1/N) for k=0,
// sqrt(2/N) otherwise.
func dctAlpha(n, k int) (float64, error) {
	if n <= 0 {
		return 0, errs.New(errs.Domain, "fft.dctAlpha", "invalid N")
	}
	if k < 0 || k > n-1 {
		return 0, errs.New(errs.Domain, "fft.dctAlpha", "sample index out of range")
	}
	if k == 0 {
		return math.Sqrt(1.0 / float64(n)), nil
	}
	return math.Sqrt(2.0 / float64(n)), nil
}

// dctCoefficient returns the scale factor that turns the even-symmetric-
// extension FFT's real part at bin k into the orthonormal DCT-II
// coefficient X_k = alpha_k * sum_n x_n*cos(pi*(2n+1)*k/(2N)): the
// extension trick produces 2*cos(pi*k/(2N)) times that sum, so alpha_k
// is divided by that factor here to cancel it back out.
func dctCoefficient(n, k int) (float64, error) {
	alpha, err := dctAlpha(n, k)
	if err != nil {
		return 0, err
	}
	return alpha / (2.0 * math.Cos((math.Pi/float64(n))*(float64(k)/2.0))), nil
}

// idctSlice computes the Type-III Discrete Cosine Transform (the exact
// orthonormal inverse of FCTSlice's Type-II) directly from its
// synthesis formula: x_n = sum_k alpha_k * X_k * cos(pi*(2n+1)*k/(2N)).
// X, the DCT-II coefficients produced by the forward transform, is an
// orthonormal-matrix image of x, so this sum (C^T applied to X) exactly
// recovers x, independent of the forward's even-symmetric-extension/FFT
// construction and its N-vs-truncated-spectrum-length bookkeeping.
func idctSlice(coeffs []float64) ([]float64, error) {
	n := len(coeffs)
	if n == 0 {
		return nil, nil
	}
	out := make([]float64, n)
	for sample := 0; sample < n; sample++ {
		var sum float64
		for k := 0; k < n; k++ {
			alpha, err := dctAlpha(n, k)
			if err != nil {
				return nil, err
			}
			angle := math.Pi * float64(2*sample+1) * float64(k) / (2.0 * float64(n))
			sum += alpha * coeffs[k] * math.Cos(angle)
		}
		out[sample] = sum
	}
	return out, nil
}

// FCTSlice computes the Type-II Discrete Cosine Transform of data:
// extend to an even-symmetric 2N-point sequence, run the forward real
// FFT, keep the real part, and scale each coefficient k by
// alpha_k / (2*cos((pi/N)*(k/2))).
func (c *Context) FCTSlice(data []float64) ([]float64, error) {
	return c.fctDirected(data, Forward)
}

// fctDirected backs the list-level FCT method: Forward runs FCTSlice's
// even-symmetric-extension/FFT construction; Inverse runs idctSlice's
// direct DCT-III synthesis, the actual inverse of that construction (the
// forward's own Transform call always runs Forward internally — an
// inverse DCT is not "rerun the forward recipe with the FFT direction
// flipped", the two constructions are unrelated passes over the data).
func (c *Context) fctDirected(data []float64, direction Direction) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, nil
	}
	if direction == Inverse {
		return idctSlice(data)
	}
	extended := dctExtend(data)
	spectrum, err := c.Transform(extended, Forward, RealDomain)
	if err != nil {
		return nil, err
	}
	// The coefficient formula is evaluated against the transform's
	// actual truncated length, not the pre-extension input length: if
	// 2*n is not itself a power of two, Transform pads past it and the
	// real-domain half is correspondingly longer, exactly mirroring the
	// original's use of the post-truncation list length as its N.
	out := make([]float64, len(spectrum))
	for k := range out {
		coeff, err := dctCoefficient(len(spectrum), k)
		if err != nil {
			return nil, err
		}
		out[k] = real(spectrum[k]) * coeff
	}
	return out, nil
}
