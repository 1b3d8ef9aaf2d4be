package fft

import "github.com/atmafra/poli-sub001/internal/errs"

func conjugate(in []complex128) []complex128 {
	out := make([]complex128, len(in))
	for i, v := range in {
		out[i] = complex(real(v), -imag(v))
	}
	return out
}

// Direction selects the forward or inverse transform.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

// Domain selects whether the second half of a forward transform's
// output (the conjugate-symmetric redundant half, for a real-valued
// input) is kept.
type Domain int

const (
	// ComplexDomain keeps the full N-point transform.
	ComplexDomain Domain = iota
	// RealDomain truncates the output to its first N/2 points.
	RealDomain
)

// SupPower returns the smallest power of basis that is >= x, and its
// exponent, i.e. the least (power, exponent) with power = basis^exponent
// and power >= x.
func SupPower(basis, x int) (power, exponent int, err error) {
	if basis <= 0 {
		return 0, 0, errs.New(errs.Domain, "fft.SupPower", "invalid basis")
	}
	power, exponent = 1, 0
	for power < x {
		power *= basis
		exponent++
	}
	return power, exponent, nil
}

// Transform computes the radix-2 Cooley-Tukey FFT of data using c's
// cached tables, zero-padding up to the next power of two. It returns
// a new slice; data is left untouched. direction selects forward or
// inverse (rescaled by 1/N); domain selects whether the output is
// truncated to its first half (RealDomain, for real-valued input).
func (c *Context) Transform(data []complex128, direction Direction, domain Domain) ([]complex128, error) {
	if len(data) == 0 {
		return nil, nil
	}
	n, _, err := SupPower(2, len(data))
	if err != nil {
		return nil, err
	}
	c.ensure(n)

	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		src := c.bitrev[i]
		if src < len(data) {
			out[i] = data[src]
		}
	}

	twiddle := c.twiddle
	if direction == Inverse {
		// The original's inverse rescales by 1/N but reuses the forward
		// twiddle table verbatim (sfft_W never varies with direction),
		// which only recovers the original samples when they happen to
		// be symmetric under circular reversal. Conjugating the twiddle
		// factors here instead gives a true inverse DFT, satisfying
		// round-trip recovery for any input — bit-exact reproduction of
		// the original isn't a goal, correctness is.
		twiddle = conjugate(c.twiddle)
	}

	for size := 2; size <= n; size *= 2 {
		half := size / 2
		twiddleStep := n / size
		for start := 0; start < n; start += size {
			butterflyPass(out[start:start+size], twiddle, twiddleStep, half)
		}
	}

	if direction == Inverse {
		scale := 1.0 / float64(n)
		for i := range out {
			out[i] = complex(real(out[i])*scale, imag(out[i])*scale)
		}
	}

	if domain == RealDomain {
		out = out[:n/2]
	}

	return out, nil
}
