// Package frame implements pre-emphasis filtering, signal framing, and
// the windowing functions applied to each frame.
package frame

import "github.com/atmafra/poli-sub001/internal/siglist"

// DefaultAlpha is the pre-emphasis coefficient used when the caller
// supplies one out of (0,1).
const DefaultAlpha = 0.95

func preemphasize(alpha, xCurrent, xPrevious float64) float64 {
	a := alpha
	if a <= epsilon || 1.0-a <= epsilon {
		a = DefaultAlpha
	}
	return xCurrent - a*xPrevious
}

const epsilon = 1e-12

// Preemphasis applies the first-order pre-emphasis filter
// y[n] = x[n] - alpha*x[n-1] to every sample of list, in place. The
// filter treats the list as circular: x[N-1] (the last sample) serves
// as the "previous" sample for x[0]. Real and imaginary parts (for a
// Complex list) are filtered independently with the same alpha. An
// alpha outside (0,1) silently falls back to DefaultAlpha.
func Preemphasis(list *siglist.List, alpha float64) error {
	n := list.Len()
	if n == 0 {
		return nil
	}
	last, err := list.Get(n)
	if err != nil {
		return err
	}
	lastRe, lastIm := real(last), imag(last)

	for pos := 1; pos <= n; pos++ {
		cur, err := list.Get(pos)
		if err != nil {
			return err
		}
		savedRe, savedIm := real(cur), imag(cur)

		newRe := preemphasize(alpha, real(cur), lastRe)
		newIm := imag(cur)
		if list.Kind() == siglist.Complex {
			newIm = preemphasize(alpha, imag(cur), lastIm)
		}
		if err := list.Set(pos, complex(newRe, newIm)); err != nil {
			return err
		}

		lastRe, lastIm = savedRe, savedIm
	}
	return nil
}
