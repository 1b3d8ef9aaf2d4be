// Package deriv estimates the time derivative of a list's samples by
// fitting a linear regression across at most three neighbouring frames
// (previous, current, next) and writing the slope into the second half
// of the current list.
package deriv

import (
	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/siglist"
	"github.com/atmafra/poli-sub001/internal/stats"
)

// Estimate returns the derivative of the current sample, given the
// current, previous and next values, by the slope of a linear
// regression over the at-most-3 points (0,prev), (1,cur), (2,next).
//
// If neither a previous nor a next value is available, the derivative
// is 0. A missing neighbour on one side only is dropped from the fit,
// not substituted with zero.
func Estimate(cur, prev, next float64, hasPrev, hasNext bool) float64 {
	if !hasPrev && !hasNext {
		return 0
	}

	var s stats.IncStats
	if hasPrev {
		s.Add(0, prev)
	}
	s.Add(1, cur)
	if hasNext {
		s.Add(2, next)
	}

	_, b := s.LinearRegression()
	return b
}

// Derivative sets the second-half elements of cur to the derivatives of
// its first-half elements, using the corresponding samples of prev and
// next (either may be nil, meaning no neighbour on that side). cur must
// have an even number of samples.
func Derivative(prev, cur, next *siglist.List) error {
	n := cur.Len()
	if n%2 != 0 {
		return errs.New(errs.Domain, "deriv.Derivative", "list must have an even number of elements")
	}

	half := n / 2
	for i := 1; i <= half; i++ {
		curV, err := cur.Get(i)
		if err != nil {
			return err
		}

		var prevV, nextV float64
		hasPrev, hasNext := prev != nil, next != nil
		if hasPrev {
			v, err := prev.Get(i)
			if err != nil {
				return err
			}
			prevV = real(v)
		}
		if hasNext {
			v, err := next.Get(i)
			if err != nil {
				return err
			}
			nextV = real(v)
		}

		d := Estimate(real(curV), prevV, nextV, hasPrev, hasNext)
		if err := cur.Set(half+i, complex(d, 0)); err != nil {
			return err
		}
	}

	return nil
}

// IndexDerivative calculates the derivatives for every list in idx,
// using each entry's traversal-order predecessor and successor as its
// previous and next neighbours.
func IndexDerivative(idx *siglist.Index) error {
	entries := idx.Entries()
	for i, e := range entries {
		var prev, next *siglist.List
		if i > 0 {
			prev = entries[i-1].List
		}
		if i < len(entries)-1 {
			next = entries[i+1].List
		}
		if err := Derivative(prev, e.List, next); err != nil {
			return err
		}
	}
	return nil
}
