package lvq

import (
	"github.com/atmafra/poli-sub001/internal/cplx"
	"github.com/atmafra/poli-sub001/internal/errs"
)

// windowEpsilon is the minimum distance below which a winner is treated
// as coincident with the input, short-circuiting the window test.
const windowEpsilon = 1e-12

// Result is the outcome of propagating one input vector through the
// output layer's competition.
type Result struct {
	Winner1 *Unit
	Winner2 *Unit
	D1      float64 // winner1's activation (distance or similarity)
	D2      float64 // winner2's activation; zero if Winner2 is nil
	MSE     float64 // squared Euclidean distance between x and winner1's weights
}

// betterThan reports whether activation a ranks strictly ahead of b
// under metric's ordering (smaller wins for Euclidean, larger for
// InnerProduct).
func betterThan(a, b float64, metric Metric) bool {
	if metric == Euclidean {
		return a < b
	}
	return a > b
}

// Propagate activates every output unit against x under metric and
// returns the two best-ranked units and the squared Euclidean distance
// between x and the winner's weights, per the competition rule in use.
func Propagate(net *Network, x []float64, metric Metric) (Result, error) {
	if len(net.Units) == 0 {
		return Result{}, errs.New(errs.NotInitialized, "lvq.Propagate", "network has no output units")
	}

	var winner1, winner2 *Unit
	var d1, d2 float64

	for _, u := range net.Units {
		d, err := cplx.VectorMetric(x, u.Weights, nil, metric)
		if err != nil {
			return Result{}, err
		}

		switch {
		case winner1 == nil || betterThan(d, d1, metric):
			winner2, d2 = winner1, d1
			winner1, d1 = u, d
		case winner2 == nil || betterThan(d, d2, metric):
			winner2, d2 = u, d
		}
	}

	mseVec, err := cplx.VectorSubt(x, winner1.Weights)
	if err != nil {
		return Result{}, err
	}
	var mse float64
	for _, e := range mseVec {
		mse += e * e
	}

	return Result{Winner1: winner1, Winner2: winner2, D1: d1, D2: d2, MSE: mse}, nil
}

// InWindow reports whether a pair of winners at distances d1, d2 from
// the input falls inside the relative window of width w: trivially
// false if either distance is at or below windowEpsilon (degenerate,
// coincident winner), true iff min(d1/d2, d2/d1) > (1-w)/(1+w).
func InWindow(d1, d2, w float64) bool {
	if d1 <= windowEpsilon || d2 <= windowEpsilon {
		return false
	}
	r1, r2 := d1/d2, d2/d1
	ratio := r1
	if r2 < ratio {
		ratio = r2
	}
	return ratio > (1-w)/(1+w)
}
