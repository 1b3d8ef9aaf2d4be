package lvq

import (
	"github.com/atmafra/poli-sub001/internal/cplx"
	"github.com/atmafra/poli-sub001/internal/errs"
)

// unitUpdate is a fully-computed, not-yet-applied weight update for one
// unit: applying it can never fail, so computing every unit's update
// before applying any of them lets a multi-unit Adapt either apply all
// of them or touch no storage at all.
type unitUpdate struct {
	unit    *Unit
	weights []float64
}

// apply writes u's computed weights back into its unit.
func (u unitUpdate) apply() { u.unit.Weights = u.weights }

// computeUpdate works out u's new weights after moving toward (match) or
// away from (!match) x by rate*error, where error = x - u.Weights,
// without mutating u.
func computeUpdate(u *Unit, x []float64, rate float64, match bool) (unitUpdate, error) {
	if !match {
		rate = -rate
	}
	errVec, err := cplx.VectorSubt(x, u.Weights)
	if err != nil {
		return unitUpdate{}, err
	}
	delta := cplx.ScalarMult(errVec, rate)
	newWeights, err := cplx.VectorSum(u.Weights, delta)
	if err != nil {
		return unitUpdate{}, err
	}
	return unitUpdate{unit: u, weights: newWeights}, nil
}

// updateUnit moves u's weights toward (match) or away from (!match) x
// by rate*error and writes the result back into u directly. Used only by
// LVQ-1, which never has a second unit whose update could leave this one
// half-applied.
func updateUnit(u *Unit, x []float64, rate float64, match bool) error {
	upd, err := computeUpdate(u, x, rate, match)
	if err != nil {
		return err
	}
	upd.apply()
	return nil
}

// Adapt updates the weights of result's winning units according to
// algorithm, given the element's desired class. eta is the current
// learning rate (opts.LRate evaluated at the current epoch); opts
// supplies the window width and LVQ-3 epsilon.
//
// LVQ-1 updates only winner1, with sign + if its class matches desired,
// - otherwise. LVQ-2.1 does the same, then additionally updates winner2
// (with its own correctness sign) iff exactly one of the two winners is
// correctly classified and the pair is in-window. LVQ-3 updates both
// winners with rate eta*epsilon when both are correct (pulling both
// toward x); otherwise it behaves like LVQ-2.1. OLVQ-1 is rejected.
func Adapt(net *Network, x []float64, desired int, result Result, eta float64, opts Options) error {
	winner1, winner2 := result.Winner1, result.Winner2
	if winner1 == nil {
		return errs.New(errs.NotInitialized, "lvq.Adapt", "no winning unit to adapt")
	}

	right1 := ClassOf(winner1.Index, opts.M) == desired
	var right2 bool
	if winner2 != nil {
		right2 = ClassOf(winner2.Index, opts.M) == desired
	}

	exactlyOneRight := winner2 != nil && right1 != right2

	switch opts.Algorithm {
	case LVQ1:
		return updateUnit(winner1, x, eta, right1)

	case LVQ21:
		upd1, err := computeUpdate(winner1, x, eta, right1)
		if err != nil {
			return err
		}
		if exactlyOneRight && InWindow(result.D1, result.D2, opts.W) {
			upd2, err := computeUpdate(winner2, x, eta, right2)
			if err != nil {
				return err
			}
			upd1.apply()
			upd2.apply()
			return nil
		}
		upd1.apply()
		return nil

	case LVQ3:
		if right1 && right2 {
			upd1, err := computeUpdate(winner1, x, eta*opts.Epsilon, true)
			if err != nil {
				return err
			}
			upd2, err := computeUpdate(winner2, x, eta*opts.Epsilon, true)
			if err != nil {
				return err
			}
			upd1.apply()
			upd2.apply()
			return nil
		}
		upd1, err := computeUpdate(winner1, x, eta, right1)
		if err != nil {
			return err
		}
		if exactlyOneRight && InWindow(result.D1, result.D2, opts.W) {
			upd2, err := computeUpdate(winner2, x, eta, right2)
			if err != nil {
				return err
			}
			upd1.apply()
			upd2.apply()
			return nil
		}
		upd1.apply()
		return nil

	case OLVQ1:
		return errs.New(errs.UnknownAlgorithm, "lvq.Adapt", "OLVQ-1 adaption is not implemented")

	default:
		return errs.New(errs.UnknownAlgorithm, "lvq.Adapt", "unrecognized LVQ algorithm")
	}
}
