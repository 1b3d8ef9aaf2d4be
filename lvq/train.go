package lvq

import "github.com/atmafra/poli-sub001/internal/errs"

// Options bundles the parameters needed by one training sweep: the
// algorithm and its window/epsilon parameters, the learning-rate
// function, the activation metric, the network's class geometry, and
// the epoch budget TrainSet refuses to run past.
type Options struct {
	Algorithm Algorithm
	LRate     LRateFunc
	Metric    Metric
	K         int
	M         int
	W         float64
	Epsilon   float64
	MaxEpochs int
}

// TransitionMap counts, for every (desired class, winner class) pair,
// how many elements of a sweep produced that transition.
type TransitionMap map[int]map[int]int

func newTransitionMap() TransitionMap { return make(TransitionMap) }

func (tm TransitionMap) record(desired, winner int) {
	row, ok := tm[desired]
	if !ok {
		row = make(map[int]int)
		tm[desired] = row
	}
	row[winner]++
}

// SweepResult summarizes one pass of TrainSet over a training set.
type SweepResult struct {
	ErrorRate   float64
	MSE         float64
	Transitions TransitionMap
}

// TrainSet runs one training epoch over set in insertion order: for
// each element, it propagates, adapts the winning unit(s) per
// opts.Algorithm using the learning rate opts.LRate(epoch), and
// accumulates the misclassification rate, total MSE and a
// desired-class/winner-class transition histogram. It refuses to run
// once epoch has reached opts.MaxEpochs, the sweep's epoch budget.
func TrainSet(net *Network, set TrainingSet, opts Options, epoch int) (*SweepResult, error) {
	if len(set) == 0 {
		return nil, errs.New(errs.NotInitialized, "lvq.TrainSet", "empty training set")
	}
	if opts.LRate == nil {
		return nil, errs.New(errs.NotInitialized, "lvq.TrainSet", "no learning-rate function set")
	}
	if opts.MaxEpochs <= 0 {
		return nil, errs.New(errs.NotInitialized, "lvq.TrainSet", "no max-epoch budget set")
	}
	if epoch >= opts.MaxEpochs {
		return nil, errs.New(errs.Domain, "lvq.TrainSet", "epoch has reached the max-epoch budget")
	}

	eta := opts.LRate(epoch)
	transitions := newTransitionMap()
	var mistakes int
	var totalMSE float64

	for _, e := range set {
		result, err := Propagate(net, e.Input, opts.Metric)
		if err != nil {
			return nil, err
		}

		winnerClass := ClassOf(result.Winner1.Index, opts.M)
		transitions.record(e.Class, winnerClass)
		if winnerClass != e.Class {
			mistakes++
		}
		totalMSE += result.MSE

		if err := Adapt(net, e.Input, e.Class, result, eta, opts); err != nil {
			return nil, err
		}
	}

	return &SweepResult{
		ErrorRate:   float64(mistakes) / float64(len(set)),
		MSE:         totalMSE,
		Transitions: transitions,
	}, nil
}
