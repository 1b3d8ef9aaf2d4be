package lvq

import (
	"github.com/atmafra/poli-sub001/internal/cplx"
	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/stats"
)

// TrainingElement pairs an input vector with its desired class (1-based).
type TrainingElement struct {
	Input []float64
	Class int
}

// TrainingSet is an ordered collection of training elements.
type TrainingSet []TrainingElement

func (set TrainingSet) componentStats(dim int) (mean, std []float64) {
	mean = make([]float64, dim)
	std = make([]float64, dim)
	for d := 0; d < dim; d++ {
		var acc stats.IncStats
		for _, e := range set {
			acc.Add(e.Input[d], 0)
		}
		mean[d] = acc.AvgX()
		std[d] = acc.StdX()
	}
	return mean, std
}

// InitWeights installs each output unit's weights from a representative
// training-set element of the unit's class: for each unit u, the first
// element of set whose Class matches class(u) is taken, normalized by
// subtracting the set's per-component mean and dividing by its
// per-component standard deviation, and installed as u's weights.
//
// Every unit of the same class is seeded from the same representative
// (the search restarts from the head of set for each unit); subsequent
// training epochs are what break the symmetry between sibling units.
//
// Fails with errs.Exhausted if some class has no representative in set.
func InitWeights(net *Network, set TrainingSet) error {
	if len(set) == 0 {
		return errs.New(errs.NotInitialized, "lvq.InitWeights", "empty training set")
	}

	mean, std := set.componentStats(net.DIn)

	for _, u := range net.Units {
		class := ClassOf(u.Index, net.M)

		var found *TrainingElement
		for i := range set {
			if set[i].Class == class {
				found = &set[i]
				break
			}
		}
		if found == nil {
			return errs.New(errs.Exhausted, "lvq.InitWeights", "no training element found for a class representative")
		}

		centered, err := cplx.VectorSubt(found.Input, mean)
		if err != nil {
			return err
		}
		normalized, err := cplx.VectorDiv(centered, std)
		if err != nil {
			return err
		}
		u.Weights = normalized
	}

	return nil
}
