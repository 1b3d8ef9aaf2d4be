// Package lvq implements a two-layer Learning Vector Quantization
// network: a pass-through input layer and a competitive output layer of
// K classes by M codebook units per class, trained by LVQ-1, LVQ-2.1 or
// LVQ-3.
package lvq

import (
	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/stats"
)

// Unit is one output-layer codebook vector. Index is its 1-based
// position within the output layer, fixing its class via ClassOf.
type Unit struct {
	Index   int
	Weights []float64
}

// WeightInit draws an initial weight vector of the given dimension from
// rng. It is the structural initializer used at network construction,
// independent of the training-set-driven InitWeights pass.
type WeightInit func(rng *stats.Rand, dim int) []float64

// UniformInit returns a WeightInit drawing each component independently
// and uniformly from [lo, hi].
func UniformInit(lo, hi float64) WeightInit {
	return func(rng *stats.Rand, dim int) []float64 {
		w := make([]float64, dim)
		for i := range w {
			w[i] = rng.UniformFloat(lo, hi)
		}
		return w
	}
}

// GaussianInit returns a WeightInit drawing each component independently
// from a Normal(mean, stddev) distribution.
func GaussianInit(mean, stddev float64) WeightInit {
	return func(rng *stats.Rand, dim int) []float64 {
		w := make([]float64, dim)
		for i := range w {
			w[i] = rng.Gaussian(mean, stddev)
		}
		return w
	}
}

// Network is the LVQ architecture: dIn input units (pass-through,
// never materialized as their own type since they only relay x), and
// K*M output units.
type Network struct {
	Name string
	DIn  int
	K    int
	M    int
	Units []*Unit
	rng  *stats.Rand
}

// NewNetwork builds a network with dIn-dimensional inputs, K classes and
// m codebook units per class, seeding each output unit's weights from
// initClass. The network's random generator is seeded deterministically
// from name, so two networks built with the same name and initClass
// reproduce the same initial weights.
func NewNetwork(name string, dIn, k, m int, initClass WeightInit) (*Network, error) {
	if dIn <= 0 {
		return nil, errs.New(errs.Domain, "lvq.NewNetwork", "input dimension must be positive")
	}
	if k <= 0 {
		return nil, errs.New(errs.Domain, "lvq.NewNetwork", "number of classes must be positive")
	}
	if m <= 0 {
		return nil, errs.New(errs.Domain, "lvq.NewNetwork", "units per class must be positive")
	}
	if initClass == nil {
		return nil, errs.New(errs.NotInitialized, "lvq.NewNetwork", "no weight initializer passed")
	}

	rng := stats.NewRand(stats.SeedFromLabel(name))
	units := make([]*Unit, k*m)
	for i := range units {
		units[i] = &Unit{Index: i + 1, Weights: initClass(rng, dIn)}
	}

	return &Network{Name: name, DIn: dIn, K: k, M: m, Units: units, rng: rng}, nil
}

// ClassOf returns the 1-based class index of output unit at 1-based
// index unit, given m units per class: class(u) = floor((u-1)/m) + 1.
func ClassOf(unit, m int) int {
	return (unit-1)/m + 1
}

// Unit returns the output unit at 1-based index.
func (n *Network) Unit(index int) (*Unit, error) {
	if index < 1 || index > len(n.Units) {
		return nil, errs.New(errs.Domain, "lvq.Network.Unit", "unit index out of range")
	}
	return n.Units[index-1], nil
}
