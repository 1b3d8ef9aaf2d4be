package lvq

import "github.com/atmafra/poli-sub001/internal/cplx"

// Algorithm selects the LVQ weight-adaption rule.
type Algorithm int

const (
	// LVQ1 updates only the winning unit.
	LVQ1 Algorithm = iota
	// LVQ21 additionally updates the runner-up when exactly one of the
	// two winners is correctly classified and the pair is in-window.
	LVQ21
	// LVQ3 adds a symmetric pull-together update when both winners are
	// correctly classified.
	LVQ3
	// OLVQ1 is declared by the original design but its per-unit adaptive
	// learning rate was never specified; Adapt rejects it.
	OLVQ1
)

func (a Algorithm) String() string {
	switch a {
	case LVQ1:
		return "LVQ-1"
	case LVQ21:
		return "LVQ-2.1"
	case LVQ3:
		return "LVQ-3"
	case OLVQ1:
		return "OLVQ-1"
	default:
		return "unknown"
	}
}

// Metric is the vector metric used for unit activation and competition,
// reusing the catalogue already defined for the complex/vector kernel.
type Metric = cplx.Metric

const (
	// Euclidean favours the smallest distance.
	Euclidean = cplx.Euclidean
	// InnerProduct favours the largest dot product.
	InnerProduct = cplx.InnerProduct
)
