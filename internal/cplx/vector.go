package cplx

import (
	"math"

	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/stats"
)

// Metric selects the distance/similarity function used by VectorMetric
// and, downstream, by the LVQ competition in package lvq.
type Metric int

const (
	// Euclidean is sqrt(sum((v1_i - v2_i)^2)).
	Euclidean Metric = iota
	// InnerProduct is sum(v1_i * v2_i).
	InnerProduct
)

func checkDim(v1, v2 []float64, op string) error {
	if len(v1) != len(v2) {
		return errs.New(errs.DimensionMismatch, op, "vectors have different lengths")
	}
	if len(v1) == 0 {
		return errs.New(errs.DimensionMismatch, op, "vectors must not be empty")
	}
	return nil
}

// VectorSum returns the elementwise sum v1+v2.
func VectorSum(v1, v2 []float64) ([]float64, error) {
	if err := checkDim(v1, v2, "cplx.VectorSum"); err != nil {
		return nil, err
	}
	out := make([]float64, len(v1))
	for i := range v1 {
		out[i] = v1[i] + v2[i]
	}
	return out, nil
}

// VectorSubt returns the elementwise difference v1-v2.
func VectorSubt(v1, v2 []float64) ([]float64, error) {
	if err := checkDim(v1, v2, "cplx.VectorSubt"); err != nil {
		return nil, err
	}
	out := make([]float64, len(v1))
	for i := range v1 {
		out[i] = v1[i] - v2[i]
	}
	return out, nil
}

// VectorMult returns the elementwise (Hadamard) product v1*v2.
func VectorMult(v1, v2 []float64) ([]float64, error) {
	if err := checkDim(v1, v2, "cplx.VectorMult"); err != nil {
		return nil, err
	}
	out := make([]float64, len(v1))
	for i := range v1 {
		out[i] = v1[i] * v2[i]
	}
	return out, nil
}

// VectorDiv returns the elementwise quotient v1/v2.
func VectorDiv(v1, v2 []float64) ([]float64, error) {
	if err := checkDim(v1, v2, "cplx.VectorDiv"); err != nil {
		return nil, err
	}
	out := make([]float64, len(v1))
	for i := range v1 {
		if math.Abs(v2[i]) < epsilon {
			return nil, errs.New(errs.Domain, "cplx.VectorDiv", "division by zero component")
		}
		out[i] = v1[i] / v2[i]
	}
	return out, nil
}

// ScalarMult scales every component of v by s.
func ScalarMult(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}

// SqrtEach takes the component-wise square root of v.
// It fails with errs.Domain if any component is negative.
func SqrtEach(v []float64) ([]float64, error) {
	out := make([]float64, len(v))
	for i, x := range v {
		if x < 0 {
			return nil, errs.New(errs.Domain, "cplx.SqrtEach", "negative component")
		}
		out[i] = math.Sqrt(x)
	}
	return out, nil
}

// Copy returns an independent copy of v.
func Copy(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// Normalize returns v scaled to unit L2 norm.
// It fails with errs.Domain if v's norm is below epsilon.
func Normalize(v []float64) ([]float64, error) {
	var acc stats.IncStats
	for _, x := range v {
		acc.Add(x, 0)
	}
	norm := math.Sqrt(acc.SumSqrX())
	if norm < epsilon {
		return nil, errs.New(errs.Domain, "cplx.Normalize", "vector norm too small to normalize")
	}
	return ScalarMult(v, 1/norm), nil
}

// NormalizePair normalizes v1 and v2 to unit L2 norm computed from one
// shared incremental-statistics pass, matching the original's ponderated
// joint-norm convention (spec §4.2).
func NormalizePair(v1, v2 []float64) ([]float64, []float64, error) {
	if err := checkDim(v1, v2, "cplx.NormalizePair"); err != nil {
		return nil, nil, err
	}
	var acc stats.IncStats
	for i := range v1 {
		acc.Add(v1[i], v2[i])
	}
	n1 := math.Sqrt(acc.SumSqrX())
	n2 := math.Sqrt(acc.SumSqrY())
	if n1 < epsilon || n2 < epsilon {
		return nil, nil, errs.New(errs.Domain, "cplx.NormalizePair", "vector norm too small to normalize")
	}
	return ScalarMult(v1, 1/n1), ScalarMult(v2, 1/n2), nil
}

// VectorMetric computes the distance (Euclidean) or similarity
// (InnerProduct) between v1 and v2, optionally ponderating both inputs
// componentwise by w before comparison. w may be nil for no ponderation.
func VectorMetric(v1, v2, w []float64, kind Metric) (float64, error) {
	if err := checkDim(v1, v2, "cplx.VectorMetric"); err != nil {
		return 0, err
	}
	if w != nil && len(w) != len(v1) {
		return 0, errs.New(errs.DimensionMismatch, "cplx.VectorMetric", "weight vector has different length")
	}

	a, b := v1, v2
	if w != nil {
		var err error
		if a, err = VectorMult(v1, w); err != nil {
			return 0, err
		}
		if b, err = VectorMult(v2, w); err != nil {
			return 0, err
		}
	}

	switch kind {
	case Euclidean:
		var acc stats.IncStats
		for i := range a {
			acc.Add(a[i], b[i])
		}
		return math.Sqrt(acc.SumSqrDiffXY()), nil
	case InnerProduct:
		var sum float64
		for i := range a {
			sum += a[i] * b[i]
		}
		return sum, nil
	default:
		return 0, errs.New(errs.Domain, "cplx.VectorMetric", "unknown metric kind")
	}
}
