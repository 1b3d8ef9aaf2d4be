// Package stats implements incremental paired statistics and the
// seedable random generators the rest of the toolkit draws its noise
// from. IncStats is a value type: callers own their accumulator instead
// of sharing one process-wide global, per the redesign in spec §9. The
// usage contract is strictly "Clear -> Add* -> read -> Clear"; nothing
// here is safe for concurrent use (spec §5).
package stats

import "math"

// IncStats accumulates paired observations (x, y) one at a time and
// answers running sum/mean/variance/min/max/regression/correlation
// queries, mirroring the original's single-pass accumulator.
type IncStats struct {
	samples int64

	sumX, sumY       float64
	avgX, avgY       float64
	sqrDiffX         float64
	sqrDiffY         float64
	sumSqrX, sumSqrY float64
	sumSqrDiffXY     float64
	sumXY            float64
	maxX, minX       float64
	maxY, minY       float64
}

// Clear resets the accumulator to its zero state.
func (s *IncStats) Clear() { *s = IncStats{} }

// Add folds in one more paired observation.
func (s *IncStats) Add(x, y float64) {
	n := float64(s.samples)

	avgXOld, avgYOld := s.avgX, s.avgY
	s.avgX = (n*s.avgX + x) / (n + 1)
	s.avgY = (n*s.avgY + y) / (n + 1)

	s.sumX += x
	s.sumY += y
	s.sumSqrX += x * x
	s.sumSqrY += y * y
	s.sumXY += x * y
	s.sumSqrDiffXY += (x - y) * (x - y)

	if n > 0 {
		s.sqrDiffX += n/((n+1)*(n+1))*(avgXOld-x)*(avgXOld-x) + (s.avgX-x)*(s.avgX-x)
		s.sqrDiffY += n/((n+1)*(n+1))*(avgYOld-y)*(avgYOld-y) + (s.avgY-y)*(s.avgY-y)
	} else {
		s.sqrDiffX += (s.avgX - x) * (s.avgX - x)
		s.sqrDiffY += (s.avgY - y) * (s.avgY - y)
	}

	if s.samples == 0 {
		s.minX, s.maxX = x, x
		s.minY, s.maxY = y, y
	} else {
		if x < s.minX {
			s.minX = x
		}
		if x > s.maxX {
			s.maxX = x
		}
		if y < s.minY {
			s.minY = y
		}
		if y > s.maxY {
			s.maxY = y
		}
	}

	s.samples++
}

// Samples returns the number of observations folded in so far.
func (s *IncStats) Samples() int64 { return s.samples }

// AvgX returns the running mean of the x observations.
func (s *IncStats) AvgX() float64 { return s.avgX }

// AvgY returns the running mean of the y observations.
func (s *IncStats) AvgY() float64 { return s.avgY }

// VarX returns the population variance of the x observations.
func (s *IncStats) VarX() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sqrDiffX / float64(s.samples)
}

// VarY returns the population variance of the y observations.
func (s *IncStats) VarY() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sqrDiffY / float64(s.samples)
}

// StdX returns the population standard deviation of the x observations.
func (s *IncStats) StdX() float64 { return math.Sqrt(s.VarX()) }

// StdY returns the population standard deviation of the y observations.
func (s *IncStats) StdY() float64 { return math.Sqrt(s.VarY()) }

// MaxX returns the largest x observation seen.
func (s *IncStats) MaxX() float64 { return s.maxX }

// MinX returns the smallest x observation seen.
func (s *IncStats) MinX() float64 { return s.minX }

// MaxY returns the largest y observation seen.
func (s *IncStats) MaxY() float64 { return s.maxY }

// MinY returns the smallest y observation seen.
func (s *IncStats) MinY() float64 { return s.minY }

// SumX returns the running sum of the x observations.
func (s *IncStats) SumX() float64 { return s.sumX }

// SumY returns the running sum of the y observations.
func (s *IncStats) SumY() float64 { return s.sumY }

// SumSqrX returns the running sum of squared x observations.
func (s *IncStats) SumSqrX() float64 { return s.sumSqrX }

// SumSqrY returns the running sum of squared y observations.
func (s *IncStats) SumSqrY() float64 { return s.sumSqrY }

// SumXY returns the running sum of x*y products.
func (s *IncStats) SumXY() float64 { return s.sumXY }

// SumSqrDiffXY returns the running sum of squared (x-y) differences.
func (s *IncStats) SumSqrDiffXY() float64 { return s.sumSqrDiffXY }

// LinearRegression returns the (a, b) coefficients of y = a + b*x fit by
// least squares over the observations seen so far.
func (s *IncStats) LinearRegression() (a, b float64) {
	n := float64(s.samples)
	denom := n*s.sumSqrX - s.sumX*s.sumX
	a = (s.sumY*s.sumSqrX - s.sumX*s.sumXY) / denom
	b = (s.sumX*s.sumY - n*s.sumXY) / (s.sumX*s.sumX - n*s.sumSqrX)
	return a, b
}

// LinearCorrelation returns Pearson's correlation coefficient between
// the x and y observations seen so far.
func (s *IncStats) LinearCorrelation() float64 {
	n := float64(s.samples)
	num := n*s.sumXY - s.sumX*s.sumY
	den := math.Sqrt((n*s.sumSqrX - s.sumX*s.sumX) * (n*s.sumSqrY - s.sumY*s.sumY))
	return num / den
}
