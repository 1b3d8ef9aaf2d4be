package lvq

import "math"

// LRateFunc computes the learning rate for a given epoch.
type LRateFunc func(epoch int) float64

// ConstantRate returns an LRateFunc that always yields eta0.
func ConstantRate(eta0 float64) LRateFunc {
	return func(epoch int) float64 { return eta0 }
}

// ExponentialDecay returns an LRateFunc computing eta0 * e^(-t/tau).
func ExponentialDecay(eta0, tau float64) LRateFunc {
	return func(epoch int) float64 {
		return eta0 * math.Exp(-float64(epoch)/tau)
	}
}

// LinearDecay returns an LRateFunc computing max(0, eta0*(1 - t/maxEpochs)).
func LinearDecay(eta0 float64, maxEpochs int) LRateFunc {
	return func(epoch int) float64 {
		v := eta0 * (1 - float64(epoch)/float64(maxEpochs))
		if v < 0 {
			return 0
		}
		return v
	}
}
