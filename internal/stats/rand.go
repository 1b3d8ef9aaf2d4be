package stats

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Rand wraps math/rand with the uniform and Gaussian draws the signal
// and LVQ pipelines need. It is not safe for concurrent use (spec §5) —
// callers own one Rand per non-overlapping unit of work, exactly like
// IncStats.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded deterministically from seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the generator from seed, discarding all prior state.
func (g *Rand) Reseed(seed int64) {
	g.r = rand.New(rand.NewSource(seed))
}

// ReseedFromClock reseeds the generator from the wall clock, for callers
// that want non-reproducible draws (spec §4.2's "optional reseeding from
// wall-clock").
func (g *Rand) ReseedFromClock() {
	g.Reseed(time.Now().UnixNano())
}

// SeedFromLabel derives a reproducible 64-bit seed from an arbitrary
// label (e.g. a dataset name), so two runs tagged with the same label
// draw the same sequence without the caller juggling raw integer seeds.
// It hashes the label with BLAKE2b-256 and folds the digest's first 8
// bytes into an int64.
func SeedFromLabel(label string) int64 {
	sum := blake2b.Sum256([]byte(label))
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// UniformInt returns a pseudo-random integer in [lo, hi).
// If lo >= hi, it returns hi, matching the original's defensive fallback.
func (g *Rand) UniformInt(lo, hi int) int {
	if lo >= hi {
		return hi
	}
	return lo + g.r.Intn(hi-lo)
}

// UniformFloat returns a pseudo-random float64 in [lo, hi).
// If lo >= hi, it returns hi.
func (g *Rand) UniformFloat(lo, hi float64) float64 {
	if lo >= hi {
		return hi
	}
	return lo + g.r.Float64()*(hi-lo)
}

// Gaussian draws one sample from N(mean, stddev^2) using the polar
// Box-Muller method (rejection sampling over the unit disc).
func (g *Rand) Gaussian(mean, stddev float64) float64 {
	var u, v, s float64
	for {
		u = 2*g.r.Float64() - 1
		v = 2*g.r.Float64() - 1
		s = u*u + v*v
		if s > 0 && s < 1 {
			break
		}
	}
	mul := math.Sqrt(-2 * math.Log(s) / s)
	return mean + stddev*u*mul
}
