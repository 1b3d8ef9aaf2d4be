package frame

import (
	"math"
	"testing"

	"github.com/atmafra/poli-sub001/internal/siglist"
)

func buildRealList(t *testing.T, samples []float64) *siglist.List {
	t.Helper()
	l := siglist.New(siglist.Real, siglist.TimeScale{DeltaT: 1})
	if err := l.Resize(len(samples)); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i, v := range samples {
		if err := l.Set(i+1, complex(v, 0)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	return l
}

func TestPreemphasisCircularBoundary(t *testing.T) {
	l := buildRealList(t, []float64{1, 2, 3, 4})
	if err := Preemphasis(l, 0.5); err != nil {
		t.Fatalf("Preemphasis: %v", err)
	}
	// y[0] = x[0] - 0.5*x[3] = 1 - 0.5*4 = -1
	// y[1] = x[1] - 0.5*x[0] = 2 - 0.5*1 = 1.5
	// y[2] = x[2] - 0.5*x[1] = 3 - 0.5*2 = 2
	// y[3] = x[3] - 0.5*x[2] = 4 - 0.5*3 = 2.5
	want := []float64{-1, 1.5, 2, 2.5}
	for i, w := range want {
		v, _ := l.Get(i + 1)
		if math.Abs(real(v)-w) > 1e-9 {
			t.Errorf("y[%d] = %v, want %v", i, real(v), w)
		}
	}
}

func TestPreemphasisInvalidAlphaFallsBack(t *testing.T) {
	l := buildRealList(t, []float64{1, 2, 3})
	l2 := buildRealList(t, []float64{1, 2, 3})
	if err := Preemphasis(l, 0); err != nil {
		t.Fatalf("Preemphasis: %v", err)
	}
	if err := Preemphasis(l2, DefaultAlpha); err != nil {
		t.Fatalf("Preemphasis: %v", err)
	}
	for i := 1; i <= 3; i++ {
		a, _ := l.Get(i)
		b, _ := l2.Get(i)
		if math.Abs(real(a)-real(b)) > 1e-12 {
			t.Errorf("pos %d: alpha=0 gave %v, want default-alpha result %v", i, real(a), real(b))
		}
	}
}
