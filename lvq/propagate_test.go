package lvq

import "testing"

func TestPropagateEuclideanPicksNearestAsWinner1(t *testing.T) {
	near := &Unit{Index: 1, Weights: []float64{1, 1}}
	far := &Unit{Index: 2, Weights: []float64{10, 10}}
	net := &Network{DIn: 2, K: 2, M: 1, Units: []*Unit{far, near}}

	result, err := Propagate(net, []float64{1.1, 1.1}, Euclidean)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if result.Winner1 != near {
		t.Errorf("winner1 = unit %d, want unit %d", result.Winner1.Index, near.Index)
	}
	if result.Winner2 != far {
		t.Errorf("winner2 = unit %d, want unit %d", result.Winner2.Index, far.Index)
	}
}

func TestPropagateInnerProductPicksLargestDotAsWinner1(t *testing.T) {
	small := &Unit{Index: 1, Weights: []float64{0.1, 0.1}}
	big := &Unit{Index: 2, Weights: []float64{5, 5}}
	net := &Network{DIn: 2, K: 2, M: 1, Units: []*Unit{small, big}}

	result, err := Propagate(net, []float64{1, 1}, InnerProduct)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if result.Winner1 != big {
		t.Errorf("winner1 = unit %d, want unit %d", result.Winner1.Index, big.Index)
	}
}

func TestPropagateMSEIsSquaredEuclideanToWinner1(t *testing.T) {
	u := &Unit{Index: 1, Weights: []float64{0, 0}}
	net := &Network{DIn: 2, K: 1, M: 1, Units: []*Unit{u}}

	result, err := Propagate(net, []float64{3, 4}, Euclidean)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if !approxEqual(result.MSE, 25, 1e-9) {
		t.Errorf("MSE = %v, want 25", result.MSE)
	}
}

func TestPropagateRejectsEmptyNetwork(t *testing.T) {
	net := &Network{DIn: 2, Units: nil}
	if _, err := Propagate(net, []float64{1, 1}, Euclidean); err == nil {
		t.Fatal("expected error for empty network, got nil")
	}
}

func TestInWindowFalseWhenDistanceAtOrBelowEpsilon(t *testing.T) {
	if InWindow(0, 1, 0.5) {
		t.Error("expected false when d1 is zero")
	}
	if InWindow(1, 0, 0.5) {
		t.Error("expected false when d2 is zero")
	}
}

func TestInWindowTrueForEqualDistances(t *testing.T) {
	if !InWindow(1, 1, 0.5) {
		t.Error("expected true for equal distances at any positive window width")
	}
}

func TestInWindowFalseForWidelySeparatedDistances(t *testing.T) {
	if InWindow(1, 1000, 0.9) {
		t.Error("expected false for widely separated distances")
	}
}
