package lvq

import "testing"

func TestInitWeightsAssignsNormalizedRepresentativePerUnit(t *testing.T) {
	net, err := NewNetwork("init-test", 2, 2, 1, UniformInit(0, 0))
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	set := TrainingSet{
		{Input: []float64{0, 0}, Class: 1},
		{Input: []float64{10, 10}, Class: 2},
	}
	if err := InitWeights(net, set); err != nil {
		t.Fatalf("InitWeights: %v", err)
	}
	// Each component has mean 5 and population standard deviation 5, so
	// {0,0} normalizes to {-1,-1} and {10,10} to {1,1}.
	for _, u := range net.Units {
		c := ClassOf(u.Index, net.M)
		want := set[c-1].Input
		if len(u.Weights) != 2 {
			t.Fatalf("unit %d weights length = %d, want 2", u.Index, len(u.Weights))
		}
		for i := range want {
			if norm := (want[i] - 5) / 5; !approxEqual(u.Weights[i], norm, 1e-9) {
				t.Errorf("unit %d weight[%d] = %v, want %v", u.Index, i, u.Weights[i], norm)
			}
		}
	}
}

func TestInitWeightsFailsOnMissingClassRepresentative(t *testing.T) {
	net, err := NewNetwork("init-missing", 2, 2, 1, UniformInit(0, 0))
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	set := TrainingSet{
		{Input: []float64{0, 0}, Class: 1},
	}
	if err := InitWeights(net, set); err == nil {
		t.Fatal("expected error when no element of class 2 exists, got nil")
	}
}

func TestInitWeightsFailsOnEmptySet(t *testing.T) {
	net, err := NewNetwork("init-empty", 2, 1, 1, UniformInit(0, 0))
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	if err := InitWeights(net, nil); err == nil {
		t.Fatal("expected error for empty training set, got nil")
	}
}
