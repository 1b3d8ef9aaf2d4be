package mfcc

import (
	"math"
	"testing"
)

func TestFilterBankEndpointsChain(t *testing.T) {
	fb := &FilterBank{DeltaMel: 100, M: 5}
	var prevHi float64
	for k := 1; k <= fb.M; k++ {
		lo, mid, hi, err := fb.Endpoints(k)
		if err != nil {
			t.Fatalf("Endpoints(%d): %v", k, err)
		}
		if !(lo < mid && mid < hi) {
			t.Errorf("filter %d: expected lo < mid < hi, got %v < %v < %v", k, lo, mid, hi)
		}
		if k > 1 && math.Abs(lo-prevHi) > 1e-6 {
			t.Errorf("filter %d: lo=%v does not chain from previous mid=%v", k, lo, prevHi)
		}
		prevHi = mid
	}
}

func TestFilterBankCacheRebuildsOnParamChange(t *testing.T) {
	fb := &FilterBank{DeltaMel: 100, M: 3}
	_, _, _, err := fb.Endpoints(1)
	if err != nil {
		t.Fatalf("Endpoints: %v", err)
	}
	fb.M = 5
	lo, mid, hi, err := fb.Endpoints(5)
	if err != nil {
		t.Fatalf("Endpoints after resize: %v", err)
	}
	if lo == 0 && mid == 0 && hi == 0 {
		t.Fatal("expected rebuilt endpoints for the grown filter bank")
	}
}

func TestFilterBankRejectsInvalidParams(t *testing.T) {
	fb := &FilterBank{DeltaMel: 0, M: 3}
	if _, _, _, err := fb.Endpoints(1); err == nil {
		t.Fatal("expected error for non-positive DeltaMel")
	}
	fb2 := &FilterBank{DeltaMel: 100, M: 3}
	if _, _, _, err := fb2.Endpoints(4); err == nil {
		t.Fatal("expected error for filter index beyond M")
	}
}

func TestTrifilterPartitionOfUnity(t *testing.T) {
	lo, mid, hi := 100.0, 200.0, 350.0
	if v := Trifilter(mid, lo, mid, hi, 1.0); math.Abs(v-1.0) > 1e-9 {
		t.Errorf("Trifilter(mid) = %v, want 1", v)
	}
	if v := Trifilter(lo, lo, mid, hi, 1.0); v != 0 {
		t.Errorf("Trifilter(lo) = %v, want 0", v)
	}
	if v := Trifilter(hi, lo, mid, hi, 1.0); v != 0 {
		t.Errorf("Trifilter(hi) = %v, want 0", v)
	}
	if v := Trifilter(50, lo, mid, hi, 1.0); v != 0 {
		t.Errorf("Trifilter below lo = %v, want 0", v)
	}
}
