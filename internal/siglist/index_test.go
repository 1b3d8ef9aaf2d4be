package siglist

import "testing"

func TestAddEntryAndDestroyEntryFollowTailPolicy(t *testing.T) {
	idx := NewIndex(nil)
	if _, err := idx.AddEntry("a", "", nil, Real, TimeScale{}, true); err != nil {
		t.Fatalf("AddEntry a: %v", err)
	}
	if _, err := idx.AddEntry("b", "", nil, Real, TimeScale{}, false); err != nil {
		t.Fatalf("AddEntry b: %v", err)
	}
	if idx.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", idx.Count())
	}
	if err := idx.DestroyEntry(); err != nil {
		t.Fatalf("DestroyEntry: %v", err)
	}
	if idx.Count() != 1 {
		t.Fatalf("Count() after DestroyEntry = %d, want 1", idx.Count())
	}
	if got := idx.Entries()[0].Name; got != "a" {
		t.Errorf("remaining entry = %q, want %q", got, "a")
	}
}

func TestDestroyEntryRefusesOnEmptyIndex(t *testing.T) {
	idx := NewIndex(nil)
	if err := idx.DestroyEntry(); err == nil {
		t.Fatal("expected error destroying an entry from an empty index, got nil")
	}
}

func TestDestroyIndexSucceedsWhenEmpty(t *testing.T) {
	idx := NewIndex(nil)
	if err := idx.DestroyIndex(false); err != nil {
		t.Fatalf("DestroyIndex on empty index: %v", err)
	}
	if _, err := idx.AddEntry("x", "", nil, Real, TimeScale{}, true); err == nil {
		t.Fatal("expected AddEntry on a destroyed index to be refused")
	}
}

func TestDestroyIndexRefusesNonEmptyWithoutCascade(t *testing.T) {
	idx := NewIndex(nil)
	if _, err := idx.AddEntry("a", "", nil, Real, TimeScale{}, true); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if err := idx.DestroyIndex(false); err == nil {
		t.Fatal("expected error destroying a non-empty index without cascade, got nil")
	}
	if idx.Count() != 1 {
		t.Fatalf("Count() after refused destroy = %d, want 1 (index must be untouched)", idx.Count())
	}
}

func TestDestroyIndexCascadeReleasesEntries(t *testing.T) {
	idx := NewIndex(nil)
	if _, err := idx.AddEntry("a", "", nil, Real, TimeScale{}, true); err != nil {
		t.Fatalf("AddEntry a: %v", err)
	}
	if _, err := idx.AddEntry("b", "", nil, Real, TimeScale{}, false); err != nil {
		t.Fatalf("AddEntry b: %v", err)
	}
	if err := idx.DestroyIndex(true); err != nil {
		t.Fatalf("DestroyIndex cascade: %v", err)
	}
	if idx.Count() != 0 {
		t.Fatalf("Count() after cascading destroy = %d, want 0", idx.Count())
	}
	if idx.Current() != nil {
		t.Error("Current() after cascading destroy should be nil")
	}
}

func TestDestroyIndexIsNotIdempotent(t *testing.T) {
	idx := NewIndex(nil)
	if err := idx.DestroyIndex(false); err != nil {
		t.Fatalf("first DestroyIndex: %v", err)
	}
	if err := idx.DestroyIndex(true); err == nil {
		t.Fatal("expected error on second DestroyIndex of an already-destroyed index, got nil")
	}
}
