package frame

import (
	"testing"

	"github.com/atmafra/poli-sub001/internal/siglist"
)

func buildSourceIndex(t *testing.T, samples []float64) (*siglist.Index, *siglist.Entry) {
	t.Helper()
	idx := siglist.NewIndex(nil)
	pos, err := idx.AddEntry("source", "source.dat", nil, siglist.Real, siglist.TimeScale{DeltaT: 1}, true)
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	e, err := idx.EntryAt(pos)
	if err != nil {
		t.Fatalf("EntryAt: %v", err)
	}
	if err := e.List.Resize(len(samples)); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i, v := range samples {
		if err := e.List.Set(i+1, complex(v, 0)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	return idx, e
}

func TestFrameCountAndCoverage(t *testing.T) {
	src, entry := buildSourceIndex(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	opt := Options{
		Width:      4,
		Overlap:    2,
		Window:     NewWindow(Rectangular),
		FrameKind:  siglist.Real,
		WindowKind: siglist.Real,
	}
	out, err := Frame(src, entry, opt)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	// step = 4-2 = 2; frames = ceil(10/2) = 5
	if out.Count() != 5 {
		t.Fatalf("Count = %d, want 5", out.Count())
	}
	for _, e := range out.Entries() {
		if e.List.Len() != opt.Width {
			t.Errorf("frame %s has %d samples, want %d", e.Name, e.List.Len(), opt.Width)
		}
	}
}

func TestFrameParentLinkage(t *testing.T) {
	src, entry := buildSourceIndex(t, []float64{1, 2, 3, 4})
	opt := Options{
		Width:      4,
		Overlap:    0,
		Window:     NewWindow(Rectangular),
		FrameKind:  siglist.Real,
		WindowKind: siglist.Real,
	}
	out, err := Frame(src, entry, opt)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if out.Parent() != src {
		t.Error("output index parent does not reference the source index")
	}
	first := out.Entries()[0]
	if first.Parent != entry {
		t.Error("frame entry does not link back to the source entry")
	}
}

func TestFrameCircularWrap(t *testing.T) {
	src, entry := buildSourceIndex(t, []float64{1, 2, 3, 4, 5})
	opt := Options{
		Width:      4,
		Overlap:    0,
		Window:     NewWindow(Rectangular),
		FrameKind:  siglist.Real,
		WindowKind: siglist.Real,
	}
	out, err := Frame(src, entry, opt)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	// step = 4; frames = ceil(5/4) = 2. Frame 1 reads positions 5,6,7,8,
	// wrapping 6,7,8 back to 1,2,3.
	if out.Count() != 2 {
		t.Fatalf("Count = %d, want 2", out.Count())
	}
	second := out.Entries()[1]
	want := []float64{5, 1, 2, 3}
	for i, w := range want {
		v, err := second.List.Get(i + 1)
		if err != nil {
			t.Fatalf("Get(%d): %v", i+1, err)
		}
		if real(v) != w {
			t.Errorf("wrapped frame sample %d = %v, want %v", i, real(v), w)
		}
	}
}

func TestFrameRejectsWidthLargerThanSource(t *testing.T) {
	src, entry := buildSourceIndex(t, []float64{1, 2, 3})
	opt := Options{Width: 10, Overlap: 0, Window: NewWindow(Rectangular), FrameKind: siglist.Real, WindowKind: siglist.Real}
	if _, err := Frame(src, entry, opt); err == nil {
		t.Fatal("expected error when frame width exceeds source length")
	}
}

func TestFramePurgesZeroPower(t *testing.T) {
	src, entry := buildSourceIndex(t, []float64{0, 0, 0, 0, 1, 2, 3, 4})
	opt := Options{
		Width:          4,
		Overlap:        0,
		Window:         NewWindow(Rectangular),
		FrameKind:      siglist.Real,
		WindowKind:     siglist.Real,
		PurgeZeroPower: true,
	}
	out, err := Frame(src, entry, opt)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if out.Count() != 1 {
		t.Fatalf("Count = %d, want 1 (the all-zero frame should be purged)", out.Count())
	}
}
