package wavio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atmafra/poli-sub001/internal/siglist"
)

func buildTestIndex(t *testing.T) *siglist.Index {
	t.Helper()
	idx := siglist.NewIndex(nil)
	scale := siglist.TimeScale{T0: 0, DeltaT: 0.5, N0: 0}
	pos, err := idx.AddEntry("frame0", "frame0.dat", nil, siglist.Real, scale, true)
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	e, err := idx.EntryAt(pos)
	if err != nil {
		t.Fatalf("EntryAt: %v", err)
	}
	if err := e.List.Resize(3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i, v := range []float64{1, 2, 3} {
		if err := e.List.Set(i+1, complex(v, 0)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	return idx
}

func TestWriteIndexOneFilePerList(t *testing.T) {
	idx := buildTestIndex(t)
	dir := t.TempDir()
	opt := DefaultWriteOptions()
	if err := WriteIndex(dir, idx, opt); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}

	hdrPath := filepath.Join(dir, "index.hdr")
	hdr, err := os.ReadFile(hdrPath)
	if err != nil {
		t.Fatalf("reading index header: %v", err)
	}
	if !strings.Contains(string(hdr), "Number of lists: 1") {
		t.Errorf("index header missing list count: %s", hdr)
	}

	entryPath := filepath.Join(dir, "frame0.dat")
	body, err := os.ReadFile(entryPath)
	if err != nil {
		t.Fatalf("reading entry file: %v", err)
	}
	if !strings.Contains(string(body), "Name           : frame0") {
		t.Errorf("entry file missing name header: %s", body)
	}
	lines := strings.Count(string(body), "\n")
	if lines == 0 {
		t.Error("expected at least one newline in broken-line output")
	}
}

func TestWriteIndexSingleConcatenated(t *testing.T) {
	idx := buildTestIndex(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "all.dat")
	opt := DefaultWriteOptions()
	opt.WriteFiles = SingleConcatenated
	opt.ConcatPath = path
	if err := WriteIndex(dir, idx, opt); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading concatenated file: %v", err)
	}
	if !strings.Contains(string(body), "Index ID") || !strings.Contains(string(body), "frame0") {
		t.Errorf("concatenated file missing expected sections: %s", body)
	}
}

func TestWriteIndexSuppressedTime(t *testing.T) {
	idx := buildTestIndex(t)
	dir := t.TempDir()
	opt := DefaultWriteOptions()
	opt.WriteTime = TimeNone
	opt.WriteIndex = false
	if err := WriteIndex(dir, idx, opt); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.hdr")); !os.IsNotExist(err) {
		t.Error("index header should not be written when WriteIndex is false")
	}
	body, err := os.ReadFile(filepath.Join(dir, "frame0.dat"))
	if err != nil {
		t.Fatalf("reading entry file: %v", err)
	}
	if !strings.Contains(string(body), "\n1.000000E+00 0.000000E+00\n") {
		t.Errorf("first sample line should carry no time column: %s", body)
	}
}
