package wavio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/siglist"
)

// TimeMode selects how a written list's time column is rendered.
type TimeMode int

const (
	// TimeNone suppresses the time column entirely.
	TimeNone TimeMode = iota
	// TimeAbsolute writes t0 + (i-1)*DeltaT.
	TimeAbsolute
	// TimeNormalized writes the sample index i-1.
	TimeNormalized
)

// FileMode selects whether an index's lists share one file or each gets
// its own.
type FileMode int

const (
	// OneFilePerList writes each entry to its own file, named after the
	// entry's File field.
	OneFilePerList FileMode = iota
	// SingleConcatenated writes every entry into one stream.
	SingleConcatenated
)

// WriteOptions enumerates the recognized output toggles of spec §6.
type WriteOptions struct {
	WriteIndex    bool
	WriteLists    bool
	WriteTime     TimeMode
	WriteFiles    FileMode
	BreakLines    bool
	WriteRealPart bool
	WriteImagPart bool
	ConcatPath    string // used only when WriteFiles == SingleConcatenated
}

// DefaultWriteOptions returns the toolkit's default rendering: index
// header on, lists on, absolute time, one file per list, broken lines,
// both components.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		WriteIndex:    true,
		WriteLists:    true,
		WriteTime:     TimeAbsolute,
		WriteFiles:    OneFilePerList,
		BreakLines:    true,
		WriteRealPart: true,
		WriteImagPart: true,
	}
}

func fmtE(v float64) string { return fmt.Sprintf("%E", v) }

func writeIndexHeader(w io.Writer, idx *siglist.Index) error {
	var parentID uint64
	if p := idx.Parent(); p != nil {
		parentID = p.ID()
	}
	_, err := fmt.Fprintf(w,
		"Index ID       : %d\nParent Index ID: %d\nNumber of lists: %d\n\n",
		idx.ID(), parentID, idx.Count())
	return err
}

func writeEntryHeader(w io.Writer, e *siglist.Entry) error {
	var parentPos int
	var parentName string
	if e.Parent != nil {
		parentPos = e.Parent.Position
		parentName = e.Parent.Name
	}
	scale := e.List.TimeScale()
	if _, err := fmt.Fprintf(w,
		"Position       : %d\nName           : %s\nFile           : %s\nSamples        : %d\nParent Position: %d\nParent Name    : %s\nInitial Time   : %s\nTime Step      : %s\nInitial N-Time : %s\n",
		e.Position, e.Name, e.File, e.List.Len(), parentPos, parentName,
		fmtE(scale.T0), fmtE(scale.DeltaT), fmtE(scale.N0)); err != nil {
		return err
	}
	if st, ok := e.List.Statistics(); ok {
		if _, err := fmt.Fprintf(w,
			"Average        : (%s, %s)\nVariance       : (%s, %s)\nStd. Deviation : (%s, %s)\nMaximum        : (%s, %s)\nMinimum        : (%s, %s)\n",
			fmtE(real(st.Avg)), fmtE(imag(st.Avg)),
			fmtE(real(st.Var)), fmtE(imag(st.Var)),
			fmtE(real(st.Std)), fmtE(imag(st.Std)),
			fmtE(real(st.Max)), fmtE(imag(st.Max)),
			fmtE(real(st.Min)), fmtE(imag(st.Min))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeListPayload(w io.Writer, list *siglist.List, opt WriteOptions) error {
	n := list.Len()
	scale := list.TimeScale()
	sep := " "
	lineEnd := ""
	if opt.BreakLines {
		lineEnd = "\n"
	}
	for i := 1; i <= n; i++ {
		v, err := list.Get(i)
		if err != nil {
			return err
		}
		var fields []string
		switch opt.WriteTime {
		case TimeAbsolute:
			fields = append(fields, fmtE(scale.T0+float64(i-1)*scale.DeltaT))
		case TimeNormalized:
			fields = append(fields, fmtE(float64(i-1)))
		}
		if opt.WriteRealPart {
			fields = append(fields, fmtE(real(v)))
		}
		if opt.WriteImagPart {
			fields = append(fields, fmtE(imag(v)))
		}
		for j, f := range fields {
			if j > 0 {
				if _, err := io.WriteString(w, sep); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, f); err != nil {
				return err
			}
		}
		if opt.BreakLines {
			if _, err := io.WriteString(w, lineEnd); err != nil {
				return err
			}
		} else if i < n {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
	}
	if !opt.BreakLines {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteList writes one list's payload (no header) to w per opt.
func WriteList(w io.Writer, list *siglist.List, opt WriteOptions) error {
	if !opt.WriteLists {
		return nil
	}
	return writeListPayload(w, list, opt)
}

// WriteIndex writes an entire index to disk per opt: an optional index
// header, then per-entry headers and payloads, either one file per
// entry (named after Entry.File, under dir) or a single concatenated
// file at opt.ConcatPath.
func WriteIndex(dir string, idx *siglist.Index, opt WriteOptions) error {
	if opt.WriteFiles == SingleConcatenated {
		f, err := os.Create(opt.ConcatPath)
		if err != nil {
			return errs.Wrap(errs.IO, "wavio.WriteIndex", "creating concatenated file", err)
		}
		defer f.Close()
		bw := bufio.NewWriter(f)
		if err := writeIndexBody(bw, idx, opt); err != nil {
			return err
		}
		return bw.Flush()
	}

	if opt.WriteIndex {
		path := filepath.Join(dir, "index.hdr")
		f, err := os.Create(path)
		if err != nil {
			return errs.Wrap(errs.IO, "wavio.WriteIndex", "creating index header file", err)
		}
		err = writeIndexHeader(f, idx)
		f.Close()
		if err != nil {
			return errs.Wrap(errs.IO, "wavio.WriteIndex", "writing index header", err)
		}
	}

	if !opt.WriteLists {
		return nil
	}
	for _, e := range idx.Entries() {
		path := filepath.Join(dir, e.File)
		f, err := os.Create(path)
		if err != nil {
			return errs.Wrap(errs.IO, "wavio.WriteIndex", "creating entry file", err)
		}
		bw := bufio.NewWriter(f)
		if err := writeEntryHeader(bw, e); err != nil {
			f.Close()
			return errs.Wrap(errs.IO, "wavio.WriteIndex", "writing entry header", err)
		}
		if err := writeListPayload(bw, e.List, opt); err != nil {
			f.Close()
			return errs.Wrap(errs.IO, "wavio.WriteIndex", "writing list payload", err)
		}
		if err := bw.Flush(); err != nil {
			f.Close()
			return errs.Wrap(errs.IO, "wavio.WriteIndex", "flushing entry file", err)
		}
		f.Close()
	}
	return nil
}

func writeIndexBody(w io.Writer, idx *siglist.Index, opt WriteOptions) error {
	if opt.WriteIndex {
		if err := writeIndexHeader(w, idx); err != nil {
			return err
		}
	}
	if !opt.WriteLists {
		return nil
	}
	for _, e := range idx.Entries() {
		if err := writeEntryHeader(w, e); err != nil {
			return err
		}
		if err := writeListPayload(w, e.List, opt); err != nil {
			return err
		}
	}
	return nil
}
