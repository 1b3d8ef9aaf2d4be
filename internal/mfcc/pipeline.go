package mfcc

import (
	"io"

	"github.com/atmafra/poli-sub001/internal/cplx"
	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/fft"
	"github.com/atmafra/poli-sub001/internal/frame"
	"github.com/atmafra/poli-sub001/internal/siglist"
	"github.com/atmafra/poli-sub001/internal/wavio"
)

// Pipeline bundles every knob the MFCC front end needs: optional
// pre-emphasis, the framing/windowing options (frame.Options already
// carries the window), the mel filter bank, and the log basis used
// before the final cosine transform.
type Pipeline struct {
	Preemphasis  bool
	PreemphAlpha float64
	Frame        frame.Options
	Filters      FilterBank
	LogBasis     float64
}

func decodeSource(src io.Reader) (*siglist.List, error) {
	format, r, err := wavio.DetectFormat(src)
	if err != nil {
		return nil, err
	}
	switch format {
	case wavio.FormatWave:
		list, _, err := wavio.DecodeWave(r, siglist.Real)
		return list, err
	case wavio.FormatRaw:
		return wavio.DecodeRaw(r, siglist.Real, siglist.TimeScale{DeltaT: 1})
	default:
		return nil, errs.New(errs.UnsupportedFormat, "mfcc.decodeSource", "unrecognized input format")
	}
}

func copyInto(dst, src *siglist.List) error {
	if err := dst.Resize(src.Len()); err != nil {
		return err
	}
	for i := 1; i <= src.Len(); i++ {
		v, err := src.Get(i)
		if err != nil {
			return err
		}
		if err := dst.Set(i, v); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the full mfcc_file data flow: read -> optional
// pre-emphasis -> framing/windowing -> in-place real FFT -> power
// spectrum -> mel filter bank -> log -> in-place FCT (direct),
// returning the resulting MFCC index. The intermediate frames index is
// destroyed (with cascade) once the MFCC index has been computed from
// it; the MFCC index keeps only weak parent links to it.
func (p *Pipeline) Run(src io.Reader) (*siglist.Index, error) {
	signal, err := decodeSource(src)
	if err != nil {
		return nil, err
	}

	fileIdx := siglist.NewIndex(nil)
	pos, err := fileIdx.AddEntry("input file", "", nil, signal.Kind(), signal.TimeScale(), true)
	if err != nil {
		return nil, err
	}
	fileEntry, err := fileIdx.EntryAt(pos)
	if err != nil {
		return nil, err
	}
	if err := copyInto(fileEntry.List, signal); err != nil {
		return nil, err
	}

	if p.Preemphasis {
		if err := frame.Preemphasis(fileEntry.List, p.PreemphAlpha); err != nil {
			return nil, err
		}
	}

	frames, err := frame.Frame(fileIdx, fileEntry, p.Frame)
	if err != nil {
		return nil, err
	}

	ctx := fft.NewContext()
	sqrCall := cplx.Call{Op: cplx.OpSqr, Mode: cplx.Complex}
	for _, fe := range frames.Entries() {
		if _, err := ctx.FFT(fe.List, fft.Forward, fft.RealDomain, true); err != nil {
			return nil, err
		}
		if err := siglist.ApplyListFunction(fe.List, sqrCall); err != nil {
			return nil, err
		}
	}

	var deltaT float64
	if first := frames.Entries(); len(first) > 0 {
		deltaT = first[0].List.TimeScale().DeltaT
	}

	mfccIdx, err := ComputeIndex(frames, &p.Filters, deltaT)
	if err != nil {
		return nil, err
	}
	if err := frames.DestroyIndex(true); err != nil {
		return nil, err
	}

	logCall := cplx.Call{Op: cplx.OpRlg, Mode: cplx.Complex, Params: []float64{p.LogBasis}}
	for _, me := range mfccIdx.Entries() {
		if err := siglist.ApplyListFunction(me.List, logCall); err != nil {
			return nil, err
		}
		if _, err := ctx.FCT(me.List, fft.Forward, true); err != nil {
			return nil, err
		}
	}

	return mfccIdx, nil
}
