package frame

import (
	"fmt"
	"math"

	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/siglist"
)

// Options controls a Frame run: frame width, sample overlap, the
// windowing function applied to every frame, the data kinds used for
// the emitted frames and for the windowing arithmetic, and whether
// zero-power frames are purged from the output index afterward.
type Options struct {
	Width          int
	Overlap        int
	Window         *Window
	FrameKind      siglist.Kind
	WindowKind     siglist.Kind
	PurgeZeroPower bool
}

func (o Options) samplesBetweenFrames() int { return o.Width - o.Overlap }

// Frame windows source into frames of width o.Width, sliding
// o.samplesBetweenFrames() samples between consecutive frames, and
// appends each frame as a new entry of a freshly created output index
// whose parent is parentIdx. Reads past the end of source wrap
// circularly (read_pos - N), per the original's single-wrap assumption
// (spec §9): frame width must not exceed the source length, which this
// enforces up front, so no read position passes more than one full wrap.
func Frame(parentIdx *siglist.Index, sourceEntry *siglist.Entry, opt Options) (*siglist.Index, error) {
	source := sourceEntry.List
	n := source.Len()
	if opt.Width > n {
		return nil, errs.New(errs.Domain, "frame.Frame", "frame width larger than source length")
	}
	if opt.Overlap < 0 {
		return nil, errs.New(errs.Domain, "frame.Frame", "negative overlap")
	}
	if opt.Overlap >= opt.Width {
		return nil, errs.New(errs.Domain, "frame.Frame", "overlap must be less than frame width")
	}

	step := opt.samplesBetweenFrames()
	frames := int(math.Ceil(float64(n) / float64(step)))

	out := siglist.NewIndex(parentIdx)
	scale := source.TimeScale()

	for k := 0; k < frames; k++ {
		name := fmt.Sprintf("frame [%s,%d]", sourceEntry.Name, k)
		file := fmt.Sprintf("%s.%d", sourceEntry.File, k)
		frameScale := siglist.TimeScale{
			T0:     float64(k) * scale.DeltaT * float64(step),
			DeltaT: scale.DeltaT,
			N0:     float64(k),
		}
		pos, err := out.AddEntry(name, file, sourceEntry, opt.FrameKind, frameScale, true)
		if err != nil {
			return nil, err
		}
		entry, err := out.EntryAt(pos)
		if err != nil {
			return nil, err
		}
		if err := entry.List.Resize(opt.Width); err != nil {
			return nil, err
		}

		windowMul, err := opt.Window.Apply(opt.Width)
		if err != nil {
			return nil, err
		}

		for i := 0; i < opt.Width; i++ {
			readPos := k*step + i + 1
			// Circular wrap, clamped to a single wraparound: a frame
			// width never exceeds the source length (checked above),
			// so readPos - n always lands back in range.
			for readPos > n {
				readPos -= n
			}
			v, err := source.Get(readPos)
			if err != nil {
				return nil, err
			}
			w := windowMul[i]
			re := real(v) * w
			im := imag(v)
			if opt.WindowKind == siglist.Complex {
				im *= w
			}
			if err := entry.List.Set(i+1, complex(re, im)); err != nil {
				return nil, err
			}
		}

		if opt.PurgeZeroPower {
			entry.List.CalculateStatistics()
			st, _ := entry.List.Statistics()
			if real(st.Max) < epsilon && real(st.Min) > -epsilon &&
				imag(st.Max) < epsilon && imag(st.Min) > -epsilon {
				if err := out.DestroyEntry(); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
