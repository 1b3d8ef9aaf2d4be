package mfcc

import (
	"fmt"

	"github.com/atmafra/poli-sub001/internal/siglist"
)

// ComputeIndex applies ComputeFrame to every entry of frames, a
// power-spectrum index, appending one MFCC entry per frame entry to a
// freshly created index parented at frames.
func ComputeIndex(frames *siglist.Index, fb *FilterBank, deltaT float64) (*siglist.Index, error) {
	out := siglist.NewIndex(frames)
	for _, entry := range frames.Entries() {
		mfcc, err := ComputeFrame(entry.List, fb, deltaT)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%s, MFCC", entry.Name)
		file := entry.File + ".mfcc"
		pos, err := out.AddEntry(name, file, entry, mfcc.Kind(), mfcc.TimeScale(), true)
		if err != nil {
			return nil, err
		}
		dstEntry, err := out.EntryAt(pos)
		if err != nil {
			return nil, err
		}
		if err := dstEntry.List.Resize(mfcc.Len()); err != nil {
			return nil, err
		}
		for i := 1; i <= mfcc.Len(); i++ {
			v, err := mfcc.Get(i)
			if err != nil {
				return nil, err
			}
			if err := dstEntry.List.Set(i, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
