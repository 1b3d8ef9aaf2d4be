package mfcc

import "github.com/atmafra/poli-sub001/internal/siglist"

// ComputeFrame applies fb to one power-spectrum frame (a list of
// |X_k|^2 values, indexed 1..power.Len()) sampled at interval deltaT,
// producing a new Complex-kind list of fb.M MFCCs carrying the same
// time scale as power — Complex so the pipeline's later in-place FCT
// has somewhere to write its coefficients. For each filter k, the
// sample range [floor(lo/deltaT)+1, floor(hi/deltaT)] is accumulated
// against the triangular filter value at each sample's frequency,
// zero-padding any index beyond power's length.
func ComputeFrame(power *siglist.List, fb *FilterBank, deltaT float64) (*siglist.List, error) {
	out := siglist.New(siglist.Complex, power.TimeScale())
	if err := out.Resize(fb.M); err != nil {
		return nil, err
	}

	n := power.Len()
	carriesImag := power.Kind() == siglist.Complex

	for k := 1; k <= fb.M; k++ {
		lo, mid, hi, err := fb.Endpoints(k)
		if err != nil {
			return nil, err
		}
		loSample := floorDiv(lo, deltaT) + 1
		hiSample := floorDiv(hi, deltaT)

		var accRe, accIm float64
		for s := loSample; s <= hiSample; s++ {
			var v complex128
			if s >= 1 && s <= n {
				var err error
				v, err = power.Get(s)
				if err != nil {
					return nil, err
				}
			}
			freq := float64(s) * deltaT
			fv := Trifilter(freq, lo, mid, hi, 1.0)
			accRe += real(v) * fv
			if carriesImag {
				accIm += imag(v) * fv
			}
		}
		if err := out.Set(k, complex(accRe, accIm)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
