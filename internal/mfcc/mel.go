// Package mfcc implements the mel-frequency cepstral coefficient
// pipeline: Hz/mel conversion, a cached triangular filter bank,
// per-frame MFCC accumulation, and the end-to-end file-to-MFCC-index
// pipeline built on top of internal/wavio, internal/frame and
// internal/fft.
package mfcc

import "math"

// c1 is the mel-scale constant, chosen so that 1000 Hz maps to exactly
// 1000 mel.
var c1 = 1000.0 / math.Log(1.0+1000.0/700.0)

// HzToMel converts a frequency in Hz to its mel-scale value.
func HzToMel(hz float64) float64 {
	return c1 * math.Log(1.0+hz/700.0)
}

// MelToHz converts a mel-scale value back to Hz.
func MelToHz(mel float64) float64 {
	return 700.0 * (math.Exp(mel/c1) - 1.0)
}
