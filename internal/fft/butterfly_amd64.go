//go:build amd64

package fft

import "golang.org/x/sys/cpu"

// On amd64, a CPU wide enough to benefit from processing paired lanes
// (AVX/AVX2-capable) gets the wide butterfly kernel; everything else
// keeps the portable scalar one. There is no assembly here — both
// kernels are ordinary Go — but the dispatch itself follows the same
// init()-time cpu.X86 feature check the teacher's SIMD-accelerated
// butterflies use to pick their kernel.
func init() {
	if cpu.X86.HasAVX2 || cpu.X86.HasAVX {
		butterflyPass = wideButterflyPass
	}
}
