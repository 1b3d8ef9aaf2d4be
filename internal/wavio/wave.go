// Package wavio implements the signal I/O layer: a RIFF/WAVE PCM
// decoder, a token-stream RAW text decoder, format auto-detection, and
// the structured index/list writer of spec §6.
package wavio

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/siglist"
)

// Format names an input file's detected encoding.
type Format int

const (
	// FormatRaw is ASCII text of separator-delimited numeric tokens; line
	// breaks are ordinary separators and do not delimit samples.
	FormatRaw Format = iota
	// FormatWave is RIFF/WAVE.
	FormatWave
)

const riffMagic = "RIFF"

// DetectFormat peeks at the front of r to decide whether it is a RIFF
// container or should fall back to the RAW text decoder. It returns a
// reader that replays any bytes it consumed so the caller can still
// decode from the start.
func DetectFormat(r io.Reader) (Format, io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return 0, nil, errs.Wrap(errs.IO, "wavio.DetectFormat", "reading magic", err)
	}
	if string(magic) == riffMagic {
		return FormatWave, br, nil
	}
	return FormatRaw, br, nil
}

// WAVE format tags recognized by the fmt chunk.
const (
	tagPCM    = 0x0001
	tagMuLaw  = 0x0101
	tagALaw   = 0x0102
	tagADPCM  = 0x0103
	fmtCommon = 16 // size of the common fmt chunk body, before any extension
)

// WaveInfo carries the parsed fmt-chunk header fields, for callers that
// want the raw format metadata alongside the decoded list.
type WaveInfo struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	AvgBytesPerS  uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func readExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errs.Wrap(errs.IO, "wavio.readExact", "short read", err)
	}
	return buf, nil
}

// DecodeWave parses a RIFF/WAVE PCM stream into a siglist.List. kind
// selects whether the result is Real (channel 1 only) or Complex
// (channel 1 -> real, channel 2 -> imaginary, folding any additional
// channels away). Only PCM is supported; recognized-but-unsupported
// tags (mu-law, A-law, ADPCM) fail with errs.UnsupportedFormat.
func DecodeWave(r io.Reader, kind siglist.Kind) (*siglist.List, WaveInfo, error) {
	var info WaveInfo

	hdr, err := readExact(r, 12)
	if err != nil {
		return nil, info, err
	}
	if string(hdr[0:4]) != "RIFF" || string(hdr[8:12]) != "WAVE" {
		return nil, info, errs.New(errs.Domain, "wavio.DecodeWave", "not a RIFF/WAVE stream")
	}

	// fmt chunk.
	chunkHdr, err := readExact(r, 8)
	if err != nil {
		return nil, info, err
	}
	if string(chunkHdr[0:4]) != "fmt " {
		return nil, info, errs.New(errs.Domain, "wavio.DecodeWave", "expected fmt chunk")
	}
	fmtLen := binary.LittleEndian.Uint32(chunkHdr[4:8])
	if fmtLen < fmtCommon {
		return nil, info, errs.New(errs.Domain, "wavio.DecodeWave", "fmt chunk too small")
	}
	fmtBody, err := readExact(r, int(fmtLen))
	if err != nil {
		return nil, info, err
	}
	info.FormatTag = binary.LittleEndian.Uint16(fmtBody[0:2])
	info.Channels = binary.LittleEndian.Uint16(fmtBody[2:4])
	info.SampleRate = binary.LittleEndian.Uint32(fmtBody[4:8])
	info.AvgBytesPerS = binary.LittleEndian.Uint32(fmtBody[8:12])
	info.BlockAlign = binary.LittleEndian.Uint16(fmtBody[12:14])
	info.BitsPerSample = binary.LittleEndian.Uint16(fmtBody[14:16])

	switch info.FormatTag {
	case tagPCM:
		// supported
	case tagMuLaw, tagALaw, tagADPCM:
		return nil, info, errs.New(errs.UnsupportedFormat, "wavio.DecodeWave", "non-PCM WAVE format tag")
	default:
		return nil, info, errs.New(errs.UnsupportedFormat, "wavio.DecodeWave", "unrecognized WAVE format tag")
	}

	// Two filler bytes follow the common fmt body per the original
	// "TWO BYTES LATE" quirk (spec §9 open question): this reads the
	// two bytes immediately after whatever the fmt chunk actually
	// declared (fmtLen), not after a hardcoded 16-byte body, so
	// extended fmt chunks (WAVE_FORMAT_EXTENSIBLE-style cbSize fields)
	// don't desync the parser.
	if _, err := readExact(r, 2); err != nil {
		return nil, info, err
	}

	// data chunk.
	dataHdr, err := readExact(r, 8)
	if err != nil {
		return nil, info, err
	}
	if string(dataHdr[0:4]) != "data" {
		return nil, info, errs.New(errs.Domain, "wavio.DecodeWave", "expected data chunk")
	}
	dataLen := binary.LittleEndian.Uint32(dataHdr[4:8])

	unsigned := info.BlockAlign == 1
	bytesPerSample := 1
	if !unsigned {
		bytesPerSample = int(info.BitsPerSample) / 8
		if bytesPerSample < 1 {
			bytesPerSample = 1
		}
	}
	channels := int(info.Channels)
	if channels < 1 {
		channels = 1
	}
	frameBytes := bytesPerSample * channels
	if frameBytes == 0 {
		return nil, info, errs.New(errs.Domain, "wavio.DecodeWave", "zero-width frame")
	}
	nFrames := int(dataLen) / frameBytes

	raw, err := readExact(r, nFrames*frameBytes)
	if err != nil {
		return nil, info, err
	}

	scale := siglist.TimeScale{T0: 0, DeltaT: 1.0 / float64(info.SampleRate), N0: 0}
	list := siglist.New(kind, scale)
	if err := list.Resize(nFrames); err != nil {
		return nil, info, err
	}

	decodeSample := func(b []byte) float64 {
		if unsigned {
			return float64(b[0]) - 128
		}
		switch bytesPerSample {
		case 1:
			return float64(int8(b[0]))
		case 2:
			return float64(int16(binary.LittleEndian.Uint16(b)))
		default:
			var v int32
			for i := bytesPerSample - 1; i >= 0; i-- {
				v = v<<8 | int32(b[i])
			}
			shift := uint(32 - 8*bytesPerSample)
			return float64((v << shift) >> shift)
		}
	}

	for i := 0; i < nFrames; i++ {
		base := i * frameBytes
		re := decodeSample(raw[base : base+bytesPerSample])
		var im float64
		if kind == siglist.Complex && channels >= 2 {
			im = decodeSample(raw[base+bytesPerSample : base+2*bytesPerSample])
		}
		if err := list.Set(i+1, complex(re, im)); err != nil {
			return nil, info, err
		}
	}

	return list, info, nil
}
