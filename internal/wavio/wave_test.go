package wavio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/atmafra/poli-sub001/internal/siglist"
)

func buildWave(t *testing.T, channels, bitsPerSample int, sampleRate uint32, frames [][]int16) []byte {
	t.Helper()
	var data bytes.Buffer
	for _, fr := range frames {
		for _, s := range fr {
			switch bitsPerSample {
			case 16:
				binary.Write(&data, binary.LittleEndian, s)
			case 8:
				// For 8-bit PCM, s is the raw unsigned byte value.
				data.WriteByte(byte(s))
			}
		}
	}

	var fmtBody bytes.Buffer
	binary.Write(&fmtBody, binary.LittleEndian, uint16(tagPCM))
	binary.Write(&fmtBody, binary.LittleEndian, uint16(channels))
	binary.Write(&fmtBody, binary.LittleEndian, sampleRate)
	blockAlign := channels * bitsPerSample / 8
	if bitsPerSample == 8 {
		blockAlign = 1
	}
	avgBps := sampleRate * uint32(blockAlign)
	binary.Write(&fmtBody, binary.LittleEndian, avgBps)
	binary.Write(&fmtBody, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&fmtBody, binary.LittleEndian, uint16(bitsPerSample))

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // size, unused by the decoder
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(fmtBody.Len()))
	buf.Write(fmtBody.Bytes())
	buf.Write([]byte{0, 0}) // two filler bytes

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestDetectFormatWave(t *testing.T) {
	raw := buildWave(t, 1, 16, 8000, [][]int16{{1, 2, 3}})
	format, r, err := DetectFormat(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if format != FormatWave {
		t.Fatalf("format = %v, want FormatWave", format)
	}
	list, info, err := DecodeWave(r, siglist.Real)
	if err != nil {
		t.Fatalf("DecodeWave: %v", err)
	}
	if info.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", info.SampleRate)
	}
	if list.Len() != 3 {
		t.Errorf("Len = %d, want 3", list.Len())
	}
}

func TestDetectFormatRaw(t *testing.T) {
	format, _, err := DetectFormat(bytes.NewReader([]byte("1.0 2.0 3.0\n")))
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if format != FormatRaw {
		t.Fatalf("format = %v, want FormatRaw", format)
	}
}

func TestDecodeWaveMono16(t *testing.T) {
	raw := buildWave(t, 1, 16, 16000, [][]int16{{100}, {-200}, {300}})
	list, _, err := DecodeWave(bytes.NewReader(raw), siglist.Real)
	if err != nil {
		t.Fatalf("DecodeWave: %v", err)
	}
	want := []float64{100, -200, 300}
	for i, w := range want {
		v, err := list.Get(i + 1)
		if err != nil {
			t.Fatalf("Get(%d): %v", i+1, err)
		}
		if real(v) != w {
			t.Errorf("sample %d = %v, want %v", i, real(v), w)
		}
	}
	scale := list.TimeScale()
	if scale.DeltaT != 1.0/16000 {
		t.Errorf("DeltaT = %v, want %v", scale.DeltaT, 1.0/16000)
	}
}

func TestDecodeWaveStereoComplexFold(t *testing.T) {
	raw := buildWave(t, 2, 16, 8000, [][]int16{{10, 20}, {-30, 40}})
	list, _, err := DecodeWave(bytes.NewReader(raw), siglist.Complex)
	if err != nil {
		t.Fatalf("DecodeWave: %v", err)
	}
	v, err := list.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if real(v) != 10 || imag(v) != 20 {
		t.Errorf("sample 0 = %v, want (10+20i)", v)
	}
	v2, _ := list.Get(2)
	if real(v2) != -30 || imag(v2) != 40 {
		t.Errorf("sample 1 = %v, want (-30+40i)", v2)
	}
}

func TestDecodeWaveUnsignedByteDCRemoval(t *testing.T) {
	raw := buildWave(t, 1, 8, 8000, [][]int16{{0}, {128}, {255}})
	list, _, err := DecodeWave(bytes.NewReader(raw), siglist.Real)
	if err != nil {
		t.Fatalf("DecodeWave: %v", err)
	}
	want := []float64{-128, 0, 127}
	for i, w := range want {
		v, _ := list.Get(i + 1)
		if real(v) != w {
			t.Errorf("sample %d = %v, want %v", i, real(v), w)
		}
	}
}

func TestDecodeWaveExtendedFmtChunk(t *testing.T) {
	// Build a fmt chunk with 2 extra bytes (fmtLen = 18) before the
	// two-byte filler, exercising the fmtLen-16 extra-byte handling.
	var fmtBody bytes.Buffer
	binary.Write(&fmtBody, binary.LittleEndian, uint16(tagPCM))
	binary.Write(&fmtBody, binary.LittleEndian, uint16(1))
	binary.Write(&fmtBody, binary.LittleEndian, uint32(8000))
	binary.Write(&fmtBody, binary.LittleEndian, uint32(16000))
	binary.Write(&fmtBody, binary.LittleEndian, uint16(2))
	binary.Write(&fmtBody, binary.LittleEndian, uint16(16))
	binary.Write(&fmtBody, binary.LittleEndian, uint16(0)) // cbSize extension

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(fmtBody.Len()))
	buf.Write(fmtBody.Bytes())
	buf.Write([]byte{0, 0})
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(2))
	binary.Write(&buf, binary.LittleEndian, int16(42))

	list, _, err := DecodeWave(bytes.NewReader(buf.Bytes()), siglist.Real)
	if err != nil {
		t.Fatalf("DecodeWave: %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("Len = %d, want 1", list.Len())
	}
	v, _ := list.Get(1)
	if real(v) != 42 {
		t.Errorf("sample = %v, want 42", real(v))
	}
}

func TestDecodeWaveRejectsNonPCM(t *testing.T) {
	raw := buildWave(t, 1, 16, 8000, [][]int16{{1}})
	// Patch the format tag to mu-law (0x0101) in place.
	idx := bytes.Index(raw, []byte("fmt "))
	binary.LittleEndian.PutUint16(raw[idx+8:idx+10], tagMuLaw)
	_, _, err := DecodeWave(bytes.NewReader(raw), siglist.Real)
	if err == nil {
		t.Fatal("expected UnsupportedFormat error")
	}
}
