package midi

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/melographe/motif/pkg/melody"
)

func TestWriteVarLen(t *testing.T) {
	testCases := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{0x40, []byte{0x40}},
		{0x7F, []byte{0x7F}},
		{0x80, []byte{0x81, 0x00}},
		{480, []byte{0x83, 0x60}},
		{0x3FFF, []byte{0xFF, 0x7F}},
		{0x4000, []byte{0x81, 0x80, 0x00}},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		writeVarLen(&buf, tc.value)
		if !bytes.Equal(buf.Bytes(), tc.want) {
			t.Errorf("writeVarLen(%#x) = % x, want % x", tc.value, buf.Bytes(), tc.want)
		}
	}
}

func TestEncodeHeader(t *testing.T) {
	var buf bytes.Buffer
	notes := []melody.Note{{Name: "C", Beats: 1}, {Name: "E", Beats: 0.5}}
	if err := Encode(&buf, "test", 120, notes); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	data := buf.Bytes()

	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Fatal("output does not start with an MThd chunk")
	}
	if got := binary.BigEndian.Uint32(data[4:8]); got != 6 {
		t.Errorf("header length = %d, want 6", got)
	}
	if got := binary.BigEndian.Uint16(data[8:10]); got != 0 {
		t.Errorf("format = %d, want 0", got)
	}
	if got := binary.BigEndian.Uint16(data[10:12]); got != 1 {
		t.Errorf("track count = %d, want 1", got)
	}
	if got := binary.BigEndian.Uint16(data[12:14]); got != TicksPerQuarter {
		t.Errorf("division = %d, want %d", got, TicksPerQuarter)
	}

	if !bytes.Equal(data[14:18], []byte("MTrk")) {
		t.Fatal("missing MTrk chunk after the header")
	}
	declared := binary.BigEndian.Uint32(data[18:22])
	if got := uint32(len(data) - 22); got != declared {
		t.Errorf("track chunk declares %d bytes, file holds %d", declared, got)
	}
}

func TestEncodeEvents(t *testing.T) {
	var buf bytes.Buffer
	notes := []melody.Note{{Name: "C", Beats: 1}}
	if err := Encode(&buf, "t", 120, notes); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	data := buf.Bytes()

	// Note on for middle C at full velocity, note off one quarter later.
	on := []byte{0x00, noteOnEvent, 60, defaultVelocity}
	if !bytes.Contains(data, on) {
		t.Errorf("missing note-on event % x", on)
	}
	off := []byte{0x83, 0x60, noteOffEvent, 60, 0x00}
	if !bytes.Contains(data, off) {
		t.Errorf("missing note-off event % x", off)
	}
	// 120 BPM is 500000 microseconds per quarter.
	tempo := []byte{metaPrefix, metaTempo, 0x03, 0x07, 0xA1, 0x20}
	if !bytes.Contains(data, tempo) {
		t.Errorf("missing tempo meta event % x", tempo)
	}
	if !bytes.HasSuffix(data, []byte{0x00, metaPrefix, metaEndOfTrack, 0x00}) {
		t.Error("track does not end with an end-of-track meta event")
	}
}

func TestEncodeSkipsUnknownNames(t *testing.T) {
	var known, mixed bytes.Buffer
	if err := Encode(&known, "t", 120, []melody.Note{{Name: "C", Beats: 1}}); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	withUnknown := []melody.Note{{Name: "C", Beats: 1}, {Name: "X9", Beats: 1}}
	if err := Encode(&mixed, "t", 120, withUnknown); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !bytes.Equal(known.Bytes(), mixed.Bytes()) {
		t.Error("a note without a key mapping should be skipped silently")
	}
}

func TestEncodeRejectsBadTempo(t *testing.T) {
	for _, tempo := range []int{0, -10} {
		var buf bytes.Buffer
		if err := Encode(&buf, "t", tempo, nil); err == nil {
			t.Errorf("Encode(tempo=%d) succeeded, want error", tempo)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mid")
	notes := melody.Zip([]string{"C", "D", "E"}, []float64{1, 1, 2})

	if err := WriteFile(path, "test", 120, notes); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Error("written file is not a MIDI file")
	}
}
