// Package midi serializes melodies into Standard MIDI Files (format 0,
// a single track). It is a pure sink: it knows nothing about how the
// note sequence was produced.
package midi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/natefinch/atomic"

	"github.com/melographe/motif/pkg/melody"
)

// TicksPerQuarter is the file's time division; all durations are
// expressed in beats relative to it.
const TicksPerQuarter = 480

const (
	noteOnEvent  = 0x90
	noteOffEvent = 0x80

	metaPrefix     = 0xFF
	metaTrackName  = 0x03
	metaTempo      = 0x51
	metaEndOfTrack = 0x2F

	defaultVelocity = 100
)

// KeyForName maps note names in the middle octave to MIDI key numbers.
var KeyForName = map[string]uint8{
	"C":  60,
	"C#": 61,
	"Db": 61,
	"D":  62,
	"D#": 63,
	"Eb": 63,
	"E":  64,
	"F":  65,
	"F#": 66,
	"Gb": 66,
	"G":  67,
	"G#": 68,
	"Ab": 68,
	"A":  69,
	"A#": 70,
	"Bb": 70,
	"B":  71,
}

// Encode writes a single-track MIDI file for the given melody to w.
// Notes whose name has no MIDI key mapping are skipped rather than
// treated as an error, so a melody stays writable even when a symbol
// is not a pitch.
func Encode(w io.Writer, trackName string, tempo int, notes []melody.Note) error {
	if tempo <= 0 {
		return fmt.Errorf("midi: tempo must be positive, got %d", tempo)
	}

	var track bytes.Buffer

	writeVarLen(&track, 0)
	track.Write([]byte{metaPrefix, metaTrackName})
	writeVarLen(&track, uint32(len(trackName)))
	track.WriteString(trackName)

	usPerQuarter := uint32(60_000_000 / tempo)
	writeVarLen(&track, 0)
	track.Write([]byte{
		metaPrefix, metaTempo, 0x03,
		byte(usPerQuarter >> 16), byte(usPerQuarter >> 8), byte(usPerQuarter),
	})

	for _, n := range notes {
		key, ok := KeyForName[n.Name]
		if !ok {
			continue
		}
		writeVarLen(&track, 0)
		track.Write([]byte{noteOnEvent, key, defaultVelocity})
		writeVarLen(&track, uint32(n.Beats*TicksPerQuarter))
		track.Write([]byte{noteOffEvent, key, 0})
	}

	writeVarLen(&track, 0)
	track.Write([]byte{metaPrefix, metaEndOfTrack, 0x00})

	var file bytes.Buffer
	file.WriteString("MThd")
	_ = binary.Write(&file, binary.BigEndian, uint32(6))
	_ = binary.Write(&file, binary.BigEndian, uint16(0)) // format 0
	_ = binary.Write(&file, binary.BigEndian, uint16(1)) // one track
	_ = binary.Write(&file, binary.BigEndian, uint16(TicksPerQuarter))
	file.WriteString("MTrk")
	_ = binary.Write(&file, binary.BigEndian, uint32(track.Len()))
	file.Write(track.Bytes())

	if _, err := w.Write(file.Bytes()); err != nil {
		return fmt.Errorf("midi: write failed: %w", err)
	}
	return nil
}

// WriteFile encodes the melody and writes it to path atomically, so a
// failed run never leaves a truncated .mid file behind.
func WriteFile(path, trackName string, tempo int, notes []melody.Note) error {
	var buf bytes.Buffer
	if err := Encode(&buf, trackName, tempo, notes); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}

// writeVarLen appends v as a MIDI variable-length quantity: seven bits
// per byte, most significant group first, continuation bit on all but
// the last byte.
func writeVarLen(buf *bytes.Buffer, v uint32) {
	enc := []byte{byte(v & 0x7F)}
	for v >>= 7; v > 0; v >>= 7 {
		enc = append([]byte{byte(v&0x7F | 0x80)}, enc...)
	}
	buf.Write(enc)
}
