// Package synth renders the game's sound effects from tone descriptions
// instead of shipping audio files.
package synth

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/ropewalk/config"
)

// Tone renders a square-ish sweep as 16-bit little-endian stereo PCM, the
// format an ebiten audio context plays. The amplitude fades out linearly so
// the tail never clicks.
func Tone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Frequency + t.Slide*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		// Soft square: a sine pushed through tanh
		s := math.Tanh(3*math.Sin(phase)) * (1 - progress) * 0.3
		v := int16(s * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
