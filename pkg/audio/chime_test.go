package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChime(t *testing.T) {
	pcm := Chime()

	// The second note ends at 1.35s
	assert.Equal(t, samplesFor(chimeNotes[1].start+chimeNotes[1].duration)*bytesPerSample, len(pcm))
	assert.Zero(t, len(pcm)%bytesPerSample)

	var peak int16
	for i := 0; i+1 < len(pcm); i += bytesPerSample {
		s := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	assert.Greater(t, peak, int16(1000), "chime should be audible")

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	assert.Zero(t, first, "attack starts from silence")
}

func TestChimeIsDeterministic(t *testing.T) {
	assert.Equal(t, Chime(), Chime())
}

func TestStopNilPlayer(t *testing.T) {
	var p *Player
	assert.NotPanics(t, p.Stop)
}
