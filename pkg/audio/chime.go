package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Output format of the synthesized chime
const (
	SampleRate     = 44100
	Channels       = 1
	bytesPerSample = 2
)

const chimeGap = 400 * time.Millisecond

// chimeNotes are the partials of a two-note bell, E5 then B5
var chimeNotes = []struct {
	freq     float64
	start    time.Duration
	duration time.Duration
}{
	{659.25, 0, 900 * time.Millisecond},
	{987.77, 250 * time.Millisecond, 1100 * time.Millisecond},
}

// Chime returns the finish sound as signed 16-bit little-endian mono PCM
func Chime() []byte {
	var total time.Duration
	for _, n := range chimeNotes {
		if end := n.start + n.duration; end > total {
			total = end
		}
	}

	samples := make([]float64, samplesFor(total))
	for _, n := range chimeNotes {
		offset := samplesFor(n.start)
		count := samplesFor(n.duration)
		for i := 0; i < count && offset+i < len(samples); i++ {
			t := float64(i) / SampleRate
			// Short attack, exponential decay
			env := math.Min(1, t/0.01) * math.Exp(-4*t)
			samples[offset+i] += 0.35 * env * math.Sin(2*math.Pi*n.freq*t)
		}
	}

	pcm := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		binary.LittleEndian.PutUint16(pcm[i*bytesPerSample:], uint16(int16(s*math.MaxInt16)))
	}
	return pcm
}

func samplesFor(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}
