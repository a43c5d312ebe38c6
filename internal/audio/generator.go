// internal/audio/generator.go
package audio

import (
	"math"
	"time"
)

// toneGenerator streams a sine tone with a short attack and an exponential
// release so cues do not click.
type toneGenerator struct {
	freq  float64
	total int
	pos   int
}

func newToneGenerator(freq float64, d time.Duration) *toneGenerator {
	return &toneGenerator{
		freq:  freq,
		total: sampleRate.N(d),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		envelope := math.Min(t/0.005, 1.0)
		progress := float64(g.pos) / float64(g.total)
		envelope *= math.Exp(-progress * 4)

		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
