package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep/v2"
)

// RustleDuration is the length of the synthesized paper sound.
const RustleDuration = 1200 * time.Millisecond

// Rustle returns a finite streamer of crinkly noise: short bursts of
// low-passed white noise under a slow decay, loosely like paper handling.
func Rustle(sr beep.SampleRate, d time.Duration, seed uint64) beep.Streamer {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	total := sr.N(d)
	pos := 0

	var lp float64
	burst, burstLeft := 0.0, 0

	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if burstLeft == 0 {
				// A new crinkle every few milliseconds with random strength.
				burstLeft = sr.N(time.Duration(2+rng.IntN(12)) * time.Millisecond)
				burst = 0.2 + 0.8*rng.Float64()
			}
			burstLeft--

			lp += 0.35 * (rng.Float64()*2 - 1 - lp)
			env := math.Exp(-2.5 * float64(pos) / float64(total))
			v := lp * burst * env * 0.8

			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}

// LoadRustle loads a synthesized paper sound as the sample.
func (m *Manager) LoadRustle(seed uint64) error {
	format := beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2}
	return m.LoadStreamer(Rustle(m.sampleRate, RustleDuration, seed), format, "synthesized")
}
