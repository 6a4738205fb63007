// Package sfx turns fold and unfold events into varied paper sound cues.
package sfx

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/random-origami/internal/logger"
)

// Player is the playback capability the cues need.
type Player interface {
	Ready() bool
	Duration() time.Duration
	IsPlaying() bool
	Stop()
	PlayFragment(offset time.Duration, rate, volume float64) error
}

// Kind distinguishes fold and unfold cues.
type Kind int

const (
	KindFold Kind = iota
	KindUnfold
)

func (k Kind) String() string {
	if k == KindFold {
		return "fold"
	}
	return "unfold"
}

// Cue is one resolved playback request.
type Cue struct {
	Offset time.Duration
	Rate   float64
	Volume float64
}

// Settings holds cue volumes and the minimum fragment length.
type Settings struct {
	FoldVolume   float64
	UnfoldVolume float64
	// Tail is kept free at the end of the sample so every fragment has at
	// least this much sound.
	Tail time.Duration
}

// DefaultSettings returns the stock cue settings.
func DefaultSettings() Settings {
	return Settings{
		FoldVolume:   0.35,
		UnfoldVolume: 0.28,
		Tail:         250 * time.Millisecond,
	}
}

// rate ranges, [lo, hi)
var rateRanges = map[Kind][2]float64{
	KindFold:   {0.95, 1.05},
	KindUnfold: {0.9, 1.0},
}

// Cues requests sound for fold and unfold transitions.
type Cues struct {
	player   Player
	rng      *rand.Rand
	settings Settings
}

// New creates a cue requester. rng drives offset and rate variation.
func New(player Player, rng *rand.Rand, settings Settings) *Cues {
	return &Cues{player: player, rng: rng, settings: settings}
}

// Fold plays the fold cue.
func (c *Cues) Fold() { c.play(KindFold) }

// Unfold plays the unfold cue.
func (c *Cues) Unfold() { c.play(KindUnfold) }

// Next resolves a cue for a sample of the given duration.
func (c *Cues) Next(kind Kind, sample time.Duration) Cue {
	r := rateRanges[kind]
	cue := Cue{
		Rate:   r[0] + c.rng.Float64()*(r[1]-r[0]),
		Volume: c.settings.FoldVolume,
	}
	if kind == KindUnfold {
		cue.Volume = c.settings.UnfoldVolume
	}
	if span := sample - c.settings.Tail; span > 0 {
		cue.Offset = time.Duration(c.rng.Float64() * float64(span))
	}
	return cue
}

// play skips silently when the sound is unavailable and replaces any cue
// that is still sounding.
func (c *Cues) play(kind Kind) {
	if c.player == nil || !c.player.Ready() {
		return
	}
	if c.player.IsPlaying() {
		c.player.Stop()
	}

	cue := c.Next(kind, c.player.Duration())
	if err := c.player.PlayFragment(cue.Offset, cue.Rate, cue.Volume); err != nil {
		logger.Debug("sound cue skipped", zap.Stringer("kind", kind), zap.Error(err))
		return
	}
	logger.Debug("sound cue",
		zap.Stringer("kind", kind),
		zap.Duration("offset", cue.Offset),
		zap.Float64("rate", cue.Rate),
	)
}
