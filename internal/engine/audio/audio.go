// Package audio plays the paper sound: one decoded sample, played as short
// fragments with per-cue rate and volume.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/random-origami/internal/logger"
)

// DefaultSampleRate is the sample rate used for playback and for the
// decoded sample buffer.
const DefaultSampleRate = beep.SampleRate(44100)

// resampleQuality is passed to beep's resamplers.
const resampleQuality = 4

var (
	errNotInitialized = errors.New("audio not initialized")
	errNotLoaded      = errors.New("sound not loaded")
)

// Manager handles sample loading and fragment playback.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	sample *beep.Buffer
	source string

	masterVolume float64
	muted        bool

	// playing and playID are touched from the speaker goroutine.
	playing atomic.Bool
	playID  atomic.Uint64
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
	}
}

// Init opens the audio device. It is called when the user starts the
// experience, which is the point audio output is unlocked.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	logger.Debug("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close stops playback and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.playing.Store(false)
	m.initialized = false
}

// IsInitialized returns whether the audio device is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// SetMuted silences all playback without unloading the sample.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// LoadWAV decodes WAV data into the sample buffer.
func (m *Manager) LoadWAV(r io.Reader, source string) error {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	return m.LoadStreamer(streamer, format, source)
}

// LoadStreamer buffers a finite streamer as the sample, resampling it to
// the playback rate.
func (m *Manager) LoadStreamer(s beep.Streamer, format beep.Format, source string) error {
	var resampled beep.Streamer = s
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(resampleQuality, format.SampleRate, m.sampleRate, s)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  m.sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(resampled)
	if buf.Len() == 0 {
		return fmt.Errorf("sound %s is empty", source)
	}

	m.mu.Lock()
	m.sample = buf
	m.source = source
	m.mu.Unlock()

	logger.Info("sound loaded",
		zap.String("source", source),
		zap.Duration("duration", m.sampleRate.D(buf.Len())),
	)
	return nil
}

// LoadFile loads a WAV file.
func (m *Manager) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	return m.LoadWAV(f, path)
}

// LoadFileAsync loads a WAV file in the background. The returned channel
// receives the result once and is then closed. Failures are logged; the
// manager simply stays not loaded.
func (m *Manager) LoadFileAsync(path string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := m.LoadFile(path)
		if err != nil {
			logger.Warn("sound unavailable", zap.String("path", path), zap.Error(err))
		}
		done <- err
	}()
	return done
}

// Loaded reports whether a sample is available.
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sample != nil
}

// Ready reports whether a fragment can be played right now.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized && m.sample != nil
}

// Duration returns the length of the loaded sample.
func (m *Manager) Duration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sample == nil {
		return 0
	}
	return m.sampleRate.D(m.sample.Len())
}

// IsPlaying reports whether a fragment is still sounding.
func (m *Manager) IsPlaying() bool {
	return m.playing.Load()
}

// PlayFragment plays the sample from offset to its end. rate scales the
// playback speed (and pitch), volume is a 0..1 gain on top of the master
// volume.
func (m *Manager) PlayFragment(offset time.Duration, rate, volume float64) error {
	m.mu.RLock()
	initialized := m.initialized
	sample := m.sample
	gain := m.masterVolume * volume
	if m.muted {
		gain = 0
	}
	m.mu.RUnlock()

	if !initialized {
		return errNotInitialized
	}
	if sample == nil {
		return errNotLoaded
	}

	from := m.sampleRate.N(offset)
	if from < 0 {
		from = 0
	}
	if from >= sample.Len() {
		from = sample.Len() - 1
	}

	var s beep.Streamer = sample.Streamer(from, sample.Len())
	if rate > 0 && rate != 1 {
		s = beep.ResampleRatio(resampleQuality, rate, s)
	}

	vol := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gainToExponent(gain),
		Silent:   gain <= 0,
	}

	id := m.playID.Add(1)
	m.playing.Store(true)

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		if m.playID.Load() == id {
			m.playing.Store(false)
		}
	})))

	return nil
}

// Stop cuts off any fragment currently playing.
func (m *Manager) Stop() {
	if !m.IsInitialized() {
		return
	}
	m.playID.Add(1)
	speaker.Clear()
	m.playing.Store(false)
}

// gainToExponent converts a linear 0..1 gain to the base-2 exponent used by
// effects.Volume.
func gainToExponent(gain float64) float64 {
	if gain <= 0 {
		return -100
	}
	return math.Log2(gain)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
