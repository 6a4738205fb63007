package audio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"
)

func writeTone(t *testing.T, sr beep.SampleRate, d time.Duration) string {
	t.Helper()

	tone, err := generators.SineTone(sr, 440)
	if err != nil {
		t.Fatalf("sine tone: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wav: %v", err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(sr.N(d), tone), format); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	return path
}

func TestGainToExponent(t *testing.T) {
	tests := []struct {
		gain float64
		want float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
	}

	for _, tt := range tests {
		if got := gainToExponent(tt.gain); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("gainToExponent(%f) = %f, want %f", tt.gain, got, tt.want)
		}
	}

	if got := gainToExponent(0); got > -90 {
		t.Errorf("gainToExponent(0) = %f, want effectively silent", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.GetMasterVolume())
	}
	if m.IsInitialized() || m.Loaded() || m.Ready() || m.IsPlaying() {
		t.Error("new manager should be idle")
	}
	if m.Duration() != 0 {
		t.Errorf("duration without sample = %v, want 0", m.Duration())
	}
}

func TestSetMasterVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	if m.GetMasterVolume() != 0.5 {
		t.Errorf("master volume = %f, want 0.5", m.GetMasterVolume())
	}
	m.SetMasterVolume(2.0)
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.GetMasterVolume())
	}
	m.SetMasterVolume(-1.0)
	if m.GetMasterVolume() != 0.0 {
		t.Errorf("master volume = %f, want 0.0 (clamped)", m.GetMasterVolume())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeTone(t, DefaultSampleRate, 500*time.Millisecond)

	m := New()
	if err := m.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !m.Loaded() {
		t.Fatal("expected sample to be loaded")
	}
	if d := m.Duration(); d < 490*time.Millisecond || d > 510*time.Millisecond {
		t.Errorf("duration = %v, want ~500ms", d)
	}
	// Not ready until the device is opened.
	if m.Ready() {
		t.Error("Ready() should be false before Init")
	}
}

func TestLoadFileResamples(t *testing.T) {
	path := writeTone(t, beep.SampleRate(22050), time.Second)

	m := New()
	if err := m.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if d := m.Duration(); d < 950*time.Millisecond || d > 1050*time.Millisecond {
		t.Errorf("duration after resample = %v, want ~1s", d)
	}
}

func TestLoadFileAsync(t *testing.T) {
	path := writeTone(t, DefaultSampleRate, 200*time.Millisecond)

	m := New()
	if err := <-m.LoadFileAsync(path); err != nil {
		t.Fatalf("async load: %v", err)
	}
	if !m.Loaded() {
		t.Error("expected sample after async load")
	}
}

func TestLoadFileAsyncMissing(t *testing.T) {
	m := New()
	if err := <-m.LoadFileAsync(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
	if m.Loaded() {
		t.Error("failed load must leave manager unloaded")
	}
}

func TestLoadWAVInvalid(t *testing.T) {
	m := New()
	if err := m.LoadWAV(bytes.NewReader([]byte("not a wav file")), "junk"); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoadRustle(t *testing.T) {
	m := New()
	if err := m.LoadRustle(1); err != nil {
		t.Fatalf("LoadRustle: %v", err)
	}
	if d := m.Duration(); d != DefaultSampleRate.D(DefaultSampleRate.N(RustleDuration)) {
		t.Errorf("rustle duration = %v, want %v", d, RustleDuration)
	}
}

func TestRustleIsBounded(t *testing.T) {
	s := Rustle(DefaultSampleRate, 100*time.Millisecond, 3)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if math.Abs(smp[0]) > 1 || math.Abs(smp[1]) > 1 {
				t.Fatalf("sample out of range: %v", smp)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if want := DefaultSampleRate.N(100 * time.Millisecond); total != want {
		t.Errorf("rustle length = %d samples, want %d", total, want)
	}
}

func TestPlayFragmentRequiresInit(t *testing.T) {
	m := New()
	if err := m.LoadRustle(1); err != nil {
		t.Fatalf("LoadRustle: %v", err)
	}
	if err := m.PlayFragment(0, 1, 0.3); err != errNotInitialized {
		t.Errorf("PlayFragment before Init = %v, want %v", err, errNotInitialized)
	}
	if m.IsPlaying() {
		t.Error("nothing should be playing")
	}
	// Stop on an idle manager is harmless.
	m.Stop()
}
