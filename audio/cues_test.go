package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// TestCuesGracefulDegradation verifies cues don't panic when not initialized
func TestCuesGracefulDegradation(t *testing.T) {
	c := NewCues()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cue operations panicked without initialization: %v", r)
		}
	}()

	c.DrainStarted()
	c.DrainFinished()
	c.Close()

	if c.Played() != 0 {
		t.Errorf("Expected no chimes without a speaker, got %d", c.Played())
	}
}

// TestCuesInitialization verifies the speaker can be opened and closed
func TestCuesInitialization(t *testing.T) {
	c := NewCues()

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := c.Initialize(); err != nil {
		t.Logf("Speaker initialization failed (expected in test environment): %v", err)
		return
	}
	defer c.Close()

	if err := c.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}

	c.DrainStarted()
	c.DrainFinished()
	if c.Played() != 2 {
		t.Errorf("Expected 2 chimes, got %d", c.Played())
	}
}

func peakOf(t *testing.T, s beep.Streamer) float64 {
	t.Helper()
	buf := make([][2]float64, 512)
	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
	}

	peak := 0.0
	for _, sample := range buf {
		peak = math.Max(peak, math.Abs(sample[0]))
		if sample[0] != sample[1] {
			t.Fatal("Expected identical stereo channels")
		}
	}
	return peak
}

// TestChimeVolume verifies effects.Volume attenuates the tone to the requested gain
func TestChimeVolume(t *testing.T) {
	chime, err := NewChime(sampleRate, 440, 0.25)
	if err != nil {
		t.Fatalf("NewChime failed: %v", err)
	}
	if _, ok := chime.(*effects.Volume); !ok {
		t.Fatalf("Expected *effects.Volume, got %T", chime)
	}

	reference, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		t.Fatalf("SineTone failed: %v", err)
	}

	full := peakOf(t, reference)
	got := peakOf(t, chime)
	if math.Abs(got-full*0.25) > 1e-9 {
		t.Errorf("Expected peak %f (0.25 of %f), got %f", full*0.25, full, got)
	}
	if got < 0.2 {
		t.Errorf("Peak %f too low for a 440Hz tone over 512 samples", got)
	}
}

func TestChimeZeroVolumeIsSilent(t *testing.T) {
	chime, err := NewChime(sampleRate, 440, 0)
	if err != nil {
		t.Fatalf("NewChime failed: %v", err)
	}
	if peak := peakOf(t, chime); peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

func TestChimeRejectsInvalidFrequency(t *testing.T) {
	// Above Nyquist for the sample rate
	if _, err := NewChime(sampleRate, float64(sampleRate), 1); err == nil {
		t.Error("Expected error for frequency at the sample rate")
	}
}
