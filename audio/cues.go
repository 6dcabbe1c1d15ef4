// Package audio plays short chimes when a drain starts and ends.
// Every method is a no-op until Initialize succeeds.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/digital-rain/constants"
)

const sampleRate = beep.SampleRate(constants.CueSampleRate)

// Cues owns the speaker for the session
type Cues struct {
	mu          sync.Mutex
	initialized bool
	played      int
}

// NewCues creates an uninitialized cue player
func NewCues() *Cues {
	return &Cues{}
}

// Initialize opens the speaker; safe to call more than once
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.CueBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	c.initialized = true
	return nil
}

// Close releases the speaker
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// Played returns how many chimes were handed to the speaker
func (c *Cues) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// DrainStarted plays the high chime
func (c *Cues) DrainStarted() {
	c.play(constants.DrainStartFreq)
}

// DrainFinished plays the low chime
func (c *Cues) DrainFinished() {
	c.play(constants.DrainFinishFreq)
}

func (c *Cues) play(freq float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	chime, err := NewChime(sampleRate, freq, constants.CueVolume)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(constants.CueDuration), chime))
	c.played++
}

// NewChime returns a sine tone at freq scaled by volume
func NewChime(sr beep.SampleRate, freq, volume float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", freq, err)
	}
	return newVolume(tone, volume), nil
}

// newVolume maps a linear gain onto effects.Volume
// math.Log2(0) is -Inf, so zero or negative volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
