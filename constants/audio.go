package constants

import "time"

// Cue Sound Parameters
const (
	// CueSampleRate is the speaker sample rate in Hz
	CueSampleRate = 44100

	// CueBufferDuration is the speaker buffer length
	CueBufferDuration = 100 * time.Millisecond

	// DrainStartFreq and DrainFinishFreq are the chime pitches in Hz
	DrainStartFreq  = 880.0
	DrainFinishFreq = 440.0

	// CueDuration is the length of each chime
	CueDuration = 120 * time.Millisecond

	// CueVolume scales the generated tone (0..1)
	CueVolume = 0.25
)
