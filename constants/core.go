package constants

import "time"

// Loop Timing
const (
	// TickInterval is the minimum duration of one animation tick (~20 FPS)
	TickInterval = 50 * time.Millisecond

	// DrainTimeout bounds the drain animation; it ends once elapsed time exceeds it
	DrainTimeout = 5 * time.Second

	// InputQueueSize is the buffered capacity between the input pump and the tick loop
	InputQueueSize = 64
)

// Environment variables read at startup
const (
	EnvDebug = "DIGITAL_RAIN_DEBUG"
	EnvAudio = "DIGITAL_RAIN_AUDIO"
	EnvSeed  = "DIGITAL_RAIN_SEED"
)
