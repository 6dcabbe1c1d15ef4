package modes

import (
	"time"

	"github.com/lixenwraith/digital-rain/constants"
)

// Controller is the Running -> Paused -> Draining -> Running state machine
// drainStart is set only while in ModeDraining
type Controller struct {
	mode       Mode
	drainStart time.Time
	timeout    time.Duration
}

// NewController creates a controller in ModeRunning with the default drain timeout
func NewController() *Controller {
	return NewControllerWithTimeout(constants.DrainTimeout)
}

// NewControllerWithTimeout creates a controller with a custom drain timeout
func NewControllerWithTimeout(timeout time.Duration) *Controller {
	return &Controller{
		mode:    ModeRunning,
		timeout: timeout,
	}
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// DrainStart returns when the current drain began; ok is false outside ModeDraining
func (c *Controller) DrainStart() (start time.Time, ok bool) {
	if c.mode != ModeDraining {
		return time.Time{}, false
	}
	return c.drainStart, true
}

// Toggle advances Running -> Paused -> Draining and returns the resulting mode
// Toggle is ignored while draining
func (c *Controller) Toggle(now time.Time) (mode Mode, changed bool) {
	switch c.mode {
	case ModeRunning:
		c.mode = ModePaused
		return c.mode, true
	case ModePaused:
		c.mode = ModeDraining
		c.drainStart = now
		return c.mode, true
	default:
		return c.mode, false
	}
}

// Apply routes a decoded command; returns true when the command asks to quit
func (c *Controller) Apply(cmd Command, now time.Time) (quit bool) {
	switch cmd {
	case CommandToggle:
		c.Toggle(now)
	case CommandQuit:
		return true
	}
	return false
}

// Settle ends a drain once every column finished or the timeout elapsed
// Both exits are checked each tick. Caller resets the field when a reason is returned.
func (c *Controller) Settle(allDone bool, now time.Time) Reason {
	if c.mode != ModeDraining {
		return ReasonNone
	}

	var reason Reason
	switch {
	case allDone:
		reason = ReasonDrained
	case now.Sub(c.drainStart) > c.timeout:
		reason = ReasonTimeout
	default:
		return ReasonNone
	}

	c.mode = ModeRunning
	c.drainStart = time.Time{}
	return reason
}
