package engine

import "time"

// ManualTimeProvider is a clock that only moves when told to
// The tick loop is single-threaded, so no locking is needed.
type ManualTimeProvider struct {
	now time.Time
}

// NewManualTimeProvider starts the clock at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the pinned time
func (m *ManualTimeProvider) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
