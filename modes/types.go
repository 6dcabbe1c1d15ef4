package modes

// Mode is the animation mode the loop runs in
type Mode uint8

const (
	ModeRunning Mode = iota
	ModePaused
	ModeDraining
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "Running"
	case ModePaused:
		return "Paused"
	case ModeDraining:
		return "Draining"
	default:
		return "Unknown"
	}
}

// Command is a user intent decoded from a key
type Command uint8

const (
	CommandNone Command = iota
	CommandToggle
	CommandQuit
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandToggle:
		return "Toggle"
	case CommandQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Reason explains why a mode transition happened
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonToggle
	ReasonDrained
	ReasonTimeout
)

// String returns the reason name
func (r Reason) String() string {
	switch r {
	case ReasonToggle:
		return "toggle"
	case ReasonDrained:
		return "drained"
	case ReasonTimeout:
		return "timeout"
	default:
		return "none"
	}
}
