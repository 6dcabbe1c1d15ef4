package modes

import "github.com/gdamore/tcell/v2"

// CommandFor decodes a key event; space toggles, q and Ctrl+C quit, anything else is ignored
func CommandFor(ev *tcell.EventKey) Command {
	if ev == nil {
		return CommandNone
	}

	// Ctrl+C is delivered as a key in raw mode and stands in for SIGINT
	if ev.Key() == tcell.KeyCtrlC {
		return CommandQuit
	}

	if ev.Key() != tcell.KeyRune {
		return CommandNone
	}

	switch ev.Rune() {
	case ' ':
		return CommandToggle
	case 'q':
		return CommandQuit
	case 'c':
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return CommandQuit
		}
	}
	return CommandNone
}

// CommandForEvent decodes any tcell event, ignoring non-key events
func CommandForEvent(ev tcell.Event) Command {
	if key, ok := ev.(*tcell.EventKey); ok {
		return CommandFor(key)
	}
	return CommandNone
}
