// Package engine drives the rain: one tick polls input, sizes the field,
// advances it for the current mode, draws and presents the frame.
package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/glyph"
	"github.com/lixenwraith/digital-rain/modes"
	"github.com/lixenwraith/digital-rain/rain"
	"github.com/lixenwraith/digital-rain/render"
)

// Cues receives drain lifecycle notifications
type Cues interface {
	DrainStarted()
	DrainFinished()
}

type nopCues struct{}

func (nopCues) DrainStarted()  {}
func (nopCues) DrainFinished() {}

// Options configures an Engine; zero values select defaults
type Options struct {
	Seed     uint64
	Interval time.Duration
	Clock    TimeProvider
	Cues     Cues
	Pool     *glyph.Pool
}

// Engine owns all animation state; it is driven from a single goroutine
type Engine struct {
	screen   tcell.Screen
	field    *rain.Field
	ctrl     *modes.Controller
	renderer *render.Renderer
	clock    TimeProvider
	cues     Cues
	events   chan tcell.Event
	interval time.Duration

	width, height int
	frame         uint64
}

// New creates an engine drawing to screen
func New(screen tcell.Screen, opts Options) *Engine {
	if opts.Interval <= 0 {
		opts.Interval = constants.TickInterval
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Cues == nil {
		opts.Cues = nopCues{}
	}
	if opts.Pool == nil {
		opts.Pool = glyph.DefaultPool()
	}

	return &Engine{
		screen:   screen,
		field:    rain.NewField(rain.NewSpawner(opts.Pool, rain.NewRand(opts.Seed))),
		ctrl:     modes.NewController(),
		renderer: render.NewRenderer(),
		clock:    opts.Clock,
		cues:     opts.Cues,
		events:   make(chan tcell.Event, constants.InputQueueSize),
		interval: opts.Interval,
	}
}

// Field returns the simulated field
func (e *Engine) Field() *rain.Field {
	return e.field
}

// Mode returns the current animation mode
func (e *Engine) Mode() modes.Mode {
	return e.ctrl.Mode()
}

// Post queues an input event for a later tick; drops it when the queue is full
func (e *Engine) Post(ev tcell.Event) bool {
	select {
	case e.events <- ev:
		return true
	default:
		return false
	}
}

// PumpInput forwards screen events into the tick queue until the screen is finalized
// PollEvent returns nil after Fini, which ends the pump.
func (e *Engine) PumpInput() {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		if !e.Post(ev) {
			log.Printf("input queue full, dropped %T", ev)
		}
	}
}

// Tick runs one frame and returns false once quit was requested
func (e *Engine) Tick() bool {
	now := e.clock.Now()

	// At most one event per tick; an empty queue is not an error
	select {
	case ev := <-e.events:
		if e.handleEvent(ev, now) {
			return false
		}
	default:
	}

	width, height := e.screen.Size()
	if added, dropped := e.field.Reconcile(width, height); added > 0 || dropped > 0 {
		log.Printf("resize %dx%d -> %dx%d (+%d/-%d columns)", e.width, e.height, width, height, added, dropped)
	}
	e.width, e.height = width, height

	mode := e.ctrl.Mode()
	allDone := false
	if width > 0 && height > 0 {
		allDone = e.field.Advance(mode, height)
	}
	if stats := e.renderer.Draw(e.screen, e.field, mode, width, height); stats.Dropped > 0 {
		log.Printf("frame %d: dropped %d out-of-bounds writes (%dx%d)", e.frame, stats.Dropped, width, height)
	}

	if reason := e.ctrl.Settle(allDone, now); reason != modes.ReasonNone {
		e.field.ResetAll(height)
		e.cues.DrainFinished()
		log.Printf("mode %s -> %s (%s)", mode, e.ctrl.Mode(), reason)
	}

	e.screen.Show()
	e.frame++
	return true
}

// handleEvent applies one input event; returns true when the session should end
func (e *Engine) handleEvent(ev tcell.Event, now time.Time) (quit bool) {
	if _, ok := ev.(*tcell.EventResize); ok {
		e.screen.Sync()
		return false
	}

	cmd := modes.CommandForEvent(ev)
	if cmd == modes.CommandQuit {
		log.Printf("quit requested in %s", e.ctrl.Mode())
		return true
	}
	if cmd != modes.CommandToggle {
		return false
	}

	from := e.ctrl.Mode()
	to, changed := e.ctrl.Toggle(now)
	if !changed {
		return false
	}
	log.Printf("mode %s -> %s (%s)", from, to, modes.ReasonToggle)
	if to == modes.ModeDraining {
		e.cues.DrainStarted()
	}
	return false
}

// Run ticks at the configured interval until quit or ctx is done
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		if !e.Tick() {
			return nil
		}
		select {
		case <-ctx.Done():
			log.Printf("stopping: %v", context.Cause(ctx))
			return nil
		case <-ticker.C:
		}
	}
}
