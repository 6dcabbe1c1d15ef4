package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/digital-rain/audio"
	"github.com/lixenwraith/digital-rain/config"
	"github.com/lixenwraith/digital-rain/engine"
	"github.com/lixenwraith/digital-rain/render"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "digital-rain",
		Short:        "Falling glyph rain for the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Long: strings.TrimSpace(`
Falling glyph rain for the terminal.

Keys:
  space  pause, then drain, then start over
  q      quit

Environment:
  DIGITAL_RAIN_DEBUG=1   write logs/digital-rain.log
  DIGITAL_RAIN_AUDIO=1   chime when a drain starts and ends
  DIGITAL_RAIN_SEED=<n>  fix the random sequence
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(os.LookupEnv)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
}

// run owns the terminal for the session; interrupt and quit both return nil
func run(ctx context.Context, cfg config.Config) error {
	// Trap interrupts before touching the terminal so setup is covered too
	ctx, stop := withInterrupt(ctx)
	defer stop()

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nDIGITAL-RAIN CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(render.StyleTrail)
	screen.HideCursor()
	screen.Clear()

	var cues engine.Cues
	if cfg.Audio {
		c := audio.NewCues()
		if err := c.Initialize(); err != nil {
			// Non-fatal, rain runs silently
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer func() {
				log.Printf("audio: %d chimes played", c.Played())
				c.Close()
			}()
			cues = c
		}
	}

	e := engine.New(screen, engine.Options{Seed: cfg.Seed, Cues: cues})

	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nINPUT POLLER CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		e.PumpInput()
	}()

	width, height := screen.Size()
	log.Printf("starting %dx%d seed=%d audio=%v", width, height, cfg.Seed, cues != nil)

	return e.Run(ctx)
}

// withInterrupt cancels ctx on SIGINT or SIGTERM instead of letting either kill the process
func withInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
