// ABOUTME: Editor run loop: refresh the screen, then consume exactly one input event, until quit
// ABOUTME: Owns the Terminal session and releases it exactly once on every exit path

package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauromedda/hecto-go/internal/log"
	"github.com/mauromedda/hecto-go/pkg/tui/input"
	"github.com/mauromedda/hecto-go/pkg/tui/key"
	"github.com/mauromedda/hecto-go/pkg/tui/terminal"
)

const (
	// AppName is shown in the welcome banner.
	AppName = "hecto"

	farewell = "Goodbye.\r\n"
)

// quitKey ends the session.
var quitKey = key.Ctrl('q')

// EventSource yields input events one at a time, blocking until one is
// available. *input.Reader implements it.
type EventSource interface {
	Next(ctx context.Context) (input.Event, error)
}

// Editor drives the input -> state -> render cycle on a single goroutine.
type Editor struct {
	term     *terminal.Terminal
	events   EventSource
	renderer Renderer
	termOpts []terminal.Option

	quit bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithRenderer replaces the default Welcome screen.
func WithRenderer(r Renderer) Option {
	return func(e *Editor) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithTerminalOptions passes options to terminal.New when the Editor is
// created with Open.
func WithTerminalOptions(opts ...terminal.Option) Option {
	return func(e *Editor) { e.termOpts = append(e.termOpts, opts...) }
}

// New returns an Editor that takes ownership of term. Run closes it.
func New(term *terminal.Terminal, events EventSource, opts ...Option) *Editor {
	e := &Editor{
		term:     term,
		events:   events,
		renderer: Welcome{App: AppName, Version: "dev"},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open starts a terminal session on dev and returns an Editor owning it.
// A terminal that cannot be opened is reported as an error wrapping
// terminal.ErrUnavailable, and nothing is drawn.
func Open(dev terminal.Device, events EventSource, opts ...Option) (*Editor, error) {
	e := New(nil, events, opts...)
	term, err := terminal.New(dev, e.termOpts...)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	e.term = term
	return e, nil
}

// Terminal returns the session the Editor owns, for panic-time restoration.
func (e *Editor) Terminal() *terminal.Terminal {
	return e.term
}

// Run refreshes the screen and processes one input event per iteration
// until Ctrl+Q is pressed or ctx is cancelled; either way one farewell frame
// is drawn before returning nil. Any other input or output error ends the
// loop immediately and is returned. The terminal is closed exactly once on
// every path, including panics.
func (e *Editor) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := e.term.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", cerr)
		}
	}()

	for {
		if err := e.refreshScreen(); err != nil {
			return err
		}
		if e.quit {
			log.Debug("editor: quit")
			return nil
		}
		if err := e.processInput(ctx); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				log.Info("editor: %v, shutting down", err)
				e.quit = true
				continue
			}
			return err
		}
	}
}

// refreshScreen draws one frame with the cursor hidden, then parks the
// cursor at the origin and flushes.
func (e *Editor) refreshScreen() error {
	e.term.HideCursor()
	e.term.MoveTo(0, 0)
	if e.quit {
		e.term.Clear()
		e.term.Print(farewell)
	} else {
		e.renderer.Render(e.term)
	}
	e.term.MoveTo(0, 0)
	e.term.ShowCursor()
	return e.term.Flush()
}

func (e *Editor) readKey(ctx context.Context) (input.Event, error) {
	return e.events.Next(ctx)
}

// processInput consumes exactly one event.
func (e *Editor) processInput(ctx context.Context) error {
	ev, err := e.readKey(ctx)
	if err != nil {
		return err
	}

	switch ev := ev.(type) {
	case input.KeyEvent:
		e.processKeypress(ev.Key)
	case input.ResizeEvent:
		log.Debug("editor: resize to %dx%d", ev.Width, ev.Height)
		e.term.SetSize(terminal.Size{Width: ev.Width, Height: ev.Height})
		return e.refreshScreen()
	case input.MouseEvent:
		// Mouse reports are accepted and ignored.
	}
	return nil
}

func (e *Editor) processKeypress(k key.Key) {
	log.Debug("editor: key %s", k)
	if k.IsCtrl(quitKey.Rune) {
		e.quit = true
	}
}
