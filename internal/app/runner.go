package app

import (
	"errors"
	"fmt"

	"example.com/modedit/pkg/buffer"
	"example.com/modedit/pkg/config"
	"example.com/modedit/pkg/editor"
	"example.com/modedit/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

// ErrInputClosed is returned by Run when the screen stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

// Runner owns the terminal lifecycle and the event loop for one session.
type Runner struct {
	Screen  tcell.Screen
	Session *editor.Session
	Logger  *logs.Logger
	Keymap  map[string]config.Keybinding
	TopLine int // first document row shown on screen
}

// New creates a Runner editing doc. A nil doc starts with an empty buffer.
func New(doc buffer.Document) *Runner {
	return &Runner{Session: editor.NewSession(doc), Keymap: config.DefaultKeymap()}
}

func (r *Runner) session() *editor.Session {
	if r.Session == nil {
		r.Session = editor.NewSession(nil)
	}
	return r.Session
}

// InitScreen initializes a tcell screen if one is not already set. This puts
// the terminal into raw mode until Fini is called.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini restores the terminal if this runner initialized it and closes the logger.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	r.Logger.Close()
}

// Run starts the event loop. It initializes the screen if needed and
// returns when the session quits. A screen created here is always released,
// including when the loop panics.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
		defer func() {
			if p := recover(); p != nil {
				r.Fini()
				panic(p)
			}
		}()
	}

	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	r.Logger.Event("run.start", map[string]any{"mode": r.session().Mode.String()})
	defer func() {
		r.Logger.Event("run.end", map[string]any{"mode": r.session().Mode.String()})
	}()

	for {
		r.draw()
		ev := r.Screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return ErrInputClosed
		case *tcell.EventKey:
			if r.handleKeyEvent(ev) {
				r.Logger.Event("action", map[string]any{"op": editor.OpQuit.String()})
				return nil
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			r.Logger.Event("resize", map[string]any{"width": w, "height": h})
			r.Screen.Sync()
		}
	}
}
