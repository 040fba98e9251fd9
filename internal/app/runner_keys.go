package app

import (
	"unicode"

	"example.com/modedit/pkg/config"
	"example.com/modedit/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

var defaultKeymap = config.DefaultKeymap()

// matchCommand reports whether ev triggers the named action. Actions missing
// from the runner's keymap fall back to the default binding.
func (r *Runner) matchCommand(ev *tcell.EventKey, action string) bool {
	kb, ok := r.Keymap[action]
	if !ok {
		kb, ok = defaultKeymap[action]
	}
	return ok && kb.Matches(ev)
}

// translate classifies a key event for the session. The quit and edit
// bindings are only consulted in command mode so the same keys can be typed
// as text in edit mode.
func (r *Runner) translate(ev *tcell.EventKey) editor.Event {
	if r.session().Mode == editor.ModeCommand {
		switch {
		case r.matchCommand(ev, config.ActionQuit):
			return editor.Event{Kind: editor.EventQuit}
		case r.matchCommand(ev, config.ActionEdit):
			return editor.Event{Kind: editor.EventEnterEdit}
		}
	}
	switch {
	case r.matchCommand(ev, config.ActionEscape):
		return editor.Event{Kind: editor.EventEscape}
	case r.matchCommand(ev, config.ActionConfirm):
		return editor.Event{Kind: editor.EventConfirm}
	case r.matchCommand(ev, config.ActionLeft):
		return editor.Event{Kind: editor.EventLeft}
	case r.matchCommand(ev, config.ActionRight):
		return editor.Event{Kind: editor.EventRight}
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&^tcell.ModShift == 0 && unicode.IsPrint(ev.Rune()) {
		return editor.Event{Kind: editor.EventRune, Rune: ev.Rune()}
	}
	return editor.Event{}
}

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	s := r.session()
	e := r.translate(ev)
	from := s.Mode
	r.Logger.Event("key", map[string]any{
		"key":       int(ev.Key()),
		"rune":      string(ev.Rune()),
		"modifiers": int(ev.Modifiers()),
		"mode":      from.String(),
	})
	cmd, quit := s.Step(e)
	if s.Mode != from {
		r.Logger.Event("mode", map[string]any{"from": from.String(), "to": s.Mode.String()})
	}
	if cmd.Op != editor.OpNone && cmd.Op != editor.OpQuit {
		c := s.Frame().Cursor
		r.Logger.Event("action", map[string]any{"op": cmd.Op.String(), "row": c.Row, "col": c.Col})
	}
	return quit
}
