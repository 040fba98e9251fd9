package editor

import "example.com/modedit/pkg/buffer"

// Session owns one document and the current mode.
type Session struct {
	Doc  buffer.Document
	Mode Mode

	done bool
}

// NewSession starts a session in command mode. A nil doc gets an empty buffer.
func NewSession(doc buffer.Document) *Session {
	if doc == nil {
		doc = buffer.New()
	}
	return &Session{Doc: doc, Mode: ModeCommand}
}

// Handle processes one event and reports whether the session should quit.
// After quit has been reported, further events are ignored.
func (s *Session) Handle(ev Event) bool {
	_, quit := s.Step(ev)
	return quit
}

// Step is Handle that also returns the command that was applied.
func (s *Session) Step(ev Event) (Command, bool) {
	if s.done {
		return Command{}, true
	}
	next, cmd := Dispatch(s.Mode, ev)
	s.Mode = next
	if cmd.Op == OpQuit {
		s.done = true
		return cmd, true
	}
	Apply(s.Doc, cmd)
	return cmd, false
}

// Done reports whether the session has received quit.
func (s *Session) Done() bool {
	return s.done
}

// Frame returns the current render view of the document.
func (s *Session) Frame() buffer.Frame {
	return s.Doc.Render()
}
