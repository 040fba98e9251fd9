package editor

import "example.com/modedit/pkg/buffer"

// Mode is the input-interpretation context.
type Mode int

const (
	ModeCommand Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeEdit:
		return "EDIT"
	}
	return "UNKNOWN"
}

// Label is the status text shown on the bottom row.
func (m Mode) Label() string {
	return "In " + m.String() + " mode"
}

// EventKind classifies a key press. Anything the input layer does not
// recognize arrives as EventNone.
type EventKind int

const (
	EventNone EventKind = iota
	EventRune
	EventConfirm
	EventEscape
	EventLeft
	EventRight
	EventQuit
	EventEnterEdit
)

// Event is one discrete input event. Rune is set for EventRune.
type Event struct {
	Kind EventKind
	Rune rune
}

// Op is a buffer operation requested by Dispatch.
type Op int

const (
	OpNone Op = iota
	OpQuit
	OpInsert
	OpSplitLine
	OpMoveLeft
	OpMoveRight
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpQuit:
		return "quit"
	case OpInsert:
		return "insert"
	case OpSplitLine:
		return "split"
	case OpMoveLeft:
		return "left"
	case OpMoveRight:
		return "right"
	}
	return "unknown"
}

// Command is the effect of one event. Rune is set for OpInsert.
type Command struct {
	Op   Op
	Rune rune
}

// Dispatch returns the next mode and the command to run for ev. It has no
// side effects.
func Dispatch(m Mode, ev Event) (Mode, Command) {
	switch m {
	case ModeCommand:
		switch ev.Kind {
		case EventQuit:
			return ModeCommand, Command{Op: OpQuit}
		case EventEnterEdit:
			return ModeEdit, Command{}
		}
	case ModeEdit:
		switch ev.Kind {
		case EventEscape:
			// The cursor is left where it is; it is already valid.
			return ModeCommand, Command{}
		case EventRune:
			return ModeEdit, Command{Op: OpInsert, Rune: ev.Rune}
		case EventConfirm:
			return ModeEdit, Command{Op: OpSplitLine}
		case EventLeft:
			return ModeEdit, Command{Op: OpMoveLeft}
		case EventRight:
			return ModeEdit, Command{Op: OpMoveRight}
		}
	}
	return m, Command{}
}

// Apply runs cmd against doc. OpNone and OpQuit leave doc untouched.
func Apply(doc buffer.Document, cmd Command) {
	switch cmd.Op {
	case OpInsert:
		doc.InsertChar(cmd.Rune)
	case OpSplitLine:
		doc.SplitLine()
	case OpMoveLeft:
		doc.MoveLeft()
	case OpMoveRight:
		doc.MoveRight()
	}
}
