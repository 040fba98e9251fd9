package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Action names understood by the keymap.
const (
	ActionQuit    = "quit"
	ActionEdit    = "edit"
	ActionEscape  = "escape"
	ActionConfirm = "confirm"
	ActionLeft    = "left"
	ActionRight   = "right"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	Keymap map[string]Keybinding `yaml:"keymap"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{Keymap: DefaultKeymap()}
}

// DefaultKeymap provides builtin bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		ActionQuit:    mustParse("q"),
		ActionEdit:    mustParse("i"),
		ActionEscape:  mustParse("Esc"),
		ActionConfirm: mustParse("Enter"),
		ActionLeft:    mustParse("Left"),
		ActionRight:   mustParse("Right"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned. Only the keymap section is read; unknown
// actions are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	inKeymap := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !inKeymap {
			if line == "keymap:" {
				inKeymap = true
			}
			continue
		}
		// a binding may itself be ':' so split on the first one only
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, errors.New("invalid config line: " + line)
		}
		action := strings.TrimSpace(parts[0])
		if _, ok := cfg.Keymap[action]; !ok {
			return nil, errors.New("unknown action in config: " + action)
		}
		kb, err := ParseKeybinding(unquote(strings.TrimSpace(parts[1])))
		if err != nil {
			return nil, err
		}
		cfg.Keymap[action] = kb
	}
	return cfg, nil
}

// LoadDefault attempts to read ~/.modedit/config.yaml.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns ~/.modedit/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".modedit", "config.yaml"), nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

var namedKeys = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// ParseKeybinding converts a textual key description into a Keybinding.
// Accepted forms are a single printable rune ("q"), Ctrl+<letter>
// ("Ctrl+Q") and a named key ("Esc", "Enter", "Left", "Right", "Tab",
// "Backspace").
func ParseKeybinding(s string) (Keybinding, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r < ' ' || r == utf8.RuneError {
			return Keybinding{}, errors.New("invalid key in keybinding: " + s)
		}
		return Keybinding{Key: tcell.KeyRune, Rune: r}, nil
	}
	if k, ok := namedKeys[strings.ToLower(s)]; ok {
		return Keybinding{Key: k}, nil
	}
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
// Plain rune bindings also match when Shift is held, since terminals
// report shifted letters with the modifier set.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	switch {
	case k.Key == tcell.KeyRune && k.Mod == 0:
		return ev.Key() == tcell.KeyRune && ev.Rune() == k.Rune && ev.Modifiers()&^tcell.ModShift == 0
	case k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl:
		if ev.Key() == tcell.KeyRune && ev.Rune() == k.Rune && ev.Modifiers() == tcell.ModCtrl {
			return true
		}
		ctrlKey, ok := ctrlMap[k.Rune]
		return ok && ev.Key() == ctrlKey
	}
	return k.Key == ev.Key() && k.Mod == ev.Modifiers()
}

// String formats the binding the way ParseKeybinding reads it.
func (k Keybinding) String() string {
	if k.Key == tcell.KeyRune {
		if k.Mod == tcell.ModCtrl {
			return "Ctrl+" + strings.ToUpper(string(k.Rune))
		}
		return string(k.Rune)
	}
	for name, key := range namedKeys {
		if key == k.Key && name != "escape" {
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return tcell.KeyNames[k.Key]
}
