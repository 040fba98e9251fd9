package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)) {
		t.Fatalf("expected match for Ctrl+X rune")
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)) {
		t.Fatalf("expected match for KeyCtrlX")
	}
	if kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', 0)) {
		t.Fatalf("plain x must not match Ctrl+X")
	}
}

func TestParseKeybinding_SingleRune(t *testing.T) {
	kb, err := ParseKeybinding("q")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatalf("expected match for q")
	}
	if kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl)) {
		t.Fatalf("Ctrl+q must not match plain q")
	}
	if kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'Q', 0)) {
		t.Fatalf("Q must not match q")
	}
	if kb.String() != "q" {
		t.Fatalf("expected String() 'q', got %q", kb.String())
	}
}

func TestParseKeybinding_Named(t *testing.T) {
	tests := []struct {
		in  string
		key tcell.Key
	}{
		{"Esc", tcell.KeyEscape},
		{"escape", tcell.KeyEscape},
		{"Enter", tcell.KeyEnter},
		{"LEFT", tcell.KeyLeft},
		{"Right", tcell.KeyRight},
	}
	for _, tt := range tests {
		kb, err := ParseKeybinding(tt.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		if !kb.Matches(tcell.NewEventKey(tt.key, 0, 0)) {
			t.Fatalf("%q: expected match for key %v", tt.in, tt.key)
		}
	}
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, in := range []string{"", "Ctrl+", "Alt+X", "Ctrl+1", "Shift+Left", "\t"} {
		if _, err := ParseKeybinding(in); err == nil {
			t.Fatalf("expected error for invalid keybinding %q", in)
		}
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	if !km[ActionQuit].Matches(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatalf("expected q to quit by default")
	}
	if !km[ActionEdit].Matches(tcell.NewEventKey(tcell.KeyRune, 'i', 0)) {
		t.Fatalf("expected i to enter edit by default")
	}
	if !km[ActionEscape].Matches(tcell.NewEventKey(tcell.KeyEscape, 0, 0)) {
		t.Fatalf("expected Esc by default")
	}
}

func TestLoadConfigRemap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("# remap\nkeymap:\n  quit: Ctrl+X\n  edit: \"a\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Keymap[ActionQuit].Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)) {
		t.Fatalf("expected remapped quit to Ctrl+X")
	}
	if !cfg.Keymap[ActionEdit].Matches(tcell.NewEventKey(tcell.KeyRune, 'a', 0)) {
		t.Fatalf("expected remapped edit to a")
	}
	if !cfg.Keymap[ActionLeft].Matches(tcell.NewEventKey(tcell.KeyLeft, 0, 0)) {
		t.Fatalf("expected untouched actions to keep defaults")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing file, got %v", err)
	}
	if len(cfg.Keymap) != len(DefaultKeymap()) {
		t.Fatalf("expected default keymap")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	for _, body := range []string{"keymap:\n  bogus\n", "keymap:\n  save: Ctrl+S\n", "keymap:\n  quit: Hyper+Q\n"} {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}
