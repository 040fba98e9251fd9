package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"example.com/modedit/internal/app"
	"example.com/modedit/pkg/config"
	"github.com/gdamore/tcell/v2"
)

func TestNewDocument(t *testing.T) {
	tests := []struct {
		seed string
		want []string
	}{
		{"", []string{""}},
		{`ab\ncd`, []string{"ab", "cd"}},
		{"ab\ncd", []string{"ab", "cd"}},
		{`a\\nb`, []string{`a\nb`}},
		{`x\ty\n`, []string{"x\ty", ""}},
	}
	for _, tt := range tests {
		got := newDocument(tt.seed).Lines()
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Fatalf("seed %q: expected %q, got %q", tt.seed, tt.want, got)
		}
	}
}

func TestLoadConfig_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("keymap:\n  quit: Ctrl+Q\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Keymap[config.ActionQuit].Matches(tcell.NewEventKey(tcell.KeyCtrlQ, 0, 0)) {
		t.Fatalf("expected quit bound to Ctrl+Q")
	}
}

// TestEdit_DumpsAfterQuit drives a session on a simulation screen and checks
// the debug dump written after the runner returns.
func TestEdit_DumpsAfterQuit(t *testing.T) {
	// Use a simulation screen to avoid /dev/tty dependencies in CI/sandbox.
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing screen failed: %v", err)
	}
	defer s.Fini()
	s.SetSize(80, 24)

	doc := newDocument(`ab\ncd`)
	r := app.New(doc)
	r.Screen = s

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- edit(r, doc, &out) }()

	s.PostEventWait(tcell.NewEventKey(tcell.KeyRune, 'i', 0))
	s.PostEventWait(tcell.NewEventKey(tcell.KeyRune, 'z', 0))
	s.PostEventWait(tcell.NewEventKey(tcell.KeyEsc, 0, 0))
	s.PostEventWait(tcell.NewEventKey(tcell.KeyRune, 'q', 0))

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("edit returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for editor to quit")
	}

	dump := out.String()
	for _, want := range []string{"TextBuffer", `"zab"`, `"cd"`, "row: 0", "col: 1"} {
		if !strings.Contains(dump, want) {
			t.Fatalf("expected dump to contain %q, got:\n%s", want, dump)
		}
	}
}
