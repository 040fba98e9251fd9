package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"example.com/modedit/internal/app"
	"example.com/modedit/pkg/buffer"
	"example.com/modedit/pkg/config"
	"golang.org/x/term"
)

// modedit is a minimal modal editor. It starts in command mode: 'i' enters
// edit mode, Esc returns to command mode, and 'q' quits. The final buffer is
// printed to stdout once the terminal has been restored.
func main() {
	text := flag.String("text", "", `initial buffer contents; "\n" starts a new row`)
	cfgPath := flag.String("config", "", "keymap file (default ~/.modedit/config.yaml)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fail(errors.New("stdin is not a terminal"))
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fail(err)
	}

	doc := newDocument(*text)
	r := app.New(doc)
	r.Keymap = cfg.Keymap
	if err := edit(r, doc, os.Stdout); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "modedit: %v\n", err)
	os.Exit(1)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

var seedEscapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")

// newDocument builds the starting buffer from the -text flag.
func newDocument(seed string) *buffer.TextBuffer {
	if seed == "" {
		return buffer.New()
	}
	return buffer.FromString(seedEscapes.Replace(seed))
}

// edit runs the session and, once the runner has released the terminal,
// writes the debug dump of doc to out.
func edit(r *app.Runner, doc *buffer.TextBuffer, out io.Writer) error {
	if err := r.Run(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%#v\n", doc)
	return err
}
