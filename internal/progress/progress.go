// Package progress shows how far a processing loop has got.
package progress

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

type Bar interface {
	Add(n int) error
	Finish() error
}

// Factory creates bars. The zero value creates bars that draw nothing.
type Factory struct {
	Writer  io.Writer
	Enabled bool
}

// ForTerminal enables bars only when f is attached to a terminal.
func ForTerminal(f *os.File, enabled bool) Factory {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return Factory{Writer: f, Enabled: enabled && tty}
}

func (f Factory) New(description string, total int) Bar {
	if !f.Enabled || f.Writer == nil {
		return nop{}
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(f.Writer),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(f.Writer, "\n") }),
	)
}

type nop struct{}

func (nop) Add(int) error { return nil }
func (nop) Finish() error { return nil }
