package linesource

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
	"github.com/mattn/go-isatty"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New picks the line source for in: readline when in is a terminal, a plain reader otherwise.
// The returned closer releases the terminal and flushes history.
func New(in *os.File, promptOut io.Writer, historyFile string) (ports.LineSource, io.Closer, error) {
	if !IsTerminal(in) {
		return NewPlainSource(in, promptOut), nopCloser{}, nil
	}
	rl, err := NewReadlineSource(historyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing readline: %w", err)
	}
	return rl, rl, nil
}
