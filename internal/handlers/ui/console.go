package ui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// Console writes regular output and colored error lines to two streams.
// It implements ports.OutputSink.
type Console struct {
	out io.Writer
	err io.Writer
}

// NewConsole creates a Console. Typically out is os.Stdout and err is os.Stderr.
func NewConsole(out, err io.Writer) *Console {
	return &Console{out: out, err: err}
}

func (c *Console) Print(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) Error(text string) {
	fmt.Fprintln(c.err, ErrorColor(text))
}

func (c *Console) Writer() io.Writer {
	return c.out
}

var _ ports.OutputSink = (*Console)(nil)
