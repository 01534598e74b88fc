package testutil

import (
	"bytes"
	"io"
	"strings"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// MockOutputSink records everything written to it.
type MockOutputSink struct {
	Out    bytes.Buffer
	Errors []string
}

func (m *MockOutputSink) Print(text string) {
	m.Out.WriteString(text)
	m.Out.WriteString("\n")
}

func (m *MockOutputSink) Error(text string) {
	m.Errors = append(m.Errors, text)
}

func (m *MockOutputSink) Writer() io.Writer {
	return &m.Out
}

// Lines returns the regular output split into lines, without the trailing empty one.
func (m *MockOutputSink) Lines() []string {
	text := strings.TrimSuffix(m.Out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

var _ ports.OutputSink = (*MockOutputSink)(nil)
