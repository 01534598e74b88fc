package testutil

import (
	"io"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// ReadResult is one scripted answer of a MockLineSource.
type ReadResult struct {
	Line string
	Err  error
}

// MockLineSource replays scripted results and then reports io.EOF forever.
type MockLineSource struct {
	Results []ReadResult
	// Prompts keeps track of the prompts passed to ReadLine.
	Prompts []string
	next    int
}

// NewMockLineSource scripts one successful read per line.
func NewMockLineSource(lines ...string) *MockLineSource {
	m := &MockLineSource{}
	for _, l := range lines {
		m.Results = append(m.Results, ReadResult{Line: l})
	}
	return m
}

func (m *MockLineSource) ReadLine(prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.next >= len(m.Results) {
		return "", io.EOF
	}
	r := m.Results[m.next]
	m.next++
	return r.Line, r.Err
}

var _ ports.LineSource = (*MockLineSource)(nil)
