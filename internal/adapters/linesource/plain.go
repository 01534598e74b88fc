package linesource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// PlainSource reads newline-terminated lines from any reader, for piped or scripted input.
type PlainSource struct {
	in        *bufio.Reader
	promptOut io.Writer
}

// NewPlainSource creates a PlainSource. Prompts are written to promptOut unless it is nil.
func NewPlainSource(in io.Reader, promptOut io.Writer) ports.LineSource {
	return &PlainSource{in: bufio.NewReader(in), promptOut: promptOut}
}

// ReadLine returns the next line without its terminator. A final unterminated
// line is returned with a nil error and io.EOF follows on the next call.
func (s *PlainSource) ReadLine(prompt string) (string, error) {
	if s.promptOut != nil && prompt != "" {
		fmt.Fprint(s.promptOut, prompt)
	}

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
