package linesource

import (
	"errors"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
	"github.com/chzyer/readline"
)

// ReadlineSource reads lines from an interactive terminal with line editing and history.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource creates a ReadlineSource. History is persisted to historyFile unless it is empty.
func NewReadlineSource(historyFile string) (*ReadlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineSource{rl: rl}, nil
}

// ReadLine maps Ctrl-C to ports.ErrInterrupted; Ctrl-D on an empty line yields io.EOF.
func (s *ReadlineSource) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ports.ErrInterrupted
	}
	return line, err
}

func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}

var _ ports.LineSource = (*ReadlineSource)(nil)
