/*
Package interaction runs the read, tokenize and dispatch cycle of the shell.
*/
package interaction

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
	"github.com/rs/zerolog"
)

// State is the state of the interaction loop.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Loop is the interaction loop. It is strictly sequential: one cycle at a time.
type Loop struct {
	source     ports.LineSource
	tokenizer  ports.Tokenizer
	dispatcher ports.Dispatcher
	prompt     string
	logger     zerolog.Logger
	state      State
}

// NewLoop creates a loop in the Running state. It panics if any collaborator is nil.
func NewLoop(source ports.LineSource, tokenizer ports.Tokenizer, dispatcher ports.Dispatcher, prompt string, logger zerolog.Logger) *Loop {
	if source == nil || tokenizer == nil || dispatcher == nil {
		panic("interaction loop collaborators cannot be nil")
	}
	return &Loop{
		source:     source,
		tokenizer:  tokenizer,
		dispatcher: dispatcher,
		prompt:     prompt,
		logger:     logger,
		state:      Running,
	}
}

func (l *Loop) State() State {
	return l.state
}

// Run executes cycles until a command terminates the shell or input ends.
// End of input completes one empty cycle and stops the loop without an error.
// Any other read failure stops the loop and is returned.
func (l *Loop) Run() error {
	for l.state == Running {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs exactly one cycle. It is a no-op once the loop has stopped.
func (l *Loop) Step() error {
	if l.state == Stopped {
		return nil
	}

	line, err := l.source.ReadLine(l.prompt)
	endOfInput := false
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		endOfInput = true
		line = ""
	case errors.Is(err, ports.ErrInterrupted):
		line = ""
	default:
		l.state = Stopped
		return fmt.Errorf("reading command line: %w", err)
	}

	tokens := l.tokenizer.Tokenize(line)
	signal := l.dispatcher.Dispatch(tokens)
	l.logger.Debug().Int("tokens", len(tokens)).Stringer("signal", signal).Bool("eof", endOfInput).Msg("cycle complete")

	// Input is exhausted after EOF, so the loop stops instead of re-reading it.
	if signal == command.Terminate || endOfInput {
		l.state = Stopped
	}
	return nil
}
