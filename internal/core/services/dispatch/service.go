package dispatch

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
	"github.com/rs/zerolog"
)

type service struct {
	builtins ports.BuiltinRegistry
	launcher ports.ProcessLauncher
	out      ports.OutputSink
	logger   zerolog.Logger
}

// NewService creates a new dispatcher.
// It panics if any collaborator is nil.
func NewService(builtins ports.BuiltinRegistry, launcher ports.ProcessLauncher, out ports.OutputSink, logger zerolog.Logger) ports.Dispatcher {
	if builtins == nil {
		panic("builtin registry cannot be nil")
	}
	if launcher == nil {
		panic("process launcher cannot be nil")
	}
	if out == nil {
		panic("output sink cannot be nil")
	}
	return &service{builtins: builtins, launcher: launcher, out: out, logger: logger}
}

// Dispatch runs tokens as a builtin when tokens[0] names one, otherwise as an external program.
// An empty token sequence is a no-op.
func (s *service) Dispatch(tokens []string) command.Signal {
	if len(tokens) == 0 {
		return command.Continue
	}

	if b, ok := s.builtins.Lookup(tokens[0]); ok {
		signal := b.Run(tokens)
		s.logger.Debug().Str("builtin", b.Name()).Stringer("signal", signal).Msg("builtin finished")
		return signal
	}

	return s.launch(tokens)
}

// launch always continues: failures are reported here and the child's status is only logged.
func (s *service) launch(tokens []string) command.Signal {
	result, err := s.launcher.Launch(tokens)
	if err != nil {
		if errors.Is(err, ports.ErrCommandNotFound) {
			s.out.Error(fmt.Sprintf("wasabi: %s: command not found", tokens[0]))
		} else {
			s.out.Error(fmt.Sprintf("wasabi: %v", err))
		}
		s.logger.Debug().Err(err).Strs("argv", tokens).Msg("launch failed")
		return command.Continue
	}

	event := s.logger.Debug().Str("path", result.Path).Int("pid", result.Pid)
	if result.Signaled {
		event.Str("signal", result.SignalName).Msg("external program killed")
	} else {
		event.Int("exit_code", result.ExitCode).Msg("external program exited")
	}
	return command.Continue
}
