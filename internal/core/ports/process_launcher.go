package ports

import (
	"errors"

	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
)

// ErrCommandNotFound indicates that the program named by the first token could not be resolved.
var ErrCommandNotFound = errors.New("command not found")

/*
ProcessLauncher runs an external program and blocks until it has exited or
been killed by a signal. tokens[0] names the program, the rest are its arguments.
*/
type ProcessLauncher interface {
	Launch(tokens []string) (command.LaunchResult, error)
}
