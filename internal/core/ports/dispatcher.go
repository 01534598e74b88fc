package ports

import "github.com/AntonioJCosta/wasabi/internal/core/domain/command"

// Dispatcher decides between builtin and external execution for one token sequence.
type Dispatcher interface {
	Dispatch(tokens []string) command.Signal
}
