package ports

import "github.com/AntonioJCosta/wasabi/internal/core/domain/command"

// Builtin is a command implemented inside the interpreter.
type Builtin interface {
	Name() string
	Summary() string
	// Run receives the full token sequence, args[0] being the builtin's own name.
	Run(args []string) command.Signal
}

// BuiltinRegistry resolves builtin names. Matching is exact and case-sensitive.
type BuiltinRegistry interface {
	Lookup(name string) (Builtin, bool)
	// Builtins returns every registered builtin in registration order.
	Builtins() []Builtin
}
