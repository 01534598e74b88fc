package testutil

import (
	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// MockBuiltin is a mock implementation of ports.Builtin.
type MockBuiltin struct {
	NameValue string
	RunFunc   func(args []string) command.Signal
	RunCalls  [][]string
}

func (m *MockBuiltin) Name() string    { return m.NameValue }
func (m *MockBuiltin) Summary() string { return "mock builtin " + m.NameValue }

func (m *MockBuiltin) Run(args []string) command.Signal {
	m.RunCalls = append(m.RunCalls, args)
	if m.RunFunc != nil {
		return m.RunFunc(args)
	}
	return command.Continue
}

// MockBuiltinRegistry is a mock implementation of ports.BuiltinRegistry backed by a slice.
type MockBuiltinRegistry struct {
	Entries     []ports.Builtin
	LookupCalls []string
}

func (m *MockBuiltinRegistry) Lookup(name string) (ports.Builtin, bool) {
	m.LookupCalls = append(m.LookupCalls, name)
	for _, b := range m.Entries {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

func (m *MockBuiltinRegistry) Builtins() []ports.Builtin {
	return m.Entries
}

var (
	_ ports.Builtin         = (*MockBuiltin)(nil)
	_ ports.BuiltinRegistry = (*MockBuiltinRegistry)(nil)
)
