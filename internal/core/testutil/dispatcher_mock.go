package testutil

import (
	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// MockDispatcher is a mock implementation of ports.Dispatcher.
type MockDispatcher struct {
	DispatchFunc  func(tokens []string) command.Signal
	DispatchCalls [][]string
}

func (m *MockDispatcher) Dispatch(tokens []string) command.Signal {
	m.DispatchCalls = append(m.DispatchCalls, tokens)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(tokens)
	}
	return command.Continue
}

var _ ports.Dispatcher = (*MockDispatcher)(nil)
