package testutil

import (
	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	LaunchFunc func(tokens []string) (command.LaunchResult, error)
	// LaunchCalls keeps track of the token sequences passed to Launch.
	LaunchCalls [][]string
}

// Launch records the call and delegates to LaunchFunc.
// Without LaunchFunc it reports a clean exit.
func (m *MockProcessLauncher) Launch(tokens []string) (command.LaunchResult, error) {
	m.LaunchCalls = append(m.LaunchCalls, tokens)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(tokens)
	}
	return command.LaunchResult{Exited: true}, nil
}

var _ ports.ProcessLauncher = (*MockProcessLauncher)(nil)
