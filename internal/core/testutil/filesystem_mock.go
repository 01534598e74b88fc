package testutil

import (
	"errors"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
)

// MockFilesystem is a mock implementation of ports.Filesystem.
type MockFilesystem struct {
	GetwdFunc        func() (string, error)
	ChdirFunc        func(dir string) error
	ReadDirNamesFunc func(dir string) ([]string, error)
	MkdirFunc        func(path string) error
	RmdirFunc        func(path string) error

	// Calls records every mutating call as "op path".
	Calls []string
}

func (m *MockFilesystem) Getwd() (string, error) {
	if m.GetwdFunc != nil {
		return m.GetwdFunc()
	}
	return "", errors.New("MockFilesystem: GetwdFunc not implemented")
}

func (m *MockFilesystem) Chdir(dir string) error {
	m.Calls = append(m.Calls, "chdir "+dir)
	if m.ChdirFunc != nil {
		return m.ChdirFunc(dir)
	}
	return errors.New("MockFilesystem: ChdirFunc not implemented")
}

func (m *MockFilesystem) ReadDirNames(dir string) ([]string, error) {
	if m.ReadDirNamesFunc != nil {
		return m.ReadDirNamesFunc(dir)
	}
	return nil, errors.New("MockFilesystem: ReadDirNamesFunc not implemented")
}

func (m *MockFilesystem) Mkdir(path string) error {
	m.Calls = append(m.Calls, "mkdir "+path)
	if m.MkdirFunc != nil {
		return m.MkdirFunc(path)
	}
	return errors.New("MockFilesystem: MkdirFunc not implemented")
}

func (m *MockFilesystem) Rmdir(path string) error {
	m.Calls = append(m.Calls, "rmdir "+path)
	if m.RmdirFunc != nil {
		return m.RmdirFunc(path)
	}
	return errors.New("MockFilesystem: RmdirFunc not implemented")
}

var _ ports.Filesystem = (*MockFilesystem)(nil)
