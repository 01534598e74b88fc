package history

import "github.com/AntonioJCosta/wasabi/internal/core/ports"

// DefaultHistoryFileFinder resolves the readline history file, honoring an explicitly configured path.
type DefaultHistoryFileFinder struct {
	configured string
}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findHistoryFile(d.configured)
}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder.
// An empty configured path selects $HOME/.wasabi/history.
func NewDefaultHistoryFileFinder(configured string) ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{configured: configured}
}
