package ports

import "io"

// OutputSink is where user-visible text goes: listings, results and error messages.
type OutputSink interface {
	// Print writes one line of regular output.
	Print(text string)
	// Error writes one line of error output.
	Error(text string)
	// Writer exposes the regular output stream for multi-line rendering.
	Writer() io.Writer
}
