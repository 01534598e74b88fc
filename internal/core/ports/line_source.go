package ports

import "errors"

// ErrInterrupted is returned by a LineSource when the user interrupts the prompt.
var ErrInterrupted = errors.New("interrupted")

/*
LineSource supplies one command line per call, without its terminator.
It returns io.EOF once no further input can arrive; a final line that was
not terminated is returned first with a nil error.
*/
type LineSource interface {
	ReadLine(prompt string) (string, error)
}
