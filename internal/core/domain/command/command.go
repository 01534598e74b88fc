/*
Package command defines the core domain entities that flow through one
interpreter cycle.
*/
package command

// Signal tells the interaction loop whether to read another line.
type Signal int

const (
	// Continue asks the loop to read another line.
	Continue Signal = iota
	// Terminate ends the loop.
	Terminate
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

/*
LaunchResult describes how an external program ended.
Exactly one of Exited or Signaled is true for a completed launch.
*/
type LaunchResult struct {
	Path       string // Resolved executable path
	Pid        int
	Exited     bool
	ExitCode   int
	Signaled   bool
	SignalName string
	Stops      int // Number of stop statuses observed while waiting
}
