package oscommand

import (
	"errors"
	"syscall"
	"testing"

	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// Linux wait status encodings.
func exitedStatus(code int) unix.WaitStatus             { return unix.WaitStatus(code << 8) }
func signaledStatus(sig syscall.Signal) unix.WaitStatus { return unix.WaitStatus(sig) }
func stoppedStatus(sig syscall.Signal) unix.WaitStatus  { return unix.WaitStatus(int(sig)<<8 | 0x7f) }

type waitStep struct {
	status unix.WaitStatus
	err    error
}

func scriptedWait4(t *testing.T, wantPid int, steps []waitStep) (wait4Func, *int) {
	calls := 0
	return func(pid int, status *unix.WaitStatus, options int, _ *unix.Rusage) (int, error) {
		require.Equal(t, wantPid, pid)
		require.Equal(t, unix.WUNTRACED, options&unix.WUNTRACED, "wait4 must observe stopped children")
		require.Less(t, calls, len(steps), "wait4 called after a terminal status")
		step := steps[calls]
		calls++
		if step.err != nil {
			return -1, step.err
		}
		*status = step.status
		return pid, nil
	}, &calls
}

func TestProcessLauncher_WaitForTerminalStatus(t *testing.T) {
	tests := []struct {
		name      string
		steps     []waitStep
		want      command.LaunchResult
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "exits immediately",
			steps:     []waitStep{{status: exitedStatus(0)}},
			want:      command.LaunchResult{Pid: 42, Exited: true, ExitCode: 0},
			wantCalls: 1,
		},
		{
			name:      "stop does not end the wait",
			steps:     []waitStep{{status: stoppedStatus(unix.SIGTSTP)}, {status: stoppedStatus(unix.SIGSTOP)}, {status: exitedStatus(3)}},
			want:      command.LaunchResult{Pid: 42, Exited: true, ExitCode: 3, Stops: 2},
			wantCalls: 3,
		},
		{
			name:      "interrupted wait is retried",
			steps:     []waitStep{{err: unix.EINTR}, {status: signaledStatus(unix.SIGTERM)}},
			want:      command.LaunchResult{Pid: 42, Signaled: true, ExitCode: -1, SignalName: "SIGTERM"},
			wantCalls: 2,
		},
		{
			name:      "wait failure is returned",
			steps:     []waitStep{{err: unix.ECHILD}},
			want:      command.LaunchResult{Pid: 42},
			wantErr:   true,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait4, calls := scriptedWait4(t, 42, tt.steps)
			l := &ProcessLauncher{logger: zerolog.Nop(), wait4: wait4}
			result := command.LaunchResult{Pid: 42}

			err := l.waitForTerminalStatus(&result)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, unix.ECHILD))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, result)
			assert.Equal(t, tt.wantCalls, *calls)
		})
	}
}
