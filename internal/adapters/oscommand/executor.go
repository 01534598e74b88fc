package oscommand

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

type wait4Func func(pid int, status *unix.WaitStatus, options int, rusage *unix.Rusage) (int, error)

// ProcessLauncher implements the ProcessLauncher interface by starting programs found on PATH.
// Children inherit the interpreter's standard streams, environment and working directory.
type ProcessLauncher struct {
	stdin  *os.File
	stdout *os.File
	stderr *os.File
	logger zerolog.Logger
	wait4  wait4Func
}

// NewProcessLauncher creates a new ProcessLauncher wired to the given standard streams.
func NewProcessLauncher(stdin, stdout, stderr *os.File, logger zerolog.Logger) ports.ProcessLauncher {
	return &ProcessLauncher{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		wait4:  unix.Wait4,
	}
}

// Launch resolves tokens[0], starts it with tokens as its argument vector and blocks
// until the child has exited or was killed by a signal.
// A program missing from PATH yields an error wrapping ports.ErrCommandNotFound and no child is started.
func (l *ProcessLauncher) Launch(tokens []string) (command.LaunchResult, error) {
	if len(tokens) == 0 {
		return command.LaunchResult{}, errors.New("no program to launch")
	}
	name := tokens[0]

	path, err := l.resolve(name)
	if err != nil {
		return command.LaunchResult{}, err
	}

	argv := make([]string, len(tokens))
	copy(argv, tokens)

	proc, err := os.StartProcess(path, argv, &os.ProcAttr{
		Files: []*os.File{l.stdin, l.stdout, l.stderr},
	})
	if err != nil {
		return command.LaunchResult{}, fmt.Errorf("starting %s: %w", name, err)
	}
	// The child is reaped by waitForTerminalStatus, Release only drops the handle.
	defer proc.Release()

	result := command.LaunchResult{Path: path, Pid: proc.Pid}
	l.logger.Debug().Str("path", path).Int("pid", proc.Pid).Strs("argv", argv).Msg("child started")

	if err := l.waitForTerminalStatus(&result); err != nil {
		return result, err
	}
	return result, nil
}

// resolve finds name on PATH. Only a program that is nowhere to be found wraps
// ports.ErrCommandNotFound; other failures, such as a file without execute
// permission, are returned as they are. Matches in relative PATH entries are run.
func (l *ProcessLauncher) resolve(name string) (string, error) {
	path, err := exec.LookPath(name)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, exec.ErrDot):
		l.logger.Debug().Str("program", name).Str("path", path).Msg("resolved through a relative PATH entry")
		return path, nil
	case errors.Is(err, exec.ErrNotFound):
		l.logger.Debug().Err(err).Str("program", name).Msg("program resolution failed")
		return "", fmt.Errorf("%s: %w", name, ports.ErrCommandNotFound)
	default:
		l.logger.Debug().Err(err).Str("program", name).Msg("program resolution failed")
		return "", err
	}
}

// waitForTerminalStatus blocks until result.Pid has exited or been killed.
// Stop statuses are counted and waiting resumes.
func (l *ProcessLauncher) waitForTerminalStatus(result *command.LaunchResult) error {
	for {
		var status unix.WaitStatus
		_, err := l.wait4(result.Pid, &status, unix.WUNTRACED, nil)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("waiting for pid %d: %w", result.Pid, err)
		}

		switch {
		case status.Exited():
			result.Exited = true
			result.ExitCode = status.ExitStatus()
			l.logger.Debug().Int("pid", result.Pid).Int("exit_code", result.ExitCode).Msg("child exited")
			return nil
		case status.Signaled():
			result.Signaled = true
			result.ExitCode = -1
			result.SignalName = unix.SignalName(status.Signal())
			l.logger.Debug().Int("pid", result.Pid).Str("signal", result.SignalName).Msg("child killed")
			return nil
		case status.Stopped():
			result.Stops++
			l.logger.Debug().Int("pid", result.Pid).Str("signal", unix.SignalName(status.StopSignal())).Msg("child stopped, still waiting")
		}
	}
}
