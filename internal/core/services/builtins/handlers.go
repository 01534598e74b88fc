package builtins

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/wasabi/internal/core/domain/command"
	"github.com/AntonioJCosta/wasabi/internal/core/ports"
	"github.com/olekukonko/tablewriter"
)

const (
	msgFolderExists    = "Error: Folder already exists."
	msgFolderNotEmpty  = "Error: Folder not empty."
	msgNotAFolder      = "Provided name is not a folder."
	msgFolderMissing   = "Folder doesn't exist."
	helpBanner         = "Wasabi, a small interactive shell."
	helpBuiltinsHeader = "The following are built-in:"
	helpTrailer        = "Use the man command for information on other programs."
)

func usageError(name string) string {
	return fmt.Sprintf("wasabi: expected argument to %q", name)
}

func osError(err error) string {
	return fmt.Sprintf("wasabi: %v", err)
}

// targetPath joins a single name onto the resolved working directory.
func targetPath(fsys ports.Filesystem, name string) (string, error) {
	cwd, err := fsys.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Join(cwd, name), nil
}

type cdBuiltin struct {
	fs  ports.Filesystem
	out ports.OutputSink
}

func (b *cdBuiltin) Name() string    { return "cd" }
func (b *cdBuiltin) Summary() string { return "change the working directory" }

func (b *cdBuiltin) Run(args []string) command.Signal {
	if len(args) < 2 {
		b.out.Error(usageError("cd"))
		return command.Continue
	}
	if err := b.fs.Chdir(args[1]); err != nil {
		b.out.Error(osError(err))
	}
	return command.Continue
}

type lsBuiltin struct {
	fs  ports.Filesystem
	out ports.OutputSink
}

func (b *lsBuiltin) Name() string    { return "ls" }
func (b *lsBuiltin) Summary() string { return "list the working directory, hiding dot entries" }

func (b *lsBuiltin) Run(_ []string) command.Signal {
	names, err := b.fs.ReadDirNames(".")
	if err != nil {
		b.out.Error(osError(err))
		return command.Continue
	}
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		b.out.Print(name)
	}
	return command.Continue
}

type cwdBuiltin struct {
	fs  ports.Filesystem
	out ports.OutputSink
}

func (b *cwdBuiltin) Name() string    { return "cwd" }
func (b *cwdBuiltin) Summary() string { return "print the absolute working directory" }

func (b *cwdBuiltin) Run(_ []string) command.Signal {
	wd, err := b.fs.Getwd()
	if err != nil {
		b.out.Error(osError(err))
		return command.Continue
	}
	b.out.Print(wd)
	return command.Continue
}

type mkdirBuiltin struct {
	fs  ports.Filesystem
	out ports.OutputSink
}

func (b *mkdirBuiltin) Name() string    { return "mkdir" }
func (b *mkdirBuiltin) Summary() string { return "create a directory in the working directory" }

func (b *mkdirBuiltin) Run(args []string) command.Signal {
	if len(args) < 2 {
		b.out.Error(usageError("mkdir"))
		return command.Continue
	}
	target, err := targetPath(b.fs, args[1])
	if err != nil {
		b.out.Error(osError(err))
		return command.Continue
	}

	err = b.fs.Mkdir(target)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrExist):
		b.out.Error(msgFolderExists)
	default:
		b.out.Error(osError(err))
	}
	return command.Continue
}

type rmdirBuiltin struct {
	fs  ports.Filesystem
	out ports.OutputSink
}

func (b *rmdirBuiltin) Name() string    { return "rmdir" }
func (b *rmdirBuiltin) Summary() string { return "remove an empty directory from the working directory" }

func (b *rmdirBuiltin) Run(args []string) command.Signal {
	if len(args) < 2 {
		b.out.Error(usageError("rmdir"))
		return command.Continue
	}
	target, err := targetPath(b.fs, args[1])
	if err != nil {
		b.out.Error(osError(err))
		return command.Continue
	}

	err = b.fs.Rmdir(target)
	switch {
	case err == nil:
	case errors.Is(err, ports.ErrDirectoryNotEmpty):
		b.out.Error(msgFolderNotEmpty)
	case errors.Is(err, ports.ErrNotADirectory):
		b.out.Error(msgNotAFolder)
	case errors.Is(err, fs.ErrNotExist):
		b.out.Error(msgFolderMissing)
	default:
		b.out.Error(osError(err))
	}
	return command.Continue
}

type helpBuiltin struct {
	out  ports.OutputSink
	list func() []ports.Builtin
}

func (b *helpBuiltin) Name() string    { return "help" }
func (b *helpBuiltin) Summary() string { return "show this help" }

func (b *helpBuiltin) Run(_ []string) command.Signal {
	b.out.Print(helpBanner)
	b.out.Print(helpBuiltinsHeader)

	table := tablewriter.NewWriter(b.out.Writer())
	table.SetHeader([]string{"Builtin", "Description"})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, builtin := range b.list() {
		table.Append([]string{builtin.Name(), builtin.Summary()})
	}
	table.Render()

	b.out.Print(helpTrailer)
	return command.Continue
}

type exitBuiltin struct{}

func (b *exitBuiltin) Name() string    { return "exit" }
func (b *exitBuiltin) Summary() string { return "leave the shell" }

func (b *exitBuiltin) Run(_ []string) command.Signal {
	return command.Terminate
}
