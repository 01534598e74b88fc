package osfs

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/wasabi/internal/core/ports"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// DirMode is the permission mode for directories created by Mkdir, before the umask.
const DirMode os.FileMode = 0755

// Filesystem implements ports.Filesystem on top of the host filesystem.
// The working directory is the process-wide one.
type Filesystem struct {
	fs afero.Fs
}

// NewFilesystem creates a new Filesystem backed by the operating system.
func NewFilesystem() ports.Filesystem {
	return &Filesystem{fs: afero.NewOsFs()}
}

// Getwd returns the absolute working directory of the process.
func (f *Filesystem) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the working directory of the whole process.
func (f *Filesystem) Chdir(dir string) error {
	return os.Chdir(dir)
}

// ReadDirNames returns the entry names of dir sorted by name.
func (f *Filesystem) ReadDirNames(dir string) ([]string, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// Mkdir creates a single directory with DirMode. An existing target yields an fs.ErrExist error.
func (f *Filesystem) Mkdir(path string) error {
	return f.fs.Mkdir(path, DirMode)
}

// Rmdir removes an empty directory with rmdir(2). Unlike os.Remove it never unlinks a file.
func (f *Filesystem) Rmdir(path string) error {
	if err := unix.Rmdir(path); err != nil {
		return classifyRmdirError(path, err)
	}
	return nil
}

func classifyRmdirError(path string, err error) error {
	pathErr := &os.PathError{Op: "rmdir", Path: path, Err: err}
	switch {
	case errors.Is(err, unix.ENOTEMPTY), errors.Is(err, unix.EEXIST):
		return fmt.Errorf("%w: %w", ports.ErrDirectoryNotEmpty, pathErr)
	case errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("%w: %w", ports.ErrNotADirectory, pathErr)
	default:
		return pathErr
	}
}
