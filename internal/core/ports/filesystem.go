package ports

import "errors"

var (
	// ErrDirectoryNotEmpty is returned by Rmdir when the directory still has entries.
	ErrDirectoryNotEmpty = errors.New("directory not empty")
	// ErrNotADirectory is returned by Rmdir when the target is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

/*
Filesystem is the driven port the builtins use to touch the working directory
and the directories below it. Missing targets are reported with fs.ErrNotExist
and existing ones with fs.ErrExist.
*/
type Filesystem interface {
	Getwd() (string, error)
	Chdir(dir string) error
	// ReadDirNames returns the names of all entries of dir, sorted by name.
	ReadDirNames(dir string) ([]string, error)
	Mkdir(path string) error
	Rmdir(path string) error
}
