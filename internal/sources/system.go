package sources

import (
	"os"

	"github.com/conn-castle/topic-manager/internal/fsutil"
)

// System abstracts the filesystem operations the materializer needs.
type System interface {
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	WithFileLock(path string, fn func() error) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// WithFileLock runs fn while holding an exclusive advisory lock on path.
func (RealSystem) WithFileLock(path string, fn func() error) error {
	return fsutil.WithFileLock(path, fn)
}
