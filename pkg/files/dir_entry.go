package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func NewDirEntry(name string, isDir bool) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	return DirEntry{
		name:  name,
		isDir: isDir,
	}
}

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry is an os.DirEntry whose kind has already been resolved.
type DirEntry struct {
	name  string
	isDir bool
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

// Info is not available for a resolved entry.
func (d DirEntry) Info() (os.FileInfo, error) {
	return nil, fmt.Errorf("%w: no file info for %s", errors.ErrUnsupported, d.name)
}
