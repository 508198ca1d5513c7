package osfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/filetug/explorer/pkg/files"
)

var osReadDir = readDirUnsorted
var osRename = os.Rename
var osStat = os.Stat
var osLstat = os.Lstat
var filepathAbs = filepath.Abs
var filepathEvalSymlinks = filepath.EvalSymlinks

var _ files.Store = (*Store)(nil)

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// ReadDir returns the children of name in the order the OS enumerates them.
// Symlinks are reported with the kind of their target; broken links are files.
func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	children, err := osReadDir(name)
	if err != nil {
		return nil, err
	}
	entries := make([]os.DirEntry, len(children))
	for i, child := range children {
		isDir := child.IsDir()
		if child.Type()&os.ModeSymlink != 0 {
			if info, err := osStat(filepath.Join(name, child.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		entries[i] = files.NewDirEntry(child.Name(), isDir)
	}
	return entries, nil
}

// Rename moves oldPath to newPath. It fails with fs.ErrExist when newPath
// names another file.
func (s Store) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkTargetFree(oldPath, newPath); err != nil {
		return err
	}
	return osRename(oldPath, newPath)
}

// checkTargetFree refuses to replace an existing file.
// A target that is the source itself (case-only rename) is allowed.
func checkTargetFree(oldPath, newPath string) error {
	target, err := osLstat(newPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	source, err := osLstat(oldPath)
	if err != nil {
		return err
	}
	if os.SameFile(source, target) {
		return nil
	}
	return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrExist}
}

// readDirUnsorted is os.ReadDir without the sort by name.
func readDirUnsorted(name string) ([]os.DirEntry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return f.ReadDir(-1)
}

// Canonicalize returns the absolute path with symlinks resolved.
func (s Store) Canonicalize(path string) (string, error) {
	abs, err := filepathAbs(path)
	if err != nil {
		return "", err
	}
	return filepathEvalSymlinks(abs)
}
