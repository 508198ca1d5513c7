package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// ParentDir returns the parent of an absolute path.
// The second result is false at the filesystem root.
func ParentDir(p string) (string, bool) {
	cleaned := filepath.Clean(p)
	parent := filepath.Dir(cleaned)
	if parent == cleaned {
		return "", false
	}
	return parent, true
}

// ReplaceBase swaps the last path segment of p for name.
func ReplaceBase(p, name string) string {
	return filepath.Join(filepath.Dir(p), name)
}

// IsValidBaseName reports whether name can be used as a single path segment.
func IsValidBaseName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/`+string(filepath.Separator))
}
