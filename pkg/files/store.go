package files

//go:generate mockgen -source=store.go -destination=filesmock/mock_store.go -package=filesmock

import (
	"context"
	"os"
)

// Store is the filesystem collaborator of the explorer.
type Store interface {
	// ReadDir lists the immediate children of name in enumeration order.
	// IsDir of a returned entry reports the kind of the symlink target.
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Rename(ctx context.Context, oldPath, newPath string) error
	Canonicalize(path string) (string, error)
}
