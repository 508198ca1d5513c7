package explorer

import "errors"

var (
	ErrDirectoryUnreadable = errors.New("directory unreadable")
	ErrRenameFailed        = errors.New("rename failed")
)
