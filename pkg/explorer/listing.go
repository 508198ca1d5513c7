package explorer

import (
	"os"
	"path/filepath"
	"sort"
)

// Entry is one child of the current directory.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// Listing is the content of Dir as read by the last successful load.
type Listing struct {
	Dir     string
	Entries []Entry
}

func newListing(dir string, children []os.DirEntry) Listing {
	entries := make([]Entry, len(children))
	for i, child := range children {
		entries[i] = Entry{
			Name:  child.Name(),
			Path:  filepath.Join(dir, child.Name()),
			IsDir: child.IsDir(),
		}
	}
	sortDirsFirst(entries)
	return Listing{Dir: dir, Entries: entries}
}

// sortDirsFirst moves directories in front of files and keeps the
// enumeration order inside each group.
func sortDirsFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].IsDir && !entries[j].IsDir
	})
}

func (l Listing) Len() int {
	return len(l.Entries)
}
