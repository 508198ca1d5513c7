package explorer

import (
	"context"
	"fmt"

	"github.com/filetug/explorer/pkg/files"
	"github.com/filetug/explorer/pkg/fsutils"
	"github.com/filetug/explorer/pkg/ftlog"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// Browser owns the current listing and the cursor over it.
type Browser struct {
	store   files.Store
	log     logrus.FieldLogger
	listing Listing
	view    ViewState
	rows    int
	status  string
}

func NewBrowser(store files.Store, log logrus.FieldLogger) *Browser {
	if log == nil {
		log = ftlog.Discard()
	}
	return &Browser{
		store: store,
		log:   log,
		view:  newViewState(),
		rows:  1,
	}
}

func (b *Browser) Listing() Listing { return b.listing }

func (b *Browser) View() ViewState { return b.view }

// Status is the transient message shown on the status line.
func (b *Browser) Status() string { return b.status }

func (b *Browser) ClearStatus() { b.status = "" }

// SetViewportRows sets how many entries fit on screen.
func (b *Browser) SetViewportRows(rows int) {
	b.rows = max(rows, 1)
	b.fit()
}

func (b *Browser) fit() {
	b.view.Fit(b.listing.Len(), b.rows)
}

// LoadDirectory replaces the listing with the children of path.
// On failure the previous listing and cursor are kept.
func (b *Browser) LoadDirectory(ctx context.Context, path string) error {
	dir, err := b.store.Canonicalize(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, path, err)
	}
	children, err := b.store.ReadDir(ctx, dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, dir, err)
	}
	b.listing = newListing(dir, children)
	b.view = newViewState()
	b.fit()
	b.log.WithFields(logrus.Fields{"dir": dir, "entries": b.listing.Len()}).Info("directory loaded")
	return nil
}

// Selected returns the entry under the cursor.
func (b *Browser) Selected() (Entry, bool) {
	i := b.view.AbsoluteIndex()
	if i < 0 || i >= b.listing.Len() {
		return Entry{}, false
	}
	return b.listing.Entries[i], true
}

func (b *Browser) MoveCursorUp() {
	b.fit()
	b.view.moveUp()
	b.fit()
}

func (b *Browser) MoveCursorDown() {
	b.fit()
	b.view.moveDown(b.listing.Len())
	b.fit()
}

func (b *Browser) JumpToTop() {
	b.view.toTop()
	b.fit()
}

// JumpToBottom selects the last row of the current viewport.
func (b *Browser) JumpToBottom() {
	b.fit()
	b.view.toViewportBottom()
}

// EnterSelected descends into the selected directory; files are ignored.
func (b *Browser) EnterSelected(ctx context.Context) {
	entry, ok := b.Selected()
	if !ok || !entry.IsDir {
		return
	}
	b.navigate(ctx, entry.Path)
}

// GoToParent loads the parent of the current directory, if there is one.
func (b *Browser) GoToParent(ctx context.Context) {
	parent, ok := fsutils.ParentDir(b.listing.Dir)
	if !ok {
		return
	}
	b.navigate(ctx, parent)
}

func (b *Browser) navigate(ctx context.Context, path string) {
	if err := b.LoadDirectory(ctx, path); err != nil {
		b.log.WithError(err).Warn("navigation failed")
		b.status = err.Error()
	}
}

// RenameSelected renames the selected entry to name. The entry is updated
// only after the store reports success.
func (b *Browser) RenameSelected(ctx context.Context, name string) error {
	entry, ok := b.Selected()
	if !ok {
		return nil
	}
	name = norm.NFC.String(name)
	if name == entry.Name {
		return nil
	}
	if !fsutils.IsValidBaseName(name) {
		err := fmt.Errorf("%w: invalid name %q", ErrRenameFailed, name)
		b.status = err.Error()
		return err
	}
	newPath := fsutils.ReplaceBase(entry.Path, name)
	if err := b.store.Rename(ctx, entry.Path, newPath); err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrRenameFailed, entry.Name, err)
		b.log.WithError(err).Warn("rename failed")
		b.status = err.Error()
		return err
	}
	b.log.WithFields(logrus.Fields{"from": entry.Path, "to": newPath}).Info("renamed")
	i := b.view.AbsoluteIndex()
	b.listing.Entries[i].Name = name
	b.listing.Entries[i].Path = newPath
	return nil
}
