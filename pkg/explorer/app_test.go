package explorer

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/filetug/explorer/pkg/files"
	"github.com/filetug/explorer/pkg/files/filesmock"
	"github.com/filetug/explorer/pkg/ftlog"
	"github.com/filetug/explorer/pkg/terminal/termtest"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, children []os.DirEntry) (*App, *filesmock.MockStore, tcell.Screen) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := filesmock.NewMockStore(ctrl)
	expectLoad(store, "/data", children)
	b := NewBrowser(store, ftlog.Discard())
	require.NoError(t, b.LoadDirectory(context.Background(), "/data"))
	screen := termtest.NewSimScreen(t, 40, 12)
	app := NewApp(screen, b, ftlog.Discard())
	app.Draw()
	return app, store, screen
}

func press(t *testing.T, app *App, events ...*tcell.EventKey) {
	t.Helper()
	for _, ev := range events {
		require.False(t, app.HandleKey(context.Background(), ev), "unexpected quit on %s", ev.Name())
		app.Draw()
	}
}

func typeText(t *testing.T, app *App, text string) {
	t.Helper()
	for _, r := range text {
		press(t, app, termtest.Rune(r))
	}
}

func backspaces(n int) []*tcell.EventKey {
	keys := make([]*tcell.EventKey, n)
	for i := range keys {
		keys[i] = termtest.Key(tcell.KeyBackspace2)
	}
	return keys
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "browsing", ModeBrowsing.String())
	assert.Equal(t, "editing", ModeEditing.String())
	assert.Equal(t, "unknown", Mode(7).String())
}

func TestApp_BrowserKeys(t *testing.T) {
	app, _, _ := newTestApp(t, numberedFiles(50))
	b := app.browser

	press(t, app, termtest.Rune('j'), termtest.Rune('j'), termtest.Rune('k'))
	assert.Equal(t, 2, b.View().CursorRow)

	press(t, app, termtest.Key(tcell.KeyDown), termtest.Key(tcell.KeyUp), termtest.Key(tcell.KeyDown))
	assert.Equal(t, 3, b.View().CursorRow)

	press(t, app, termtest.Rune('d'))
	assert.Equal(t, 10, b.View().CursorRow)

	press(t, app, termtest.Rune('j'))
	assert.Equal(t, 1, b.View().ScrollOffset)

	press(t, app, termtest.Rune('g'))
	assert.Equal(t, ViewState{CursorRow: 1, ScrollOffset: 0, VisibleCount: 10}, b.View())

	press(t, app, termtest.Rune('x'), termtest.Key(tcell.KeyF5))
	assert.Equal(t, ModeBrowsing, app.Mode())
}

func TestApp_Quit(t *testing.T) {
	for name, ev := range map[string]*tcell.EventKey{
		"q":      termtest.Rune('q'),
		"ctrl_c": termtest.Key(tcell.KeyCtrlC),
	} {
		t.Run(name, func(t *testing.T) {
			app, _, _ := newTestApp(t, numberedFiles(3))
			assert.True(t, app.HandleKey(context.Background(), ev))
		})
	}
}

func TestApp_Navigation(t *testing.T) {
	children := []os.DirEntry{
		files.NewDirEntry("readme.md", false),
		files.NewDirEntry("src", true),
	}
	app, store, screen := newTestApp(t, children)

	press(t, app, termtest.Rune('j'))
	press(t, app, termtest.Key(tcell.KeyEnter))
	assert.Equal(t, "/data", app.browser.Listing().Dir)

	expectLoad(store, "/data/src", []os.DirEntry{files.NewDirEntry("main.go", false)})
	press(t, app, termtest.Rune('g'), termtest.Key(tcell.KeyEnter))
	assert.Equal(t, "/data/src", app.browser.Listing().Dir)
	assert.Equal(t, "/data/src", termtest.ReadTrimmedLine(screen, 0))
	assert.Equal(t, "main.go", termtest.ReadTrimmedLine(screen, 1))

	expectLoad(store, "/data", children)
	press(t, app, termtest.Key(tcell.KeyBackspace2))
	assert.Equal(t, "/data", app.browser.Listing().Dir)
}

func TestApp_NavigationFailureShowsStatus(t *testing.T) {
	children := []os.DirEntry{files.NewDirEntry("locked", true)}
	app, store, screen := newTestApp(t, children)
	store.EXPECT().Canonicalize("/data/locked").Return("/data/locked", nil)
	store.EXPECT().ReadDir(gomock.Any(), "/data/locked").Return(nil, os.ErrPermission)

	press(t, app, termtest.Key(tcell.KeyEnter))

	assert.Equal(t, "/data", app.browser.Listing().Dir)
	status := termtest.ReadTrimmedLine(screen, 11)
	assert.True(t, strings.HasPrefix(status, ErrDirectoryUnreadable.Error()), status)

	press(t, app, termtest.Rune('j'))
	assert.Equal(t, browserHelp[:40], termtest.ReadLine(screen, 11, 40))
}

func TestApp_RenameRoundTrip(t *testing.T) {
	children := []os.DirEntry{
		files.NewDirEntry("dir", true),
		files.NewDirEntry("old.txt", false),
	}
	app, store, screen := newTestApp(t, children)
	store.EXPECT().Rename(gomock.Any(), "/data/old.txt", "/data/new.txt").Return(nil).Times(1)

	press(t, app, termtest.Rune('j'), termtest.Rune('r'))
	require.Equal(t, ModeEditing, app.Mode())
	require.NotNil(t, app.Editor())
	assert.Equal(t, "old.txt", app.Editor().Content())

	press(t, app, backspaces(7)...)
	press(t, app, termtest.Key(tcell.KeyEnter))
	assert.Equal(t, ModeEditing, app.Mode(), "empty content must not confirm")

	typeText(t, app, "new.txt")
	x, y := app.Editor().Origin()
	line := []rune(termtest.ReadLine(screen, y+1, 40))
	assert.Equal(t, "new.txt", string(line[x+1:x+8]))
	assert.Equal(t, "dir", termtest.ReadTrimmedLine(screen, 1), "listing stays visible behind the editor")

	press(t, app, termtest.Key(tcell.KeyEnter))
	assert.Equal(t, ModeBrowsing, app.Mode())
	assert.Nil(t, app.Editor())
	entry, _ := app.browser.Selected()
	assert.Equal(t, Entry{Name: "new.txt", Path: "/data/new.txt"}, entry)
	assert.Equal(t, "new.txt", termtest.ReadTrimmedLine(screen, 2))
}

func TestApp_RenameKeysDoNotReachBrowser(t *testing.T) {
	app, _, _ := newTestApp(t, numberedFiles(20))
	press(t, app, termtest.Rune('r'))
	press(t, app, termtest.Rune('j'), termtest.Rune('q'), termtest.Rune('g'))
	assert.Equal(t, ModeEditing, app.Mode())
	assert.Equal(t, "file00.txtjqg", app.Editor().Content())
	assert.Equal(t, 1, app.browser.View().CursorRow)
}

func TestApp_RenameCancelled(t *testing.T) {
	for name, ev := range map[string]*tcell.EventKey{
		"ctrl_c": termtest.Key(tcell.KeyCtrlC),
		"escape": termtest.Key(tcell.KeyEscape),
	} {
		t.Run(name, func(t *testing.T) {
			children := []os.DirEntry{files.NewDirEntry("old.txt", false)}
			app, _, _ := newTestApp(t, children)

			press(t, app, termtest.Rune('r'))
			typeText(t, app, "-draft")
			press(t, app, ev)

			assert.Equal(t, ModeBrowsing, app.Mode())
			entry, _ := app.browser.Selected()
			assert.Equal(t, Entry{Name: "old.txt", Path: "/data/old.txt"}, entry)
		})
	}
}

func TestApp_RenameFailureShowsStatus(t *testing.T) {
	children := []os.DirEntry{files.NewDirEntry("old.txt", false)}
	app, store, screen := newTestApp(t, children)
	store.EXPECT().Rename(gomock.Any(), "/data/old.txt", "/data/old.txt2").Return(os.ErrPermission)

	press(t, app, termtest.Rune('r'), termtest.Rune('2'), termtest.Key(tcell.KeyEnter))

	assert.Equal(t, ModeBrowsing, app.Mode())
	entry, _ := app.browser.Selected()
	assert.Equal(t, "old.txt", entry.Name)
	assert.Equal(t, 1, app.browser.View().CursorRow)
	status := termtest.ReadTrimmedLine(screen, 11)
	assert.True(t, strings.HasPrefix(status, ErrRenameFailed.Error()), status)
}

func TestApp_RenameOnEmptyDirectory(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	press(t, app, termtest.Rune('r'))
	assert.Equal(t, ModeBrowsing, app.Mode())
}

func TestApp_Run(t *testing.T) {
	children := []os.DirEntry{
		files.NewDirEntry("a.txt", false),
		files.NewDirEntry("b.txt", false),
	}
	app, _, screen := newTestApp(t, children)
	termtest.PostKeys(t, screen, termtest.Rune('j'), termtest.Rune('q'))

	err := app.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, app.browser.View().CursorRow)
}

func TestApp_RunHandlesResize(t *testing.T) {
	app, _, screen := newTestApp(t, numberedFiles(30))
	for i := 0; i < 9; i++ {
		press(t, app, termtest.Rune('j'))
	}
	require.Equal(t, 10, app.browser.View().CursorRow)

	sim := screen.(tcell.SimulationScreen)
	sim.SetSize(40, 6)
	require.NoError(t, screen.PostEvent(tcell.NewEventResize(40, 6)))
	termtest.PostKeys(t, screen, termtest.Rune('q'))

	require.NoError(t, app.Run(context.Background()))

	v := app.browser.View()
	assert.Equal(t, 4, v.VisibleCount)
	assert.Equal(t, 9, v.AbsoluteIndex())
	assert.LessOrEqual(t, v.CursorRow, v.VisibleCount)
}

func TestApp_Draw(t *testing.T) {
	children := []os.DirEntry{
		files.NewDirEntry("notes [draft].txt", false),
		files.NewDirEntry("pics", true),
	}
	_, _, screen := newTestApp(t, children)

	assert.Equal(t, "/data", termtest.ReadTrimmedLine(screen, 0))
	assert.Equal(t, "pics", termtest.ReadTrimmedLine(screen, 1))
	assert.Equal(t, "notes [draft].txt", termtest.ReadTrimmedLine(screen, 2))

	_, dirStyle, _ := screen.Get(0, 1)
	fg, _, _ := dirStyle.Decompose()
	assert.Equal(t, Style.DirColor, fg)

	_, headerStyle, _ := screen.Get(0, 0)
	_, bg, _ := headerStyle.Decompose()
	assert.Equal(t, tcell.ColorBlack, bg)
}
