package explorer

import (
	"context"

	"github.com/filetug/explorer/pkg/ftlog"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Mode selects the component that receives keys.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

const renameTitle = "Rename"

// App reads one key at a time, hands it to the active component and
// repaints the screen.
type App struct {
	screen  tcell.Screen
	browser *Browser
	editor  *LineEditor
	mode    Mode
	log     logrus.FieldLogger
}

func NewApp(screen tcell.Screen, browser *Browser, log logrus.FieldLogger) *App {
	if log == nil {
		log = ftlog.Discard()
	}
	return &App{
		screen:  screen,
		browser: browser,
		mode:    ModeBrowsing,
		log:     log,
	}
}

func (a *App) Mode() Mode { return a.mode }

// Editor returns the open line editor, or nil while browsing.
func (a *App) Editor() *LineEditor { return a.editor }

// Run blocks on keys until the user quits or the screen is finalized.
func (a *App) Run(ctx context.Context) error {
	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.HandleKey(ctx, ev) {
				return nil
			}
		default:
			continue
		}
		a.Draw()
	}
}

// HandleKey dispatches by mode and reports whether the user asked to quit.
func (a *App) HandleKey(ctx context.Context, ev *tcell.EventKey) (quit bool) {
	a.log.WithFields(logrus.Fields{"key": ev.Name(), "mode": a.mode}).Debug("key")
	if a.mode == ModeEditing {
		a.handleEditorKey(ctx, ev)
		return false
	}
	return a.handleBrowserKey(ctx, ev)
}

func (a *App) handleBrowserKey(ctx context.Context, ev *tcell.EventKey) (quit bool) {
	b := a.browser
	b.ClearStatus()
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		b.MoveCursorUp()
	case tcell.KeyDown:
		b.MoveCursorDown()
	case tcell.KeyEnter:
		b.EnterSelected(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.GoToParent(ctx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			b.MoveCursorUp()
		case 'j':
			b.MoveCursorDown()
		case 'g':
			b.JumpToTop()
		case 'd':
			b.JumpToBottom()
		case 'r':
			a.startRename()
		}
	}
	return false
}

func (a *App) startRename() {
	entry, ok := a.browser.Selected()
	if !ok {
		return
	}
	cols, rows := a.screen.Size()
	a.editor = NewLineEditor(renameTitle+" "+entry.Name, entry.Name, cols, rows)
	a.mode = ModeEditing
}

func (a *App) handleEditorKey(ctx context.Context, ev *tcell.EventKey) {
	switch a.editor.HandleKey(ev) {
	case EditConfirmed:
		// A failure is already on the status line.
		_ = a.browser.RenameSelected(ctx, a.editor.Content())
		a.closeEditor()
	case EditCancelled:
		a.closeEditor()
	case EditPending:
	}
}

func (a *App) closeEditor() {
	a.editor = nil
	a.mode = ModeBrowsing
}

// Draw repaints the listing and, while renaming, the editor on top of it.
func (a *App) Draw() {
	a.screen.Clear()
	a.browser.Draw(a.screen)
	if a.mode == ModeEditing {
		a.editor.Draw(a.screen)
	}
	a.screen.Show()
}
