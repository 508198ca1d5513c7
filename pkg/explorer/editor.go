package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// EditResult tells the caller whether the editor is still open.
type EditResult int

const (
	EditPending EditResult = iota
	EditConfirmed
	EditCancelled
)

// LineEditor is a single line text field drawn in a centered box.
// Its geometry is fixed when it is created.
type LineEditor struct {
	title   string
	content []rune
	offset  int // cursor position in runes
	scroll  int // first rune drawn

	x, y          int
	width, height int
}

// NewLineEditor creates an editor holding content with the cursor at its end.
// The box takes half of a cols x rows terminal.
func NewLineEditor(title, content string, cols, rows int) *LineEditor {
	e := &LineEditor{
		title:   title,
		content: []rune(content),
		x:       cols / 4,
		y:       rows / 2,
		width:   max(cols/2, 1),
		height:  max(rows/2, 1),
	}
	e.offset = len(e.content)
	e.adjustScroll()
	return e
}

func (e *LineEditor) Content() string {
	return string(e.content)
}

// Origin is the top left corner of the box.
func (e *LineEditor) Origin() (x, y int) {
	return e.x, e.y
}

// EditCursor is the screen column the next insertion applies to: one past
// the box border plus the width of the text before the cursor.
func (e *LineEditor) EditCursor() int {
	return e.x + 1 + runewidth.StringWidth(string(e.content[:e.offset]))
}

func (e *LineEditor) InsertChar(c rune) {
	e.content = append(e.content, 0)
	copy(e.content[e.offset+1:], e.content[e.offset:])
	e.content[e.offset] = c
	e.offset++
	e.adjustScroll()
}

// DeleteChar removes the character before the cursor.
func (e *LineEditor) DeleteChar() {
	if len(e.content) == 0 || e.offset == 0 {
		return
	}
	e.content = append(e.content[:e.offset-1], e.content[e.offset:]...)
	e.offset--
	e.adjustScroll()
}

func (e *LineEditor) MoveCursorLeft() {
	if e.offset > 0 {
		e.offset--
		e.adjustScroll()
	}
}

func (e *LineEditor) MoveCursorRight() {
	if e.offset < len(e.content) {
		e.offset++
		e.adjustScroll()
	}
}

func (e *LineEditor) moveCursorHome() {
	e.offset = 0
	e.adjustScroll()
}

func (e *LineEditor) moveCursorEnd() {
	e.offset = len(e.content)
	e.adjustScroll()
}

// adjustScroll keeps the cursor cell inside the box.
func (e *LineEditor) adjustScroll() {
	if e.offset < e.scroll {
		e.scroll = e.offset
	}
	for e.scroll < e.offset && runewidth.StringWidth(string(e.content[e.scroll:e.offset])) >= e.width {
		e.scroll++
	}
}

// HandleKey applies one key. Enter on empty content is swallowed.
func (e *LineEditor) HandleKey(ev *tcell.EventKey) EditResult {
	switch ev.Key() {
	case tcell.KeyEnter:
		if len(e.content) > 0 {
			return EditConfirmed
		}
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return EditCancelled
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.DeleteChar()
	case tcell.KeyLeft:
		e.MoveCursorLeft()
	case tcell.KeyRight:
		e.MoveCursorRight()
	case tcell.KeyHome:
		e.moveCursorHome()
	case tcell.KeyEnd:
		e.moveCursorEnd()
	case tcell.KeyRune:
		e.InsertChar(ev.Rune())
	}
	return EditPending
}

// Draw renders the bordered box with the visible part of the content and
// moves the terminal cursor to the edit position.
func (e *LineEditor) Draw(screen tcell.Screen) {
	box := tview.NewBox().
		SetBorder(true).
		SetBorderColor(Style.EditorBorderColor).
		SetTitle(" " + tview.Escape(e.title) + " ").
		SetTitleColor(Style.EditorTitleColor).
		SetTitleAlign(tview.AlignLeft).
		SetBackgroundColor(tcell.ColorBlack)
	box.SetRect(e.x, e.y, e.width+2, 3)
	box.Draw(screen)

	printLine(screen, e.x+1, e.y+1, e.width, string(e.content[e.scroll:]), Style.EditorTextStyle)
	prefix := runewidth.StringWidth(string(e.content[e.scroll:e.offset]))
	screen.ShowCursor(e.x+1+prefix, e.y+1)
}
