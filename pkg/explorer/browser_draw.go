package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// reservedRows are the header and the status line.
const reservedRows = 2

const browserHelp = "j/k move  g top  d bottom  enter open  backspace up  r rename  q quit"

func viewportRows(screenHeight int) int {
	return max(screenHeight-reservedRows, 1)
}

// Draw renders the header, the visible entries and the status line, then
// puts the terminal cursor on the selected row.
func (b *Browser) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	b.SetViewportRows(viewportRows(height))

	fillLine(screen, 0, 0, width, Style.HeaderStyle)
	printLine(screen, 0, 0, width, b.listing.Dir, Style.HeaderStyle)

	for row := 1; row <= b.view.VisibleCount; row++ {
		entry := b.listing.Entries[b.view.ScrollOffset+row-1]
		color := Style.FileColor
		if entry.IsDir {
			color = Style.DirColor
		}
		tview.Print(screen, tview.Escape(entry.Name), 0, row, width, tview.AlignLeft, color)
	}

	if height > reservedRows {
		if b.status != "" {
			printLine(screen, 0, height-1, width, b.status, Style.ErrorStyle)
		} else {
			printLine(screen, 0, height-1, width, browserHelp, Style.StatusStyle)
		}
	}
	screen.ShowCursor(0, b.view.CursorRow)
}
