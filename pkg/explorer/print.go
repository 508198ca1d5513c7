package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// printLine writes text at (x, y) clipped to width cells and returns the
// column after the last printed rune.
func printLine(screen tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	limit := x + width
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func fillLine(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}
