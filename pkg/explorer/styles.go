package explorer

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	HeaderStyle tcell.Style
	StatusStyle tcell.Style
	ErrorStyle  tcell.Style

	DirColor  tcell.Color
	FileColor tcell.Color

	EditorTitleColor  tcell.Color
	EditorBorderColor tcell.Color
	EditorTextStyle   tcell.Style
}

var Style = Styles{
	HeaderStyle: tcell.StyleDefault.Foreground(tcell.ColorWhiteSmoke).Background(tcell.ColorBlack).Bold(true),
	StatusStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
	ErrorStyle:  tcell.StyleDefault.Foreground(tcell.ColorRed),

	DirColor:  tcell.ColorBlue,
	FileColor: tcell.ColorDefault,

	EditorTitleColor:  tcell.ColorGhostWhite,
	EditorBorderColor: tcell.ColorCornflowerBlue,
	EditorTextStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhiteSmoke).Background(tcell.ColorBlack),
}
