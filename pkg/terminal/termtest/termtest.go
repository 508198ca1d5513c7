// Package termtest provides simulation screen helpers for tests.
package termtest

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadTrimmedLine is ReadLine without trailing blanks.
func ReadTrimmedLine(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	return strings.TrimRight(ReadLine(screen, y, width), " ")
}

// NewSimScreen creates an initialized UTF-8 simulation screen.
func NewSimScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}

// Rune builds a key event for a printable character.
func Rune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// Key builds a key event for a special key.
func Key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// PostKeys queues events so a following PollEvent loop consumes them in order.
func PostKeys(t *testing.T, screen tcell.Screen, events ...*tcell.EventKey) {
	t.Helper()
	for _, ev := range events {
		if err := screen.PostEvent(ev); err != nil {
			t.Fatalf("failed to post event: %v", err)
		}
	}
}
