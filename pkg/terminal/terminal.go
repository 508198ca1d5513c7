// Package terminal owns the process-wide terminal state: it enters raw mode
// through a tcell screen and guarantees it is restored on every exit path.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var ErrTerminalUnavailable = errors.New("terminal unavailable")

var isTerminal = term.IsTerminal
var newScreen = tcell.NewScreen
var stdinFd = func() int { return int(os.Stdin.Fd()) }

// Open puts the controlling terminal into raw mode and returns the screen.
// The caller must release it with With or Release.
func Open() (tcell.Screen, error) {
	if !isTerminal(stdinFd()) {
		return nil, fmt.Errorf("%w: stdin is not a terminal", ErrTerminalUnavailable)
	}
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTerminalUnavailable, err)
	}
	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTerminalUnavailable, err)
	}
	return screen, nil
}

// With runs f and releases the screen afterwards, also when f panics.
func With(screen tcell.Screen, f func(screen tcell.Screen) error) error {
	defer Release(screen)
	return f(screen)
}

// Release clears the screen, homes the cursor and leaves raw mode.
func Release(screen tcell.Screen) {
	screen.Clear()
	screen.ShowCursor(0, 0)
	screen.Show()
	screen.Fini()
}
