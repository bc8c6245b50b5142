package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battleship/internal/config"
)

// Terminal is the interactive UI: a renderer and a key reader sharing one screen.
type Terminal struct {
	*Renderer
	*Input

	screen *Screen
}

// NewTerminal takes over the terminal and draws with the given theme.
func NewTerminal(theme config.Theme) (*Terminal, error) {
	styles, err := NewStyles(theme)
	if err != nil {
		return nil, err
	}
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen, styles), nil
}

// NewTerminalWith builds a terminal on an existing tcell screen.
func NewTerminalWith(s tcell.Screen, theme config.Theme) (*Terminal, error) {
	styles, err := NewStyles(theme)
	if err != nil {
		return nil, err
	}
	screen, err := NewScreenWith(s)
	if err != nil {
		return nil, err
	}
	return newTerminal(screen, styles), nil
}

func newTerminal(screen *Screen, styles Styles) *Terminal {
	return &Terminal{
		Renderer: NewRenderer(screen, styles),
		Input:    NewInput(screen),
		screen:   screen,
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Close()
}
