package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battleship/internal/player"
)

// Input reads keyboard events from the screen and turns them into commands.
type Input struct {
	screen *Screen
}

// NewInput creates an input source for the given screen.
func NewInput(screen *Screen) *Input {
	return &Input{screen: screen}
}

// NextCommand blocks until a key maps to a command or ctx is done. Resize
// events redraw the screen. A nil event means the screen was finalized and is
// reported as Quit.
func (in *Input) NextCommand(ctx context.Context) (player.Command, error) {
	// Wake PollEvent when ctx ends.
	stop := context.AfterFunc(ctx, in.screen.Interrupt)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return player.Command{}, err
		}

		switch ev := in.screen.PollEvent().(type) {
		case nil:
			return player.Command{}, player.ErrQuit
		case *tcell.EventResize:
			in.screen.Sync()
		case *tcell.EventKey:
			if cmd, ok := KeyCommand(ev); ok {
				return cmd, nil
			}
		}
	}
}

// KeyCommand maps a key event to a command. Unbound keys report false.
func KeyCommand(ev *tcell.EventKey) (player.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return player.Move(player.DirUp), true
	case tcell.KeyDown:
		return player.Move(player.DirDown), true
	case tcell.KeyLeft:
		return player.Move(player.DirLeft), true
	case tcell.KeyRight:
		return player.Move(player.DirRight), true
	case tcell.KeyEnter:
		return player.Command{Kind: player.CmdConfirm}, true
	case tcell.KeyTab:
		return player.Command{Kind: player.CmdToggle}, true
	case tcell.KeyEscape:
		return player.Command{Kind: player.CmdCancel}, true
	case tcell.KeyCtrlC:
		return player.Command{Kind: player.CmdQuit}, true

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'r', 'R':
			return player.Command{Kind: player.CmdToggle}, true
		case 'q', 'Q':
			return player.Command{Kind: player.CmdQuit}, true
		}
	}
	return player.Command{}, false
}
