package player

import (
	"context"

	"github.com/samdwyer/battleship/internal/board"
)

// Direction is a cursor movement.
type Direction int

const (
	// DirUp moves towards row 0.
	DirUp Direction = iota
	// DirDown moves towards the last row.
	DirDown
	// DirLeft moves towards column 0.
	DirLeft
	// DirRight moves towards the last column.
	DirRight
)

// Delta returns the x, y offset for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// CommandKind identifies a player command.
type CommandKind int

const (
	// CmdMove moves the cursor in Command.Dir.
	CmdMove CommandKind = iota
	// CmdToggle switches ship orientation during placement.
	CmdToggle
	// CmdConfirm places the ship, fires, or picks the highlighted menu entry.
	CmdConfirm
	// CmdCancel abandons the current selection.
	CmdCancel
	// CmdQuit leaves the game.
	CmdQuit
)

// String returns a human-readable command name.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdToggle:
		return "toggle"
	case CmdConfirm:
		return "confirm"
	case CmdCancel:
		return "cancel"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a single user action.
type Command struct {
	Kind CommandKind
	Dir  Direction // Only meaningful for CmdMove
}

// Move returns a movement command.
func Move(d Direction) Command {
	return Command{Kind: CmdMove, Dir: d}
}

// Input supplies user commands. NextCommand blocks until a command is
// available or ctx is done.
type Input interface {
	NextCommand(ctx context.Context) (Command, error)
}

// Menu is a vertical list of choices.
type Menu struct {
	Title    string
	Options  []string
	Selected int
}

// Frame is everything a View needs to draw one screen. Nil fields are not drawn.
type Frame struct {
	Title        string
	Message      string
	Own          *board.Board     // The acting player's fleet
	Target       *AttackView      // What the acting player knows about the opponent
	Cursor       *board.Point     // Highlighted cell on Target
	Preview      *board.Placement // Ship being placed on Own
	PreviewValid bool
	Menu         *Menu
	Footer       string
}

// View draws frames. Implementations own all formatting.
type View interface {
	Render(frame Frame)
}

// Choose shows a menu and returns the index the user confirms.
// Cancel is ignored; Quit returns ErrQuit.
func Choose(ctx context.Context, in Input, out View, menu Menu) (int, error) {
	if len(menu.Options) == 0 {
		return -1, ErrNoOptions
	}
	for {
		// Views may keep frames, so each one gets its own copy of the menu.
		shown := menu
		out.Render(Frame{Menu: &shown, Footer: "Arrow keys - Move, ENTER - Select, Q - Quit"})

		cmd, err := in.NextCommand(ctx)
		if err != nil {
			return -1, err
		}

		switch cmd.Kind {
		case CmdMove:
			switch cmd.Dir {
			case DirUp:
				menu.Selected = (menu.Selected + len(menu.Options) - 1) % len(menu.Options)
			case DirDown:
				menu.Selected = (menu.Selected + 1) % len(menu.Options)
			}
		case CmdConfirm:
			return menu.Selected, nil
		case CmdQuit:
			return -1, ErrQuit
		}
	}
}
