package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdwyer/battleship/internal/board"
)

const (
	placementFooter = "Arrow keys - Move, SPACE - Rotate, ENTER - Place, ESC - Start over, Q - Quit"
	attackFooter    = "Arrow keys - Move, ENTER - Fire, ESC - Cancel, Q - Quit"
)

// errRestartPlacement asks manual placement to clear the board and start over.
var errRestartPlacement = errors.New("restart placement")

// HumanPlayer is driven by commands from an Input and draws through a View.
type HumanPlayer struct {
	base

	in     Input
	out    View
	cursor board.Point
	notice string
}

// NewHuman creates a human player that owns b.
func NewHuman(name string, b *board.Board, in Input, out View, opts Options) *HumanPlayer {
	return &HumanPlayer{
		base: newBase(name, b, opts),
		in:   in,
		out:  out,
	}
}

// Kind returns KindHuman.
func (h *HumanPlayer) Kind() Kind { return KindHuman }

// Notify shows msg on the player's next prompt.
func (h *HumanPlayer) Notify(msg string) {
	h.notice = msg
}

// PlaceShips seats the fleet, at random when auto is set or with the
// placement cursor otherwise.
func (h *HumanPlayer) PlaceShips(ctx context.Context, auto bool) error {
	if auto {
		return h.autoPlace(ctx)
	}

	h.board.Reset()
	for i := 0; i < len(h.fleet); {
		err := h.placeOne(ctx, h.fleet[i], i)
		switch {
		case errors.Is(err, errRestartPlacement):
			h.board.Reset()
			i = 0
		case err != nil:
			return err
		default:
			i++
		}
	}
	return nil
}

// placeOne runs the placement cursor for a single ship.
func (h *HumanPlayer) placeOne(ctx context.Context, length, index int) error {
	size := h.board.Size()
	pl := board.Placement{Start: board.Pt(0, 0), Length: length, Horizontal: true}
	if !fits(pl, size) {
		pl = pl.Rotated()
		if !fits(pl, size) {
			return fmt.Errorf("%w: length %d exceeds board size %d", board.ErrInvalidPlacement, length, size)
		}
	}

	msg := ""
	for {
		preview := pl
		h.out.Render(Frame{
			Title: fmt.Sprintf("%s: place ship %d of %d (length %d, %d of this length left)",
				h.name, index+1, len(h.fleet), length, h.ShipsLeft()[length]),
			Message:      msg,
			Own:          h.board,
			Preview:      &preview,
			PreviewValid: h.board.CanPlace(pl),
			Footer:       placementFooter,
		})
		msg = ""

		cmd, err := h.in.NextCommand(ctx)
		if err != nil {
			return err
		}

		switch cmd.Kind {
		case CmdMove:
			dx, dy := cmd.Dir.Delta()
			moved := pl
			moved.Start = pl.Start.Add(dx, dy)
			if fits(moved, size) {
				pl = moved
			}
		case CmdToggle:
			if rotated := pl.Rotated(); fits(rotated, size) {
				pl = rotated
			}
		case CmdConfirm:
			if _, err := h.board.Place(pl); err != nil {
				h.logger.Debug("placement rejected", "err", err)
				msg = "Cannot place ship here! Try another position."
				continue
			}
			return nil
		case CmdCancel:
			return errRestartPlacement
		case CmdQuit:
			return ErrQuit
		}
	}
}

// SelectAttack moves a cursor over the attack view until the user fires at
// an unknown cell, cancels, or quits.
func (h *HumanPlayer) SelectAttack(ctx context.Context) (board.Point, error) {
	size := h.view.Size()
	msg := h.notice
	h.notice = ""

	for {
		cursor := h.cursor
		h.out.Render(Frame{
			Title:   fmt.Sprintf("%s: choose a target", h.name),
			Message: msg,
			Own:     h.board,
			Target:  h.view,
			Cursor:  &cursor,
			Footer:  attackFooter,
		})
		msg = ""

		cmd, err := h.in.NextCommand(ctx)
		if err != nil {
			return NoAttack, err
		}

		switch cmd.Kind {
		case CmdMove:
			dx, dy := cmd.Dir.Delta()
			next := h.cursor.Add(dx, dy)
			if next.X >= 0 && next.X < size && next.Y >= 0 && next.Y < size {
				h.cursor = next
			}
		case CmdConfirm:
			if h.view.At(h.cursor) != MarkUnknown {
				msg = "You already attacked here! Try another position."
				continue
			}
			return h.cursor, nil
		case CmdCancel:
			return NoAttack, ErrAttackCancelled
		case CmdQuit:
			return NoAttack, ErrQuit
		}
	}
}

// ProcessAttackResult records the shot and reports it on the next prompt.
func (h *HumanPlayer) ProcessAttackResult(p board.Point, hit bool) {
	h.base.ProcessAttackResult(p, hit)
	if hit {
		h.notice = fmt.Sprintf("Hit at %s! Fire again.", p)
	} else {
		h.notice = fmt.Sprintf("Miss at %s.", p)
	}
}

// Reset clears the board and the view and returns the cursor home.
func (h *HumanPlayer) Reset() {
	h.reset()
	h.cursor = board.Point{}
	h.notice = ""
}
