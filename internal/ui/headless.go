package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/player"
)

// Headless plays without a terminal. Status messages go to the logger and
// the last seen boards are printed to w whenever a menu is shown. It has no
// keyboard, so every prompt is answered with Quit.
type Headless struct {
	w      io.Writer
	logger *log.Logger

	lastMessage string
	own         *board.Board
	target      *player.AttackView
}

// NewHeadless creates a headless UI writing boards to w.
func NewHeadless(w io.Writer, logger *log.Logger) *Headless {
	return &Headless{w: w, logger: logger}
}

// Render logs new messages and prints the boards at each menu.
func (h *Headless) Render(frame player.Frame) {
	if frame.Own != nil {
		h.own = frame.Own
	}
	if frame.Target != nil {
		h.target = frame.Target
	}

	if frame.Message != "" && frame.Message != h.lastMessage {
		h.lastMessage = frame.Message
		h.logger.Info(frame.Message)
	}

	if frame.Menu == nil {
		return
	}
	if h.own != nil {
		fmt.Fprintf(h.w, "Fleet:\n%s\n", BoardText(h.own))
	}
	if h.target != nil {
		fmt.Fprintf(h.w, "Shots:\n%s\n", ViewText(h.target))
	}
	fmt.Fprintln(h.w, frame.Menu.Title)
}

// NextCommand always quits.
func (h *Headless) NextCommand(context.Context) (player.Command, error) {
	return player.Command{Kind: player.CmdQuit}, nil
}
