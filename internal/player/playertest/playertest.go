// Package playertest provides scripted inputs and recording views for tests.
package playertest

import (
	"context"
	"errors"

	"github.com/samdwyer/battleship/internal/player"
)

// ErrScriptExhausted is returned once every scripted command has been read.
var ErrScriptExhausted = errors.New("script exhausted")

// Script is a player.Input that replays a fixed list of commands.
type Script struct {
	commands []player.Command
	read     int
}

// NewScript creates an input that returns commands in order.
func NewScript(commands ...player.Command) *Script {
	return &Script{commands: commands}
}

// Push appends more commands.
func (s *Script) Push(commands ...player.Command) {
	s.commands = append(s.commands, commands...)
}

// NextCommand returns the next scripted command.
func (s *Script) NextCommand(ctx context.Context) (player.Command, error) {
	if err := ctx.Err(); err != nil {
		return player.Command{}, err
	}
	if s.read >= len(s.commands) {
		return player.Command{}, ErrScriptExhausted
	}
	cmd := s.commands[s.read]
	s.read++
	return cmd, nil
}

// Remaining returns how many commands have not been read yet.
func (s *Script) Remaining() int {
	return len(s.commands) - s.read
}

// Recorder is a player.View that keeps every frame it is given.
type Recorder struct {
	Frames []player.Frame
}

// Render stores the frame.
func (r *Recorder) Render(frame player.Frame) {
	r.Frames = append(r.Frames, frame)
}

// Last returns the most recent frame.
func (r *Recorder) Last() player.Frame {
	if len(r.Frames) == 0 {
		return player.Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

// Messages returns the non-empty messages in the order they were shown.
func (r *Recorder) Messages() []string {
	var out []string
	for _, f := range r.Frames {
		if f.Message != "" {
			out = append(out, f.Message)
		}
	}
	return out
}

// Shorthand commands.
var (
	Up      = player.Move(player.DirUp)
	Down    = player.Move(player.DirDown)
	Left    = player.Move(player.DirLeft)
	Right   = player.Move(player.DirRight)
	Toggle  = player.Command{Kind: player.CmdToggle}
	Confirm = player.Command{Kind: player.CmdConfirm}
	Cancel  = player.Command{Kind: player.CmdCancel}
	Quit    = player.Command{Kind: player.CmdQuit}
)
