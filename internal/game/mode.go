package game

import (
	"fmt"
	"strings"

	"github.com/samdwyer/battleship/internal/player"
)

// Mode is the kind of match being played.
type Mode int

const (
	// ModePvP is two humans sharing the terminal.
	ModePvP Mode = iota
	// ModePvC is a human against the computer.
	ModePvC
	// ModeCvC is a computer simulation.
	ModeCvC
)

// Modes lists the modes in menu order.
var Modes = []Mode{ModePvP, ModePvC, ModeCvC}

// String returns the short mode name used in flags and telemetry.
func (m Mode) String() string {
	switch m {
	case ModePvP:
		return "pvp"
	case ModePvC:
		return "pvc"
	case ModeCvC:
		return "cvc"
	default:
		return "unknown"
	}
}

// Label returns the menu text for the mode.
func (m Mode) Label() string {
	switch m {
	case ModePvP:
		return "Player vs Player"
	case ModePvC:
		return "Player vs Computer"
	case ModeCvC:
		return "Computer vs Computer"
	default:
		return "Unknown"
	}
}

// Kinds returns the player kinds for player 1 and player 2.
func (m Mode) Kinds() (player.Kind, player.Kind) {
	switch m {
	case ModePvC:
		return player.KindHuman, player.KindComputer
	case ModeCvC:
		return player.KindComputer, player.KindComputer
	default:
		return player.KindHuman, player.KindHuman
	}
}

// ParseMode converts a short mode name such as "pvc" to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want pvp, pvc or cvc)", s)
}

// ModeFor derives the mode from the kinds of the two players.
// A lone computer is always treated as player 2.
func ModeFor(p1, p2 player.Kind) Mode {
	switch {
	case p1 == player.KindComputer && p2 == player.KindComputer:
		return ModeCvC
	case p1 == player.KindComputer || p2 == player.KindComputer:
		return ModePvC
	default:
		return ModePvP
	}
}
