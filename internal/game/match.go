package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/player"
	"github.com/samdwyer/battleship/internal/telemetry"
)

var (
	// ErrMatchOver is returned by PlayTurn once a winner is known.
	ErrMatchOver = errors.New("match is over")
	// ErrBoardMismatch is returned when the two boards differ in size.
	ErrBoardMismatch = errors.New("player boards differ in size")
)

// TurnResult describes one resolved (or rejected) attack.
type TurnResult struct {
	Attacker player.Player
	Defender player.Player
	Target   board.Point
	Outcome  board.AttackOutcome
	Sunk     *board.Ship // Ship sunk by this shot, if any
	Won      bool        // Defender's whole fleet is sunk
	Switched bool        // Turn passed to the defender
}

// Match holds two players and applies the turn rules between them.
type Match struct {
	ID string

	players [2]player.Player
	mode    Mode
	current int
	turns   int
	winner  int
}

// NewMatch creates a match with p1 to move first. The mode is derived from
// the players' kinds.
func NewMatch(p1, p2 player.Player) (*Match, error) {
	if p1.Board().Size() != p2.Board().Size() {
		return nil, fmt.Errorf("%w: %d and %d", ErrBoardMismatch, p1.Board().Size(), p2.Board().Size())
	}
	return &Match{
		ID:      uuid.NewString(),
		players: [2]player.Player{p1, p2},
		mode:    ModeFor(p1.Kind(), p2.Kind()),
		winner:  -1,
	}, nil
}

// Mode returns the mode derived from the players.
func (m *Match) Mode() Mode { return m.mode }

// AgainstComputer returns true if at least one side is a computer.
func (m *Match) AgainstComputer() bool { return m.mode != ModePvP }

// ComputerVsComputer returns true if neither side is human.
func (m *Match) ComputerVsComputer() bool { return m.mode == ModeCvC }

// Player returns player 1 (index 0) or player 2 (index 1).
func (m *Match) Player(i int) player.Player { return m.players[i] }

// CurrentIndex returns the index of the player whose turn it is.
func (m *Match) CurrentIndex() int { return m.current }

// Current returns the player whose turn it is.
func (m *Match) Current() player.Player { return m.players[m.current] }

// Opponent returns the player who is being attacked.
func (m *Match) Opponent() player.Player { return m.players[1-m.current] }

// Turns returns the number of resolved attacks.
func (m *Match) Turns() int { return m.turns }

// Over returns true once a winner is known.
func (m *Match) Over() bool { return m.winner >= 0 }

// Winner returns the winning player, or nil while the match is running.
func (m *Match) Winner() player.Player {
	if m.winner < 0 {
		return nil
	}
	return m.players[m.winner]
}

// WinnerIndex returns the winner's index, or -1.
func (m *Match) WinnerIndex() int { return m.winner }

// PlaceFleets seats both fleets. Computers always auto-place; for humans,
// choose decides between auto and manual placement.
func (m *Match) PlaceFleets(ctx context.Context, choose func(context.Context, player.Player) (bool, error)) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.placement")
	defer span.End()

	for i, p := range m.players {
		auto := true
		if p.Kind() == player.KindHuman {
			var err error
			if auto, err = choose(ctx, p); err != nil {
				return err
			}
		}
		if err := p.PlaceShips(ctx, auto); err != nil {
			return fmt.Errorf("failed to place ships for %s: %w", p.Name(), err)
		}
		span.SetAttributes(
			attribute.Bool(fmt.Sprintf("player%d.auto", i+1), auto),
			attribute.Int(fmt.Sprintf("player%d.ships", i+1), len(p.Board().Ships())),
		)
	}
	return nil
}

// PlayTurn asks the current player for a target and fires at the opponent.
//
// Cancelled selections and rejected attacks (off the board or already
// attacked) return an error and leave the turn with the same player. A miss
// passes the turn; a hit lets the same player fire again.
func (m *Match) PlayTurn(ctx context.Context) (TurnResult, error) {
	if m.Over() {
		return TurnResult{}, ErrMatchOver
	}

	attacker, defender := m.Current(), m.Opponent()
	result := TurnResult{Attacker: attacker, Defender: defender}

	target, err := attacker.SelectAttack(ctx)
	if err != nil {
		return result, err
	}
	result.Target = target

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	result.Outcome = defender.Board().Attack(target)
	span.SetAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("attacker", attacker.Name()),
		attribute.Int("target.x", target.X),
		attribute.Int("target.y", target.Y),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("turn", m.turns),
	)
	if err := result.Outcome.Err(); err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		return result, fmt.Errorf("attack at %s: %w", target, err)
	}

	hit := result.Outcome == board.Hit
	attacker.ProcessAttackResult(target, hit)
	m.turns++

	if hit {
		if ship := defender.Board().ShipAt(target); ship != nil && ship.IsSunk() {
			result.Sunk = ship
			span.SetAttributes(attribute.Int("sunk.length", ship.Length()))
		}
	}

	if defender.Board().AllSunk() {
		m.winner = m.current
		result.Won = true
		span.SetAttributes(attribute.Bool("won", true))
		return result, nil
	}

	if !hit {
		m.current = 1 - m.current
		result.Switched = true
	}
	return result, nil
}

// Reset clears both players for a rematch with player 1 to move.
func (m *Match) Reset() {
	for _, p := range m.players {
		p.Reset()
	}
	m.ID = uuid.NewString()
	m.current = 0
	m.turns = 0
	m.winner = -1
}
