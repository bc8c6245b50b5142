// Package player provides the human and computer Battleship players.
package player

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/battleship/internal/board"
)

var (
	// ErrAttackCancelled is returned by SelectAttack when the user backs out.
	// The caller should ask again without ending the turn.
	ErrAttackCancelled = errors.New("attack cancelled")
	// ErrQuit is returned when the user asks to leave the game.
	ErrQuit = errors.New("quit requested")
	// ErrNoTargets is returned when every cell has already been attacked.
	ErrNoTargets = errors.New("no cells left to attack")
	// ErrNoOptions is returned by Choose for an empty menu.
	ErrNoOptions = errors.New("menu has no options")
)

// NoAttack is the point returned alongside an error from SelectAttack.
var NoAttack = board.Point{X: -1, Y: -1}

// DefaultFleet is the ship lengths each player places, in placement order.
var DefaultFleet = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

// Kind identifies how a player makes decisions.
type Kind int

const (
	// KindHuman is driven by an Input.
	KindHuman Kind = iota
	// KindComputer plays on its own.
	KindComputer
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Player is one side of a match.
type Player interface {
	Name() string
	Kind() Kind

	// Board is the player's own fleet.
	Board() *board.Board
	// View is what the player has learned about the opponent.
	View() *AttackView

	// PlaceShips seats the whole fleet on Board. Computers always auto-place.
	PlaceShips(ctx context.Context, auto bool) error
	// SelectAttack returns the next cell to fire at, or NoAttack and an error.
	SelectAttack(ctx context.Context) (board.Point, error)
	// ProcessAttackResult tells the player how its last shot landed.
	ProcessAttackResult(p board.Point, hit bool)
	// Reset clears the board, the view and any targeting memory.
	Reset()
}

// Notifier is implemented by players that can show a status message
// on their next prompt.
type Notifier interface {
	Notify(msg string)
}

// Options configures a new player.
type Options struct {
	Fleet  []int       // Ship lengths to place; DefaultFleet if empty
	Rng    *rand.Rand  // Random source; time-seeded if nil
	Logger *log.Logger // Discarded if nil
}

func (o Options) withDefaults() Options {
	if len(o.Fleet) == 0 {
		o.Fleet = DefaultFleet
	}
	if o.Rng == nil {
		o.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// base holds state shared by every player kind.
type base struct {
	name   string
	board  *board.Board
	view   *AttackView
	fleet  []int
	rng    *rand.Rand
	logger *log.Logger
}

func newBase(name string, b *board.Board, opts Options) base {
	opts = opts.withDefaults()
	return base{
		name:   name,
		board:  b,
		view:   NewAttackView(b.Size()),
		fleet:  append([]int(nil), opts.Fleet...),
		rng:    opts.Rng,
		logger: opts.Logger.With("player", name),
	}
}

// Name returns the player's display name.
func (p *base) Name() string { return p.name }

// Board returns the player's own board.
func (p *base) Board() *board.Board { return p.board }

// View returns the player's record of the opponent's board.
func (p *base) View() *AttackView { return p.view }

// ShipsLeft returns how many ships of each length still need placing.
func (p *base) ShipsLeft() map[int]int {
	left := make(map[int]int)
	for _, length := range p.fleet {
		left[length]++
	}
	for _, s := range p.board.Ships() {
		if left[s.Length()] > 0 {
			left[s.Length()]--
		}
	}
	return left
}

// ProcessAttackResult records the shot in the attack view.
func (p *base) ProcessAttackResult(pt board.Point, hit bool) {
	p.view.Record(pt, hit)
}

func (p *base) autoPlace(ctx context.Context) error {
	return AutoPlace(ctx, p.board, p.fleet, p.rng, p.logger)
}

func (p *base) reset() {
	p.board.Reset()
	p.view.Reset()
}
