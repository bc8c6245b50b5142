package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/config"
	"github.com/samdwyer/battleship/internal/player"
	"github.com/samdwyer/battleship/internal/telemetry"
)

// UI is the terminal (or stand-in) the game talks to.
type UI interface {
	player.Input
	player.View
}

const (
	optionAuto   = "Auto placement"
	optionManual = "Manual placement"

	optionRematch  = "Play again"
	optionMainMenu = "Main menu"
	optionExit     = "Exit game"
)

// Game holds the entire game state.
type Game struct {
	cfg    config.Config
	ui     UI
	logger *log.Logger
	rng    *rand.Rand

	preset *Mode // Mode chosen up front; skips the main menu
	match  *Match
	state  State
	status string // Last event, shown on spectator frames
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithMode skips the main menu and plays the given mode.
func WithMode(m Mode) Option {
	return func(g *Game) { g.preset = &m }
}

// New creates a new game instance.
func New(cfg config.Config, ui UI, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		ui:     ui,
		logger: log.New(io.Discard),
		rng:    cfg.NewRand(),
		state:  StateModeSelect,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.preset != nil {
		if err := g.setup(*g.preset); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Match returns the current match, or nil before a mode is chosen.
func (g *Game) Match() *Match { return g.match }

// Run executes the main game loop until the user exits. Quitting from any
// prompt is a normal exit and returns nil.
func (g *Game) Run(ctx context.Context) error {
	for g.state != StateExit {
		var err error
		switch g.state {
		case StateModeSelect:
			err = g.selectMode(ctx)
		case StatePlacement:
			err = g.placeFleets(ctx)
		case StatePlaying:
			err = g.playMatch(ctx)
		case StateGameOver:
			err = g.gameOver(ctx)
		}
		if errors.Is(err, player.ErrQuit) {
			g.logger.Info("quit requested", "state", g.state)
			g.state = StateExit
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// selectMode shows the main menu and builds the players.
func (g *Game) selectMode(ctx context.Context) error {
	options := make([]string, 0, len(Modes)+1)
	for _, m := range Modes {
		options = append(options, m.Label())
	}
	options = append(options, optionExit)

	choice, err := player.Choose(ctx, g.ui, g.ui, player.Menu{
		Title:   "BATTLESHIP - Select game mode",
		Options: options,
	})
	if err != nil {
		return err
	}
	if choice == len(Modes) {
		g.state = StateExit
		return nil
	}
	return g.setup(Modes[choice])
}

// setup creates both players for mode and moves to placement.
func (g *Game) setup(mode Mode) error {
	k1, k2 := mode.Kinds()
	p1 := g.newPlayer(k1, playerName(mode, 0))
	p2 := g.newPlayer(k2, playerName(mode, 1))

	match, err := NewMatch(p1, p2)
	if err != nil {
		return err
	}
	g.match = match
	g.status = ""
	g.state = StatePlacement
	g.logger.Info("match created", "mode", match.Mode(), "match", match.ID)
	return nil
}

func (g *Game) newPlayer(kind player.Kind, name string) player.Player {
	opts := player.Options{
		Fleet: g.cfg.Fleet,
		// Each player gets its own stream so one side's choices do not shift the other's.
		Rng:    rand.New(rand.NewSource(g.rng.Int63())),
		Logger: g.logger,
	}
	b := board.New(g.cfg.BoardSize)
	if kind == player.KindComputer {
		return player.NewComputer(name, b, opts)
	}
	return player.NewHuman(name, b, g.ui, g.ui, opts)
}

// playerName returns the display name for player index i in mode.
func playerName(mode Mode, i int) string {
	switch mode {
	case ModePvC:
		if i == 0 {
			return "You"
		}
		return "Computer"
	case ModeCvC:
		return fmt.Sprintf("Computer %d", i+1)
	default:
		return fmt.Sprintf("Player %d", i+1)
	}
}

// placeFleets runs the placement phase for both players.
func (g *Game) placeFleets(ctx context.Context) error {
	err := g.match.PlaceFleets(ctx, func(ctx context.Context, p player.Player) (bool, error) {
		choice, err := player.Choose(ctx, g.ui, g.ui, player.Menu{
			Title:   p.Name() + ": how do you want to place your ships?",
			Options: []string{optionAuto, optionManual},
		})
		return choice == 0, err
	})
	if err != nil {
		return err
	}
	g.state = StatePlaying
	return nil
}

// playMatch runs turns until one fleet is sunk.
func (g *Game) playMatch(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.match")
	defer span.End()

	m := g.match
	span.SetAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("mode", m.Mode().String()),
		attribute.Int("board.size", g.cfg.BoardSize),
	)

	for !m.Over() {
		attacker := m.Current()

		if attacker.Kind() == player.KindComputer {
			g.render(fmt.Sprintf("%s is thinking...", attacker.Name()))
			if err := wait(ctx, g.cfg.ThinkDelay); err != nil {
				return err
			}
		}

		result, err := m.PlayTurn(ctx)
		switch {
		case errors.Is(err, player.ErrAttackCancelled):
			continue
		case errors.Is(err, board.ErrCellAlreadyAttacked), errors.Is(err, board.ErrInvalidCoordinate):
			g.logger.Debug("attack rejected", "player", attacker.Name(), "err", err)
			notify(attacker, "You cannot fire there. Try another position.")
			continue
		case err != nil:
			return err
		}

		g.report(result)

		if result.Switched && m.Mode() == ModePvP {
			if err := g.handOff(ctx, m.Current()); err != nil {
				return err
			}
		}
	}

	winner := m.Winner()
	span.SetAttributes(
		attribute.String("winner", winner.Name()),
		attribute.Int("turns", m.Turns()),
	)
	g.logger.Info("match finished", "match", m.ID, "winner", winner.Name(), "turns", m.Turns())
	g.state = StateGameOver
	return nil
}

// report records a resolved attack and tells the humans about it.
func (g *Game) report(result TurnResult) {
	g.status = describe(result)
	g.logger.Debug("turn",
		"attacker", result.Attacker.Name(),
		"target", result.Target,
		"outcome", result.Outcome,
		"sunk", result.Sunk != nil,
	)
	// The attacker already sees its own hit or miss; a sinking adds news.
	if result.Sunk != nil {
		notify(result.Attacker, g.status)
	}
	notify(result.Defender, g.status)
}

// handOff blanks the screen between two humans so neither sees the other's fleet.
func (g *Game) handOff(ctx context.Context, next player.Player) error {
	_, err := player.Choose(ctx, g.ui, g.ui, player.Menu{
		Title:   fmt.Sprintf("%s - %s, it is your turn. Press ENTER when ready.", g.status, next.Name()),
		Options: []string{"Ready"},
	})
	return err
}

// gameOver announces the winner and asks what to do next.
func (g *Game) gameOver(ctx context.Context) error {
	choice, err := player.Choose(ctx, g.ui, g.ui, player.Menu{
		Title:   winnerText(g.match) + " " + g.status,
		Options: []string{optionRematch, optionMainMenu, optionExit},
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		g.match.Reset()
		g.status = ""
		g.state = StatePlacement
	case 1:
		g.match = nil
		g.state = StateModeSelect
	default:
		g.state = StateExit
	}
	return nil
}

// render draws the game from the point of view of the first human, or of
// player 1 when no human is playing.
func (g *Game) render(msg string) {
	m := g.match
	viewer := m.Player(0)
	if viewer.Kind() != player.KindHuman && m.Player(1).Kind() == player.KindHuman {
		viewer = m.Player(1)
	}

	if g.status != "" {
		msg = g.status + " " + msg
	}
	g.ui.Render(player.Frame{
		Title:   fmt.Sprintf("%s - %s", m.Mode().Label(), viewer.Name()),
		Message: msg,
		Own:     viewer.Board(),
		Target:  viewer.View(),
		Footer:  "Q - Quit",
	})
}

// winnerText returns the end-of-match announcement.
func winnerText(m *Match) string {
	w := m.Winner()
	if w == nil {
		return "No winner."
	}
	if m.Mode() == ModePvC && w.Kind() == player.KindHuman {
		return "You WIN!"
	}
	return w.Name() + " WINS!"
}

// describe turns a resolved attack into a status line.
func describe(r TurnResult) string {
	name := r.Attacker.Name()
	switch {
	case r.Won:
		return fmt.Sprintf("%s sank the last ship at %s!", name, r.Target)
	case r.Sunk != nil:
		return fmt.Sprintf("%s sank a ship of length %d at %s! %d left.",
			name, r.Sunk.Length(), r.Target, r.Defender.Board().Remaining())
	case r.Outcome == board.Hit:
		return fmt.Sprintf("%s hit at %s!", name, r.Target)
	default:
		return fmt.Sprintf("%s missed at %s.", name, r.Target)
	}
}

func notify(p player.Player, msg string) {
	if n, ok := p.(player.Notifier); ok {
		n.Notify(msg)
	}
}

// wait pauses for d unless ctx is cancelled first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
