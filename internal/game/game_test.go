package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/config"
	"github.com/samdwyer/battleship/internal/player"
	pt "github.com/samdwyer/battleship/internal/player/playertest"
)

// scriptUI replays commands and records every frame.
type scriptUI struct {
	*pt.Script
	pt.Recorder
}

func newScriptUI(commands ...player.Command) *scriptUI {
	return &scriptUI{Script: pt.NewScript(commands...)}
}

func (u *scriptUI) menuTitles() []string {
	var titles []string
	for _, f := range u.Frames {
		if f.Menu != nil {
			titles = append(titles, f.Menu.Title)
		}
	}
	return titles
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.ThinkDelay = 0
	return cfg
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateModeSelect, "mode_select"},
		{StatePlacement, "placement"},
		{StatePlaying, "playing"},
		{StateGameOver, "game_over"},
		{StateExit, "exit"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(strings.ToUpper(m.String()))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("solo")
	assert.Error(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Fleet = nil

	_, err := New(cfg, newScriptUI())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewWithModeSkipsMenu(t *testing.T) {
	g, err := New(testConfig(), newScriptUI(), WithMode(ModePvC))
	require.NoError(t, err)

	assert.Equal(t, StatePlacement, g.State())
	require.NotNil(t, g.Match())
	assert.Equal(t, ModePvC, g.Match().Mode())
	assert.Equal(t, "You", g.Match().Player(0).Name())
	assert.Equal(t, "Computer", g.Match().Player(1).Name())
	assert.Equal(t, player.KindComputer, g.Match().Player(1).Kind())
}

func TestRunExitFromMainMenu(t *testing.T) {
	ui := newScriptUI(pt.Up, pt.Confirm)
	g, err := New(testConfig(), ui)
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))

	assert.Equal(t, StateExit, g.State())
	assert.Nil(t, g.Match())
	require.NotEmpty(t, ui.Frames)
	menu := ui.Last().Menu
	require.NotNil(t, menu)
	assert.Equal(t, optionExit, menu.Options[menu.Selected])
}

func TestRunQuitFromMainMenu(t *testing.T) {
	g, err := New(testConfig(), newScriptUI(pt.Quit))
	require.NoError(t, err)

	assert.NoError(t, g.Run(context.Background()))
	assert.Equal(t, StateExit, g.State())
}

func TestRunComputerVsComputer(t *testing.T) {
	// Main menu: CvC. Game over: Exit game.
	ui := newScriptUI(pt.Down, pt.Down, pt.Confirm, pt.Down, pt.Down, pt.Confirm)
	g, err := New(testConfig(), ui)
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))

	m := g.Match()
	require.NotNil(t, m)
	assert.Equal(t, ModeCvC, m.Mode())
	assert.Equal(t, StateExit, g.State())
	require.True(t, m.Over())

	winner := m.Winner()
	loser := m.Player(1 - m.WinnerIndex())
	assert.True(t, loser.Board().AllSunk())
	assert.False(t, winner.Board().AllSunk())
	assert.Equal(t, 0, ui.Remaining())

	titles := ui.menuTitles()
	require.NotEmpty(t, titles)
	assert.Contains(t, titles[len(titles)-1], winner.Name()+" WINS!")

	var thinking bool
	for _, msg := range ui.Messages() {
		if strings.Contains(msg, "is thinking...") {
			thinking = true
			break
		}
	}
	assert.True(t, thinking, "computer turns are announced")
}

func TestRunComputerVsComputerIsReproducible(t *testing.T) {
	play := func() (int, int) {
		ui := newScriptUI(pt.Down, pt.Down, pt.Confirm)
		g, err := New(testConfig(), ui, WithMode(ModeCvC))
		require.NoError(t, err)
		require.NoError(t, g.Run(context.Background()))
		return g.Match().WinnerIndex(), g.Match().Turns()
	}

	w1, t1 := play()
	w2, t2 := play()
	assert.Equal(t, w1, w2)
	assert.Equal(t, t1, t2)
}

func TestRunRematch(t *testing.T) {
	// First game over: Play again. Second game over: Exit game.
	ui := newScriptUI(pt.Confirm, pt.Down, pt.Down, pt.Confirm)
	g, err := New(testConfig(), ui, WithMode(ModeCvC))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))

	gameOvers := 0
	for _, f := range ui.Frames {
		if f.Menu != nil && f.Menu.Options[0] == optionRematch && f.Menu.Selected == 0 {
			gameOvers++
		}
	}
	assert.Equal(t, 2, gameOvers)
	assert.True(t, g.Match().Over())
	assert.Equal(t, StateExit, g.State())
}

func TestRunMainMenuAfterGame(t *testing.T) {
	// Game over: Main menu. Main menu: Exit game.
	ui := newScriptUI(pt.Down, pt.Confirm, pt.Up, pt.Confirm)
	g, err := New(testConfig(), ui, WithMode(ModeCvC))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))

	assert.Nil(t, g.Match())
	assert.Equal(t, StateExit, g.State())
	assert.Contains(t, ui.menuTitles(), "BATTLESHIP - Select game mode")
}

func TestRunHumanCancelDoesNotConsumeTurn(t *testing.T) {
	// Auto placement, cancel the first target prompt, then quit.
	ui := newScriptUI(pt.Confirm, pt.Cancel, pt.Quit)
	g, err := New(testConfig(), ui, WithMode(ModePvC))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))

	m := g.Match()
	assert.Equal(t, 0, m.Turns())
	assert.Equal(t, 0, m.CurrentIndex())
	assert.Len(t, m.Player(0).Board().Ships(), len(testConfig().Fleet))
	assert.Len(t, m.Player(1).Board().Ships(), len(testConfig().Fleet))

	var prompts int
	for _, f := range ui.Frames {
		if f.Title == "You: choose a target" {
			prompts++
		}
	}
	assert.Equal(t, 2, prompts, "cancel re-prompts the same player")
}

func TestRunHumanAgainstComputer(t *testing.T) {
	// Auto placement, fire at (0,0), then quit at the next prompt.
	ui := newScriptUI(pt.Confirm, pt.Confirm, pt.Quit)
	g, err := New(testConfig(), ui, WithMode(ModePvC))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))

	m := g.Match()
	assert.GreaterOrEqual(t, m.Turns(), 1)
	human := m.Player(0)
	assert.NotEqual(t, player.MarkUnknown, human.View().At(board.Pt(0, 0)))
	assert.True(t, m.Player(1).Board().Cell(board.Pt(0, 0)).Attacked())
	assert.Equal(t, 0, ui.Remaining())
}

func TestRunPlayerVsPlayerHandOff(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 3
	cfg.Fleet = []int{1}

	// Both players auto-place, player 1 fires at (0,0), then quit.
	ui := newScriptUI(pt.Confirm, pt.Confirm, pt.Confirm, pt.Quit)
	g, err := New(cfg, ui, WithMode(ModePvP))
	require.NoError(t, err)

	require.NoError(t, g.Run(context.Background()))

	m := g.Match()
	assert.Equal(t, 1, m.Turns())
	handOff := false
	for _, title := range ui.menuTitles() {
		if strings.Contains(title, "Player 2, it is your turn") {
			handOff = true
		}
	}
	missed := m.Player(1).Board().Cell(board.Pt(0, 0)) == board.CellMiss
	assert.Equal(t, missed, handOff, "the hand-off screen appears only when the turn passes")
}

func TestRunPropagatesInputErrors(t *testing.T) {
	g, err := New(testConfig(), newScriptUI(pt.Down))
	require.NoError(t, err)

	err = g.Run(context.Background())
	assert.ErrorIs(t, err, pt.ErrScriptExhausted)
}

func TestRunCancelledContext(t *testing.T) {
	g, err := New(testConfig(), newScriptUI(), WithMode(ModeCvC))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
}

func TestPlayerName(t *testing.T) {
	tests := []struct {
		mode     Mode
		index    int
		expected string
	}{
		{ModePvP, 0, "Player 1"},
		{ModePvP, 1, "Player 2"},
		{ModePvC, 0, "You"},
		{ModePvC, 1, "Computer"},
		{ModeCvC, 1, "Computer 2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, playerName(tt.mode, tt.index))
	}
}

func TestDescribe(t *testing.T) {
	attacker := newFake("p1", player.KindComputer)
	defender := newFake("p2", player.KindComputer)

	hit := TurnResult{Attacker: attacker, Defender: defender, Target: board.Pt(1, 2), Outcome: board.Hit}
	assert.Equal(t, "p1 hit at (1,2)!", describe(hit))

	miss := TurnResult{Attacker: attacker, Defender: defender, Target: board.Pt(3, 4), Outcome: board.Miss}
	assert.Equal(t, "p1 missed at (3,4).", describe(miss))

	won := TurnResult{Attacker: attacker, Defender: defender, Target: board.Pt(0, 0), Outcome: board.Hit, Won: true}
	assert.Equal(t, "p1 sank the last ship at (0,0)!", describe(won))
}

func TestReportKeepsAttackerNotice(t *testing.T) {
	g, err := New(testConfig(), newScriptUI())
	require.NoError(t, err)

	attacker := newFake("p1", player.KindHuman)
	defender := newFake("p2", player.KindHuman, ship(2, 2, 2, true))

	g.report(TurnResult{Attacker: attacker, Defender: defender, Target: board.Pt(2, 2), Outcome: board.Hit})
	assert.Empty(t, attacker.notes, "plain hits leave the attacker's own notice alone")
	assert.Equal(t, []string{"p1 hit at (2,2)!"}, defender.notes)

	sunk := defender.Board().Ships()[0]
	g.report(TurnResult{Attacker: attacker, Defender: defender, Target: board.Pt(3, 2), Outcome: board.Hit, Sunk: sunk})
	require.Len(t, attacker.notes, 1)
	assert.Contains(t, attacker.notes[0], "sank a ship of length 2")
}

func TestReportLeavesHumanHitNotice(t *testing.T) {
	ui := newScriptUI(pt.Quit)
	g, err := New(testConfig(), ui)
	require.NoError(t, err)

	human := player.NewHuman("Player 1", board.New(10), ui, ui, player.Options{})
	defender := newFake("Player 2", player.KindHuman, ship(4, 4, 2, true))
	target := board.Pt(4, 4)
	require.Equal(t, board.Hit, defender.Board().Attack(target))

	human.ProcessAttackResult(target, true)
	g.report(TurnResult{Attacker: human, Defender: defender, Target: target, Outcome: board.Hit})

	_, err = human.SelectAttack(context.Background())
	require.ErrorIs(t, err, player.ErrQuit)
	assert.Equal(t, "Hit at (4,4)! Fire again.", ui.Last().Message)
}
