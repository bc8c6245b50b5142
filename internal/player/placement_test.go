package player_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/player"
)

func TestAutoPlaceFullFleet(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := board.New(board.DefaultSize)
		err := player.AutoPlace(context.Background(), b, player.DefaultFleet, rand.New(rand.NewSource(seed)), nil)
		require.NoError(t, err, "seed %d", seed)

		var lengths []int
		for _, s := range b.Ships() {
			lengths = append(lengths, s.Length())
		}
		assert.Equal(t, player.DefaultFleet, lengths, "ships are placed in fleet order (seed %d)", seed)

		// No two ships touch, diagonals included.
		ships := b.Ships()
		for i := range ships {
			for j := i + 1; j < len(ships); j++ {
				for _, p := range ships[i].Cells() {
					for _, q := range ships[j].Cells() {
						dx, dy := p.X-q.X, p.Y-q.Y
						assert.False(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1,
							"seed %d: ships %d and %d touch at %s/%s", seed, i, j, p, q)
					}
				}
			}
		}
	}
}

func TestAutoPlaceIsReproducible(t *testing.T) {
	place := func() []board.Placement {
		b := board.New(10)
		require.NoError(t, player.AutoPlace(context.Background(), b, player.DefaultFleet, rand.New(rand.NewSource(777)), nil))
		var out []board.Placement
		for _, s := range b.Ships() {
			out = append(out, s.Placement())
		}
		return out
	}

	assert.Equal(t, place(), place())
}

func TestAutoPlaceExhausted(t *testing.T) {
	b := board.New(3)

	// Only two length-3 ships fit on a 3x3 board.
	err := player.AutoPlace(context.Background(), b, []int{3, 3, 3}, rand.New(rand.NewSource(1)), nil)

	assert.ErrorIs(t, err, board.ErrPlacementExhausted)
	assert.Empty(t, b.Ships(), "a failed placement leaves the board empty")
}

func TestAutoPlaceReplacesExistingShips(t *testing.T) {
	b := board.New(10)
	_, err := b.Place(board.Placement{Start: board.Pt(0, 0), Length: 4, Horizontal: true})
	require.NoError(t, err)

	require.NoError(t, player.AutoPlace(context.Background(), b, []int{2, 1}, rand.New(rand.NewSource(4)), nil))

	lengths := []int{}
	for _, s := range b.Ships() {
		lengths = append(lengths, s.Length())
	}
	sort.Ints(lengths)
	assert.Equal(t, []int{1, 2}, lengths)
}

func TestAttackViewRecord(t *testing.T) {
	v := player.NewAttackView(4)

	assert.True(t, v.Record(board.Pt(1, 2), true))
	assert.False(t, v.Record(board.Pt(1, 2), false), "known cells do not change")
	assert.False(t, v.Record(board.Pt(4, 0), false))
	assert.False(t, v.Record(board.Pt(-1, 0), true))

	assert.Equal(t, player.MarkHit, v.At(board.Pt(1, 2)))
	assert.Equal(t, player.MarkUnknown, v.At(board.Pt(9, 9)))
	assert.Equal(t, 1, v.Count(player.MarkHit))
	assert.Equal(t, 15, v.Count(player.MarkUnknown))

	v.Reset()
	assert.Equal(t, 16, v.Count(player.MarkUnknown))
}

func TestKindAndMarkString(t *testing.T) {
	tests := []struct {
		got      string
		expected string
	}{
		{player.KindHuman.String(), "human"},
		{player.KindComputer.String(), "computer"},
		{player.Kind(9).String(), "unknown"},
		{player.MarkUnknown.String(), "unknown"},
		{player.MarkHit.String(), "hit"},
		{player.MarkMiss.String(), "miss"},
		{player.CmdToggle.String(), "toggle"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("String() = %q, want %q", tt.got, tt.expected)
		}
	}
}
