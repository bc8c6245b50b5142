package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacementCells(t *testing.T) {
	tests := []struct {
		pl       Placement
		expected []Point
	}{
		{Placement{Start: Pt(0, 0), Length: 1, Horizontal: true}, []Point{Pt(0, 0)}},
		{Placement{Start: Pt(2, 3), Length: 3, Horizontal: true}, []Point{Pt(2, 3), Pt(3, 3), Pt(4, 3)}},
		{Placement{Start: Pt(2, 3), Length: 3, Horizontal: false}, []Point{Pt(2, 3), Pt(2, 4), Pt(2, 5)}},
		{Placement{Start: Pt(0, 0), Length: 0, Horizontal: true}, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.pl.Cells(), "Cells() for %s", tt.pl)
	}
}

func TestPlacementCellsAreConsecutive(t *testing.T) {
	for length := 1; length <= 4; length++ {
		for _, horizontal := range []bool{true, false} {
			pl := Placement{Start: Pt(1, 1), Length: length, Horizontal: horizontal}
			cells := pl.Cells()
			require.Len(t, cells, length)

			seen := make(map[Point]bool)
			for i, p := range cells {
				assert.False(t, seen[p], "duplicate cell %s", p)
				seen[p] = true
				assert.True(t, pl.Contains(p))
				if i == 0 {
					continue
				}
				prev := cells[i-1]
				if horizontal {
					assert.Equal(t, prev.Add(1, 0), p)
				} else {
					assert.Equal(t, prev.Add(0, 1), p)
				}
			}
		}
	}
}

func TestPlacementRotated(t *testing.T) {
	pl := Placement{Start: Pt(1, 2), Length: 3, Horizontal: true}
	r := pl.Rotated()

	assert.False(t, r.Horizontal)
	assert.Equal(t, pl.Start, r.Start)
	assert.True(t, pl.Horizontal, "receiver is not modified")
	assert.Equal(t, "3H@(1,2)", pl.String())
}

func TestNewShipRejectsZeroLength(t *testing.T) {
	_, err := NewShip(Placement{Start: Pt(0, 0), Length: 0})
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestShipOccupies(t *testing.T) {
	ship, err := NewShip(Placement{Start: Pt(4, 4), Length: 3, Horizontal: false})
	require.NoError(t, err)

	assert.True(t, ship.Occupies(Pt(4, 4)))
	assert.True(t, ship.Occupies(Pt(4, 6)))
	assert.False(t, ship.Occupies(Pt(4, 7)))
	assert.False(t, ship.Occupies(Pt(5, 4)))
	assert.False(t, ship.Occupies(Pt(4, 3)))
}

func TestShipRegisterHitIsIdempotent(t *testing.T) {
	ship, err := NewShip(Placement{Start: Pt(0, 0), Length: 3, Horizontal: true})
	require.NoError(t, err)

	assert.True(t, ship.RegisterHit(Pt(1, 0)))
	for i := 0; i < 5; i++ {
		assert.False(t, ship.RegisterHit(Pt(1, 0)))
	}
	assert.Equal(t, 1, ship.Hits())
	assert.False(t, ship.IsSunk(), "repeated hits on one cell must not sink a ship")

	assert.False(t, ship.RegisterHit(Pt(5, 5)), "foreign point is ignored")
	assert.Equal(t, 1, ship.Hits())

	ship.RegisterHit(Pt(0, 0))
	assert.False(t, ship.IsSunk())
	ship.RegisterHit(Pt(2, 0))
	assert.True(t, ship.IsSunk())
	assert.True(t, ship.IsHitAt(Pt(2, 0)))
}

func TestShipGeometryIsStable(t *testing.T) {
	pl := Placement{Start: Pt(6, 2), Length: 4, Horizontal: false}
	ship, err := NewShip(pl)
	require.NoError(t, err)

	for _, p := range []Point{Pt(6, 5), Pt(6, 2), Pt(6, 4)} {
		ship.RegisterHit(p)
	}

	assert.Equal(t, pl, ship.Placement())
	assert.Equal(t, pl.Cells(), ship.Cells())
}

func TestPointOrthogonalOrder(t *testing.T) {
	got := Pt(5, 5).Orthogonal()
	assert.Equal(t, [4]Point{Pt(5, 4), Pt(5, 6), Pt(4, 5), Pt(6, 5)}, got)
}
