package board

import "fmt"

// Placement describes where a ship sits before it is put on a board.
type Placement struct {
	Start      Point // Bow position (top-most or left-most cell)
	Length     int   // Number of cells
	Horizontal bool  // True extends along X, false along Y
}

// Cells returns the points covered by the placement, starting at Start.
func (pl Placement) Cells() []Point {
	if pl.Length < 1 {
		return nil
	}
	cells := make([]Point, pl.Length)
	for i := range cells {
		if pl.Horizontal {
			cells[i] = pl.Start.Add(i, 0)
		} else {
			cells[i] = pl.Start.Add(0, i)
		}
	}
	return cells
}

// Contains returns true if the point lies inside the placement.
func (pl Placement) Contains(p Point) bool {
	if pl.Length < 1 {
		return false
	}
	if pl.Horizontal {
		return p.Y == pl.Start.Y && p.X >= pl.Start.X && p.X < pl.Start.X+pl.Length
	}
	return p.X == pl.Start.X && p.Y >= pl.Start.Y && p.Y < pl.Start.Y+pl.Length
}

// Rotated returns the same placement with the other orientation.
func (pl Placement) Rotated() Placement {
	pl.Horizontal = !pl.Horizontal
	return pl
}

// String returns a compact description such as "3H@(2,4)".
func (pl Placement) String() string {
	axis := "V"
	if pl.Horizontal {
		axis = "H"
	}
	return fmt.Sprintf("%d%s@%s", pl.Length, axis, pl.Start)
}

// Ship is a placed ship. Its geometry is fixed when it is created; only the
// set of hit cells changes afterwards.
type Ship struct {
	placement Placement
	hits      map[Point]struct{}
}

// NewShip creates an undamaged ship with the given geometry.
func NewShip(pl Placement) (*Ship, error) {
	if pl.Length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidPlacement, pl.Length)
	}
	return &Ship{
		placement: pl,
		hits:      make(map[Point]struct{}, pl.Length),
	}, nil
}

// Placement returns the ship's geometry.
func (s *Ship) Placement() Placement {
	return s.placement
}

// Length returns the number of cells the ship covers.
func (s *Ship) Length() int {
	return s.placement.Length
}

// Cells returns the occupied points in order from the bow.
func (s *Ship) Cells() []Point {
	return s.placement.Cells()
}

// Occupies returns true if the ship covers p.
func (s *Ship) Occupies(p Point) bool {
	return s.placement.Contains(p)
}

// RegisterHit records a hit at p. Points the ship does not cover are ignored,
// and hitting the same cell twice counts once. Returns true if the hit was new.
func (s *Ship) RegisterHit(p Point) bool {
	if !s.Occupies(p) {
		return false
	}
	if _, ok := s.hits[p]; ok {
		return false
	}
	s.hits[p] = struct{}{}
	return true
}

// IsHitAt returns true if the cell at p has been hit.
func (s *Ship) IsHitAt(p Point) bool {
	_, ok := s.hits[p]
	return ok
}

// Hits returns the number of distinct cells that have been hit.
func (s *Ship) Hits() int {
	return len(s.hits)
}

// IsSunk returns true once every occupied cell has been hit.
func (s *Ship) IsSunk() bool {
	return len(s.hits) == s.placement.Length
}
