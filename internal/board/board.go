package board

import "fmt"

// DefaultSize is the standard board edge length.
const DefaultSize = 10

// Board is a square grid that owns the ships placed on it.
type Board struct {
	size  int
	cells [][]CellState
	ships []*Ship
}

// New creates an empty board of the given edge length.
func New(size int) *Board {
	b := &Board{size: size}
	b.Reset()
	return b
}

// Reset clears every cell to open water and discards all ships.
func (b *Board) Reset() {
	cells := make([][]CellState, b.size)
	for y := range cells {
		cells[y] = make([]CellState, b.size)
		for x := range cells[y] {
			cells[y][x] = CellEmpty
		}
	}
	b.cells = cells
	b.ships = nil
}

// Size returns the board's edge length.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if p lies on the board.
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// Cell returns the state at p. Points off the board read as empty water.
func (b *Board) Cell(p Point) CellState {
	if !b.InBounds(p) {
		return CellEmpty
	}
	return b.cells[p.Y][p.X]
}

// Cells returns a copy of the grid, indexed [y][x].
func (b *Board) Cells() [][]CellState {
	out := make([][]CellState, b.size)
	for y := range b.cells {
		out[y] = append([]CellState(nil), b.cells[y]...)
	}
	return out
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	return b.ships
}

// ShipAt returns the ship covering p, or nil.
func (b *Board) ShipAt(p Point) *Ship {
	for _, s := range b.ships {
		if s.Occupies(p) {
			return s
		}
	}
	return nil
}

// Validate reports why a placement cannot be made, or nil if it can.
// Every cell must be on the board and empty, and no neighbouring cell
// (diagonals included) may hold anything.
func (b *Board) Validate(pl Placement) error {
	if pl.Length < 1 {
		return fmt.Errorf("%w: length %d", ErrInvalidPlacement, pl.Length)
	}
	for _, p := range pl.Cells() {
		if !b.InBounds(p) {
			return fmt.Errorf("%w: %s leaves the board at %s", ErrInvalidPlacement, pl, p)
		}
		if b.cells[p.Y][p.X] != CellEmpty {
			return fmt.Errorf("%w: %s overlaps at %s", ErrInvalidPlacement, pl, p)
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := p.Add(dx, dy)
				if b.InBounds(n) && b.cells[n.Y][n.X] != CellEmpty {
					return fmt.Errorf("%w: %s touches a ship at %s", ErrInvalidPlacement, pl, n)
				}
			}
		}
	}
	return nil
}

// CanPlace returns true if the placement passes Validate.
func (b *Board) CanPlace(pl Placement) bool {
	return b.Validate(pl) == nil
}

// Place puts a ship on the board. On failure the board is left unchanged.
func (b *Board) Place(pl Placement) (*Ship, error) {
	if err := b.Validate(pl); err != nil {
		return nil, err
	}
	ship, err := NewShip(pl)
	if err != nil {
		return nil, err
	}
	for _, p := range ship.Cells() {
		b.cells[p.Y][p.X] = CellShip
	}
	b.ships = append(b.ships, ship)
	return ship, nil
}

// Attack fires at p and reports the outcome. Rejected attacks
// (OutOfBounds, AlreadyAttacked) do not modify the board.
func (b *Board) Attack(p Point) AttackOutcome {
	if !b.InBounds(p) {
		return OutOfBounds
	}
	if b.cells[p.Y][p.X].Attacked() {
		return AlreadyAttacked
	}

	for _, s := range b.ships {
		if s.Occupies(p) {
			s.RegisterHit(p)
			b.cells[p.Y][p.X] = CellHit
			return Hit
		}
	}
	b.cells[p.Y][p.X] = CellMiss
	return Miss
}

// Remaining returns the number of ships that are still afloat.
func (b *Board) Remaining() int {
	count := 0
	for _, s := range b.ships {
		if !s.IsSunk() {
			count++
		}
	}
	return count
}

// AllSunk returns true when no placed ship is afloat. A board with no ships
// reports true, so callers should only ask once placement is complete.
func (b *Board) AllSunk() bool {
	for _, s := range b.ships {
		if !s.IsSunk() {
			return false
		}
	}
	return true
}
