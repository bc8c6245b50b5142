package board

// CellState is the content of a single board cell.
type CellState rune

const (
	// CellEmpty is open water that has not been attacked.
	CellEmpty CellState = '#'
	// CellShip holds part of a ship that has not been hit.
	CellShip CellState = 'S'
	// CellHit is a ship cell that has been attacked.
	CellHit CellState = 'H'
	// CellMiss is open water that has been attacked.
	CellMiss CellState = 'M'
)

// Attacked returns true once the cell has been fired upon.
func (c CellState) Attacked() bool {
	return c == CellHit || c == CellMiss
}

// Rune returns the cell's display character.
func (c CellState) Rune() rune {
	return rune(c)
}

// String returns a human-readable cell name.
func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// AttackOutcome is the result of firing at a board cell.
type AttackOutcome int

const (
	// Miss means the shot landed in open water.
	Miss AttackOutcome = iota
	// Hit means the shot struck a ship.
	Hit
	// AlreadyAttacked means the cell was fired upon before; nothing changed.
	AlreadyAttacked
	// OutOfBounds means the point is not on the board; nothing changed.
	OutOfBounds
)

// String returns a human-readable outcome name.
func (o AttackOutcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case AlreadyAttacked:
		return "already_attacked"
	case OutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Resolved returns true when the attack counted as a shot (hit or miss).
func (o AttackOutcome) Resolved() bool {
	return o == Hit || o == Miss
}

// Err returns the error describing a rejected attack, or nil for hits and misses.
func (o AttackOutcome) Err() error {
	switch o {
	case AlreadyAttacked:
		return ErrCellAlreadyAttacked
	case OutOfBounds:
		return ErrInvalidCoordinate
	default:
		return nil
	}
}
