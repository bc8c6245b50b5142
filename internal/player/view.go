package player

import "github.com/samdwyer/battleship/internal/board"

// Mark is what a player knows about one cell of the opponent's board.
type Mark int

const (
	// MarkUnknown is a cell the player has not fired at.
	MarkUnknown Mark = iota
	// MarkHit is a cell where the player struck a ship.
	MarkHit
	// MarkMiss is a cell where the player hit open water.
	MarkMiss
)

// String returns a human-readable mark name.
func (m Mark) String() string {
	switch m {
	case MarkUnknown:
		return "unknown"
	case MarkHit:
		return "hit"
	case MarkMiss:
		return "miss"
	default:
		return "invalid"
	}
}

// AttackView is a player's private record of the opponent's board.
// Cells only move away from MarkUnknown until Reset.
type AttackView struct {
	size  int
	marks [][]Mark
}

// NewAttackView creates a view with every cell unknown.
func NewAttackView(size int) *AttackView {
	v := &AttackView{size: size}
	v.Reset()
	return v
}

// Reset forgets everything.
func (v *AttackView) Reset() {
	marks := make([][]Mark, v.size)
	for y := range marks {
		marks[y] = make([]Mark, v.size)
	}
	v.marks = marks
}

// Size returns the edge length of the view.
func (v *AttackView) Size() int {
	return v.size
}

// At returns the mark at p. Points off the grid read as unknown.
func (v *AttackView) At(p board.Point) Mark {
	if p.X < 0 || p.X >= v.size || p.Y < 0 || p.Y >= v.size {
		return MarkUnknown
	}
	return v.marks[p.Y][p.X]
}

// Record stores the result of a shot at p. Returns false if p is off the
// grid or already known.
func (v *AttackView) Record(p board.Point, hit bool) bool {
	if p.X < 0 || p.X >= v.size || p.Y < 0 || p.Y >= v.size {
		return false
	}
	if v.marks[p.Y][p.X] != MarkUnknown {
		return false
	}
	if hit {
		v.marks[p.Y][p.X] = MarkHit
	} else {
		v.marks[p.Y][p.X] = MarkMiss
	}
	return true
}

// Count returns how many cells carry the given mark.
func (v *AttackView) Count(m Mark) int {
	n := 0
	for _, row := range v.marks {
		for _, mark := range row {
			if mark == m {
				n++
			}
		}
	}
	return n
}
