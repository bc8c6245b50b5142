package player

import (
	"context"

	"github.com/samdwyer/battleship/internal/board"
)

// ComputerPlayer hunts at random until it scores a hit, then works through
// the neighbours of its hits, newest first.
type ComputerPlayer struct {
	base

	targetQueue []board.Point
	attacked    [][]bool
	shots       int
}

// NewComputer creates a computer player that owns b.
func NewComputer(name string, b *board.Board, opts Options) *ComputerPlayer {
	c := &ComputerPlayer{base: newBase(name, b, opts)}
	c.resetTargeting()
	return c
}

// Kind returns KindComputer.
func (c *ComputerPlayer) Kind() Kind { return KindComputer }

// PlaceShips always places the fleet at random; auto is ignored.
func (c *ComputerPlayer) PlaceShips(ctx context.Context, auto bool) error {
	c.logger.Debug("placing ships")
	return c.autoPlace(ctx)
}

// Hunting returns true while no hit is waiting to be followed up.
func (c *ComputerPlayer) Hunting() bool {
	return len(c.targetQueue) == 0
}

// TargetQueue returns a copy of the pending follow-up cells, oldest first.
func (c *ComputerPlayer) TargetQueue() []board.Point {
	return append([]board.Point(nil), c.targetQueue...)
}

// Attacked returns true if the computer has already chosen p.
func (c *ComputerPlayer) Attacked(p board.Point) bool {
	return c.inBounds(p) && c.attacked[p.Y][p.X]
}

// SelectAttack pops the newest queued target, or picks a random cell that
// has not been chosen before. No cell is ever returned twice.
func (c *ComputerPlayer) SelectAttack(ctx context.Context) (board.Point, error) {
	if err := ctx.Err(); err != nil {
		return NoAttack, err
	}

	for len(c.targetQueue) > 0 {
		last := len(c.targetQueue) - 1
		target := c.targetQueue[last]
		c.targetQueue = c.targetQueue[:last]
		// A cell can be queued by two different hits.
		if c.attacked[target.Y][target.X] {
			continue
		}
		c.markAttacked(target)
		return target, nil
	}

	size := c.board.Size()
	if c.shots >= size*size {
		return NoAttack, ErrNoTargets
	}
	for {
		p := board.Pt(c.rng.Intn(size), c.rng.Intn(size))
		if !c.attacked[p.Y][p.X] {
			c.markAttacked(p)
			return p, nil
		}
	}
}

// ProcessAttackResult records the shot and, on a hit, queues the cell's
// unattacked neighbours in the order up, down, left, right.
func (c *ComputerPlayer) ProcessAttackResult(p board.Point, hit bool) {
	c.base.ProcessAttackResult(p, hit)
	if !hit {
		return
	}
	for _, n := range p.Orthogonal() {
		if c.inBounds(n) && !c.attacked[n.Y][n.X] {
			c.targetQueue = append(c.targetQueue, n)
		}
	}
	c.logger.Debug("queued targets", "hit", p, "queue", len(c.targetQueue))
}

// Reset clears the board, the view and the targeting memory.
func (c *ComputerPlayer) Reset() {
	c.reset()
	c.resetTargeting()
}

func (c *ComputerPlayer) resetTargeting() {
	size := c.board.Size()
	c.attacked = make([][]bool, size)
	for y := range c.attacked {
		c.attacked[y] = make([]bool, size)
	}
	c.targetQueue = nil
	c.shots = 0
}

func (c *ComputerPlayer) markAttacked(p board.Point) {
	c.attacked[p.Y][p.X] = true
	c.shots++
}

func (c *ComputerPlayer) inBounds(p board.Point) bool {
	size := c.board.Size()
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}
