package board

import "errors"

var (
	// ErrInvalidCoordinate is returned for points outside the board.
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	// ErrCellAlreadyAttacked is returned when a cell is fired upon twice.
	ErrCellAlreadyAttacked = errors.New("cell already attacked")
	// ErrInvalidPlacement is returned for ships that leave the board, overlap or touch another ship.
	ErrInvalidPlacement = errors.New("invalid ship placement")
	// ErrPlacementExhausted is returned when random placement runs out of attempts.
	ErrPlacementExhausted = errors.New("ship placement attempts exhausted")
)
