package player

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battleship/internal/board"
	"github.com/samdwyer/battleship/internal/telemetry"
)

const (
	// maxShipAttempts is how many random positions are tried for one ship.
	maxShipAttempts = 100
	// maxFleetAttempts is how many times the whole fleet is restarted on an
	// empty board before giving up.
	maxFleetAttempts = 50
)

// AutoPlace seats every ship in fleet at random positions. When a ship cannot
// be seated within maxShipAttempts tries, the board is cleared and the whole
// fleet starts over. The board is empty again if ErrPlacementExhausted is returned.
func AutoPlace(ctx context.Context, b *board.Board, fleet []int, rng *rand.Rand, logger *log.Logger) error {
	tracer := telemetry.Tracer("player")
	_, span := tracer.Start(ctx, "placement.auto")
	defer span.End()

	span.SetAttributes(
		attribute.Int("board.size", b.Size()),
		attribute.Int("fleet.ships", len(fleet)),
	)

	for attempt := 1; attempt <= maxFleetAttempts; attempt++ {
		b.Reset()
		length, ok := placeFleet(b, fleet, rng)
		if ok {
			span.SetAttributes(attribute.Int("placement.fleet_attempts", attempt))
			return nil
		}
		if logger != nil {
			logger.Warn("could not place ship, restarting fleet", "length", length, "attempt", attempt)
		}
	}

	b.Reset()
	span.SetAttributes(attribute.Bool("failed", true))
	return fmt.Errorf("%w: fleet %v on %dx%d board after %d tries",
		board.ErrPlacementExhausted, fleet, b.Size(), b.Size(), maxFleetAttempts)
}

// placeFleet tries each ship in order. On failure it returns the length
// that could not be placed.
func placeFleet(b *board.Board, fleet []int, rng *rand.Rand) (int, bool) {
	for _, length := range fleet {
		if !placeRandom(b, length, rng) {
			return length, false
		}
	}
	return 0, true
}

// placeRandom samples positions and orientations until one fits.
func placeRandom(b *board.Board, length int, rng *rand.Rand) bool {
	size := b.Size()
	for i := 0; i < maxShipAttempts; i++ {
		pl := board.Placement{
			Start:      board.Pt(rng.Intn(size), rng.Intn(size)),
			Length:     length,
			Horizontal: rng.Intn(2) == 0,
		}
		if _, err := b.Place(pl); err == nil {
			return true
		}
	}
	return false
}

// fits returns true if every cell of pl is on a board of the given size.
func fits(pl board.Placement, size int) bool {
	end := pl.Start
	if pl.Horizontal {
		end = end.Add(pl.Length-1, 0)
	} else {
		end = end.Add(0, pl.Length-1)
	}
	return pl.Start.X >= 0 && pl.Start.Y >= 0 && end.X < size && end.Y < size
}
