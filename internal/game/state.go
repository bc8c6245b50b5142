// Package game provides the match rules and the main game loop.
package game

// State represents the current game state.
type State int

const (
	// StateModeSelect is the main menu where the match type is chosen.
	StateModeSelect State = iota
	// StatePlacement is where both fleets are put on their boards.
	StatePlacement
	// StatePlaying alternates turns until one fleet is sunk.
	StatePlaying
	// StateGameOver shows the winner and offers a rematch.
	StateGameOver
	// StateExit ends Run.
	StateExit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateModeSelect:
		return "mode_select"
	case StatePlacement:
		return "placement"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}
