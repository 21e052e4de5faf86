package gamemaster

import (
	"nimber/game"

	"github.com/rs/zerolog/log"
)

// Step plays one move for the current player if it is a PC. It returns false
// when the game is over or a human is to move.
func (gs *GameState) Step() bool {
	if gs.IsOver() {
		return false
	}
	current := gs.CurrentPlayer()
	m, ok := current.TakeTurn(gs.combination)
	if !ok {
		return false
	}
	if !gs.Commit(m) {
		// Suggestions come from the combination's own outcomes.
		panic("suggested move was rejected")
	}
	log.Info().
		Int("turn", gs.turn).
		Str("player", current.Role).
		Stringer("strategy", current.Strategy).
		Int("slot", m.Slot).
		Strs("outcome", outcomeKeys(m.Outcome)).
		Msg("pc move")
	return true
}

// Run steps until the game ends or a human is to move, and returns the number
// of moves played.
func (gs *GameState) Run() int {
	played := 0
	for gs.Step() {
		played++
	}
	if winner, over := gs.Winner(); over {
		log.Info().Int("turns", gs.turn).Str("winner", winner.Role).Msg("game over")
	}
	return played
}

func outcomeKeys(outcome game.Outcome) []string {
	keys := make([]string, len(outcome))
	for i, key := range outcome.Keys() {
		keys[i] = key.String()
	}
	return keys
}
