package gamemaster

import (
	"fmt"
	"nimber/engine"
	"nimber/game"
	"nimber/player"
	"slices"
)

// Update is one move played during a match.
type Update struct {
	Turn    int
	Player  player.Player
	Slot    int
	Outcome game.Outcome
}

// GameState tracks whose turn it is over a combination of games.
type GameState struct {
	turn        int
	players     [2]player.Player
	combination *engine.Combination
	history     []Update
}

// NewGameState starts a match between exactly two players on games.
func NewGameState(players []player.Player, games []game.Position, options ...engine.Option) *GameState {
	if len(players) != 2 {
		panic(fmt.Sprintf("a match needs 2 players, got %d", len(players)))
	}
	return &GameState{
		players:     [2]player.Player{players[0], players[1]},
		combination: engine.NewCombination(games, options...),
	}
}

// Turn is the number of moves played so far.
func (gs *GameState) Turn() int {
	return gs.turn
}

func (gs *GameState) Players() []player.Player {
	return gs.players[:]
}

func (gs *GameState) CurrentPlayer() player.Player {
	return gs.players[gs.turn%2]
}

// LastPlayer is the player who made the previous move. Before the first move
// it is the second player.
func (gs *GameState) LastPlayer() player.Player {
	return gs.players[(gs.turn+1)%2]
}

func (gs *GameState) Combination() *engine.Combination {
	return gs.combination
}

func (gs *GameState) Games() []game.Position {
	return gs.combination.Games()
}

// History returns a copy of the moves played so far.
func (gs *GameState) History() []Update {
	return slices.Clone(gs.history)
}

func (gs *GameState) CanMove() bool {
	return gs.combination.CanMove()
}

func (gs *GameState) IsOver() bool {
	return !gs.combination.CanMove()
}

func (gs *GameState) NimSum() int {
	return gs.combination.NimSum()
}

func (gs *GameState) IsWinningPosition() bool {
	return gs.combination.IsWinningPosition()
}

func (gs *GameState) IsLegalMove(slot int, move ...int) bool {
	return gs.combination.IsLegalMove(slot, move...)
}

// ApplyMove plays move for the current player. The turn advances only when
// the move is accepted.
func (gs *GameState) ApplyMove(slot int, move ...int) bool {
	g := gs.combination.Game(slot)
	if g == nil || !g.IsLegalMove(move...) {
		return gs.combination.ApplyMove(slot, move...)
	}
	outcome, _ := g.ApplyMove(move...)
	if !gs.combination.ApplyMove(slot, move...) {
		return false
	}
	gs.advance(slot, outcome)
	return true
}

// Commit plays a suggested move for the current player.
func (gs *GameState) Commit(m engine.Move) bool {
	if !gs.combination.Commit(m) {
		return false
	}
	gs.advance(m.Slot, m.Outcome)
	return true
}

func (gs *GameState) RandomNextMove() (engine.Move, bool) {
	return gs.combination.RandomNextMove()
}

func (gs *GameState) OptimalNextMove() (engine.Move, bool) {
	return gs.combination.OptimalNextMove()
}

// Winner returns the player who moved last once no move remains. A player
// unable to move loses.
func (gs *GameState) Winner() (player.Player, bool) {
	if !gs.IsOver() {
		return player.Player{}, false
	}
	return gs.LastPlayer(), true
}

func (gs *GameState) advance(slot int, outcome game.Outcome) {
	gs.history = append(gs.history, Update{
		Turn:    gs.turn,
		Player:  gs.CurrentPlayer(),
		Slot:    slot,
		Outcome: outcome,
	})
	gs.turn++
}
