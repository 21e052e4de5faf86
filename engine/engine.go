package engine

import "nimber/game"

// Move is a suggested move: the slot to play in and the positions replacing it.
type Move struct {
	Slot    int
	Outcome game.Outcome
}

// Suggester proposes the next move of a disjunctive sum.
type Suggester interface {
	RandomNextMove() (Move, bool)
	OptimalNextMove() (Move, bool)
}
