package game

import "strconv"

// Key identifies a position for memoization. Two positions with equal keys must
// have the same moves, so every key carries the variant and the rule parameters
// alongside the state.
type Key struct {
	Variant string
	Rules   string
	State   string
}

func (k Key) String() string {
	if k.Rules == "" {
		return k.Variant + ":" + k.State
	}
	return k.Variant + "(" + k.Rules + "):" + k.State
}

// Outcome is the disjunctive set of positions that replace a game's slot after a
// move. It may be empty (the game vanishes) or hold several positions (a split).
type Outcome []Position

// Keys returns the identity keys of the outcome's positions, in order.
func (o Outcome) Keys() []Key {
	keys := make([]Key, len(o))
	for i, p := range o {
		keys[i] = p.Key()
	}
	return keys
}

// Position should be immutable - ApplyMove always returns new positions and never
// changes the receiver.
type Position interface {
	// IsLegalMove reports whether the move descriptor is legal. It never panics.
	IsLegalMove(move ...int) bool
	// ApplyMove returns the positions the game decomposes into after the move, or
	// false if the move is illegal.
	ApplyMove(move ...int) ([]Position, bool)
	// Outcomes enumerates every position set reachable in one move.
	Outcomes() []Outcome
	// CanMove reports whether at least one outcome exists.
	CanMove() bool
	Key() Key
}

// Reachability of every variant forms a finite DAG: each move strictly decreases
// a well-founded measure (pile size, cell index, vector sum).

func itoa(n int) string {
	return strconv.Itoa(n)
}

func joinInts(values []int) string {
	buf := make([]byte, 0, 4*len(values))
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}
