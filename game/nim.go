package game

// Nim is a single pile from which a move removes between 1 and all of the items.
type Nim struct {
	count int
}

// NewNim creates a pile with count items. Negative counts panic.
func NewNim(count int) Nim {
	if count < 0 {
		panic("nim pile cannot be negative")
	}
	return Nim{count: count}
}

// Count returns the number of items left in the pile.
func (n Nim) Count() int {
	return n.count
}

// IsLegalMove takes the number of removed items.
func (n Nim) IsLegalMove(move ...int) bool {
	if len(move) != 1 {
		return false
	}
	removed := move[0]
	return 1 <= removed && removed <= n.count
}

func (n Nim) ApplyMove(move ...int) ([]Position, bool) {
	if !n.IsLegalMove(move...) {
		return nil, false
	}
	return []Position{Nim{count: n.count - move[0]}}, true
}

// Outcomes lists the remaining pile sizes from 0 up to count-1.
func (n Nim) Outcomes() []Outcome {
	outcomes := make([]Outcome, 0, n.count)
	for remaining := 0; remaining < n.count; remaining++ {
		outcomes = append(outcomes, Outcome{Nim{count: remaining}})
	}
	return outcomes
}

func (n Nim) CanMove() bool {
	return n.count > 0
}

func (n Nim) Key() Key {
	return Key{Variant: "nim", State: itoa(n.count)}
}
