package game

// SplitRule adds a variant-specific restriction on top of the base split bound
// check. It only sees splits that already passed 1 <= start <= end < size.
type SplitRule func(size, start, end int) bool

// TakeAndBreak is a pile split by removing the items between two split points.
// Split points are numbered 1..size-1 between adjacent items; a move (start, end)
// keeps start items on the left and size-end items on the right.
//
//	o|o|o|o|o    size 5
//	 1 2 3 4     split points
type TakeAndBreak struct {
	size    int
	variant string
	rule    SplitRule
}

// NewTakeAndBreak creates a pile whose only constraint is the split bound.
func NewTakeAndBreak(size int) TakeAndBreak {
	return newTakeAndBreak(size, "take-and-break", nil)
}

// NewGrundy creates a pile of Grundy's game: a move splits a pile into two
// non-empty piles of different sizes without removing anything.
func NewGrundy(size int) TakeAndBreak {
	return newTakeAndBreak(size, "grundy", grundyRule)
}

func grundyRule(size, start, end int) bool {
	return start == end && start != size-end
}

func newTakeAndBreak(size int, variant string, rule SplitRule) TakeAndBreak {
	if size < 0 {
		panic("pile cannot be negative")
	}
	return TakeAndBreak{size: size, variant: variant, rule: rule}
}

// Size returns the number of items in the pile.
func (t TakeAndBreak) Size() int {
	return t.size
}

// IsLegalMove takes the split bound (start, end). Grundy's game also accepts a
// single value, the size of the pile split off to the right.
func (t TakeAndBreak) IsLegalMove(move ...int) bool {
	start, end, ok := t.splitBound(move)
	if !ok {
		return false
	}
	return t.isLegalSplit(start, end)
}

func (t TakeAndBreak) ApplyMove(move ...int) ([]Position, bool) {
	if !t.IsLegalMove(move...) {
		return nil, false
	}
	start, end, _ := t.splitBound(move)
	return []Position{t.resize(start), t.resize(t.size - end)}, true
}

func (t TakeAndBreak) Outcomes() []Outcome {
	var outcomes []Outcome
	for start := 1; start < t.size; start++ {
		for end := start; end < t.size; end++ {
			if t.isLegalSplit(start, end) {
				outcomes = append(outcomes, Outcome{t.resize(start), t.resize(t.size - end)})
			}
		}
	}
	return outcomes
}

func (t TakeAndBreak) CanMove() bool {
	for start := 1; start < t.size; start++ {
		for end := start; end < t.size; end++ {
			if t.isLegalSplit(start, end) {
				return true
			}
		}
	}
	return false
}

func (t TakeAndBreak) Key() Key {
	return Key{Variant: t.variant, State: itoa(t.size)}
}

func (t TakeAndBreak) splitBound(move []int) (start, end int, ok bool) {
	switch {
	case len(move) == 2:
		return move[0], move[1], true
	case len(move) == 1 && t.variant == "grundy":
		start = t.size - move[0]
		return start, start, true
	default:
		return 0, 0, false
	}
}

func (t TakeAndBreak) isLegalSplit(start, end int) bool {
	if !(1 <= start && start <= end && end < t.size) {
		return false
	}
	return t.rule == nil || t.rule(t.size, start, end)
}

func (t TakeAndBreak) resize(size int) TakeAndBreak {
	return TakeAndBreak{size: size, variant: t.variant, rule: t.rule}
}
