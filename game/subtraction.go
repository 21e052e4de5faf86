package game

import "slices"

// Deltas generates the subtraction vectors available from a state.
type Deltas func(state []int) [][]int

// SubtractionSet is a named generator of subtraction vectors. The name is part
// of every position's identity key, so distinct generators need distinct names.
type SubtractionSet struct {
	name   string
	deltas Deltas
}

func NewSubtractionSet(name string, deltas Deltas) SubtractionSet {
	if deltas == nil {
		panic("subtraction set needs a generator")
	}
	return SubtractionSet{name: name, deltas: deltas}
}

// NewScalarSet wraps a single-pile generator into the vector form.
func NewScalarSet(name string, deltas func(n int) []int) SubtractionSet {
	return NewSubtractionSet(name, func(state []int) [][]int {
		if len(state) != 1 {
			return nil
		}
		values := deltas(state[0])
		vectors := make([][]int, len(values))
		for i, v := range values {
			vectors[i] = []int{v}
		}
		return vectors
	})
}

func (s SubtractionSet) Name() string {
	return s.name
}

// AllPositive allows removing any positive number of items (plain Nim).
func AllPositive() SubtractionSet {
	return NewScalarSet("all", func(n int) []int {
		values := make([]int, 0, n)
		for i := 1; i <= n; i++ {
			values = append(values, i)
		}
		return values
	})
}

// Squares allows removing a positive perfect square.
func Squares() SubtractionSet {
	return NewScalarSet("squares", func(n int) []int {
		var values []int
		for i := 1; i*i <= n; i++ {
			values = append(values, i*i)
		}
		return values
	})
}

// UpTo allows removing between 1 and limit items.
func UpTo(limit int) SubtractionSet {
	if limit < 1 {
		panic("subtraction bound must be positive")
	}
	return NewScalarSet("upto"+itoa(limit), func(n int) []int {
		values := make([]int, 0, limit)
		for i := 1; i <= limit && i <= n; i++ {
			values = append(values, i)
		}
		return values
	})
}

// FixedSet allows removing exactly one of the given amounts. Non-positive values
// are dropped.
func FixedSet(values ...int) SubtractionSet {
	set := make([]int, 0, len(values))
	for _, v := range values {
		if v > 0 {
			set = append(set, v)
		}
	}
	slices.Sort(set)
	set = slices.Compact(set)
	return NewScalarSet("set{"+joinInts(set)+"}", func(n int) []int {
		var allowed []int
		for _, v := range set {
			if v > n {
				break
			}
			allowed = append(allowed, v)
		}
		return allowed
	})
}

// Subtraction is a game whose state is a vector of non-negative integers and
// whose moves subtract a vector produced by its subtraction set.
type Subtraction struct {
	state []int
	set   SubtractionSet
}

func NewSubtraction(state []int, set SubtractionSet) Subtraction {
	for _, v := range state {
		if v < 0 {
			panic("subtraction state cannot be negative")
		}
	}
	return Subtraction{state: slices.Clone(state), set: set}
}

// State returns a copy of the current vector.
func (s Subtraction) State() []int {
	return slices.Clone(s.state)
}

func (s Subtraction) Set() SubtractionSet {
	return s.set
}

func (s Subtraction) IsLegalMove(move ...int) bool {
	if !s.canSubtract(move) {
		return false
	}
	for _, delta := range s.set.deltas(s.state) {
		if slices.Equal(delta, move) {
			return true
		}
	}
	return false
}

func (s Subtraction) ApplyMove(move ...int) ([]Position, bool) {
	if !s.IsLegalMove(move...) {
		return nil, false
	}
	return []Position{s.subtract(move)}, true
}

// Outcomes skips generated vectors that would leave a negative component or
// subtract nothing, which keeps the game graph acyclic.
func (s Subtraction) Outcomes() []Outcome {
	var outcomes []Outcome
	for _, delta := range s.set.deltas(s.state) {
		if !s.canSubtract(delta) {
			continue
		}
		outcomes = append(outcomes, Outcome{s.subtract(delta)})
	}
	return outcomes
}

func (s Subtraction) CanMove() bool {
	return len(s.Outcomes()) > 0
}

func (s Subtraction) Key() Key {
	return Key{Variant: "subtraction", Rules: s.set.name, State: joinInts(s.state)}
}

func (s Subtraction) String() string {
	return "[" + joinInts(s.state) + "]"
}

func (s Subtraction) canSubtract(delta []int) bool {
	if len(delta) != len(s.state) {
		return false
	}
	total := 0
	for i, d := range delta {
		if d < 0 || d > s.state[i] {
			return false
		}
		total += d
	}
	return total > 0
}

func (s Subtraction) subtract(delta []int) Subtraction {
	next := make([]int, len(s.state))
	for i, v := range s.state {
		next[i] = v - delta[i]
	}
	return Subtraction{state: next, set: s.set}
}

// ScalarSubtraction is the single-pile form of Subtraction; moves are plain
// integers instead of one-element vectors.
type ScalarSubtraction struct {
	inner Subtraction
}

func NewScalarSubtraction(count int, set SubtractionSet) ScalarSubtraction {
	return ScalarSubtraction{inner: NewSubtraction([]int{count}, set)}
}

// Count returns the number of items left in the pile.
func (s ScalarSubtraction) Count() int {
	return s.inner.state[0]
}

func (s ScalarSubtraction) Set() SubtractionSet {
	return s.inner.set
}

func (s ScalarSubtraction) IsLegalMove(move ...int) bool {
	if len(move) != 1 {
		return false
	}
	return s.inner.IsLegalMove(move...)
}

func (s ScalarSubtraction) ApplyMove(move ...int) ([]Position, bool) {
	if !s.IsLegalMove(move...) {
		return nil, false
	}
	return []Position{ScalarSubtraction{inner: s.inner.subtract(move)}}, true
}

func (s ScalarSubtraction) Outcomes() []Outcome {
	outcomes := s.inner.Outcomes()
	for i, outcome := range outcomes {
		outcomes[i] = Outcome{ScalarSubtraction{inner: outcome[0].(Subtraction)}}
	}
	return outcomes
}

func (s ScalarSubtraction) CanMove() bool {
	return s.inner.CanMove()
}

// Key is shared with the one-element vector form, which has the same moves.
func (s ScalarSubtraction) Key() Key {
	return s.inner.Key()
}
