package engine

import (
	"fmt"
	"nimber/game"
	"nimber/searcher"
	"nimber/utils"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(c *Combination)

// WithRand sets the random source used by the move suggestions.
func WithRand(r *rand.Rand) Option {
	return func(c *Combination) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithSeed seeds the random source; 0 draws a fresh seed.
func WithSeed(seed uint64) Option {
	return func(c *Combination) {
		c.rand = utils.NewRand(seed)
	}
}

func WithAnalyzerOptions(options ...searcher.Option) Option {
	return func(c *Combination) {
		c.analyzerOptions = append(c.analyzerOptions, options...)
	}
}

// Combination is a disjunctive sum of games: a turn moves in exactly one of
// them. It owns its analyzer and is not safe for concurrent use.
type Combination struct {
	games           []game.Position
	movable         []int // indices of games that can move
	analyzer        *searcher.Analyzer
	analyzerOptions []searcher.Option
	rand            *rand.Rand
}

func NewCombination(games []game.Position, options ...Option) *Combination {
	c := &Combination{games: slices.Clone(games)}
	for _, option := range options {
		option(c)
	}
	if c.rand == nil {
		c.rand = utils.NewRand(0)
	}
	c.analyzer = searcher.NewAnalyzer(c.analyzerOptions...)
	c.updateMovable()
	return c
}

// NimSum XORs the nimbers of every game.
func (c *Combination) NimSum() int {
	sum := 0
	for _, g := range c.games {
		sum ^= c.analyzer.Nimber(g)
	}
	return sum
}

// IsWinningPosition reports whether the player to move wins under optimal play.
func (c *Combination) IsWinningPosition() bool {
	return c.NimSum() != 0
}

func (c *Combination) IsLosingPosition() bool {
	return !c.IsWinningPosition()
}

func (c *Combination) CanMove() bool {
	return len(c.movable) > 0
}

// Games returns a copy of the current games.
func (c *Combination) Games() []game.Position {
	return slices.Clone(c.games)
}

// Game returns the game at index, or nil when index is out of range.
func (c *Combination) Game(index int) game.Position {
	if index < 0 || index >= len(c.games) {
		return nil
	}
	return c.games[index]
}

func (c *Combination) Len() int {
	return len(c.games)
}

// Movable returns the indices of the games that can still move.
func (c *Combination) Movable() []int {
	return slices.Clone(c.movable)
}

func (c *Combination) Analyzer() *searcher.Analyzer {
	return c.analyzer
}

func (c *Combination) IsLegalMove(index int, move ...int) bool {
	g := c.Game(index)
	return g != nil && g.IsLegalMove(move...)
}

// ApplyMove plays move in the game at index. An illegal move returns false and
// leaves the combination unchanged.
func (c *Combination) ApplyMove(index int, move ...int) bool {
	if !c.IsLegalMove(index, move...) {
		log.Debug().Int("slot", index).Ints("move", move).Msg("rejected move")
		return false
	}
	spawned, ok := c.games[index].ApplyMove(move...)
	if !ok {
		return false
	}
	c.replace(index, spawned)
	return true
}

// Commit plays a suggested move. The outcome must match one of the slot's
// reachable outcomes.
func (c *Combination) Commit(m Move) bool {
	g := c.Game(m.Slot)
	if g == nil {
		return false
	}
	keys := m.Outcome.Keys()
	for _, outcome := range c.analyzer.Outcomes(g) {
		if slices.Equal(outcome.Keys(), keys) {
			c.replace(m.Slot, outcome)
			return true
		}
	}
	log.Debug().Int("slot", m.Slot).Msg("rejected outcome")
	return false
}

// RandomNextMove picks a movable game uniformly, then one of its outcomes
// uniformly.
func (c *Combination) RandomNextMove() (Move, bool) {
	if len(c.movable) == 0 {
		return Move{}, false
	}
	slot := c.movable[c.rand.Intn(len(c.movable))]
	outcomes := c.analyzer.Outcomes(c.games[slot])
	return Move{Slot: slot, Outcome: outcomes[c.rand.Intn(len(outcomes))]}, true
}

// OptimalNextMove returns a move leaving a zero nim-sum. From a losing position
// no such move exists and it falls back to a random move.
func (c *Combination) OptimalNextMove() (Move, bool) {
	sum := c.NimSum()
	if sum == 0 {
		return c.RandomNextMove()
	}

	for _, slot := range utils.Shuffled(c.rand, c.movable) {
		g := c.games[slot]
		target := c.analyzer.Nimber(g) ^ sum
		for _, outcome := range c.analyzer.Outcomes(g) {
			if c.analyzer.OutcomeNimber(outcome) == target {
				return Move{Slot: slot, Outcome: outcome}, true
			}
		}
	}

	// Sprague-Grundy guarantees a move when the nim-sum is nonzero, so reaching
	// here means a key or outcome enumeration is wrong.
	log.Error().Int("nimSum", sum).Ints("movable", c.movable).Msg("no optimal move found")
	panic(fmt.Sprintf("no optimal move found for nim-sum %d", sum))
}

func (c *Combination) replace(index int, spawned []game.Position) {
	c.games = slices.Concat(c.games[:index], spawned, c.games[index+1:])
	c.updateMovable()
	log.Debug().Int("slot", index).Int("spawned", len(spawned)).Int("games", len(c.games)).Msg("applied move")
}

func (c *Combination) updateMovable() {
	c.movable = c.movable[:0]
	for i, g := range c.games {
		if g.CanMove() {
			c.movable = append(c.movable, i)
		}
	}
}
