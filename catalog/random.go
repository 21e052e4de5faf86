package catalog

import (
	"nimber/game"
	"nimber/meta"

	"golang.org/x/exp/rand"
)

// intBetween returns a uniform integer in [low, high].
func intBetween(r *rand.Rand, low, high int) int {
	return low + r.Intn(high-low+1)
}

// RandomArray draws an array within bounds.
func RandomArray(r *rand.Rand, bounds Bounds) []int {
	values := make([]int, intBetween(r, bounds.MinLength, bounds.MaxLength))
	for i := range values {
		values[i] = intBetween(r, bounds.MinValue, bounds.MaxValue)
	}
	return values
}

func RandomPiles(r *rand.Rand) []int {
	return RandomArray(r, PileBounds)
}

// RandomCells draws a cells input that satisfies every constraint Validate
// checks. Each cell's bounds start from the previous cell's, so they never
// decrease.
func RandomCells(r *rand.Rand) Cells {
	n := intBetween(r, 1, meta.MAX_CELLS)
	m := intBetween(r, 1, meta.MAX_ITEMS)

	c := Cells{N: n, M: m, Next: make([]game.Range, 0, n-1), Positions: make([]int, m)}
	prev := game.Range{Low: 1, High: 1}
	for i := 2; i <= n; i++ {
		high := intBetween(r, prev.High, i-1)
		low := intBetween(r, prev.Low, high)
		prev = game.Range{Low: low, High: high}
		c.Next = append(c.Next, prev)
	}
	for k := range c.Positions {
		c.Positions[k] = intBetween(r, 1, n)
	}
	return c
}
