package searcher

import (
	"nimber/game"

	"github.com/rs/zerolog/log"
)

// Analyzer computes and memoizes Grundy values. Positions are immutable, so
// cached adjacency and nimbers are never invalidated. An Analyzer is not safe
// for concurrent use.
type Analyzer struct {
	outcomes map[game.Key][]game.Outcome
	nimbers  map[game.Key]int
	metrics  MetricsCollector
}

func NewAnalyzer(options ...Option) *Analyzer {
	a := &Analyzer{
		outcomes: make(map[game.Key][]game.Outcome),
		nimbers:  make(map[game.Key]int),
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Nimber returns the Grundy value of p.
func (a *Analyzer) Nimber(p game.Position) int {
	a.metrics.AddQuery()
	key := p.Key()
	if nimber, ok := a.nimbers[key]; ok {
		a.metrics.AddCacheHit()
		return nimber
	}

	a.metrics.Start()
	order := a.discover(key, p)
	for _, k := range order {
		a.evaluate(k)
	}

	nimber := a.nimbers[key]
	log.Debug().Stringer("position", key).Int("nimber", nimber).Int("evaluated", len(order)).Msg("computed nimber")
	return nimber
}

// OutcomeNimber XORs the nimbers of an outcome's components; an empty outcome
// is worth 0.
func (a *Analyzer) OutcomeNimber(outcome game.Outcome) int {
	sum := 0
	for _, p := range outcome {
		sum ^= a.Nimber(p)
	}
	return sum
}

// Outcomes returns the cached outcomes of p, computing them on first use.
func (a *Analyzer) Outcomes(p game.Position) []game.Outcome {
	return a.outcomesOf(p.Key(), p)
}

// Known returns the number of positions with a cached nimber.
func (a *Analyzer) Known() int {
	return len(a.nimbers)
}

func (a *Analyzer) Metrics() Metrics {
	return a.metrics.Complete()
}

func (a *Analyzer) outcomesOf(key game.Key, p game.Position) []game.Outcome {
	if outcomes, ok := a.outcomes[key]; ok {
		return outcomes
	}
	outcomes := p.Outcomes()
	a.outcomes[key] = outcomes
	return outcomes
}

const (
	unvisited = iota
	expanding
	finished
)

type frame struct {
	key      game.Key
	position game.Position
	expanded bool
}

// discover walks every position reachable from root that has no nimber yet,
// using an explicit stack instead of recursion so long chains cannot overflow
// the call stack. It returns the keys in finish order: each position comes after
// all of its successors.
//
// A position may be pushed more than once; only the first frame to reach the
// top expands it. Expanding frames are exactly the current path, so meeting one
// again as a successor would mean a cycle, which no variant produces.
func (a *Analyzer) discover(rootKey game.Key, root game.Position) []game.Key {
	var order []game.Key
	status := map[game.Key]int{}
	stack := []frame{{key: rootKey, position: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.expanded {
			status[top.key] = finished
			order = append(order, top.key)
			stack = stack[:len(stack)-1]
			continue
		}
		if status[top.key] != unvisited {
			stack = stack[:len(stack)-1]
			continue
		}

		top.expanded = true
		status[top.key] = expanding
		a.metrics.AddDiscovered()

		outcomes := a.outcomesOf(top.key, top.position)
		for _, outcome := range outcomes {
			for _, next := range outcome {
				key := next.Key()
				if status[key] != unvisited {
					continue
				}
				if _, ok := a.nimbers[key]; ok {
					continue
				}
				stack = append(stack, frame{key: key, position: next})
			}
		}
	}
	return order
}

func (a *Analyzer) evaluate(key game.Key) {
	if _, ok := a.nimbers[key]; ok {
		return
	}
	outcomes := a.outcomes[key]
	values := make([]int, len(outcomes))
	for i, outcome := range outcomes {
		for _, p := range outcome {
			values[i] ^= a.nimbers[p.Key()]
		}
	}
	a.nimbers[key] = Mex(values)
	a.metrics.AddEvaluated()
}
