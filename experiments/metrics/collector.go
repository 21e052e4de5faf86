package metrics

import (
	"nimber/player"
	"nimber/searcher"
	"time"
)

// MatchUp pairs the strategies of the first and second player.
type MatchUp struct {
	ID     int
	First  player.Strategy
	Second player.Strategy
}

type MoveMetric struct {
	Step         int
	Player       string // Player role
	Slot         int
	NimSumBefore int
	NimSumAfter  int
}

type MatchMetric struct {
	FirstWinning bool   // whether the first player starts in a winning position
	Winner       string // Player role
	Games        int    // games in the initial sum
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Positions    int // positions the analyzer memoized
	CacheHits    int64
}

type Collector interface {
	Start(firstWinning bool, games int)
	AddMove(step int, role string, slot, nimSumBefore, nimSumAfter int)
	Complete(winner string, positions int, analyzer searcher.Metrics) (MatchMetric, []MoveMetric)
}

type collector struct {
	firstWinning bool
	games        int
	startTime    time.Time
	moves        []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(firstWinning bool, games int) {
	m.startTime = time.Now()
	m.firstWinning = firstWinning
	m.games = games
	m.moves = nil
}

func (m *collector) AddMove(step int, role string, slot, nimSumBefore, nimSumAfter int) {
	m.moves = append(m.moves, MoveMetric{
		Step:         step,
		Player:       role,
		Slot:         slot,
		NimSumBefore: nimSumBefore,
		NimSumAfter:  nimSumAfter,
	})
}

func (m *collector) Complete(winner string, positions int, analyzer searcher.Metrics) (MatchMetric, []MoveMetric) {
	end := time.Now()
	return MatchMetric{
		FirstWinning: m.firstWinning,
		Winner:       winner,
		Games:        m.games,
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
		TotalMoves:   len(m.moves),
		Positions:    positions,
		CacheHits:    analyzer.CacheHits,
	}, m.moves
}
