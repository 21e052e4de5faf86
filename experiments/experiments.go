package experiments

import (
	"fmt"
	"nimber/catalog"
	"nimber/engine"
	"nimber/experiments/metrics"
	"nimber/game"
	"nimber/gamemaster"
	"nimber/player"
	"nimber/searcher"
	"nimber/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Setup builds the games of one match.
type Setup func(r *rand.Rand) ([]game.Position, error)

// FixedGame plays the same catalog game in every match.
func FixedGame(name string, input catalog.Input) Setup {
	return func(r *rand.Rand) ([]game.Position, error) {
		return catalog.New(name, input)
	}
}

// RandomPiles draws fresh piles for a pile game in every match.
func RandomPiles(name string, input catalog.Input) Setup {
	return func(r *rand.Rand) ([]game.Position, error) {
		input.Piles = catalog.RandomPiles(r)
		return catalog.New(name, input)
	}
}

// RandomCells draws a fresh main-batu-lagi board in every match.
func RandomCells() Setup {
	return func(r *rand.Rand) ([]game.Position, error) {
		return catalog.RandomCells(r).Tokens()
	}
}

// StrategyMatchUps covers every pairing of the two strategies.
var StrategyMatchUps = []metrics.MatchUp{
	{ID: 1, First: player.Optimal, Second: player.Random},
	{ID: 2, First: player.Random, Second: player.Optimal},
	{ID: 3, First: player.Optimal, Second: player.Optimal},
	{ID: 4, First: player.Random, Second: player.Random},
}

// Run plays games matches per match-up and writes matchups.csv, matches.csv
// and moves.csv to a new directory under outputDir, which it returns.
func Run(name string, setup Setup, matchUps []metrics.MatchUp, games int, seed uint64, outputDir string) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	matchRecords, moveRecords, err := Play(setup, matchUps, games, seed)
	if err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteMatchUps(matchUps); err != nil {
		return "", fmt.Errorf("failed to store match-ups: %w", err)
	}
	log.Info().Msg("stored match-ups")

	if err := writer.WriteMatchRecords(matchRecords); err != nil {
		return "", fmt.Errorf("failed to write match records: %w", err)
	}
	log.Info().Msg("stored match records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return writer.Dir(), nil
}

// Play runs the matches without writing anything. Each match gets its own
// random source: seed plus the match number, or a fresh seed when seed is 0.
func Play(setup Setup, matchUps []metrics.MatchUp, games int, seed uint64) ([]metrics.MatchRecord, []metrics.MoveRecord, error) {
	count := 0
	matchRecords := []metrics.MatchRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d: %s vs %s...", mi+1, len(matchUps), matchUp.First, matchUp.Second)

		wins := 0
		for i := 0; i < games; i++ {
			count++
			r := utils.NewRand(matchSeed(seed, count))

			positions, err := setup(r)
			if err != nil {
				return nil, nil, fmt.Errorf("matchup %d game %d: %w", matchUp.ID, i+1, err)
			}

			matchMetric, moveMetrics := playMatch(matchUp, positions, r)
			id := uuid.New()
			matchRecords = append(matchRecords, metrics.MatchRecord{
				ID:          id,
				MatchUp:     matchUp.ID,
				MatchMetric: matchMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Match:      id,
					MoveMetric: mm,
				})
			}
			if matchMetric.Winner == player.FirstRole {
				wins++
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, matchMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d: first player won %d of %d", mi+1, len(matchUps), wins, games)
	}

	return matchRecords, moveRecords, nil
}

func matchSeed(seed uint64, match int) uint64 {
	if seed == 0 {
		return 0
	}
	return seed + uint64(match)
}

// playMatch plays one match between two PC players to the end.
func playMatch(matchUp metrics.MatchUp, positions []game.Position, r *rand.Rand) (metrics.MatchMetric, []metrics.MoveMetric) {
	players := []player.Player{
		player.NewPC(player.FirstRole, matchUp.First),
		player.NewPC(player.SecondRole, matchUp.Second),
	}
	gs := gamemaster.NewGameState(players, positions,
		engine.WithRand(r),
		engine.WithAnalyzerOptions(searcher.WithMetrics()),
	)

	collector := metrics.NewCollector()
	collector.Start(gs.IsWinningPosition(), len(positions))
	for {
		step, role, before := gs.Turn(), gs.CurrentPlayer().Role, gs.NimSum()
		if !gs.Step() {
			break
		}
		history := gs.History()
		collector.AddMove(step, role, history[len(history)-1].Slot, before, gs.NimSum())
	}

	winner, _ := gs.Winner()
	analyzer := gs.Combination().Analyzer()
	return collector.Complete(winner.Role, analyzer.Known(), analyzer.Metrics())
}
