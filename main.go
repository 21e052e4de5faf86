package main

import (
	"bufio"
	"flag"
	"fmt"
	"nimber/catalog"
	"nimber/config"
	"nimber/engine"
	"nimber/experiments"
	"nimber/gamemaster"
	"nimber/utils"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mode := flag.String("mode", "play", "play a match or run an experiment (play|experiment)")
	gameName := flag.String("game", cfg.Game, "catalog game: "+strings.Join(catalog.Names(), ", "))
	piles := flag.String("piles", "", "piles separated by spaces, e.g. \"3 5 4\"")
	random := flag.Bool("random", false, "draw random piles or cells")
	seed := flag.Uint64("seed", cfg.Seed, "random seed (0 draws a fresh one)")
	first := flag.String("first", cfg.First.Kind, "first player kind (human|pc)")
	firstStrategy := flag.String("first-strategy", cfg.First.Strategy, "first player strategy (optimal|random)")
	second := flag.String("second", cfg.Second.Kind, "second player kind (human|pc)")
	secondStrategy := flag.String("second-strategy", cfg.Second.Strategy, "second player strategy (optimal|random)")
	games := flag.Int("games", cfg.Experiment.Games, "games per match-up in experiment mode")
	outputDir := flag.String("output", cfg.Experiment.OutputDir, "experiment output directory")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	cfg.Game, cfg.Seed, cfg.LogLevel = *gameName, *seed, *logLevel
	cfg.First = config.PlayerConfig{Kind: *first, Strategy: *firstStrategy}
	cfg.Second = config.PlayerConfig{Kind: *second, Strategy: *secondStrategy}
	cfg.Experiment.Games, cfg.Experiment.OutputDir = *games, *outputDir
	if *piles != "" {
		if cfg.Piles, err = catalog.ParseArray("A", *piles, catalog.PileBounds); err != nil {
			exit(err)
		}
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = utils.NewSeed(); err != nil {
			exit(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		exit(err)
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Debug().Uint64("seed", cfg.Seed).Str("game", cfg.Game).Msg("loaded config")

	switch *mode {
	case "play":
		err = play(cfg, *random)
	case "experiment":
		err = experiment(cfg, *random)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		exit(err)
	}
}

func exit(err error) {
	log.Error().Err(err).Msg("")
	os.Exit(1)
}

func setup(cfg *config.Config, random bool) (experiments.Setup, error) {
	input, err := cfg.Input()
	if err != nil {
		return nil, err
	}
	g, err := catalog.Lookup(cfg.Game)
	if err != nil {
		return nil, err
	}
	switch {
	case random && g.UsesCells:
		return experiments.RandomCells(), nil
	case random:
		return experiments.RandomPiles(cfg.Game, input), nil
	default:
		return experiments.FixedGame(cfg.Game, input), nil
	}
}

func experiment(cfg *config.Config, random bool) error {
	s, err := setup(cfg, random)
	if err != nil {
		return err
	}
	dir, err := experiments.Run(cfg.Game, s, experiments.StrategyMatchUps, cfg.Experiment.Games, cfg.Seed, cfg.Experiment.OutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", dir)
	return nil
}

func play(cfg *config.Config, random bool) error {
	s, err := setup(cfg, random)
	if err != nil {
		return err
	}
	players, err := cfg.Players()
	if err != nil {
		return err
	}
	r := utils.NewRand(cfg.Seed)
	positions, err := s(r)
	if err != nil {
		return err
	}

	gs := gamemaster.NewGameState(players, positions, engine.WithRand(r))
	in := bufio.NewScanner(os.Stdin)
	for {
		gs.Run()
		if winner, over := gs.Winner(); over {
			printGames(gs)
			fmt.Printf("%s wins after %d moves\n", winner.Role, gs.Turn())
			return nil
		}
		if err := humanTurn(gs, in); err != nil {
			return err
		}
	}
}

// humanTurn reads moves until the current player makes a legal one. A move is
// the game index followed by the move arguments, e.g. "0 2".
func humanTurn(gs *gamemaster.GameState, in *bufio.Scanner) error {
	printGames(gs)
	current := gs.CurrentPlayer()
	position := "losing"
	if gs.IsWinningPosition() {
		position = "winning"
	}
	for {
		fmt.Printf("%s (%s position), enter a move: ", current.Role, position)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return fmt.Errorf("read move: %w", err)
			}
			return fmt.Errorf("%s left the game", current.Role)
		}
		line := strings.TrimSpace(in.Text())
		if line == "hint" {
			printHint(gs)
			continue
		}
		values, err := parseInts(line)
		if err != nil || len(values) == 0 {
			fmt.Println("A move is a game index followed by the move, or \"hint\"")
			continue
		}
		if gs.ApplyMove(values[0], values[1:]...) {
			return nil
		}
		fmt.Println("Illegal move")
	}
}

func printHint(gs *gamemaster.GameState) {
	m, ok := gs.OptimalNextMove()
	if !ok {
		return
	}
	keys := make([]string, len(m.Outcome))
	for i, key := range m.Outcome.Keys() {
		keys[i] = key.String()
	}
	fmt.Printf("Replace game %d with [%s]\n", m.Slot, strings.Join(keys, " "))
}

func printGames(gs *gamemaster.GameState) {
	for i, g := range gs.Games() {
		fmt.Printf("%2d: %s\n", i, g.Key())
	}
	fmt.Printf("nim-sum %d\n", gs.NimSum())
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
