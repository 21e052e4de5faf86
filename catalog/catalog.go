package catalog

import (
	"fmt"
	"nimber/game"
	"nimber/meta"
	"nimber/utils"
)

// Input carries the values a game is built from. Each game reads only the
// fields it needs.
type Input struct {
	Piles     []int
	MaxRemove int
	Set       []int
	Cells     Cells
}

// DefaultInput returns the input every game starts with.
func DefaultInput() Input {
	cells, err := ParseCells(meta.DEFAULT_CELLS)
	if err != nil {
		panic(err)
	}
	return Input{
		Piles:     append([]int(nil), meta.DEFAULT_PILES...),
		MaxRemove: meta.DEFAULT_REMOVE,
		Set:       append([]int(nil), meta.DEFAULT_SET...),
		Cells:     cells,
	}
}

// Game is a named game of the catalog.
type Game struct {
	Name  string
	Title string
	// UsesCells is true for games built from the cells input instead of piles.
	UsesCells bool
	build     func(Input) ([]game.Position, error)
}

// New validates the input and builds the game's positions.
func (g Game) New(input Input) ([]game.Position, error) {
	positions, err := g.build(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}
	return positions, nil
}

var games = []Game{
	{
		Name:  "nim",
		Title: "Nim",
		build: func(in Input) ([]game.Position, error) {
			return piles(in.Piles, func(n int) game.Position { return game.NewNim(n) })
		},
	},
	{
		Name:  "simple-take-away",
		Title: "Simple Take-Away Game",
		build: func(in Input) ([]game.Position, error) {
			if in.MaxRemove < meta.MIN_REMOVE || in.MaxRemove > meta.MAX_REMOVE {
				return nil, invalid("m", in.MaxRemove, fmt.Sprintf("is not between %d and %d", meta.MIN_REMOVE, meta.MAX_REMOVE))
			}
			set := game.UpTo(in.MaxRemove)
			return piles(in.Piles, func(n int) game.Position { return game.NewScalarSubtraction(n, set) })
		},
	},
	{
		Name:  "subtract-a-square",
		Title: "Subtract-a-Square",
		build: func(in Input) ([]game.Position, error) {
			set := game.Squares()
			return piles(in.Piles, func(n int) game.Position { return game.NewScalarSubtraction(n, set) })
		},
	},
	{
		Name:  "s-nim",
		Title: "S-Nim",
		build: func(in Input) ([]game.Position, error) {
			if err := SetBounds.Validate("s", in.Set); err != nil {
				return nil, err
			}
			set := game.FixedSet(in.Set...)
			return piles(in.Piles, func(n int) game.Position { return game.NewScalarSubtraction(n, set) })
		},
	},
	{
		Name:  "grundys-game",
		Title: "Grundy's Game",
		build: func(in Input) ([]game.Position, error) {
			return piles(in.Piles, func(n int) game.Position { return game.NewGrundy(n) })
		},
	},
	{
		Name:      "main-batu-lagi",
		Title:     "Main Batu Lagi",
		UsesCells: true,
		build: func(in Input) ([]game.Position, error) {
			return in.Cells.Tokens()
		},
	},
}

func piles(sizes []int, newPile func(int) game.Position) ([]game.Position, error) {
	if err := PileBounds.Validate("A", sizes); err != nil {
		return nil, err
	}
	positions := make([]game.Position, len(sizes))
	for i, size := range sizes {
		positions[i] = newPile(size)
	}
	return positions, nil
}

// Names lists the catalog games in display order.
func Names() []string {
	names := make([]string, len(games))
	for i, g := range games {
		names[i] = g.Name
	}
	return names
}

func Lookup(name string) (Game, error) {
	i := utils.FindIndex(Names(), name)
	if i < 0 {
		return Game{}, fmt.Errorf("unknown game %q", name)
	}
	return games[i], nil
}

// New builds the named game.
func New(name string, input Input) ([]game.Position, error) {
	g, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return g.New(input)
}
