// meta/meta.go
package meta

// DEFAULT_GAME is the catalog game played when none is configured.
const DEFAULT_GAME = "nim"

// DEFAULT_PILES are the piles of the default game.
var DEFAULT_PILES = []int{3, 5, 4}

// Array input bounds.
const (
	MIN_PILES     = 1
	MAX_PILES     = 10
	MAX_PILE_SIZE = 15
)

// Simple take-away bounds on the number of items removed per move.
const (
	MIN_REMOVE     = 1
	MAX_REMOVE     = 10
	DEFAULT_REMOVE = 3
)

// S-Nim subtraction set bounds.
const (
	MAX_SET_SIZE  = 10
	MAX_SET_VALUE = 15
)

// DEFAULT_SET is the subtraction set of S-Nim.
var DEFAULT_SET = []int{2, 5}

// Cells input bounds.
const (
	MAX_CELLS = 15
	MAX_ITEMS = 20
)

// DEFAULT_CELLS is the default main-batu-lagi board: 7 cells and 4 items.
const DEFAULT_CELLS = "7 4\n1 1\n1 2\n1 3\n4 4\n4 4\n4 6\n3 5 5 6"

// EXPERIMENT_GAMES is the number of games per match-up.
const EXPERIMENT_GAMES = 100

// OUTPUT_DIR is where experiment results are written.
const OUTPUT_DIR = "results"

const LOG_LEVEL = "info"
