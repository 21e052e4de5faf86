package experiments

import (
	"encoding/csv"
	"nimber/catalog"
	"nimber/experiments/metrics"
	"nimber/player"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("optimal first player always wins from a winning position", func(t *testing.T) {
		setups := map[string]Setup{
			"nim":               RandomPiles("nim", catalog.DefaultInput()),
			"subtract-a-square": RandomPiles("subtract-a-square", catalog.DefaultInput()),
			"grundys-game":      RandomPiles("grundys-game", catalog.DefaultInput()),
			"main-batu-lagi":    RandomCells(),
		}
		matchUps := []metrics.MatchUp{
			{ID: 1, First: player.Optimal, Second: player.Random},
			{ID: 2, First: player.Optimal, Second: player.Optimal},
		}
		for name, setup := range setups {
			records, _, err := Play(setup, matchUps, 15, 7)
			require.NoError(t, err, name)
			require.Len(t, records, 30, name)

			for _, record := range records {
				if record.FirstWinning {
					require.Equal(t, player.FirstRole, record.Winner, "%s: optimal first player should win match %s", name, record.ID)
				} else if record.MatchUp == 2 {
					require.Equal(t, player.SecondRole, record.Winner, "%s: optimal second player should win match %s", name, record.ID)
				}
			}
		}
	})

	t.Run("move records follow their matches", func(t *testing.T) {
		records, moves, err := Play(FixedGame("nim", catalog.DefaultInput()), StrategyMatchUps, 3, 11)
		require.NoError(t, err)
		require.Len(t, records, 12)

		total := 0
		matchUps := map[uuid.UUID]metrics.MatchUp{}
		for _, record := range records {
			require.True(t, record.FirstWinning, "3 ^ 5 ^ 4 is a winning position")
			require.Equal(t, 3, record.Games)
			require.Positive(t, record.Positions)
			total += record.TotalMoves
			matchUps[record.ID] = StrategyMatchUps[record.MatchUp-1]
		}
		require.Len(t, moves, total)

		for _, move := range moves {
			matchUp, ok := matchUps[move.Match]
			require.True(t, ok, "Move should belong to a recorded match")

			strategy := matchUp.First
			if move.Player == player.SecondRole {
				strategy = matchUp.Second
			}
			if strategy == player.Optimal && move.NimSumBefore != 0 {
				require.Zero(t, move.NimSumAfter, "Optimal move at step %d should leave a zero nim-sum", move.Step)
			}
			if move.NimSumBefore == 0 {
				require.NotZero(t, move.NimSumAfter, "No move keeps a zero nim-sum")
			}
		}
	})

	t.Run("same seed replays the same matches", func(t *testing.T) {
		a, _, err := Play(RandomPiles("nim", catalog.DefaultInput()), StrategyMatchUps[3:], 5, 21)
		require.NoError(t, err)
		b, _, err := Play(RandomPiles("nim", catalog.DefaultInput()), StrategyMatchUps[3:], 5, 21)
		require.NoError(t, err)

		for i := range a {
			require.NotEqual(t, a[i].ID, b[i].ID, "Every match gets its own id")
			require.Equal(t, a[i].Winner, b[i].Winner)
			require.Equal(t, a[i].TotalMoves, b[i].TotalMoves)
		}
	})

	t.Run("invalid setup", func(t *testing.T) {
		input := catalog.DefaultInput()
		input.Piles = []int{99}

		_, _, err := Play(FixedGame("nim", input), StrategyMatchUps, 1, 1)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	dir, err := Run("nim", FixedGame("nim", catalog.DefaultInput()), StrategyMatchUps, 2, 5, t.TempDir())
	require.NoError(t, err)

	expected := map[string]int{
		"matchups.csv": len(StrategyMatchUps) + 1,
		"matches.csv":  2*len(StrategyMatchUps) + 1,
	}
	for name, lines := range expected {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err, name)
		rows, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err, name)
		require.Len(t, rows, lines, "%s should have a header and one row per record", name)
	}
	require.FileExists(t, filepath.Join(dir, "moves.csv"))
}
