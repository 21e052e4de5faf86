package gamemaster

import (
	"nimber/engine"
	"nimber/game"
	"nimber/player"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func nimPiles(sizes ...int) []game.Position {
	piles := make([]game.Position, len(sizes))
	for i, size := range sizes {
		piles[i] = game.NewNim(size)
	}
	return piles
}

func players(first, second player.Player) []player.Player {
	return []player.Player{first, second}
}

func seeded(seed uint64) engine.Option {
	return engine.WithRand(rand.New(rand.NewSource(seed)))
}

func TestNewGameState(t *testing.T) {
	t.Run("starts with the first player", func(t *testing.T) {
		gs := NewGameState(players(player.Defaults()), nimPiles(3, 5, 4), seeded(1))

		require.Equal(t, 0, gs.Turn())
		require.Equal(t, player.FirstRole, gs.CurrentPlayer().Role)
		require.Equal(t, player.SecondRole, gs.LastPlayer().Role)
		require.True(t, gs.CanMove())
		require.Empty(t, gs.History())
	})

	t.Run("needs exactly two players", func(t *testing.T) {
		require.Panics(t, func() { NewGameState(nil, nimPiles(1)) }, "Zero players should panic")
		require.Panics(t, func() {
			NewGameState([]player.Player{player.NewHuman(player.FirstRole)}, nimPiles(1))
		}, "One player should panic")
	})
}

func TestGameStateApplyMove(t *testing.T) {
	t.Run("turn advances only on accepted moves", func(t *testing.T) {
		gs := NewGameState(players(player.NewHuman(player.FirstRole), player.NewHuman(player.SecondRole)), nimPiles(3, 5), seeded(1))

		require.False(t, gs.ApplyMove(0, 4), "Removing more than the pile should be rejected")
		require.False(t, gs.ApplyMove(2, 1), "Out of range slot should be rejected")
		require.Equal(t, 0, gs.Turn(), "Rejected moves should not advance the turn")

		require.True(t, gs.ApplyMove(1, 2))
		require.Equal(t, 1, gs.Turn())
		require.Equal(t, player.SecondRole, gs.CurrentPlayer().Role)
		require.Equal(t, player.FirstRole, gs.LastPlayer().Role)
		require.Equal(t, nimPiles(3, 3), gs.Games())

		history := gs.History()
		require.Len(t, history, 1)
		require.Equal(t, 1, history[0].Slot)
		require.Equal(t, game.Outcome{game.NewNim(3)}, history[0].Outcome)
		require.Equal(t, player.FirstRole, history[0].Player.Role)
	})

	t.Run("rejected commits do not advance the turn", func(t *testing.T) {
		gs := NewGameState(players(player.Defaults()), nimPiles(2), seeded(1))

		require.False(t, gs.Commit(engine.Move{Slot: 0, Outcome: game.Outcome{game.NewNim(2)}}), "Staying put is not a move")
		require.Equal(t, 0, gs.Turn())
	})
}

func TestGameStateWinner(t *testing.T) {
	t.Run("no winner while moves remain", func(t *testing.T) {
		gs := NewGameState(players(player.Defaults()), nimPiles(1), seeded(1))

		_, over := gs.Winner()
		require.False(t, over)
	})

	t.Run("the player who empties the last pile wins", func(t *testing.T) {
		gs := NewGameState(players(player.NewHuman(player.FirstRole), player.NewHuman(player.SecondRole)), nimPiles(1, 1), seeded(1))

		require.True(t, gs.ApplyMove(0, 1))
		require.True(t, gs.ApplyMove(1, 1))

		winner, over := gs.Winner()
		require.True(t, over)
		require.Equal(t, player.SecondRole, winner.Role, "Second player made the last move")
	})

	t.Run("first player loses a game with no moves", func(t *testing.T) {
		gs := NewGameState(players(player.Defaults()), nimPiles(0, 0), seeded(1))

		winner, over := gs.Winner()
		require.True(t, over)
		require.Equal(t, player.SecondRole, winner.Role)
	})
}

func TestStep(t *testing.T) {
	t.Run("stops at a human turn", func(t *testing.T) {
		gs := NewGameState(players(player.NewPC(player.FirstRole, player.Optimal), player.NewHuman(player.SecondRole)), nimPiles(3, 5, 4), seeded(1))

		require.True(t, gs.Step(), "PC should move")
		require.False(t, gs.Step(), "Human turn should stop the loop")
		require.Equal(t, 1, gs.Turn())
		require.Equal(t, 0, gs.NimSum(), "Optimal move should leave a zero nim-sum")
	})

	t.Run("stops at game end", func(t *testing.T) {
		gs := NewGameState(players(player.Defaults()), nimPiles(0), seeded(1))

		require.False(t, gs.Step())
		require.Equal(t, 0, gs.Turn())
	})
}

func TestRun(t *testing.T) {
	t.Run("optimal first player wins from a winning position", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			gs := NewGameState(
				players(player.NewPC(player.FirstRole, player.Optimal), player.NewPC(player.SecondRole, player.Random)),
				[]game.Position{game.NewNim(3), game.NewNim(5), game.NewNim(4), game.NewGrundy(9)},
				seeded(seed),
			)
			require.True(t, gs.IsWinningPosition())

			played := gs.Run()

			winner, over := gs.Winner()
			require.True(t, over)
			require.Equal(t, player.FirstRole, winner.Role, "Optimal play from a winning position should win")
			require.Equal(t, played, gs.Turn())
			require.Len(t, gs.History(), played)
		}
	})

	t.Run("optimal second player wins from a losing position", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			gs := NewGameState(
				players(player.NewPC(player.FirstRole, player.Random), player.NewPC(player.SecondRole, player.Optimal)),
				nimPiles(1, 2, 3),
				seeded(seed),
			)
			require.False(t, gs.IsWinningPosition(), "1 ^ 2 ^ 3 = 0")

			gs.Run()

			winner, _ := gs.Winner()
			require.Equal(t, player.SecondRole, winner.Role)
		}
	})

	t.Run("turns alternate in the history", func(t *testing.T) {
		gs := NewGameState(
			players(player.NewPC(player.FirstRole, player.Random), player.NewPC(player.SecondRole, player.Random)),
			[]game.Position{game.NewTakeAndBreak(6), game.NewScalarSubtraction(9, game.Squares())},
			seeded(5),
		)

		gs.Run()

		for i, u := range gs.History() {
			require.Equal(t, i, u.Turn)
			require.Equal(t, gs.Players()[i%2].Role, u.Player.Role, "Players should alternate")
		}
		require.False(t, gs.CanMove())
	})
}
