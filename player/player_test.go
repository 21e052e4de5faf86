package player

import (
	"nimber/engine"
	"nimber/game"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockSuggester struct {
	random, optimal int
}

func (m *mockSuggester) RandomNextMove() (engine.Move, bool) {
	m.random++
	return engine.Move{Slot: 1, Outcome: game.Outcome{game.NewNim(0)}}, true
}

func (m *mockSuggester) OptimalNextMove() (engine.Move, bool) {
	m.optimal++
	return engine.Move{Slot: 2, Outcome: game.Outcome{game.NewNim(1)}}, true
}

func TestTakeTurn(t *testing.T) {
	t.Run("optimal PC asks for the optimal move", func(t *testing.T) {
		s := &mockSuggester{}
		m, ok := NewPC(FirstRole, Optimal).TakeTurn(s)

		require.True(t, ok)
		require.Equal(t, 2, m.Slot)
		require.Equal(t, 1, s.optimal)
		require.Equal(t, 0, s.random)
	})

	t.Run("random PC asks for a random move", func(t *testing.T) {
		s := &mockSuggester{}
		m, ok := NewPC(SecondRole, Random).TakeTurn(s)

		require.True(t, ok)
		require.Equal(t, 1, m.Slot)
		require.Equal(t, 1, s.random)
	})

	t.Run("human never gets a suggestion", func(t *testing.T) {
		s := &mockSuggester{}
		_, ok := NewHuman(FirstRole).TakeTurn(s)

		require.False(t, ok)
		require.Zero(t, s.random+s.optimal, "Suggester should not be consulted")
	})
}

func TestParse(t *testing.T) {
	t.Run("kinds", func(t *testing.T) {
		k, err := ParseKind(" PC ")
		require.NoError(t, err)
		require.Equal(t, PC, k)

		k, err = ParseKind("human")
		require.NoError(t, err)
		require.Equal(t, Human, k)

		_, err = ParseKind("robot")
		require.Error(t, err)
	})

	t.Run("strategies", func(t *testing.T) {
		s, err := ParseStrategy("Random")
		require.NoError(t, err)
		require.Equal(t, Random, s)

		_, err = ParseStrategy("greedy")
		require.Error(t, err)
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "First player (pc, optimal)", NewPC(FirstRole, Optimal).String())
	require.Equal(t, "Second player (human)", NewHuman(SecondRole).String())

	first, second := Defaults()
	require.True(t, first.IsPC())
	require.Equal(t, SecondRole, second.Role)
}
