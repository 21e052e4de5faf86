package config

import (
	"errors"
	"nimber/player"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

// useConfigHome points the XDG config home at a temporary directory and
// optionally writes a config file there.
func useConfigHome(t *testing.T, content string) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	if content != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nimber"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nimber", "config.json"), []byte(content), 0o644))
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		useConfigHome(t, "")

		c, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), *c)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		useConfigHome(t, `{"game": "grundys-game", "piles": [7, 9], "second": {"kind": "human"}}`)

		c, err := Load()
		require.NoError(t, err)
		require.Equal(t, "grundys-game", c.Game)
		require.Equal(t, []int{7, 9}, c.Piles)
		require.Equal(t, "pc", c.First.Kind, "Unset fields keep their defaults")

		players, err := c.Players()
		require.NoError(t, err)
		require.Equal(t, player.Human, players[1].Kind)
	})

	t.Run("environment overrides the config file", func(t *testing.T) {
		useConfigHome(t, `{"game": "grundys-game", "seed": 3}`)
		t.Setenv("NIMBER_GAME", "s-nim")
		t.Setenv("NIMBER_PILES", "1,2,3")
		t.Setenv("NIMBER_SET", "1,4")
		t.Setenv("NIMBER_FIRST_STRATEGY", "random")
		t.Setenv("NIMBER_EXPERIMENT_GAMES", "12")

		c, err := Load()
		require.NoError(t, err)
		require.Equal(t, "s-nim", c.Game)
		require.Equal(t, []int{1, 2, 3}, c.Piles)
		require.Equal(t, []int{1, 4}, c.Set)
		require.Equal(t, uint64(3), c.Seed)
		require.Equal(t, "random", c.First.Strategy)
		require.Equal(t, 12, c.Experiment.Games)
	})

	t.Run("malformed config file", func(t *testing.T) {
		useConfigHome(t, `{"game": `)

		_, err := Load()
		var invalid *InvalidConfig
		require.True(t, errors.As(err, &invalid), "Malformed JSON should be an InvalidConfig")
	})

	t.Run("malformed environment", func(t *testing.T) {
		useConfigHome(t, "")
		t.Setenv("NIMBER_SEED", "lots")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"unknown game":        func(c *Config) { c.Game = "go" },
		"pile too large":      func(c *Config) { c.Piles = []int{16} },
		"no piles":            func(c *Config) { c.Piles = nil },
		"take-away limit":     func(c *Config) { c.Game, c.MaxRemove = "simple-take-away", 0 },
		"empty s-nim set":     func(c *Config) { c.Game, c.Set = "s-nim", nil },
		"bad cells":           func(c *Config) { c.Game, c.Cells = "main-batu-lagi", "2 1\n2 2\n1" },
		"unknown player kind": func(c *Config) { c.First.Kind = "robot" },
		"unknown strategy":    func(c *Config) { c.Second.Strategy = "greedy" },
		"unknown log level":   func(c *Config) { c.LogLevel = "loud" },
		"no experiment games": func(c *Config) { c.Experiment.Games = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(&c)

			var invalid *InvalidConfig
			require.True(t, errors.As(c.Validate(), &invalid), "%s should be rejected", name)
		})
	}

	t.Run("cells are ignored by pile games", func(t *testing.T) {
		c := DefaultConfig()
		c.Cells = "garbage"
		require.NoError(t, c.Validate())
	})

	t.Run("human players need no strategy", func(t *testing.T) {
		c := DefaultConfig()
		c.First = PlayerConfig{Kind: "human"}
		require.NoError(t, c.Validate())
	})
}

func TestSave(t *testing.T) {
	useConfigHome(t, "")

	c := DefaultConfig()
	c.Game = "subtract-a-square"
	c.Seed = 42
	require.NoError(t, c.Save())

	xdg.Reload()
	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, c, *loaded)
}
