package config

import (
	"encoding/json"
	"fmt"
	"nimber/catalog"
	"nimber/meta"
	"nimber/player"
	"os"
	"slices"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "nimber/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// PlayerConfig configures one side of a match.
type PlayerConfig struct {
	Kind     string `json:"kind" env:"KIND"`
	Strategy string `json:"strategy" env:"STRATEGY"`
}

// ExperimentConfig configures self-play runs.
type ExperimentConfig struct {
	Games     int    `json:"games" env:"GAMES"`
	OutputDir string `json:"output_dir" env:"OUTPUT_DIR"`
}

type Config struct {
	Game       string           `json:"game" env:"GAME"`
	Piles      []int            `json:"piles" env:"PILES"`
	MaxRemove  int              `json:"max_remove" env:"MAX_REMOVE"`
	Set        []int            `json:"set" env:"SET"`
	Cells      string           `json:"cells" env:"CELLS"`
	Seed       uint64           `json:"seed" env:"SEED"`
	First      PlayerConfig     `json:"first" envPrefix:"FIRST_"`
	Second     PlayerConfig     `json:"second" envPrefix:"SECOND_"`
	LogLevel   string           `json:"log_level" env:"LOG_LEVEL"`
	Experiment ExperimentConfig `json:"experiment" envPrefix:"EXPERIMENT_"`
}

func DefaultConfig() Config {
	return Config{
		Game:      meta.DEFAULT_GAME,
		Piles:     slices.Clone(meta.DEFAULT_PILES),
		MaxRemove: meta.DEFAULT_REMOVE,
		Set:       slices.Clone(meta.DEFAULT_SET),
		Cells:     meta.DEFAULT_CELLS,
		First:     PlayerConfig{Kind: "pc", Strategy: "optimal"},
		Second:    PlayerConfig{Kind: "pc", Strategy: "optimal"},
		LogLevel:  meta.LOG_LEVEL,
		Experiment: ExperimentConfig{
			Games:     meta.EXPERIMENT_GAMES,
			OutputDir: meta.OUTPUT_DIR,
		},
	}
}

// Load reads the defaults, then the config file if one exists, then NIMBER_*
// environment variables, and validates the result.
func Load() (*Config, error) {
	config := DefaultConfig()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := ParseEnv(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseEnv overrides config with NIMBER_* environment variables.
func ParseEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: "NIMBER_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	g, err := catalog.Lookup(c.Game)
	if err != nil {
		return &InvalidConfig{err.Error()}
	}
	input, err := c.Input()
	if err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := g.New(input); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := c.Players(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("log level %q", c.LogLevel)}
	}
	if c.Experiment.Games < 1 {
		return &InvalidConfig{fmt.Sprintf("experiment games must be positive, got %d", c.Experiment.Games)}
	}
	return nil
}

// Input converts the game settings to catalog input. The cells text is only
// parsed for games that use it.
func (c *Config) Input() (catalog.Input, error) {
	input := catalog.Input{
		Piles:     slices.Clone(c.Piles),
		MaxRemove: c.MaxRemove,
		Set:       slices.Clone(c.Set),
	}
	if g, err := catalog.Lookup(c.Game); err == nil && g.UsesCells {
		cells, err := catalog.ParseCells(c.Cells)
		if err != nil {
			return catalog.Input{}, err
		}
		input.Cells = cells
	}
	return input, nil
}

// Players builds the first and second player.
func (c *Config) Players() ([]player.Player, error) {
	first, err := c.First.player(player.FirstRole)
	if err != nil {
		return nil, fmt.Errorf("first player: %w", err)
	}
	second, err := c.Second.player(player.SecondRole)
	if err != nil {
		return nil, fmt.Errorf("second player: %w", err)
	}
	return []player.Player{first, second}, nil
}

func (pc PlayerConfig) player(role string) (player.Player, error) {
	kind, err := player.ParseKind(pc.Kind)
	if err != nil {
		return player.Player{}, err
	}
	if kind == player.Human {
		return player.NewHuman(role), nil
	}
	strategy, err := player.ParseStrategy(pc.Strategy)
	if err != nil {
		return player.Player{}, err
	}
	return player.NewPC(role, strategy), nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
