package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// EnvPrefix prefixes every environment override, e.g. HPTCG_ENGINE_SEED.
const EnvPrefix = "HPTCG"

// Config is the full simulator configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig tunes the rules.
type EngineConfig struct {
	ActionsPerTurn   int   `mapstructure:"actions_per_turn"`
	StartingHandSize int   `mapstructure:"starting_hand_size"`
	DrawPerTurn      int   `mapstructure:"draw_per_turn"`
	FirstPlayer      int   `mapstructure:"first_player"`
	Seed             int64 `mapstructure:"seed"`
}

// SimulationConfig drives cmd/hptcg-sim.
type SimulationConfig struct {
	MaxTicks int            `mapstructure:"max_ticks"`
	DeckSize int            `mapstructure:"deck_size"`
	Players  []PlayerConfig `mapstructure:"players"`
}

// PlayerConfig describes one simulated player.
type PlayerConfig struct {
	Name   string `mapstructure:"name"`
	Lesson string `mapstructure:"lesson"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("engine.actions_per_turn", 2)
	v.SetDefault("engine.starting_hand_size", 7)
	v.SetDefault("engine.draw_per_turn", 1)
	v.SetDefault("engine.first_player", 0)
	v.SetDefault("engine.seed", 0)

	v.SetDefault("simulation.max_ticks", 2000)
	v.SetDefault("simulation.deck_size", 40)
	v.SetDefault("simulation.players", []map[string]any{
		{"name": "Harry", "lesson": "charms"},
		{"name": "Draco", "lesson": "potions"},
	})
}

// Load reads the YAML file at path, if any, applies HPTCG_ environment
// overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if !validLevels[c.Logging.Level] {
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		err = multierr.Append(err, fmt.Errorf("logging.format %q must be json or console", c.Logging.Format))
	}
	if c.Engine.ActionsPerTurn < 1 {
		err = multierr.Append(err, errors.New("engine.actions_per_turn must be at least 1"))
	}
	if c.Engine.StartingHandSize < 0 || c.Engine.DrawPerTurn < 0 {
		err = multierr.Append(err, errors.New("engine draw sizes must not be negative"))
	}
	if c.Engine.FirstPlayer != 0 && c.Engine.FirstPlayer != 1 {
		err = multierr.Append(err, fmt.Errorf("engine.first_player %d must be 0 or 1", c.Engine.FirstPlayer))
	}
	if c.Simulation.MaxTicks < 1 {
		err = multierr.Append(err, errors.New("simulation.max_ticks must be at least 1"))
	}
	if c.Simulation.DeckSize <= c.Engine.StartingHandSize {
		err = multierr.Append(err, fmt.Errorf("simulation.deck_size %d must exceed the starting hand", c.Simulation.DeckSize))
	}
	if len(c.Simulation.Players) != 2 {
		err = multierr.Append(err, fmt.Errorf("simulation.players needs exactly 2 entries, got %d", len(c.Simulation.Players)))
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
