// Package config loads the engine and driver settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joebags99/kingdoms-castles/game"
	"github.com/joebags99/kingdoms-castles/meta"
	"github.com/rs/zerolog"
)

// Config describes the engine and headless driver configuration.
type Config struct {
	BoardWidth      int    `env:"KINGDOMS_BOARD_WIDTH"`
	BoardHeight     int    `env:"KINGDOMS_BOARD_HEIGHT"`
	AttackPolicy    string `env:"KINGDOMS_ATTACK_POLICY" envDefault:"any"`
	CapitalPolicy   string `env:"KINGDOMS_CAPITAL_POLICY" envDefault:"warn"`
	RequireCapitals bool   `env:"KINGDOMS_REQUIRE_CAPITALS"`
	MaxGenerators   int    `env:"KINGDOMS_MAX_GENERATORS"`
	Seed            uint64 `env:"KINGDOMS_SEED"`
	LogLevel        string `env:"KINGDOMS_LOG_LEVEL" envDefault:"info"`
	MetricsDir      string `env:"KINGDOMS_METRICS_DIR"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		BoardWidth:    meta.DefaultBoardWidth,
		BoardHeight:   meta.DefaultBoardHeight,
		AttackPolicy:  "any",
		CapitalPolicy: "warn",
		MaxGenerators: meta.MaxGenerators,
		LogLevel:      "info",
	}
}

// Load parses the environment on top of Default and validates the result.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load with an explicit environment; nil means the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	cfg := Default()
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= game.BorderlandRows {
		return fmt.Errorf("board must be at least 1x%d, got %dx%d", game.BorderlandRows+1, c.BoardWidth, c.BoardHeight)
	}
	if _, err := c.attackPolicy(); err != nil {
		return err
	}
	if _, err := c.capitalPolicy(); err != nil {
		return err
	}
	if c.MaxGenerators < 0 {
		return fmt.Errorf("max generators must not be negative, got %d", c.MaxGenerators)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Rules converts the configuration into engine rules.
func (c Config) Rules() (game.Rules, error) {
	rules := game.NewStandardRules()
	attack, err := c.attackPolicy()
	if err != nil {
		return rules, err
	}
	capital, err := c.capitalPolicy()
	if err != nil {
		return rules, err
	}
	rules.AttackPolicy = attack
	rules.CapitalPolicy = capital
	rules.RequireCapitals = c.RequireCapitals
	rules.MaxGenerators = c.MaxGenerators
	return rules, nil
}

// Level returns the zerolog level, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c Config) attackPolicy() (game.AttackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(c.AttackPolicy)) {
	case "", "any":
		return game.AttackAnyPhase, nil
	case "combat":
		return game.AttackCombatPhaseOnly, nil
	default:
		return 0, fmt.Errorf("unknown attack policy %q (want any or combat)", c.AttackPolicy)
	}
}

func (c Config) capitalPolicy() (game.CapitalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(c.CapitalPolicy)) {
	case "", "warn":
		return game.CapitalWarn, nil
	case "strict":
		return game.CapitalStrict, nil
	default:
		return 0, fmt.Errorf("unknown capital policy %q (want warn or strict)", c.CapitalPolicy)
	}
}
