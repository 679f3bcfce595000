// Package catalog holds the card definitions decks are built from.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/joebags99/kingdoms-castles/game"
	"github.com/joebags99/kingdoms-castles/utils"
	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var defaultCards []byte

type document struct {
	Cards []game.Card `yaml:"cards"`
}

// Default returns the built-in card list. It panics if the embedded data is
// malformed, which is a build defect.
func Default() []game.Card {
	cards, err := Parse(defaultCards)
	if err != nil {
		panic(fmt.Sprintf("embedded card catalog: %v", err))
	}
	return cards
}

// Parse decodes and validates a YAML card list.
func Parse(data []byte) ([]game.Card, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(doc.Cards); err != nil {
		return nil, err
	}
	return doc.Cards, nil
}

// Validate checks every card has a unique id, a known type, a non-negative
// cost, and that unit stats never spawn a unit without hit points.
func Validate(cards []game.Card) error {
	seen := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.ID == "" {
			return fmt.Errorf("card %q: missing id", c.Name)
		}
		if utils.FindIndex(seen, c.ID) >= 0 {
			return fmt.Errorf("card %s: duplicate id", c.ID)
		}
		seen = append(seen, c.ID)

		if !c.Type.Valid() {
			return fmt.Errorf("card %s: unknown type %q", c.ID, c.Type)
		}
		if c.Cost < 0 {
			return fmt.Errorf("card %s: negative cost %d", c.ID, c.Cost)
		}
		if c.UnitStats != nil && (c.UnitStats.HP <= 0 || c.UnitStats.AP < 0) {
			return fmt.Errorf("card %s: invalid unit stats ap=%d hp=%d", c.ID, c.UnitStats.AP, c.UnitStats.HP)
		}
		if c.Type == game.ResourceCard && c.ResourceAmount < 0 {
			return fmt.Errorf("card %s: negative resource amount %d", c.ID, c.ResourceAmount)
		}
	}
	return nil
}
