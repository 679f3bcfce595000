package game

import "github.com/joebags99/kingdoms-castles/meta"

// AttackPolicy decides in which phases attacks are legal.
type AttackPolicy int

const (
	AttackAnyPhase AttackPolicy = iota
	AttackCombatPhaseOnly
)

func (p AttackPolicy) String() string {
	if p == AttackCombatPhaseOnly {
		return "combat"
	}
	return "any"
}

// CapitalPolicy decides what happens to a capital placed outside its owner's zone.
type CapitalPolicy int

const (
	CapitalWarn CapitalPolicy = iota
	CapitalStrict
)

func (p CapitalPolicy) String() string {
	if p == CapitalStrict {
		return "strict"
	}
	return "warn"
}

// Rules are the tunable parameters of the engine.
type Rules struct {
	GoldCap         int
	DeployCost      int
	MaxGenerators   int
	DefaultUnit     UnitStats
	AttackPolicy    AttackPolicy
	CapitalPolicy   CapitalPolicy
	RequireCapitals bool // COMPLETE_SETUP checks both capitals itself
}

func NewStandardRules() Rules {
	return Rules{
		GoldCap:       meta.GoldCap,
		DeployCost:    meta.DeployCost,
		MaxGenerators: meta.MaxGenerators,
		DefaultUnit:   UnitStats{AP: meta.DefaultCardUnitAP, HP: meta.DefaultCardUnitHP},
		AttackPolicy:  AttackAnyPhase,
		CapitalPolicy: CapitalWarn,
	}
}
