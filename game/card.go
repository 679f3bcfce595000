package game

type CardType string

const (
	UnitCard     CardType = "unit"
	ResourceCard CardType = "resource"
	SpellCard    CardType = "spell"
	BuildingCard CardType = "building"
)

func (t CardType) Valid() bool {
	switch t {
	case UnitCard, ResourceCard, SpellCard, BuildingCard:
		return true
	}
	return false
}

// copies is how many of each catalog card go into a player's deck.
func (t CardType) copies() int {
	switch t {
	case UnitCard, ResourceCard:
		return 2
	case SpellCard, BuildingCard:
		return 1
	default:
		return 0
	}
}

type UnitStats struct {
	AP int `json:"ap" yaml:"ap"`
	HP int `json:"hp" yaml:"hp"`
}

// Card is an immutable card template. Deck copies differ from the catalog
// entry only by ID.
type Card struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Cost           int        `json:"cost" yaml:"cost"`
	Type           CardType   `json:"type" yaml:"type"`
	Subtype        string     `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	UnitStats      *UnitStats `json:"unitStats,omitempty" yaml:"unitStats,omitempty"`
	ResourceAmount int        `json:"resourceAmount,omitempty" yaml:"resourceAmount,omitempty"`
	Effect         string     `json:"effect,omitempty" yaml:"effect,omitempty"`
	Description    string     `json:"description" yaml:"description"`
}
