package game

import (
	"fmt"

	"github.com/google/uuid"
)

// unitNamespace seeds the name-based unit ids so the same action sequence
// always yields the same ids.
var unitNamespace = uuid.MustParse("6f1c3a52-8d0e-4b7a-9a43-2f5e8c1d7b90")

// Unit is a piece on the board. A unit with HP <= 0 is never kept in the state.
type Unit struct {
	ID       string `json:"id"`
	Owner    Player `json:"owner"`
	Q        int    `json:"q"`
	R        int    `json:"r"`
	AP       int    `json:"ap"`
	HP       int    `json:"hp"`
	HasMoved bool   `json:"hasMoved"`
}

func (u Unit) Coord() Coord {
	return Coord{Q: u.Q, R: u.R}
}

// GameState is the single value the engine transforms. Treat it as read-only:
// the engine never mutates a state it was given, it returns a new one.
type GameState struct {
	CurrentPlayer              Player              `json:"currentPlayer"`
	CurrentPhase               Phase               `json:"currentPhase"`
	TurnNumber                 ByPlayer[int]       `json:"turnNumber"`
	Board                      []Hex               `json:"board"`
	Resources                  ByPlayer[Resources] `json:"resources"`
	GameStarted                bool                `json:"gameStarted"`
	SetupComplete              bool                `json:"setupComplete"`
	Units                      []Unit              `json:"units"`
	SelectedUnit               string              `json:"selectedUnit,omitempty"`
	Decks                      ByPlayer[[]Card]    `json:"decks"`
	Hands                      ByPlayer[[]Card]    `json:"hands"`
	SelectedCard               string              `json:"selectedCard,omitempty"`
	ResourcesCollectedThisTurn bool                `json:"resourcesCollectedThisTurn"`
	UnitSeq                    int                 `json:"unitSeq"` // units created so far, feeds unit ids
}

// NewGameState returns the initial Setup state with the given starting player.
func NewGameState(startingPlayer Player) *GameState {
	if !startingPlayer.Valid() {
		startingPlayer = PlayerA
	}
	return &GameState{
		CurrentPlayer: startingPlayer,
		CurrentPhase:  PhaseSetup,
		Board:         []Hex{},
		Units:         []Unit{},
		Decks:         ByPlayer[[]Card]{A: []Card{}, B: []Card{}},
		Hands:         ByPlayer[[]Card]{A: []Card{}, B: []Card{}},
	}
}

func (gs *GameState) Copy() *GameState {
	// Copy board
	boardCopy := make([]Hex, len(gs.Board))
	copy(boardCopy, gs.Board)

	// Copy units
	unitsCopy := make([]Unit, len(gs.Units))
	copy(unitsCopy, gs.Units)

	return &GameState{
		CurrentPlayer:              gs.CurrentPlayer,
		CurrentPhase:               gs.CurrentPhase,
		TurnNumber:                 gs.TurnNumber,
		Board:                      boardCopy,
		Resources:                  gs.Resources,
		GameStarted:                gs.GameStarted,
		SetupComplete:              gs.SetupComplete,
		Units:                      unitsCopy,
		SelectedUnit:               gs.SelectedUnit,
		Decks:                      copyCards(gs.Decks),
		Hands:                      copyCards(gs.Hands),
		SelectedCard:               gs.SelectedCard,
		ResourcesCollectedThisTurn: gs.ResourcesCollectedThisTurn,
		UnitSeq:                    gs.UnitSeq,
	}
}

func copyCards(bp ByPlayer[[]Card]) ByPlayer[[]Card] {
	a := make([]Card, len(bp.A))
	copy(a, bp.A)
	b := make([]Card, len(bp.B))
	copy(b, bp.B)
	return ByPlayer[[]Card]{A: a, B: b}
}

// Gold returns the player's current gold.
func (gs *GameState) Gold(p Player) int {
	return gs.Resources.Get(p).Gold
}

// FindUnit returns the unit with the given id.
func (gs *GameState) FindUnit(id string) (Unit, int, bool) {
	for i, u := range gs.Units {
		if u.ID == id {
			return u, i, true
		}
	}
	return Unit{}, -1, false
}

// UnitAt returns the unit standing on (q, r).
func (gs *GameState) UnitAt(q, r int) (Unit, bool) {
	for _, u := range gs.Units {
		if u.Q == q && u.R == r {
			return u, true
		}
	}
	return Unit{}, false
}

func (gs *GameState) Occupied(q, r int) bool {
	_, ok := gs.UnitAt(q, r)
	return ok
}

// UnitsOf returns the units owned by p, in board order.
func (gs *GameState) UnitsOf(p Player) []Unit {
	var out []Unit
	for _, u := range gs.Units {
		if u.Owner == p {
			out = append(out, u)
		}
	}
	return out
}

// spawnUnit appends a new unit for owner and returns it. Only call on a copy.
func (gs *GameState) spawnUnit(owner Player, q, r int, stats UnitStats) Unit {
	gs.UnitSeq++
	u := Unit{
		ID:    newUnitID(owner, gs.UnitSeq),
		Owner: owner,
		Q:     q,
		R:     r,
		AP:    stats.AP,
		HP:    stats.HP,
	}
	gs.Units = append(gs.Units, u)
	return u
}

func newUnitID(owner Player, seq int) string {
	return uuid.NewSHA1(unitNamespace, []byte(fmt.Sprintf("%s/%d", owner, seq))).String()
}
