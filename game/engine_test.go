package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestEngine(options ...Option) *Engine {
	catalog := []Card{
		{ID: "unit-1", Name: "Footman", Cost: 3, Type: UnitCard, UnitStats: &UnitStats{AP: 2, HP: 4}},
		{ID: "unit-x", Name: "Militia", Cost: 1, Type: UnitCard},
		{ID: "resource-2", Name: "Royal Treasury", Cost: 4, Type: ResourceCard, ResourceAmount: 5},
		{ID: "spell-2", Name: "Fireball", Cost: 3, Type: SpellCard, Effect: "Deal 2 damage to a unit"},
	}
	defaults := []Option{WithCatalog(catalog), WithLogger(zerolog.Nop())}
	return NewEngine(append(defaults, options...)...)
}

// apply requires the action to be accepted and returns the new state.
func apply(t *testing.T, e *Engine, gs *GameState, action Action) *GameState {
	t.Helper()
	res := e.Apply(gs, action)
	require.True(t, res.Accepted(), "%s rejected: %v", action.Kind(), res.Err())
	require.NotSame(t, gs, res.State)
	return res.State
}

// requireRejected checks the action is declined with code and leaves gs untouched.
func requireRejected(t *testing.T, e *Engine, gs *GameState, action Action, code RejectionCode) {
	t.Helper()
	before := gs.Copy()
	res := e.Apply(gs, action)
	require.False(t, res.Accepted(), "%s unexpectedly accepted", action.Kind())
	require.Equal(t, code, res.Rejection.Code)
	require.Same(t, gs, res.State)
	require.Equal(t, before, gs)
}

// setupGame plays a standard opening: A starts, 15x8 board, both capitals,
// generators lit on A's capital center and two neighbors.
func setupGame(t *testing.T, e *Engine) *GameState {
	t.Helper()
	gs := NewGameState(PlayerA)
	gs = apply(t, e, gs, StartGame{StartingPlayer: PlayerA, Seed: 7})
	gs = apply(t, e, gs, SetBoard{Board: GenerateBoard(15, 8)})
	gs = apply(t, e, gs, ClaimCapital{Owner: PlayerA, Q: 2, R: 1})
	gs = apply(t, e, gs, ClaimCapital{Owner: PlayerB, Q: 12, R: 6})
	for _, c := range []Coord{{Q: 2, R: 1}, {Q: 3, R: 1}, {Q: 2, R: 0}} {
		gs = apply(t, e, gs, ToggleGenerator{Q: c.Q, R: c.R})
	}
	return apply(t, e, gs, CompleteSetup{})
}

// advanceTo steps phases until p is acting in phase.
func advanceTo(t *testing.T, e *Engine, gs *GameState, p Player, phase Phase) *GameState {
	t.Helper()
	for i := 0; i < 64; i++ {
		if gs.CurrentPlayer == p && gs.CurrentPhase == phase {
			return gs
		}
		gs = apply(t, e, gs, NextPhase{})
	}
	t.Fatalf("never reached player %s in %s", p, phase)
	return nil
}

func TestApply(t *testing.T) {
	t.Run("nil state starts from setup", func(t *testing.T) {
		e := newTestEngine()
		res := e.Apply(nil, SelectUnit{UnitID: "u"})
		require.True(t, res.Accepted())
		require.Equal(t, PhaseSetup, res.State.CurrentPhase)
		require.Equal(t, "u", res.State.SelectedUnit)
	})

	t.Run("unknown action", func(t *testing.T) {
		e := newTestEngine()
		gs := NewGameState(PlayerA)
		res := e.Apply(gs, nil)
		require.Equal(t, CodeUnknownAction, res.Rejection.Code)
		require.Equal(t, CategoryInvalid, res.Rejection.Category())
		require.Same(t, gs, res.State)
		require.Error(t, res.Err())
	})

	t.Run("accepted actions never mutate the input", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)
		gs = advanceTo(t, e, gs, PlayerA, PhaseDraw)
		before := gs.Copy()
		_ = apply(t, e, gs, DrawCard{})
		require.Equal(t, before, gs)
	})
}

func TestSetup(t *testing.T) {
	t.Run("opening scenario", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)

		require.True(t, gs.GameStarted)
		require.True(t, gs.SetupComplete)
		require.Equal(t, PhaseResource, gs.CurrentPhase)
		require.Equal(t, PlayerA, gs.CurrentPlayer)
		require.Equal(t, 1, gs.TurnNumber.A)
		require.Equal(t, 0, gs.TurnNumber.B)
		// Turn 1 unlocks one of the three generators.
		require.Equal(t, 1, gs.Gold(PlayerA))
		require.True(t, gs.ResourcesCollectedThisTurn)
		// Two copies each of three unit and resource cards, one spell.
		require.Len(t, gs.Decks.A, 7)
		require.Len(t, gs.Decks.B, 7)
		require.True(t, HasCapital(gs.Board, PlayerA))
		require.True(t, HasCapital(gs.Board, PlayerB))
	})

	t.Run("reset", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)
		gs = apply(t, e, gs, ResetGame{StartingPlayer: PlayerB})
		require.Equal(t, NewGameState(PlayerB), gs)

		gs = apply(t, e, gs, ResetGame{})
		require.Equal(t, PlayerA, gs.CurrentPlayer)
		requireRejected(t, e, gs, ResetGame{StartingPlayer: "C"}, CodeInvalidPlayer)
	})

	t.Run("start game needs a valid player", func(t *testing.T) {
		e := newTestEngine()
		requireRejected(t, e, NewGameState(PlayerA), StartGame{}, CodeInvalidPlayer)
	})

	t.Run("complete setup only once", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)
		requireRejected(t, e, gs, CompleteSetup{}, CodeSetupComplete)
	})

	t.Run("capitals and generators are setup only", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)
		requireRejected(t, e, gs, ClaimCapital{Owner: PlayerA, Q: 5, R: 1}, CodeWrongPhase)
		requireRejected(t, e, gs, ToggleGenerator{Q: 2, R: 1}, CodeWrongPhase)
	})

	t.Run("capital placement", func(t *testing.T) {
		gs := NewGameState(PlayerA)
		gs.Board = GenerateBoard(15, 8)

		e := newTestEngine()
		requireRejected(t, e, gs, ClaimCapital{Owner: PlayerA, Q: 50, R: 1}, CodeHexNotFound)
		requireRejected(t, e, gs, ClaimCapital{Owner: NoPlayer, Q: 2, R: 1}, CodeInvalidPlayer)
		// Warn policy lets an out-of-zone capital through.
		next := apply(t, e, gs, ClaimCapital{Owner: PlayerA, Q: 2, R: 6})
		owner, ok := CapitalOwnerAt(next.Board, 2, 6)
		require.True(t, ok)
		require.Equal(t, PlayerA, owner)

		rules := NewStandardRules()
		rules.CapitalPolicy = CapitalStrict
		strict := newTestEngine(WithRules(rules))
		requireRejected(t, strict, gs, ClaimCapital{Owner: PlayerA, Q: 2, R: 6}, CodeWrongZone)
		_ = apply(t, strict, gs, ClaimCapital{Owner: PlayerA, Q: 2, R: 1})
	})

	t.Run("generator toggling", func(t *testing.T) {
		gs := NewGameState(PlayerA)
		gs.Board = GenerateBoard(15, 8)

		rules := NewStandardRules()
		rules.MaxGenerators = 2
		e := newTestEngine(WithRules(rules))
		gs = apply(t, e, gs, ClaimCapital{Owner: PlayerA, Q: 2, R: 1})

		requireRejected(t, e, gs, ToggleGenerator{Q: 10, R: 6}, CodeNotCapital)
		requireRejected(t, e, gs, ToggleGenerator{Q: 40, R: 6}, CodeHexNotFound)

		gs = apply(t, e, gs, ToggleGenerator{Q: 2, R: 1})
		gs = apply(t, e, gs, ToggleGenerator{Q: 3, R: 1})
		requireRejected(t, e, gs, ToggleGenerator{Q: 2, R: 2}, CodeGeneratorLimit)
		// Switching one off is always allowed.
		gs = apply(t, e, gs, ToggleGenerator{Q: 3, R: 1})
		require.Equal(t, 1, GeneratorCount(gs.Board, PlayerA))
	})

	t.Run("required capitals", func(t *testing.T) {
		rules := NewStandardRules()
		rules.RequireCapitals = true
		e := newTestEngine(WithRules(rules))

		gs := NewGameState(PlayerA)
		gs.Board = GenerateBoard(15, 8)
		gs = apply(t, e, gs, ClaimCapital{Owner: PlayerA, Q: 2, R: 1})
		requireRejected(t, e, gs, CompleteSetup{}, CodeCapitalsMissing)

		gs = apply(t, e, gs, ClaimCapital{Owner: PlayerB, Q: 12, R: 6})
		_ = apply(t, e, gs, CompleteSetup{})
	})
}

func TestPhaseCycle(t *testing.T) {
	t.Run("setup is never re-entered", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)
		for i := 0; i < 40; i++ {
			gs = apply(t, e, gs, NextPhase{})
			require.NotEqual(t, PhaseSetup, gs.CurrentPhase)
		}
	})

	t.Run("before setup completes the cycle wraps through setup", func(t *testing.T) {
		e := newTestEngine()
		gs := NewGameState(PlayerA)
		for i := 0; i < 8; i++ {
			gs = apply(t, e, gs, NextPhase{})
		}
		require.Equal(t, PhaseSetup, gs.CurrentPhase)
		require.Equal(t, PlayerA, gs.CurrentPlayer)
		require.Zero(t, gs.TurnNumber.A)
		require.Zero(t, gs.Gold(PlayerA))
	})

	t.Run("end phase hands the turn over", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)
		gs = advanceTo(t, e, gs, PlayerA, PhaseEnd)
		require.Equal(t, 1, gs.TurnNumber.A)

		gs = apply(t, e, gs, EndPhase{})
		require.Equal(t, PlayerB, gs.CurrentPlayer)
		require.Equal(t, PhaseResource, gs.CurrentPhase)
		require.Equal(t, 1, gs.TurnNumber.A, "only the incoming player's turn counts up")
		require.Equal(t, 1, gs.TurnNumber.B)
		require.False(t, gs.ResourcesCollectedThisTurn)
	})

	t.Run("resources ramp with the turn number", func(t *testing.T) {
		e := newTestEngine()
		gs := setupGame(t, e)
		require.Equal(t, 1, gs.Gold(PlayerA))

		// Leaving Resource on turn 1 does not pay twice.
		gs = apply(t, e, gs, NextPhase{})
		require.Equal(t, 1, gs.Gold(PlayerA))

		want := []int{3, 6, 9, 12}
		for _, gold := range want {
			gs = advanceTo(t, e, gs, PlayerA, PhaseResource)
			gs = apply(t, e, gs, NextPhase{})
			require.Equal(t, gold, gs.Gold(PlayerA), "turn %d", gs.TurnNumber.A)
			gs = advanceTo(t, e, gs, PlayerB, PhaseResource)
		}
		require.Zero(t, gs.Gold(PlayerB), "B lit no generators")
	})
}

func TestDeployUnit(t *testing.T) {
	e := newTestEngine()
	gs := setupGame(t, e)

	t.Run("costs five gold", func(t *testing.T) {
		rich := gs.Copy()
		rich.Resources.A.Gold = 4
		requireRejected(t, e, rich, DeployUnit{Q: 0, R: 0, AP: 3, HP: 5}, CodeInsufficientGold)

		rich.Resources.A.Gold = 5
		next := apply(t, e, rich, DeployUnit{Q: 0, R: 0, AP: 3, HP: 5})
		require.Zero(t, next.Gold(PlayerA))
		require.Len(t, next.Units, 1)
		u := next.Units[0]
		require.Equal(t, PlayerA, u.Owner)
		require.Equal(t, Coord{Q: 0, R: 0}, u.Coord())
		require.Equal(t, 3, u.AP)
		require.Equal(t, 5, u.HP)
		require.False(t, u.HasMoved)
	})

	t.Run("placement rules", func(t *testing.T) {
		rich := gs.Copy()
		rich.Resources.A.Gold = 20
		requireRejected(t, e, rich, DeployUnit{Q: 0, R: 6, AP: 3, HP: 5}, CodeWrongZone)
		requireRejected(t, e, rich, DeployUnit{Q: 0, R: 3, AP: 3, HP: 5}, CodeWrongZone)
		requireRejected(t, e, rich, DeployUnit{Q: 99, R: 0, AP: 3, HP: 5}, CodeHexNotFound)
		requireRejected(t, e, rich, DeployUnit{Q: 0, R: 0, AP: 3, HP: 0}, CodeInvalidStats)

		next := apply(t, e, rich, DeployUnit{Q: 0, R: 0, AP: 3, HP: 5})
		requireRejected(t, e, next, DeployUnit{Q: 0, R: 0, AP: 3, HP: 5}, CodeOccupied)
	})

	t.Run("unit ids are unique and reproducible", func(t *testing.T) {
		rich := gs.Copy()
		rich.Resources.A.Gold = 20
		one := apply(t, e, rich, DeployUnit{Q: 0, R: 0, AP: 1, HP: 1})
		two := apply(t, e, one, DeployUnit{Q: 1, R: 0, AP: 1, HP: 1})
		require.NotEqual(t, two.Units[0].ID, two.Units[1].ID)

		again := apply(t, e, rich, DeployUnit{Q: 0, R: 0, AP: 1, HP: 1})
		require.Equal(t, one.Units[0].ID, again.Units[0].ID)
	})
}

func TestCards(t *testing.T) {
	e := newTestEngine()
	gs := setupGame(t, e)
	gs = advanceTo(t, e, gs, PlayerA, PhaseDraw)

	t.Run("draw moves the top card into the hand", func(t *testing.T) {
		top := gs.Decks.A[0]
		next := apply(t, e, gs, DrawCard{})
		require.Len(t, next.Decks.A, len(gs.Decks.A)-1)
		require.Equal(t, []Card{top}, next.Hands.A)
		require.Len(t, next.Decks.B, len(gs.Decks.B))
	})

	t.Run("empty deck", func(t *testing.T) {
		empty := gs.Copy()
		empty.Decks.A = []Card{}
		requireRejected(t, e, empty, DrawCard{}, CodeDeckEmpty)
	})

	t.Run("select card", func(t *testing.T) {
		next := apply(t, e, gs, SelectCard{CardID: "anything"})
		require.Equal(t, "anything", next.SelectedCard)
	})

	footman := Card{ID: "unit-1-A-1", Name: "Footman", Cost: 3, Type: UnitCard, UnitStats: &UnitStats{AP: 2, HP: 4}}
	militia := Card{ID: "unit-x-A-1", Name: "Militia", Cost: 1, Type: UnitCard}
	treasury := Card{ID: "resource-2-A-1", Name: "Royal Treasury", Cost: 4, Type: ResourceCard, ResourceAmount: 5}
	fireball := Card{ID: "spell-2-A-1", Name: "Fireball", Cost: 3, Type: SpellCard}

	withHand := func(gold int, cards ...Card) *GameState {
		next := gs.Copy()
		next.Resources.A.Gold = gold
		next.Hands.A = append([]Card{}, cards...)
		return next
	}

	t.Run("unit card spawns its stats", func(t *testing.T) {
		start := withHand(5, footman, fireball)
		start.SelectedCard = footman.ID
		target := Coord{Q: 4, R: 2}
		next := apply(t, e, start, PlayCard{CardID: footman.ID, Target: &target})

		require.Equal(t, 2, next.Gold(PlayerA))
		require.Equal(t, []Card{fireball}, next.Hands.A)
		require.Empty(t, next.SelectedCard)
		u, ok := next.UnitAt(4, 2)
		require.True(t, ok)
		require.Equal(t, 2, u.AP)
		require.Equal(t, 4, u.HP)
	})

	t.Run("unit card without stats uses the default unit", func(t *testing.T) {
		target := Coord{Q: 4, R: 2}
		next := apply(t, e, withHand(5, militia), PlayCard{CardID: militia.ID, Target: &target})
		u, ok := next.UnitAt(4, 2)
		require.True(t, ok)
		require.Equal(t, e.Rules().DefaultUnit.AP, u.AP)
		require.Equal(t, e.Rules().DefaultUnit.HP, u.HP)
	})

	t.Run("unit card placement is checked before paying", func(t *testing.T) {
		start := withHand(5, footman)
		requireRejected(t, e, start, PlayCard{CardID: footman.ID}, CodeTargetRequired)
		enemy := Coord{Q: 4, R: 6}
		requireRejected(t, e, start, PlayCard{CardID: footman.ID, Target: &enemy}, CodeWrongZone)
	})

	t.Run("unit card without hit points is rejected", func(t *testing.T) {
		target := Coord{Q: 0, R: 0}
		hollow := Card{ID: "unit-h-A-1", Name: "Scarecrow", Cost: 1, Type: UnitCard, UnitStats: &UnitStats{AP: 1, HP: 0}}
		requireRejected(t, e, withHand(5, hollow), PlayCard{CardID: hollow.ID, Target: &target}, CodeInvalidStats)

		rules := NewStandardRules()
		rules.DefaultUnit = UnitStats{AP: 1, HP: 0}
		broken := newTestEngine(WithRules(rules))
		requireRejected(t, broken, withHand(5, militia), PlayCard{CardID: militia.ID, Target: &target}, CodeInvalidStats)
	})

	t.Run("resource card clamps at the gold cap", func(t *testing.T) {
		next := apply(t, e, withHand(10, treasury), PlayCard{CardID: treasury.ID})
		require.Equal(t, 11, next.Gold(PlayerA))

		next = apply(t, e, withHand(20, treasury), PlayCard{CardID: treasury.ID})
		require.Equal(t, 20, next.Gold(PlayerA))
	})

	t.Run("spell card is paid and discarded", func(t *testing.T) {
		next := apply(t, e, withHand(3, fireball), PlayCard{CardID: fireball.ID})
		require.Zero(t, next.Gold(PlayerA))
		require.Empty(t, next.Hands.A)
	})

	t.Run("rejections", func(t *testing.T) {
		requireRejected(t, e, withHand(5, footman), PlayCard{CardID: "missing"}, CodeCardNotInHand)
		requireRejected(t, e, withHand(2, fireball), PlayCard{CardID: fireball.ID}, CodeInsufficientGold)
	})

	t.Run("duplicate copies leave one behind", func(t *testing.T) {
		dup := fireball
		next := apply(t, e, withHand(6, fireball, dup), PlayCard{CardID: fireball.ID})
		require.Len(t, next.Hands.A, 1)
	})
}
