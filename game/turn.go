package game

import "errors"

func (e *Engine) resetGame(a ResetGame) (*GameState, *Rejection) {
	starting := a.StartingPlayer
	if starting == NoPlayer {
		starting = PlayerA
	}
	if !starting.Valid() {
		return nil, reject(CodeInvalidPlayer, "unknown starting player %q", a.StartingPlayer)
	}

	e.logger.Info().Str("player", string(starting)).Msg("game reset")
	return NewGameState(starting), nil
}

func (e *Engine) startGame(gs *GameState, a StartGame) (*GameState, *Rejection) {
	if !a.StartingPlayer.Valid() {
		return nil, reject(CodeInvalidPlayer, "unknown starting player %q", a.StartingPlayer)
	}

	next := gs.Copy()
	next.GameStarted = true
	next.CurrentPlayer = a.StartingPlayer
	next.Resources = ByPlayer[Resources]{}

	rng := NewDeckRand(a.Seed)
	for _, p := range Players {
		next.Decks.Set(p, CreatePlayerDeck(e.catalog, p, rng))
		next.Hands.Set(p, []Card{})
	}
	next.SelectedCard = ""

	e.logger.Info().
		Str("player", string(a.StartingPlayer)).
		Int("deck_size", len(next.Decks.A)).
		Msg("game started")
	return next, nil
}

func (e *Engine) setBoard(gs *GameState, a SetBoard) (*GameState, *Rejection) {
	next := gs.Copy()
	next.Board = copyBoard(a.Board)
	return next, nil
}

func (e *Engine) claimCapital(gs *GameState, a ClaimCapital) (*GameState, *Rejection) {
	if gs.SetupComplete || gs.CurrentPhase != PhaseSetup {
		return nil, reject(CodeWrongPhase, "capitals can only be placed during setup, phase is %s", gs.CurrentPhase)
	}
	if !a.Owner.Valid() {
		return nil, reject(CodeInvalidPlayer, "unknown capital owner %q", a.Owner)
	}
	if _, _, ok := FindHexByCoordinates(gs.Board, a.Q, a.R); ok && !CapitalInZone(gs.Board, a.Owner, a.Q, a.R) {
		if e.rules.CapitalPolicy == CapitalStrict {
			return nil, reject(CodeWrongZone, "(%d, %d) is outside player %s's territory", a.Q, a.R, a.Owner)
		}
		e.logger.Warn().
			Str("player", string(a.Owner)).
			Int("q", a.Q).
			Int("r", a.R).
			Msg("capital placed outside own territory")
	}

	board, err := PlaceCapital(gs.Board, a.Owner, a.Q, a.R)
	if errors.Is(err, ErrHexNotFound) {
		return nil, reject(CodeHexNotFound, "no hex at (%d, %d)", a.Q, a.R)
	}
	if err != nil {
		return nil, reject(CodeInvalidPlayer, "%v", err)
	}

	next := gs.Copy()
	next.Board = board
	return next, nil
}

func (e *Engine) toggleGenerator(gs *GameState, a ToggleGenerator) (*GameState, *Rejection) {
	if gs.SetupComplete || gs.CurrentPhase != PhaseSetup {
		return nil, reject(CodeWrongPhase, "generators can only be toggled during setup, phase is %s", gs.CurrentPhase)
	}
	h, _, ok := FindHexByCoordinates(gs.Board, a.Q, a.R)
	if !ok {
		return nil, reject(CodeHexNotFound, "no hex at (%d, %d)", a.Q, a.R)
	}
	owner, isCapital := h.Capital()
	if !isCapital {
		return nil, reject(CodeNotCapital, "(%d, %d) is not part of a capital", a.Q, a.R)
	}
	limit := e.rules.MaxGenerators
	if !h.GenerateResource && limit > 0 && GeneratorCount(gs.Board, owner) >= limit {
		return nil, reject(CodeGeneratorLimit, "player %s already has %d generators", owner, limit)
	}

	next := gs.Copy()
	next.Board = ToggleResourceGeneration(gs.Board, a.Q, a.R)
	return next, nil
}

func (e *Engine) completeSetup(gs *GameState) (*GameState, *Rejection) {
	if gs.SetupComplete {
		return nil, reject(CodeSetupComplete, "setup is already complete")
	}
	if e.rules.RequireCapitals && (!HasCapital(gs.Board, PlayerA) || !HasCapital(gs.Board, PlayerB)) {
		return nil, reject(CodeCapitalsMissing, "both players must place a capital first")
	}

	next := gs.Copy()
	next.SetupComplete = true
	next.CurrentPhase = PhaseResource
	next.TurnNumber.Set(next.CurrentPlayer, 1)
	gain := next.collectResources(e.rules.GoldCap)

	e.logger.Info().
		Str("player", string(next.CurrentPlayer)).
		Int("gold", gain).
		Msg("setup complete")
	return next, nil
}

func (e *Engine) nextPhase(gs *GameState) (*GameState, *Rejection) {
	next := gs.Copy()
	e.advancePhase(next)
	return next, nil
}

// advancePhase moves gs to the next phase, running the side effects of the
// edge it crosses. Only call on a copy.
func (e *Engine) advancePhase(gs *GameState) {
	from := gs.CurrentPhase
	if from == PhaseResource && gs.SetupComplete && !gs.ResourcesCollectedThisTurn {
		gain := gs.collectResources(e.rules.GoldCap)
		e.logger.Info().
			Str("player", string(gs.CurrentPlayer)).
			Int("turn", gs.TurnNumber.Get(gs.CurrentPlayer)).
			Int("gain", gain).
			Int("gold", gs.Gold(gs.CurrentPlayer)).
			Msg("resources collected")
	}

	to := from.Next(gs.SetupComplete)
	if from == PhaseEnd && to == PhaseResource {
		gs.beginTurn(gs.CurrentPlayer.Opponent())
		e.logger.Info().
			Str("player", string(gs.CurrentPlayer)).
			Int("turn", gs.TurnNumber.Get(gs.CurrentPlayer)).
			Msg("turn started")
	}
	gs.CurrentPhase = to
}

// beginTurn hands the turn to p. Only call on a copy.
func (gs *GameState) beginTurn(p Player) {
	gs.CurrentPlayer = p
	gs.TurnNumber.Set(p, gs.TurnNumber.Get(p)+1)
	for i := range gs.Units {
		if gs.Units[i].Owner == p {
			gs.Units[i].HasMoved = false
		}
	}
	gs.ResourcesCollectedThisTurn = false
}
