package game

import "golang.org/x/exp/slices"

// ResolveCombat trades blows simultaneously: each side loses HP equal to the
// other's AP, both computed from the pre-attack values.
func ResolveCombat(attacker, defender Unit) (Unit, Unit) {
	attackerAP, defenderAP := attacker.AP, defender.AP
	attacker.HP -= defenderAP
	defender.HP -= attackerAP
	return attacker, defender
}

// checkStats rejects stats that would put a unit on the board without hit points.
func checkStats(stats UnitStats) *Rejection {
	if stats.HP <= 0 || stats.AP < 0 {
		return reject(CodeInvalidStats, "unit needs hp > 0 and ap >= 0, got ap=%d hp=%d", stats.AP, stats.HP)
	}
	return nil
}

// checkPlacement validates that the current player may put a new unit on (q, r).
func checkPlacement(gs *GameState, q, r int) *Rejection {
	zone, ok := ZoneAt(gs.Board, q, r)
	if !ok {
		return reject(CodeHexNotFound, "no hex at (%d, %d)", q, r)
	}
	if zone != ZoneFor(gs.CurrentPlayer) {
		return reject(CodeWrongZone, "(%d, %d) is in zone %s, not player %s's territory", q, r, zone, gs.CurrentPlayer)
	}
	if gs.Occupied(q, r) {
		return reject(CodeOccupied, "(%d, %d) is already occupied", q, r)
	}
	return nil
}

func (e *Engine) deployUnit(gs *GameState, a DeployUnit) (*GameState, *Rejection) {
	if rej := checkStats(UnitStats{AP: a.AP, HP: a.HP}); rej != nil {
		return nil, rej
	}
	if rej := checkPlacement(gs, a.Q, a.R); rej != nil {
		return nil, rej
	}
	p := gs.CurrentPlayer
	cost := e.rules.DeployCost
	if !gs.canSpend(p, cost) {
		return nil, reject(CodeInsufficientGold, "deploying costs %d gold, player %s has %d", cost, p, gs.Gold(p))
	}

	next := gs.Copy()
	next.spend(p, cost)
	u := next.spawnUnit(p, a.Q, a.R, UnitStats{AP: a.AP, HP: a.HP})

	e.logger.Info().
		Str("player", string(p)).
		Str("unit", u.ID).
		Int("q", u.Q).
		Int("r", u.R).
		Msg("unit deployed")
	return next, nil
}

func (e *Engine) selectUnit(gs *GameState, a SelectUnit) (*GameState, *Rejection) {
	next := gs.Copy()
	next.SelectedUnit = a.UnitID
	return next, nil
}

func (e *Engine) moveUnit(gs *GameState, a MoveUnit) (*GameState, *Rejection) {
	unit, idx, ok := gs.FindUnit(a.UnitID)
	if !ok {
		return nil, reject(CodeUnitNotFound, "no unit %q", a.UnitID)
	}
	if unit.Owner != gs.CurrentPlayer {
		return nil, reject(CodeNotYourUnit, "unit %s belongs to player %s", unit.ID, unit.Owner)
	}
	if gs.CurrentPhase != PhaseMovement {
		return nil, reject(CodeWrongPhase, "units move in the Movement phase, phase is %s", gs.CurrentPhase)
	}
	if unit.HasMoved {
		return nil, reject(CodeAlreadyMoved, "unit %s has already moved this turn", unit.ID)
	}
	dest := Coord{Q: a.Q, R: a.R}
	if !IsAdjacent(unit.Coord(), dest) {
		return nil, reject(CodeNotAdjacent, "(%d, %d) is not adjacent to (%d, %d)", a.Q, a.R, unit.Q, unit.R)
	}
	if _, _, onBoard := FindHexByCoordinates(gs.Board, a.Q, a.R); !onBoard {
		return nil, reject(CodeHexNotFound, "no hex at (%d, %d)", a.Q, a.R)
	}
	if gs.Occupied(a.Q, a.R) {
		return nil, reject(CodeOccupied, "(%d, %d) is already occupied", a.Q, a.R)
	}

	next := gs.Copy()
	next.Units[idx].Q = a.Q
	next.Units[idx].R = a.R
	next.Units[idx].HasMoved = true
	next.SelectedUnit = unit.ID
	return next, nil
}

func (e *Engine) attackUnit(gs *GameState, a AttackUnit) (*GameState, *Rejection) {
	attacker, ai, ok := gs.FindUnit(a.AttackerID)
	if !ok {
		return nil, reject(CodeUnitNotFound, "no attacking unit %q", a.AttackerID)
	}
	defender, di, ok := gs.FindUnit(a.DefenderID)
	if !ok {
		return nil, reject(CodeUnitNotFound, "no defending unit %q", a.DefenderID)
	}
	if attacker.Owner != gs.CurrentPlayer {
		return nil, reject(CodeNotYourUnit, "unit %s belongs to player %s", attacker.ID, attacker.Owner)
	}
	if defender.Owner != gs.CurrentPlayer.Opponent() {
		return nil, reject(CodeFriendlyTarget, "unit %s is not an enemy", defender.ID)
	}
	if e.rules.AttackPolicy == AttackCombatPhaseOnly && gs.CurrentPhase != PhaseCombat {
		return nil, reject(CodeWrongPhase, "attacks happen in the Combat phase, phase is %s", gs.CurrentPhase)
	}
	if !IsAdjacent(attacker.Coord(), defender.Coord()) {
		return nil, reject(CodeNotAdjacent, "units %s and %s are not adjacent", attacker.ID, defender.ID)
	}

	attacker, defender = ResolveCombat(attacker, defender)

	next := gs.Copy()
	next.Units[ai] = attacker
	next.Units[di] = defender
	next.Units = slices.DeleteFunc(next.Units, func(u Unit) bool { return u.HP <= 0 })
	next.SelectedUnit = ""

	e.logger.Info().
		Str("attacker", attacker.ID).
		Int("attacker_hp", attacker.HP).
		Str("defender", defender.ID).
		Int("defender_hp", defender.HP).
		Msg("combat resolved")
	return next, nil
}
