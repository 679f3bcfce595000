package game

import "github.com/joebags99/kingdoms-castles/utils"

// ActiveGenerators is how many of p's generators pay out on turn: one more
// generator unlocks every turn.
func ActiveGenerators(board []Hex, p Player, turn int) int {
	return min(GeneratorCount(board, p), max(turn, 0))
}

// addGold credits p and clamps the total to [0, goldCap]. Only call on a copy.
func (gs *GameState) addGold(p Player, amount, goldCap int) int {
	res := gs.Resources.Get(p)
	res.Gold = utils.Clamp(res.Gold+amount, 0, goldCap)
	gs.Resources.Set(p, res)
	return res.Gold
}

// canSpend reports whether p can pay amount without going negative.
func (gs *GameState) canSpend(p Player, amount int) bool {
	return amount >= 0 && gs.Gold(p) >= amount
}

// spend debits p. Callers check canSpend first. Only call on a copy.
func (gs *GameState) spend(p Player, amount int) {
	res := gs.Resources.Get(p)
	res.Gold -= amount
	gs.Resources.Set(p, res)
}

// collectResources pays the current player for their active generators and
// returns the gain. Only call on a copy.
func (gs *GameState) collectResources(goldCap int) (gain int) {
	p := gs.CurrentPlayer
	gain = ActiveGenerators(gs.Board, p, gs.TurnNumber.Get(p))
	gs.addGold(p, gain, goldCap)
	gs.ResourcesCollectedThisTurn = true
	return gain
}
