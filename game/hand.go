package game

func (e *Engine) drawCard(gs *GameState) (*GameState, *Rejection) {
	p := gs.CurrentPlayer
	if len(gs.Decks.Get(p)) == 0 {
		return nil, reject(CodeDeckEmpty, "player %s has no cards left to draw", p)
	}

	next := gs.Copy()
	card, _ := next.drawCard(p)
	e.logger.Debug().Str("player", string(p)).Str("card", card.ID).Msg("card drawn")
	return next, nil
}

func (e *Engine) selectCard(gs *GameState, a SelectCard) (*GameState, *Rejection) {
	next := gs.Copy()
	next.SelectedCard = a.CardID
	return next, nil
}

func (e *Engine) playCard(gs *GameState, a PlayCard) (*GameState, *Rejection) {
	p := gs.CurrentPlayer
	card, idx, ok := gs.HandCard(p, a.CardID)
	if !ok {
		return nil, reject(CodeCardNotInHand, "card %q is not in player %s's hand", a.CardID, p)
	}
	if !gs.canSpend(p, card.Cost) {
		return nil, reject(CodeInsufficientGold, "%s costs %d gold, player %s has %d", card.Name, card.Cost, p, gs.Gold(p))
	}
	// Unit placement and stats are validated before anything is committed.
	stats := e.rules.DefaultUnit
	if card.Type == UnitCard {
		if a.Target == nil {
			return nil, reject(CodeTargetRequired, "%s needs a target hex", card.Name)
		}
		if card.UnitStats != nil {
			stats = *card.UnitStats
		}
		if rej := checkStats(stats); rej != nil {
			return nil, rej
		}
		if rej := checkPlacement(gs, a.Target.Q, a.Target.R); rej != nil {
			return nil, rej
		}
	}

	next := gs.Copy()
	next.removeFromHand(p, idx)
	next.spend(p, card.Cost)
	next.SelectedCard = ""

	event := e.logger.Info().Str("player", string(p)).Str("card", card.ID).Str("type", string(card.Type))
	switch card.Type {
	case UnitCard:
		u := next.spawnUnit(p, a.Target.Q, a.Target.R, stats)
		event.Str("unit", u.ID).Msg("unit card played")
	case ResourceCard:
		gold := next.addGold(p, card.ResourceAmount, e.rules.GoldCap)
		event.Int("gold", gold).Msg("resource card played")
	default:
		// TODO: building and spell effects (Watchtower vision, Barracks discount, Fireball, Healing Prayer).
		event.Str("effect", card.Effect).Msg("card effect not implemented")
	}
	return next, nil
}
