package game

import (
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// CreatePlayerDeck builds a shuffled deck for player from the catalog: two
// copies of every unit and resource card, one of every building and spell.
// Each copy gets an id unique to its owner and copy number.
func CreatePlayerDeck(catalog []Card, player Player, rng *rand.Rand) []Card {
	deck := make([]Card, 0, 2*len(catalog))
	for copyNo := 1; copyNo <= 2; copyNo++ {
		for _, card := range catalog {
			if card.Type.copies() < copyNo {
				continue
			}
			c := card
			c.ID = fmt.Sprintf("%s-%s-%d", card.ID, player, copyNo)
			deck = append(deck, c)
		}
	}

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// NewDeckRand returns the deterministic source used to shuffle decks for seed.
func NewDeckRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// drawCard moves the head of p's deck into p's hand. Only call on a copy.
func (gs *GameState) drawCard(p Player) (Card, bool) {
	deck := gs.Decks.Get(p)
	if len(deck) == 0 {
		return Card{}, false
	}
	card := deck[0]
	gs.Decks.Set(p, deck[1:])
	gs.Hands.Set(p, append(gs.Hands.Get(p), card))
	return card, true
}

// HandCard returns the first card with id in p's hand.
func (gs *GameState) HandCard(p Player, id string) (Card, int, bool) {
	hand := gs.Hands.Get(p)
	i := slices.IndexFunc(hand, func(c Card) bool { return c.ID == id })
	if i < 0 {
		return Card{}, -1, false
	}
	return hand[i], i, true
}

// removeFromHand drops the card at index i of p's hand. Only call on a copy.
func (gs *GameState) removeFromHand(p Player, i int) {
	hand := gs.Hands.Get(p)
	gs.Hands.Set(p, slices.Delete(hand, i, i+1))
}
