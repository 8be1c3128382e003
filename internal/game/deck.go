package game

import "math/rand"

// BuildDeck produces one card per (category, name) pair of the catalog,
// ranked by position within the category, then permutes it with rng.
// The top of the deck is the last element.
func BuildDeck(cat Catalog, rng *rand.Rand, shuffle bool) []*Card {
	deck := make([]*Card, 0, cat.Size())
	for _, e := range cat {
		for i, name := range e.Cards {
			deck = append(deck, NewCard(e.Suit, i+1, name, e.Color))
		}
	}
	if shuffle {
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
	}
	return deck
}

// drawOutcome describes what a single draw did to the state.
type drawOutcome struct {
	Card        *Card
	Reshuffled  bool
	BossAppears bool
}

// draw moves the top card of the deck into the pool, rebuilding the deck
// first if it is empty, and activates the boss once the pool grows past
// the threshold.
func (g *Game) draw() drawOutcome {
	gs := g.State
	var out drawOutcome

	if len(gs.Deck) == 0 {
		gs.Deck = BuildDeck(g.Rules.Catalog, g.rng, !g.noShuffle)
		out.Reshuffled = true
	}

	card := gs.Deck[len(gs.Deck)-1]
	gs.Deck = gs.Deck[:len(gs.Deck)-1]
	gs.Pool = append(gs.Pool, card)
	gs.Draws++
	out.Card = card

	b := g.Rules.Boss
	if len(gs.Pool) > b.Threshold && !gs.Boss.Active {
		gs.Boss.Activate(b.HP)
		gs.Pool = append(gs.Pool, NewCard(b.Suit, BossRank, b.Name, b.Color))
		out.BossAppears = true
	}
	return out
}
