package game

import (
	"math/rand"
	"testing"

	"github.com/matthewfinger/solitaire-lightweight/deck"
)

func seededGame(seed int64) *Solitaire {
	return New(Options{Rand: rand.New(rand.NewSource(seed))})
}

// emptyGame returns a game with every pile cleared and the foundations back to their base cards
func emptyGame() *Solitaire {
	s := seededGame(1)
	s.Deck.Cards = []*deck.Card{}
	s.Waste.Cards = []*deck.Card{}
	for _, p := range s.Tableau {
		p.Cards = []*deck.Card{}
	}
	for _, f := range s.Foundations {
		f.Cards = f.Cards[:1]
	}
	return s
}

func up(rank deck.Rank, suit *deck.Suit) *deck.Card {
	c := deck.NewCard(rank, suit)
	c.FaceUp = true
	return c
}

func down(rank deck.Rank, suit *deck.Suit) *deck.Card {
	return deck.NewCard(rank, suit)
}

func clickAt(t *testing.T, s *Solitaire, p *Pile, index int) Outcome {
	t.Helper()
	pt, ok := s.Locate(p, index)
	if !ok {
		t.Fatalf("card %d of %s is not exposed", index, p.Name)
	}
	return s.PointerDown(pt)
}

// clickTop clicks the top card of p, or its base if it is empty
func clickTop(t *testing.T, s *Solitaire, p *Pile) Outcome {
	t.Helper()
	return clickAt(t, s, p, p.Size()-1)
}

func keys(cards []*deck.Card) []string {
	out := []string{}
	for _, c := range cards {
		out = append(out, c.Key())
	}
	return out
}

// allCards collects every playing card on the table and in hand
func allCards(s *Solitaire) []*deck.Card {
	cards := append([]*deck.Card{}, s.selection.Cards...)
	for _, p := range s.Piles() {
		for _, c := range p.Cards {
			if !c.IsBase() {
				cards = append(cards, c)
			}
		}
	}
	return cards
}
