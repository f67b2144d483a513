package game

import "github.com/matthewfinger/solitaire-lightweight/deck"

// Selection is the run of cards currently held under the cursor.
// Cards[0] is the lowest card of the run.
type Selection struct {
	Cards  []*deck.Card
	Origin *Pile
}

// Holding reports whether any cards are held
func (s *Selection) Holding() bool {
	return len(s.Cards) > 0
}

// Bottom returns the lowest held card, or nil
func (s *Selection) Bottom() *deck.Card {
	if len(s.Cards) == 0 {
		return nil
	}
	return s.Cards[0]
}

// Grab picks up cards taken from origin. It refuses if something is already held.
func (s *Selection) Grab(cards []*deck.Card, origin *Pile) bool {
	if s.Holding() || len(cards) == 0 {
		return false
	}
	s.Cards = cards
	s.Origin = origin
	return true
}

// Drop releases the held cards and clears the selection
func (s *Selection) Drop() []*deck.Card {
	out := s.Cards
	s.Cards = nil
	s.Origin = nil
	return out
}
