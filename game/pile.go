package game

import (
	"github.com/matthewfinger/solitaire-lightweight/deck"
)

// Kind distinguishes the four kinds of pile on the table
type Kind int

const (
	KindDeck Kind = iota
	KindWaste
	KindTableau
	KindFoundation
)

var kindNames = []string{"Deck", "Waste", "Tableau", "Foundation"}

func (k Kind) String() string {
	return kindNames[k]
}

const (
	defaultPileY   = 10
	defaultSpacing = 20
	wasteWindow    = 3
)

// Pile is an ordered stack of cards. Index 0 is the bottom, the last card is the top.
// Y, Column and Spacing only describe where the pile sits in the layout.
type Pile struct {
	Name       string
	Kind       Kind
	Cards      []*deck.Card
	Column     int
	Y          int
	Spacing    int
	MaxVisible int        // 0 means every card is visible
	Suit       *deck.Suit // foundations only
}

// NewPile constructs a pile of the given kind
func NewPile(name string, kind Kind, cards []*deck.Card) *Pile {
	if cards == nil {
		cards = []*deck.Card{}
	}
	p := &Pile{
		Name:    name,
		Kind:    kind,
		Cards:   cards,
		Y:       defaultPileY,
		Spacing: defaultSpacing,
	}

	switch kind {
	case KindDeck, KindFoundation:
		p.Spacing = 0
	case KindWaste:
		p.MaxVisible = wasteWindow
	}

	return p
}

// NewFoundation constructs a foundation holding only the base card for suit
func NewFoundation(name string, suit *deck.Suit) *Pile {
	p := NewPile(name, KindFoundation, []*deck.Card{deck.NewBaseCard(suit)})
	p.Suit = suit
	return p
}

func (p *Pile) Size() int {
	return len(p.Cards)
}

func (p *Pile) Empty() bool {
	return len(p.Cards) == 0
}

// Top returns the top card, or nil if the pile is empty
func (p *Pile) Top() *deck.Card {
	if len(p.Cards) == 0 {
		return nil
	}
	return p.Cards[len(p.Cards)-1]
}

// Push places cards on top of the pile in order
func (p *Pile) Push(cards ...*deck.Card) {
	p.Cards = append(p.Cards, cards...)
}

// PopTop removes the top n cards, keeping their bottom-to-top order.
// n is clamped to the size of the pile.
func (p *Pile) PopTop(n int) []*deck.Card {
	if n <= 0 {
		return []*deck.Card{}
	}
	if n > len(p.Cards) {
		n = len(p.Cards)
	}
	start := len(p.Cards) - n
	out := make([]*deck.Card, n)
	copy(out, p.Cards[start:])
	for i := start; i < len(p.Cards); i++ {
		p.Cards[i] = nil
	}
	p.Cards = p.Cards[:start]
	return out
}

// IndexOf returns the position of card in the pile, or -1
func (p *Pile) IndexOf(card *deck.Card) int {
	for i, c := range p.Cards {
		if c == card {
			return i
		}
	}
	return -1
}

func (p *Pile) Has(card *deck.Card) bool {
	return p.IndexOf(card) >= 0
}

// TurnAll sets every card in the pile face up or face down
func (p *Pile) TurnAll(faceUp bool) {
	for _, c := range p.Cards {
		c.FaceUp = faceUp
	}
}

// Reverse reverses the order of the pile in place
func (p *Pile) Reverse() {
	reverseCards(p.Cards)
}

// Count returns the number of playing cards, ignoring base cards
func (p *Pile) Count() int {
	n := 0
	for _, c := range p.Cards {
		if !c.IsBase() {
			n++
		}
	}
	return n
}

func reverseCards(cards []*deck.Card) {
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
}
