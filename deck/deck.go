package deck

import (
	"math/rand"
)

// Deck represents a deck of cards. The last card is the top.
type Deck []*Card

// New creates a face-down deck of 52 cards, suit by suit in ascending rank
func New() Deck {
	cards := make(Deck, 0, len(Suits)*int(King))
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle permutes the deck in place with a Fisher-Yates shuffle.
// Every permutation is equally likely. A nil r uses the global source.
func (d Deck) Shuffle(r *rand.Rand) {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}
	for i := len(d) - 1; i > 0; i-- {
		j := intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal removes n cards from the top of the deck.
// The dealt cards keep their bottom-to-top order.
func (d *Deck) Deal(n int) []*Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []*Card{}
	}
	startingIndex := numCardsInDeck - n
	dealt := make([]*Card, n)
	copy(dealt, (*d)[startingIndex:])
	*d = (*d)[:startingIndex]
	return dealt
}
