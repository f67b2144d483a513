package game

import (
	"github.com/matthewfinger/solitaire-lightweight/deck"
)

// canStackOnTableau reports whether card may be placed on target in a tableau column:
// one rank lower and the opposite color.
func canStackOnTableau(card, target *deck.Card) bool {
	return card.Rank == target.Rank-1 && card.Color() != target.Color()
}

// canStackOnFoundation reports whether run may be placed on target in a foundation:
// a single card, one rank higher, same suit. The base card has rank 0 so only an Ace starts a foundation.
func canStackOnFoundation(run []*deck.Card, target *deck.Card) bool {
	if len(run) != 1 {
		return false
	}
	card := run[0]
	return card.Rank == target.Rank+1 && card.Suit == target.Suit
}

// canStackOnEmpty reports whether run may be placed on an empty pile of kind k.
// Foundations never present an empty base because they keep their base card.
// An emptied deck or waste takes nothing: only tableau columns accept a King.
func canStackOnEmpty(k Kind, run []*deck.Card) bool {
	return k == KindTableau && len(run) > 0 && run[0].Rank == deck.King
}
