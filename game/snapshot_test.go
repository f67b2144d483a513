package game

import (
	"encoding/json"
	"testing"

	"github.com/matthewfinger/solitaire-lightweight/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Run("hides face-down cards", func(t *testing.T) {
		s := seededGame(4)
		snap := s.Snapshot()

		require.Len(t, snap.Piles, 13)
		assert.Equal(t, "Idle", snap.State)
		assert.Equal(t, 600, snap.Width)

		t7 := snap.Piles[8]
		assert.Equal(t, "t7", t7.Name)
		assert.Equal(t, "Tableau", t7.Kind)
		assert.Equal(t, 7, t7.Column)
		assert.Equal(t, 7*66+5, t7.X)
		assert.Equal(t, 0, t7.First)
		require.Len(t, t7.Cards, 7)
		for i, c := range t7.Cards[:6] {
			assert.Equal(t, CardView{Key: BackKey, Label: BackKey}, c, "card %d", i)
		}
		assert.Equal(t, s.Tableau[6].Top().Key(), t7.Cards[6].Key)
		assert.True(t, t7.Cards[6].FaceUp)

		t.Log("The stock order stays secret on the wire")
		b, err := json.Marshal(snap.Piles[0])
		require.NoError(t, err)
		for _, c := range s.Deck.Cards {
			assert.NotContains(t, string(b), `"label":"`+c.Short()+`"`)
		}
		assert.NotContains(t, string(b), `"suit":"`)
	})

	t.Run("shows the held run and the waste window", func(t *testing.T) {
		s := emptyGame()
		s.Waste.Push(up(deck.Two, deck.Clubs), up(deck.Three, deck.Clubs), up(deck.Four, deck.Clubs), up(deck.Five, deck.Clubs))

		waste := func() PileView {
			for _, p := range s.Snapshot().Piles {
				if p.Name == "waste" {
					return p
				}
			}
			t.Fatal("no waste")
			return PileView{}
		}

		assert.Equal(t, 1, waste().First)

		require.Equal(t, OutcomePickedUp, clickTop(t, s, s.Waste))
		snap := s.Snapshot()
		assert.Equal(t, "Holding", snap.State)
		require.Len(t, snap.Held, 1)
		assert.Equal(t, "5C", snap.Held[0].Key)
		assert.Equal(t, "waste", snap.Hover)

		t.Log("While the top is held the waste keeps its window in place")
		assert.Equal(t, 1, waste().First)
	})

	t.Run("encodes to JSON", func(t *testing.T) {
		s := seededGame(4)
		b, err := json.Marshal(s.Snapshot())
		require.NoError(t, err)
		assert.Contains(t, string(b), `"name":"deck"`)
		assert.Contains(t, string(b), `"drag_mode":false`)
	})
}
