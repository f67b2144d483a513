package game

import (
	"testing"

	"github.com/matthewfinger/solitaire-lightweight/deck"
	utils "github.com/matthewfinger/solitaire-lightweight/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	utils.AssertEqual(t, l.ColWidth, 66)
	utils.AssertEqual(t, l.CardWidth, 56)
	utils.AssertEqual(t, l.CardHeight, 85)
	utils.AssertEqual(t, l.Columns, 9)
}

func TestLayoutColumn(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		x    int
		want int
	}{
		{-1, -1},
		{0, -1},
		{5, -1},
		{6, 0},
		{60, 0},
		{61, -1},
		{66, -1},
		{72, 1},
		{561, 8},
		{593, -1},
		{595, -1},
		{600, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Column(tt.x), "x=%d", tt.x)
	}
}

func TestEffectiveSpacing(t *testing.T) {
	l := DefaultLayout()

	t.Run("short piles keep their spacing", func(t *testing.T) {
		p := NewPile("t1", KindTableau, nil)
		for i := 0; i < 5; i++ {
			p.Push(down(deck.Two, deck.Clubs))
		}
		utils.AssertEqual(t, l.EffectiveSpacing(p), 20)
		utils.AssertEqual(t, l.RenderedHeight(p), 85+4*20)
	})

	t.Run("long piles squeeze to fit", func(t *testing.T) {
		p := NewPile("t1", KindTableau, nil)
		for i := 0; i < 20; i++ {
			p.Push(down(deck.Two, deck.Clubs))
		}
		spacing := l.EffectiveSpacing(p)
		utils.AssertEqual(t, spacing, (440-85)/19)
		utils.AssertTrue(t, l.RenderedHeight(p) <= l.Height-40)
		utils.AssertEqual(t, p.Spacing, 20)
	})

	t.Run("the waste only spaces its visible window", func(t *testing.T) {
		p := NewPile("waste", KindWaste, nil)
		for i := 0; i < 10; i++ {
			p.Push(up(deck.Two, deck.Clubs))
		}
		utils.AssertEqual(t, l.VisibleCount(p), 3)
		utils.AssertEqual(t, l.RenderedHeight(p), 85+40)
	})

	t.Run("an empty pile occupies one card", func(t *testing.T) {
		utils.AssertEqual(t, l.RenderedHeight(NewPile("t1", KindTableau, nil)), 85)
	})
}

func TestResolve(t *testing.T) {
	t.Run("a point in a gutter hits nothing", func(t *testing.T) {
		s := seededGame(1)
		target := s.Layout().Resolve(s.Columns(), Point{X: 64, Y: 20})
		assert.False(t, target.Found())
		assert.Equal(t, -1, target.Column)
	})

	t.Run("the waste clamps to its visible window", func(t *testing.T) {
		s := emptyGame()
		for r := deck.Ace; r <= deck.Ten; r++ {
			s.Waste.Push(up(r, deck.Hearts))
		}
		l := s.Layout()

		top := l.Resolve(s.Columns(), Point{X: 33, Y: s.Waste.Y + 100})
		require.True(t, top.Found())
		assert.Same(t, s.Waste, top.Pile)
		assert.Equal(t, 9, top.Index)
		assert.Equal(t, 1, top.Slot)

		first := l.Resolve(s.Columns(), Point{X: 33, Y: s.Waste.Y + 1})
		assert.Equal(t, 7, first.Index)

		below := l.Resolve(s.Columns(), Point{X: 33, Y: s.Waste.Y + l.RenderedHeight(s.Waste) + 1})
		assert.False(t, below.Found())
	})

	t.Run("an empty pile resolves to its base", func(t *testing.T) {
		s := emptyGame()
		l := s.Layout()

		target := l.Resolve(s.Columns(), Point{X: 33, Y: 20})
		assert.Same(t, s.Deck, target.Pile)
		assert.True(t, target.IsBase())
		assert.Equal(t, -1, target.Index)

		target = l.Resolve(s.Columns(), Point{X: 99, Y: 20})
		assert.Same(t, s.Tableau[0], target.Pile)
		assert.True(t, target.IsBase())

		target = l.Resolve(s.Columns(), Point{X: 99, Y: 10 + l.CardHeight + 1})
		assert.False(t, target.Found())
	})

	t.Run("foundations resolve to their top card", func(t *testing.T) {
		s := emptyGame()
		l := s.Layout()
		f := s.Foundations[2]
		f.Push(up(deck.Ace, deck.Clubs), up(deck.Two, deck.Clubs))

		target := l.Resolve(s.Columns(), Point{X: 561, Y: f.Y + 5})
		assert.Same(t, f, target.Pile)
		assert.Equal(t, 2, target.Index)
		assert.Equal(t, 2, target.Slot)
		assert.Equal(t, "2C", target.Card.Key())
	})

	t.Run("off the table hits nothing", func(t *testing.T) {
		s := seededGame(1)
		l := s.Layout()
		assert.False(t, l.Resolve(s.Columns(), Point{X: 99, Y: -5}).Found())
		assert.False(t, l.Resolve(s.Columns(), Point{X: 99, Y: l.Height}).Found())
		assert.False(t, l.Resolve(s.Columns(), Point{X: l.Width + 10, Y: 20}).Found())
	})
}

func TestLocateResolvesBack(t *testing.T) {
	s := seededGame(17)
	for i := 0; i < 4; i++ {
		s.Draw()
	}
	l := s.Layout()

	for _, p := range s.Piles() {
		for i := -1; i < p.Size(); i++ {
			pt, ok := s.Locate(p, i)
			if !ok {
				continue
			}
			target := l.Resolve(s.Columns(), pt)
			require.True(t, target.Found(), "%s[%d] at %+v", p.Name, i, pt)
			assert.Same(t, p, target.Pile, "%s[%d]", p.Name, i)
			assert.Equal(t, i, target.Index, "%s[%d]", p.Name, i)
		}

		if !p.Empty() {
			_, ok := s.Locate(p, p.Size()-1)
			assert.True(t, ok, "top of %s", p.Name)
		}
	}

	for _, p := range s.Tableau {
		for i := range p.Cards {
			_, ok := s.Locate(p, i)
			assert.True(t, ok, "%s[%d]", p.Name, i)
		}
	}
}
