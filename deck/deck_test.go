package deck

import (
	"fmt"
	"math/rand"
	"testing"

	utils "github.com/matthewfinger/solitaire-lightweight/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullDeckCount = 52

func TestDeck(t *testing.T) {
	t.Run("New builds 52 unique face-down cards", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, len(d), fullDeckCount)

		seen := map[string]bool{}
		for _, c := range d {
			assert.False(t, c.FaceUp, c.String())
			assert.False(t, seen[c.Key()], "duplicate %s", c)
			seen[c.Key()] = true
		}
	})

	t.Run("Shuffle keeps the same cards", func(t *testing.T) {
		d := New()
		before := map[*Card]bool{}
		for _, c := range d {
			before[c] = true
		}

		d.Shuffle(rand.New(rand.NewSource(7)))

		require.Len(t, d, fullDeckCount)
		for _, c := range d {
			assert.True(t, before[c])
		}
	})

	t.Run("Deal takes from the top", func(t *testing.T) {
		d := New()
		top := d[len(d)-3:]
		want := []*Card{top[0], top[1], top[2]}

		dealt := d.Deal(3)

		utils.AssertDeepEqual(t, dealt, want)
		utils.AssertEqual(t, len(d), fullDeckCount-3)
	})

	t.Run("Deal rejects impossible counts", func(t *testing.T) {
		d := New()
		assert.Empty(t, d.Deal(-1))
		assert.Empty(t, d.Deal(fullDeckCount+1))
		utils.AssertEqual(t, len(d), fullDeckCount)
	})
}

func TestShuffleFairness(t *testing.T) {
	t.Run("every permutation of a small deck is equally likely", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		small := New()[:4]
		index := map[*Card]int{}
		for i, c := range small {
			index[c] = i
		}

		const trials = 24000
		counts := map[string]int{}
		for i := 0; i < trials; i++ {
			d := Deck{small[0], small[1], small[2], small[3]}
			d.Shuffle(r)
			key := ""
			for _, c := range d {
				key += fmt.Sprint(index[c])
			}
			counts[key]++
		}

		require.Len(t, counts, 24, "all 4! permutations should appear")
		for perm, n := range counts {
			assert.InDelta(t, trials/24, n, 250, "permutation %s", perm)
		}
	})

	t.Run("each card is equally likely at the ends of a full deck", func(t *testing.T) {
		r := rand.New(rand.NewSource(99))
		base := New()

		const trials = 26000
		first := map[*Card]int{}
		last := map[*Card]int{}
		for i := 0; i < trials; i++ {
			d := make(Deck, len(base))
			copy(d, base)
			d.Shuffle(r)
			first[d[0]]++
			last[d[len(d)-1]]++
		}

		for _, c := range base {
			assert.InDelta(t, trials/fullDeckCount, first[c], 150, "%s at bottom", c)
			assert.InDelta(t, trials/fullDeckCount, last[c], 150, "%s at top", c)
		}
	})
}
