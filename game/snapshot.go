package game

import "github.com/matthewfinger/solitaire-lightweight/deck"

// BackKey is the key and label of every face-down card view
const BackKey = "back"

// CardView is a read-only view of a card for renderers
type CardView struct {
	Rank   int    `json:"rank"`
	Suit   string `json:"suit"`
	Color  string `json:"color"`
	FaceUp bool   `json:"face_up"`
	Key    string `json:"key"`
	Label  string `json:"label"`
}

// PileView is a read-only view of a pile, enough to draw it as an overlapping vertical stack.
// Cards from index First onwards are drawn.
type PileView struct {
	Name    string     `json:"name"`
	Kind    string     `json:"kind"`
	Column  int        `json:"column"`
	X       int        `json:"x"`
	Y       int        `json:"y"`
	Spacing int        `json:"spacing"`
	First   int        `json:"first"`
	Cards   []CardView `json:"cards"`
}

// Snapshot is everything an observer needs to draw the table
type Snapshot struct {
	State    string     `json:"state"`
	Piles    []PileView `json:"piles"`
	Held     []CardView `json:"held"`
	Cursor   Point      `json:"cursor"`
	Hover    string     `json:"hover,omitempty"`
	Score    int        `json:"score"`
	DragMode bool       `json:"drag_mode"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
}

// NewCardView builds the view of c. A face-down card shows only its back:
// no rank, suit or color.
func NewCardView(c *deck.Card) CardView {
	if !c.FaceUp {
		return CardView{Key: BackKey, Label: BackKey}
	}
	return CardView{
		Rank:   int(c.Rank),
		Suit:   c.Suit.Name,
		Color:  c.Color().String(),
		FaceUp: true,
		Key:    c.Key(),
		Label:  c.Short(),
	}
}

func cardViews(cards []*deck.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, NewCardView(c))
	}
	return views
}

// Snapshot captures the current table
func (s *Solitaire) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.State().String(),
		Held:     cardViews(s.selection.Cards),
		Cursor:   s.cursor,
		Score:    s.score,
		DragMode: s.dragMode,
		Width:    s.layout.Width,
		Height:   s.layout.Height,
	}
	if s.hover.Found() {
		snap.Hover = s.hover.Pile.Name
	}

	for _, p := range s.Piles() {
		snap.Piles = append(snap.Piles, PileView{
			Name:    p.Name,
			Kind:    p.Kind.String(),
			Column:  p.Column,
			X:       s.layout.ColumnX(p.Column),
			Y:       p.Y,
			Spacing: s.layout.EffectiveSpacing(p),
			First:   s.firstVisible(p),
			Cards:   cardViews(p.Cards),
		})
	}

	return snap
}

// firstVisible returns the index of the first drawn card of p.
// While the waste's top card is held and the waste still shows a full
// window, the window shrinks by one so the remaining cards stay put.
func (s *Solitaire) firstVisible(p *Pile) int {
	n := s.layout.VisibleCount(p)
	if p.MaxVisible > 0 && p.Size() >= p.MaxVisible && s.selection.Origin == p {
		n--
	}
	return p.Size() - n
}
