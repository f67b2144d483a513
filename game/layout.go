package game

import "github.com/matthewfinger/solitaire-lightweight/deck"

const (
	numColumns    = 9
	cardAspect    = 1.52821
	columnMargin  = 5
	bottomPadding = 40
)

// Point is a pointer position in table coordinates
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Layout holds the table geometry used for hit-testing.
// Columns are fixed-width bands laid out left to right.
type Layout struct {
	Width      int
	Height     int
	Columns    int
	ColWidth   int
	CardWidth  int
	CardHeight int
	Margin     int
}

// NewLayout derives the card and column sizes from the table size
func NewLayout(width, height int) Layout {
	cardWidth := width/numColumns - 10
	return Layout{
		Width:      width,
		Height:     height,
		Columns:    numColumns,
		ColWidth:   width / numColumns,
		CardWidth:  cardWidth,
		CardHeight: int(float64(cardWidth) * cardAspect),
		Margin:     columnMargin,
	}
}

// DefaultLayout is the 600x480 table
func DefaultLayout() Layout {
	return NewLayout(600, 480)
}

// Target is what a pointer position resolves to.
// A found target with a nil Card is the empty base of Pile.
type Target struct {
	Pile   *Pile
	Card   *deck.Card
	Column int
	Slot   int
	Index  int
}

var noTarget = Target{Column: -1, Slot: -1, Index: -1}

// Found reports whether the point landed on a pile
func (t Target) Found() bool {
	return t.Pile != nil
}

// IsBase reports whether the point landed on an empty pile's base
func (t Target) IsBase() bool {
	return t.Pile != nil && t.Card == nil
}

// VisibleCount returns how many cards of p are drawn
func (l Layout) VisibleCount(p *Pile) int {
	if p.MaxVisible > 0 && p.Size() > p.MaxVisible {
		return p.MaxVisible
	}
	return p.Size()
}

// EffectiveSpacing returns the vertical offset between stacked cards of p,
// shrunk so the pile fits above the bottom padding.
func (l Layout) EffectiveSpacing(p *Pile) int {
	n := l.VisibleCount(p) - 1
	if n <= 0 || p.Spacing <= 0 {
		return p.Spacing
	}
	limit := l.Height - bottomPadding
	if l.CardHeight+p.Spacing*n <= limit {
		return p.Spacing
	}
	spacing := (limit - l.CardHeight) / n
	if spacing < 0 {
		return 0
	}
	return spacing
}

// RenderedHeight returns the drawn height of p. An empty pile occupies one card slot.
func (l Layout) RenderedHeight(p *Pile) int {
	n := l.VisibleCount(p)
	if n == 0 {
		return l.CardHeight
	}
	return l.CardHeight + l.EffectiveSpacing(p)*(n-1)
}

// Column returns the column band containing x, or -1 for gutters and
// points off the table.
func (l Layout) Column(x int) int {
	if x < 0 || x >= l.Width || l.ColWidth <= 0 {
		return -1
	}
	col := x / l.ColWidth
	if col >= l.Columns {
		return -1
	}
	offset := x % l.ColWidth
	if offset <= l.Margin || offset >= l.ColWidth-l.Margin {
		return -1
	}
	return col
}

// ColumnX returns the left edge of the cards drawn in col
func (l Layout) ColumnX(col int) int {
	return col*l.ColWidth + l.Margin
}

// Resolve maps a pointer position to the card or empty base under it.
// columns lists the piles of each column band, top to bottom.
func (l Layout) Resolve(columns [][]*Pile, pt Point) Target {
	if pt.Y < 0 || pt.Y >= l.Height {
		return noTarget
	}
	col := l.Column(pt.X)
	if col < 0 || col >= len(columns) {
		return noTarget
	}

	for slot, p := range columns[col] {
		if p.Empty() {
			continue
		}
		if pt.Y < p.Y || pt.Y > p.Y+l.RenderedHeight(p) {
			continue
		}
		idx := l.cardIndex(p, pt.Y-p.Y)
		return Target{Pile: p, Card: p.Cards[idx], Column: col, Slot: slot, Index: idx}
	}

	for slot, p := range columns[col] {
		if !p.Empty() {
			continue
		}
		if pt.Y >= p.Y && pt.Y <= p.Y+l.CardHeight {
			return Target{Pile: p, Column: col, Slot: slot, Index: -1}
		}
	}

	return noTarget
}

// cardIndex converts a vertical offset into p into a card index.
// Only the visible window of the pile can be addressed.
func (l Layout) cardIndex(p *Pile, dy int) int {
	visible := l.VisibleCount(p)
	idx := visible - 1
	if spacing := l.EffectiveSpacing(p); spacing > 0 && dy/spacing < idx {
		idx = dy / spacing
	}
	return p.Size() - visible + idx
}

// Locate returns a point that resolves to card index of p in column col.
// index -1 addresses the base of an empty pile. It reports false for cards
// that are not exposed.
func (l Layout) Locate(p *Pile, col, index int) (Point, bool) {
	x := col*l.ColWidth + l.ColWidth/2
	if index < 0 {
		if !p.Empty() {
			return Point{}, false
		}
		return Point{X: x, Y: p.Y + l.CardHeight/2}, true
	}
	if index >= p.Size() {
		return Point{}, false
	}

	visible := l.VisibleCount(p)
	pos := index - (p.Size() - visible)
	if pos < 0 {
		return Point{}, false
	}

	spacing := l.EffectiveSpacing(p)
	if pos == visible-1 {
		return Point{X: x, Y: p.Y + spacing*pos + l.CardHeight/2}, true
	}
	if spacing <= 0 {
		// buried under the top card
		return Point{}, false
	}
	return Point{X: x, Y: p.Y + spacing*pos + spacing/2}, true
}
