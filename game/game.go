package game

import (
	"fmt"
	"math/rand"

	"github.com/matthewfinger/solitaire-lightweight/deck"
)

const numTableau = 7

// Options configure a new game.
// A nil Deck means a fresh deck shuffled with Rand. A given Deck is dealt as is.
type Options struct {
	Deck     deck.Deck
	Rand     *rand.Rand
	Layout   Layout
	DragMode bool
}

// Solitaire is a game of Klondike driven by pointer events.
// It is not safe for concurrent use: exactly one event is handled at a time.
type Solitaire struct {
	Deck        *Pile
	Waste       *Pile
	Tableau     []*Pile
	Foundations []*Pile

	columns   [][]*Pile
	layout    Layout
	selection Selection
	cursor    Point
	hover     Target
	dragMode  bool
	score     int
	done      bool
	listeners []func(Event)
}

// New sets up a game: shuffle, deal seven columns, seed the foundations
func New(opts Options) *Solitaire {
	if opts.Layout.Width == 0 {
		opts.Layout = DefaultLayout()
	}

	cards := opts.Deck
	if cards == nil {
		cards = deck.New()
		cards.Shuffle(opts.Rand)
	}
	for _, c := range cards {
		c.FaceUp = false
	}

	s := &Solitaire{
		layout:   opts.Layout,
		dragMode: opts.DragMode,
		hover:    noTarget,
	}

	s.Deck = NewPile("deck", KindDeck, nil)
	s.Waste = NewPile("waste", KindWaste, nil)
	s.Waste.Y = 20 + s.layout.CardHeight
	s.columns = append(s.columns, []*Pile{s.Deck, s.Waste})

	for i := 1; i <= numTableau; i++ {
		col := NewPile(fmt.Sprintf("t%d", i), KindTableau, cards.Deal(i))
		if top := col.Top(); top != nil {
			top.FaceUp = true
		}
		col.Column = i
		s.Tableau = append(s.Tableau, col)
		s.columns = append(s.columns, []*Pile{col})
	}

	foundationCol := []*Pile{}
	for i, suit := range deck.Suits {
		f := NewFoundation(fmt.Sprintf("f%d", i+1), suit)
		f.Y = (s.layout.CardHeight+30)*i + 30
		f.Column = numTableau + 1
		s.Foundations = append(s.Foundations, f)
		foundationCol = append(foundationCol, f)
	}
	s.columns = append(s.columns, foundationCol)

	s.Deck.Push(cards...)

	return s
}

// Subscribe registers fn to be called for every event
func (s *Solitaire) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Solitaire) emit(kind EventKind) {
	e := Event{Kind: kind}
	for _, fn := range s.listeners {
		fn(e)
	}
}

// State returns Holding while cards are held, Idle otherwise
func (s *Solitaire) State() State {
	if s.selection.Holding() {
		return Holding
	}
	return Idle
}

// Selection returns a copy of the current selection
func (s *Solitaire) Selection() Selection {
	return Selection{
		Cards:  append([]*deck.Card(nil), s.selection.Cards...),
		Origin: s.selection.Origin,
	}
}

func (s *Solitaire) Layout() Layout {
	return s.layout
}

// Columns returns the piles of each column band
func (s *Solitaire) Columns() [][]*Pile {
	return s.columns
}

func (s *Solitaire) Cursor() Point {
	return s.cursor
}

// Hover returns the target under the cursor as of the last move or evaluation
func (s *Solitaire) Hover() Target {
	return s.hover
}

func (s *Solitaire) DragMode() bool {
	return s.dragMode
}

// SetDragMode turns drag mode on or off. Drag mode suppresses click handling.
func (s *Solitaire) SetDragMode(on bool) {
	s.dragMode = on
}

// Score is a placeholder counter of cards placed
func (s *Solitaire) Score() int {
	return s.score
}

// GameOver is a hook for win/loss detection, which is not implemented.
func (s *Solitaire) GameOver() bool {
	return s.done
}

// Piles returns every pile, column by column
func (s *Solitaire) Piles() []*Pile {
	ps := []*Pile{}
	for _, col := range s.columns {
		ps = append(ps, col...)
	}
	return ps
}

// PileByName finds a pile by name (deck, waste, t1..t7, f1..f4)
func (s *Solitaire) PileByName(name string) (*Pile, bool) {
	for _, p := range s.Piles() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Locate returns a pointer position over card index of p (-1 for an empty base)
func (s *Solitaire) Locate(p *Pile, index int) (Point, bool) {
	return s.layout.Locate(p, p.Column, index)
}

// Count returns the number of playing cards on the table, including held ones
func (s *Solitaire) Count() int {
	n := len(s.selection.Cards)
	for _, p := range s.Piles() {
		n += p.Count()
	}
	return n
}

// PointerMove records the cursor and recomputes the hovered target. It never mutates piles.
func (s *Solitaire) PointerMove(pt Point) {
	s.cursor = pt
	s.hover = s.layout.Resolve(s.columns, pt)
}

// PointerDown handles a click at pt and reports what happened
func (s *Solitaire) PointerDown(pt Point) Outcome {
	if s.dragMode {
		return OutcomeSuppressed
	}

	s.PointerMove(pt)
	target := s.hover

	var outcome Outcome
	switch {
	case !target.Found():
		outcome = OutcomeNoTarget
	case target.IsBase():
		outcome = s.onBase(target)
	case s.selection.Holding():
		outcome = s.onHolding(target)
	default:
		outcome = s.onIdle(target)
	}

	s.Evaluate()
	return outcome
}

func (s *Solitaire) onIdle(t Target) Outcome {
	p := t.Pile
	switch p.Kind {
	case KindDeck:
		return s.Draw()
	case KindWaste:
		if t.Card != p.Top() {
			return OutcomeRejected
		}
		return s.pickUp(p, 1)
	case KindTableau:
		if !t.Card.FaceUp {
			return OutcomeRejected
		}
		return s.pickUp(p, p.Size()-t.Index)
	case KindFoundation:
		if t.Card.IsBase() {
			return OutcomeRejected
		}
		return s.pickUp(p, 1)
	}
	return OutcomeRejected
}

func (s *Solitaire) onHolding(t Target) Outcome {
	origin := s.selection.Origin
	if t.Card == origin.Top() {
		return s.cancel()
	}

	p := t.Pile
	if t.Card != p.Top() || !t.Card.FaceUp {
		return OutcomeRejected
	}

	switch p.Kind {
	case KindTableau:
		if canStackOnTableau(s.selection.Bottom(), t.Card) {
			return s.place(p)
		}
	case KindFoundation:
		if canStackOnFoundation(s.selection.Cards, t.Card) {
			return s.place(p)
		}
	}
	return OutcomeRejected
}

func (s *Solitaire) onBase(t Target) Outcome {
	p := t.Pile
	if !s.selection.Holding() {
		if p.Kind == KindDeck {
			return s.Draw()
		}
		return OutcomeRejected
	}

	if p == s.selection.Origin {
		return s.cancel()
	}
	if canStackOnEmpty(p.Kind, s.selection.Cards) {
		return s.place(p)
	}
	return OutcomeRejected
}

func (s *Solitaire) pickUp(p *Pile, n int) Outcome {
	if n <= 0 || n > p.Size() || s.selection.Holding() {
		return OutcomeRejected
	}
	cards := p.PopTop(n)
	if !s.selection.Grab(cards, p) {
		p.Push(cards...)
		return OutcomeRejected
	}
	s.emit(EventPickUp)
	return OutcomePickedUp
}

func (s *Solitaire) place(p *Pile) Outcome {
	p.Push(s.selection.Drop()...)
	s.score++
	s.emit(EventDrop)
	return OutcomePlaced
}

func (s *Solitaire) cancel() Outcome {
	origin := s.selection.Origin
	origin.Push(s.selection.Drop()...)
	s.emit(EventCancel)
	return OutcomeCancelled
}

// Draw moves up to three cards from the deck to the waste, the last one drawn on top.
// With an empty deck it turns the waste back over into the deck so the next pass
// draws the same groups in the same order. Drawing while holding cards is rejected.
func (s *Solitaire) Draw() Outcome {
	if s.selection.Holding() {
		return OutcomeRejected
	}

	if n := min(wasteWindow, s.Deck.Size()); n > 0 {
		drawn := s.Deck.PopTop(n)
		reverseCards(drawn)
		for _, c := range drawn {
			c.FaceUp = true
		}
		s.Waste.Push(drawn...)
		s.emit(EventDraw)
		s.Evaluate()
		return OutcomeDrew
	}

	if s.Waste.Empty() {
		return OutcomeRejected
	}

	s.Waste.TurnAll(false)
	s.Deck.Push(s.Waste.PopTop(s.Waste.Size())...)
	s.Deck.Reverse()
	s.emit(EventRecycle)
	s.Evaluate()
	return OutcomeRecycled
}

// Evaluate turns up the exposed top card of every tableau column the
// player is not holding cards from, and refreshes the hovered target.
func (s *Solitaire) Evaluate() {
	s.hover = s.layout.Resolve(s.columns, s.cursor)

	for _, p := range s.Tableau {
		top := p.Top()
		if top == nil || top.FaceUp {
			continue
		}
		if s.selection.Origin == p {
			continue
		}
		top.FaceUp = true
	}
}
