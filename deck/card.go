package deck

import "fmt"

// Color is the color of a suit
type Color int

const (
	Red Color = iota
	Black
)

var colorNames = []string{"red", "black"}

func (c Color) String() string {
	return colorNames[c]
}

// Suit is one of the four fixed suits.
// Suits are shared by reference and compared by identity.
type Suit struct {
	Name   string
	Color  Color
	Symbol string // image key, e.g. "H" for 13H
	Glyph  string
}

var (
	Hearts   = &Suit{Name: "Hearts", Color: Red, Symbol: "H", Glyph: "♥"}
	Diamonds = &Suit{Name: "Diamonds", Color: Red, Symbol: "D", Glyph: "♦"}
	Clubs    = &Suit{Name: "Clubs", Color: Black, Symbol: "C", Glyph: "♣"}
	Spades   = &Suit{Name: "Spades", Color: Black, Symbol: "S", Glyph: "♠"}
)

// Suits lists the suits in foundation order
var Suits = []*Suit{Hearts, Diamonds, Clubs, Spades}

// Rank is a card rank. Base is the foundation placeholder.
type Rank int

var rankNames = []string{"Base", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}
var rankShort = []string{"_", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const (
	Base Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// Card is a playing card. Identity is the pointer: cards are created
// once per game and only move between piles.
type Card struct {
	Suit   *Suit
	Rank   Rank
	FaceUp bool
}

// NewCard constructs a face-down card. It panics on an invalid rank or nil suit.
func NewCard(rank Rank, suit *Suit) *Card {
	if rank < Ace || rank > King || suit == nil {
		panic(fmt.Sprintf("invalid card: rank %d, suit %v", rank, suit))
	}
	return &Card{Suit: suit, Rank: rank}
}

// NewBaseCard constructs the face-up placeholder that sits at the bottom of a foundation
func NewBaseCard(suit *Suit) *Card {
	if suit == nil {
		panic("invalid base card: nil suit")
	}
	return &Card{Suit: suit, Rank: Base, FaceUp: true}
}

// Color returns the color of the card's suit
func (c *Card) Color() Color {
	return c.Suit.Color
}

// IsBase reports whether c is a foundation placeholder
func (c *Card) IsBase() bool {
	return c.Rank == Base
}

// Flip turns the card over
func (c *Card) Flip() {
	c.FaceUp = !c.FaceUp
}

// Key returns the image key of the face, e.g. "13S" for the King of Spades
func (c *Card) Key() string {
	return fmt.Sprintf("%d%s", c.Rank, c.Suit.Symbol)
}

// Short returns a compact label such as "K♠"
func (c *Card) Short() string {
	return rankShort[c.Rank] + c.Suit.Glyph
}

func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", rankNames[c.Rank], c.Suit.Name)
}
