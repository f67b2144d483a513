package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/matthewfinger/solitaire-lightweight/game"
	"github.com/matthewfinger/solitaire-lightweight/protocol"
)

const cardBack = "##"

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Renderer draws tables as text. It only reads snapshots.
type Renderer struct {
	out   io.Writer
	red   *color.Color
	black *color.Color
	back  *color.Color
	dim   *color.Color
	alert *color.Color
}

// NewRenderer returns a Renderer writing to out, with or without ANSI colors
func NewRenderer(out io.Writer, useColor bool) *Renderer {
	r := &Renderer{
		out:   out,
		red:   color.New(color.FgRed, color.Bold),
		black: color.New(color.FgHiWhite, color.Bold),
		back:  color.New(color.FgBlue),
		dim:   color.New(color.Faint),
		alert: color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{r.red, r.black, r.back, r.dim, r.alert} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

func (r *Renderer) Writer() io.Writer {
	return r.out
}

func (r *Renderer) card(c game.CardView) string {
	if !c.FaceUp {
		return r.back.Sprint(cardBack)
	}
	if c.Color == "red" {
		return r.red.Sprint(c.Label)
	}
	return r.black.Sprint(c.Label)
}

// pile renders the drawn cards of p with their indexes
func (r *Renderer) pile(p game.PileView) string {
	cards := []string{}
	for i := p.First; i < len(p.Cards); i++ {
		c := p.Cards[i]
		cards = append(cards, r.dim.Sprintf("%d:", i)+r.card(c))
	}
	if len(cards) == 0 {
		return r.dim.Sprint("--")
	}
	return strings.Join(cards, " ")
}

// Table writes the whole table
func (r *Renderer) Table(snap game.Snapshot) {
	foundations := []string{}
	for _, p := range snap.Piles {
		switch p.Kind {
		case game.KindDeck.String():
			SendText(r.out, "%-6s %s %s\n", p.Name, r.stock(p), r.dim.Sprintf("(%d)", len(p.Cards)))
		case game.KindWaste.String(), game.KindTableau.String():
			SendText(r.out, "%-6s %s\n", p.Name, r.pile(p))
		case game.KindFoundation.String():
			foundations = append(foundations, fmt.Sprintf("%s %s", p.Name, r.foundation(p)))
		}
	}
	SendText(r.out, "%s\n", strings.Join(foundations, "   "))

	if len(snap.Held) > 0 {
		held := []string{}
		for _, c := range snap.Held {
			held = append(held, r.card(c))
		}
		SendText(r.out, "holding %s\n", strings.Join(held, " "))
	}
	SendText(r.out, "%s\n", r.dim.Sprintf("cursor (%d,%d)  score %d", snap.Cursor.X, snap.Cursor.Y, snap.Score))
}

func (r *Renderer) stock(p game.PileView) string {
	if len(p.Cards) == 0 {
		return r.dim.Sprint("--")
	}
	return r.back.Sprint(cardBack)
}

func (r *Renderer) foundation(p game.PileView) string {
	if len(p.Cards) == 0 {
		return r.dim.Sprint("--")
	}
	top := p.Cards[len(p.Cards)-1]
	if top.Rank == 0 {
		return r.dim.Sprintf("[%s]", top.Label)
	}
	return r.card(top)
}

// Message writes an engine reply: its outcome, cues and table
func (r *Renderer) Message(msg protocol.OutboundMessage) {
	if msg.Error != "" {
		SendText(r.out, "%s\n", r.alert.Sprint("error: "+msg.Error))
		return
	}

	notes := []string{}
	if msg.Outcome != "" {
		notes = append(notes, msg.Outcome)
	}
	for _, e := range msg.Events {
		if e.Cue != "" {
			notes = append(notes, "*"+e.Cue+"*")
		}
	}
	if len(notes) > 0 {
		SendText(r.out, "%s\n", r.alert.Sprint(strings.Join(notes, " ")))
	}

	if msg.Table != nil {
		r.Table(*msg.Table)
	}
}
