package protocol

import (
	"github.com/matthewfinger/solitaire-lightweight/game"
)

// InboundMessage is a message from a client to a GameEngine.
// X and Y are only read for pointer commands. Tap names a pile and a card
// index instead, the top card when Index is nil and the base at -1.
type InboundMessage struct {
	Command Cmd    `json:"command"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Pile    string `json:"pile,omitempty"`
	Index   *int   `json:"index,omitempty"`
}

// Point returns the pointer position carried by the message
func (m InboundMessage) Point() game.Point {
	return game.Point{X: m.X, Y: m.Y}
}

// EventMessage is a game event with the feedback cue a client should play
type EventMessage struct {
	Kind string `json:"kind"`
	Cue  string `json:"cue,omitempty"`
}

// OutboundMessage is a message from a GameEngine to a client
type OutboundMessage struct {
	GameID  string         `json:"game_id"`
	Command Cmd            `json:"command"`
	Outcome string         `json:"outcome,omitempty"`
	Events  []EventMessage `json:"events,omitempty"`
	Table   *game.Snapshot `json:"table,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// NewEventMessages converts game events for the wire
func NewEventMessages(events []game.Event) []EventMessage {
	msgs := []EventMessage{}
	for _, e := range events {
		msgs = append(msgs, EventMessage{Kind: e.Kind.String(), Cue: e.Cue().String()})
	}
	return msgs
}
