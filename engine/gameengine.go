package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/matthewfinger/solitaire-lightweight/deck"
	"github.com/matthewfinger/solitaire-lightweight/game"
	"github.com/matthewfinger/solitaire-lightweight/protocol"
	"k8s.io/klog/v2"
)

var (
	ErrNoGameID         = errors.New("game ID required")
	ErrSessionClosed    = errors.New("game session has closed")
	ErrFnUnknownCommand = func(cmd protocol.Cmd) error {
		return fmt.Errorf("command %d is not accepted", int(cmd))
	}
	ErrFnUnknownPile = func(name string) error {
		return fmt.Errorf("unknown pile \"%s\"", name)
	}
	ErrFnHiddenCard = func(name string, index int) error {
		return fmt.Errorf("card %d of %s cannot be clicked", index, name)
	}
)

// GameEngine runs one game of solitaire.
// Every message is handled in turn by the Listen loop.
type GameEngine interface {
	ID() string
	Listen(ctx context.Context)
	Receive(ctx context.Context, msg protocol.InboundMessage) (protocol.OutboundMessage, error)
	Close()
	Done() <-chan struct{}
}

// GameEngineOpts configures a GameEngine.
// A zero Seed seeds from the clock. A zero IdleTimeout never times out.
// Deck, if given, is dealt for the first game only.
type GameEngineOpts struct {
	GameID      string
	Seed        int64
	Layout      game.Layout
	DragMode    bool
	IdleTimeout time.Duration
	Deck        deck.Deck
}

type request struct {
	msg     protocol.InboundMessage
	replyCh chan protocol.OutboundMessage
}

type gameEngine struct {
	id        string
	opts      GameEngineOpts
	rand      *rand.Rand
	game      *game.Solitaire
	events    []game.Event
	inboundCh chan request
	stopCh    chan struct{}
	stopOnce  sync.Once
	doneCh    chan struct{}
}

// NewGameEngine constructs a GameEngine and deals the first game.
// Listen must be running before Receive is called.
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.GameID == "" {
		return nil, ErrNoGameID
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ge := &gameEngine{
		id:        opts.GameID,
		opts:      opts,
		rand:      rand.New(rand.NewSource(seed)),
		inboundCh: make(chan request),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	ge.deal(opts.Deck)

	return ge, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

// Close stops Listen. It is safe to call more than once.
func (ge *gameEngine) Close() {
	ge.stopOnce.Do(func() { close(ge.stopCh) })
}

// Done is closed once Listen has returned
func (ge *gameEngine) Done() <-chan struct{} {
	return ge.doneCh
}

func (ge *gameEngine) deal(d deck.Deck) {
	ge.game = game.New(game.Options{
		Deck:     d,
		Rand:     ge.rand,
		Layout:   ge.opts.Layout,
		DragMode: ge.opts.DragMode,
	})
	ge.game.Subscribe(func(e game.Event) {
		ge.events = append(ge.events, e)
	})
	ge.events = append(ge.events, game.Event{Kind: game.EventDeal})
	klog.V(1).Infof("game %s: dealt a new table", ge.id)
}

// Receive hands msg to the Listen loop and waits for the reply
func (ge *gameEngine) Receive(ctx context.Context, msg protocol.InboundMessage) (protocol.OutboundMessage, error) {
	req := request{msg: msg, replyCh: make(chan protocol.OutboundMessage, 1)}

	select {
	case ge.inboundCh <- req:
	case <-ge.doneCh:
		return protocol.OutboundMessage{}, ErrSessionClosed
	case <-ctx.Done():
		return protocol.OutboundMessage{}, ctx.Err()
	}

	select {
	case out := <-req.replyCh:
		return out, nil
	case <-ctx.Done():
		return protocol.OutboundMessage{}, ctx.Err()
	}
}

// Listen handles inbound messages until ctx is cancelled or the session
// has been idle for longer than the idle timeout
func (ge *gameEngine) Listen(ctx context.Context) {
	defer close(ge.doneCh)

	var idle *time.Timer
	var idleCh <-chan time.Time
	if ge.opts.IdleTimeout > 0 {
		idle = time.NewTimer(ge.opts.IdleTimeout)
		defer idle.Stop()
		idleCh = idle.C
	}

	for {
		select {
		case <-ctx.Done():
			klog.V(1).Infof("game %s: stopping: %v", ge.id, ctx.Err())
			return

		case <-ge.stopCh:
			klog.V(1).Infof("game %s: closed", ge.id)
			return

		case <-idleCh:
			klog.Infof("game %s: idle for %s, closing", ge.id, ge.opts.IdleTimeout)
			return

		case req := <-ge.inboundCh:
			req.replyCh <- ge.handle(req.msg)
			if idle != nil {
				idle.Reset(ge.opts.IdleTimeout)
			}
		}
	}
}

func (ge *gameEngine) handle(msg protocol.InboundMessage) protocol.OutboundMessage {
	out := protocol.OutboundMessage{GameID: ge.id, Command: msg.Command}

	switch msg.Command {
	case protocol.PointerMove:
		ge.game.PointerMove(msg.Point())

	case protocol.PointerDown:
		out.Outcome = ge.game.PointerDown(msg.Point()).String()

	case protocol.Tap:
		outcome, err := ge.tap(msg)
		if err != nil {
			return ge.errorMessage(err)
		}
		out.Outcome = outcome.String()

	case protocol.Draw:
		out.Outcome = ge.game.Draw().String()

	case protocol.State:

	case protocol.NewGame:
		ge.deal(nil)
		out.Command = protocol.Deal

	default:
		return ge.errorMessage(ErrFnUnknownCommand(msg.Command))
	}

	if out.Outcome != "" {
		klog.V(2).Infof("game %s: %s -> %s", ge.id, msg.Command, out.Outcome)
	}

	out.Events = protocol.NewEventMessages(ge.events)
	ge.events = nil
	table := ge.game.Snapshot()
	out.Table = &table

	return out
}

// tap clicks the card at index of the named pile, as a pointer would
func (ge *gameEngine) tap(msg protocol.InboundMessage) (game.Outcome, error) {
	p, ok := ge.game.PileByName(msg.Pile)
	if !ok {
		return game.OutcomeNoTarget, ErrFnUnknownPile(msg.Pile)
	}

	index := p.Size() - 1
	if msg.Index != nil {
		index = *msg.Index
	}

	pt, ok := ge.game.Locate(p, index)
	if !ok {
		return game.OutcomeNoTarget, ErrFnHiddenCard(p.Name, index)
	}

	return ge.game.PointerDown(pt), nil
}

func (ge *gameEngine) errorMessage(err error) protocol.OutboundMessage {
	klog.V(1).Infof("game %s: %v", ge.id, err)
	return protocol.OutboundMessage{
		GameID:  ge.id,
		Command: protocol.Error,
		Error:   err.Error(),
	}
}
