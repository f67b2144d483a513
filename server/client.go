package server

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matthewfinger/solitaire-lightweight/engine"
	"github.com/matthewfinger/solitaire-lightweight/protocol"
	"k8s.io/klog/v2"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// client is one websocket connection to a game
type client struct {
	conn   *websocket.Conn
	game   engine.GameEngine
	sendCh chan []byte
	ctx    context.Context
	cancel context.CancelFunc
}

func newClient(ctx context.Context, conn *websocket.Conn, ge engine.GameEngine) *client {
	c := &client{
		conn:   conn,
		game:   ge,
		sendCh: make(chan []byte, 8),
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	return c
}

// send queues msg for the write pump
func (c *client) send(msg protocol.OutboundMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		klog.Errorf("game %s: could not encode message: %v", c.game.ID(), err)
		return
	}

	select {
	case c.sendCh <- data:
	case <-c.ctx.Done():
	}
}

func (c *client) sendError(err error) {
	c.send(protocol.OutboundMessage{
		GameID:  c.game.ID(),
		Command: protocol.Error,
		Error:   err.Error(),
	})
}

// readPump forwards messages from the connection to the game engine
// and queues the replies
func (c *client) readPump() {
	defer func() {
		c.cancel()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				klog.Errorf("game %s: ws read: %v", c.game.ID(), err)
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError(err)
			continue
		}

		out, err := c.game.Receive(c.ctx, msg)
		if err != nil {
			c.sendError(err)
			if errors.Is(err, engine.ErrSessionClosed) || c.ctx.Err() != nil {
				return
			}
			continue
		}

		c.send(out)
	}
}

// writePump writes queued messages and keeps the connection alive with pings.
// It closes the connection when the client or its game finishes.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.sendCh:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(msg)
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.game.Done():
			c.close("game session ended")
			return

		case <-c.ctx.Done():
			c.close("")
			return
		}
	}
}

func (c *client) close(reason string) {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
}
