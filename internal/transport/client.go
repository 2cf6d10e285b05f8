package transport

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mahir817/Paint-it/internal/game"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 54 * time.Second
	sendBuffer   = 256
)

// Client is one websocket connection bound to a named player in a room.
type Client struct {
	Handle string
	Name   string
	RoomID string

	conn   *websocket.Conn
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewClient(handle, name, roomID string, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		Handle: handle,
		Name:   name,
		RoomID: roomID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// cleanup cancels the context and closes the connection. The send channel is
// never closed: the hub may still be enqueueing from another goroutine, and
// WritePump exits on the context instead.
func (c *Client) cleanup() {
	c.once.Do(func() {
		c.cancel()
		c.conn.Close()
	})
}

// ReadPump consumes inbound messages and dispatches them to the coordinator
// until the connection drops.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		c.cleanup()
		h.Drop(c)
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			_, raw, err := c.conn.ReadMessage()
			if err != nil {
				log.Debug().Str("player", c.Name).Str("room", c.RoomID).Err(err).Msg("read closed")
				return
			}

			var msg Message
			if err := json.Unmarshal(raw, &msg); err != nil {
				log.Debug().Str("player", c.Name).Err(err).Msg("invalid message envelope")
				continue
			}
			c.dispatch(h, msg)
		}
	}
}

func (c *Client) dispatch(h *Hub, msg Message) {
	switch msg.Type {
	case msgStartGame:
		var p startGamePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return
		}
		if err := h.coord.StartGame(c.RoomID, c.Handle, p.Category, p.MaxRounds); err != nil {
			c.sendError(err)
		}

	case msgGuess:
		var p guessPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return
		}
		res, err := h.coord.SubmitGuess(c.RoomID, c.Name, p.Guess)
		if err != nil {
			c.sendError(err)
			return
		}
		// A plain wrong guess is ordinary chat for everyone to see.
		if !res.Correct && !res.Censored {
			h.ToRoom(c.RoomID, game.EventChatMessage, game.ChatPayload{From: c.Name, Message: p.Guess})
		}

	case msgChat:
		var p chatPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return
		}
		if _, err := h.coord.SubmitChat(c.RoomID, c.Handle, p.Message); err != nil {
			c.sendError(err)
		}

	case msgRequestState:
		snap, err := h.coord.RequestState(c.RoomID)
		if err != nil {
			c.sendError(err)
			return
		}
		h.ToPlayer(c.Handle, "game_state", snap)

	default:
		log.Debug().Str("player", c.Name).Str("type", msg.Type).Msg("unknown message type")
	}
}

func (c *Client) sendError(err error) {
	data, merr := json.Marshal(errorPayload{Message: err.Error()})
	if merr != nil {
		return
	}
	raw, merr := json.Marshal(Message{Type: "error", Data: data})
	if merr != nil {
		return
	}
	c.enqueue(raw)
}

func (c *Client) enqueue(raw []byte) {
	select {
	case <-c.ctx.Done():
	case c.send <- raw:
	default:
		// Channel full, client is stalled; drop rather than block the room.
	}
}

// WritePump flushes queued messages and keeps the connection alive with
// pings. Runs on the connection's own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.cleanup()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return

		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug().Str("player", c.Name).Err(err).Msg("write failed")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
