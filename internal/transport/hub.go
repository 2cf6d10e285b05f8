package transport

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mahir817/Paint-it/internal/game"
)

// Hub tracks connected clients by room and implements game.Emitter for the
// outbound direction. The coordinator never blocks on it: stalled clients
// have their messages dropped.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[string]*Client // roomID -> handle -> client
	clients map[string]*Client            // handle -> client

	coord *game.Coordinator
}

func NewHub() *Hub {
	return &Hub{
		rooms:   make(map[string]map[string]*Client),
		clients: make(map[string]*Client),
	}
}

// BindCoordinator wires the coordinator after construction; the hub is the
// emitter the coordinator is built with, so the two reference each other.
func (h *Hub) BindCoordinator(c *game.Coordinator) {
	h.coord = c
}

// HandleConnection owns one websocket session end to end: mint a handle,
// join the room, run the pumps, and tear everything down when the
// connection drops.
func (h *Hub) HandleConnection(conn *websocket.Conn, roomID, name string) {
	handle := uuid.NewString()
	client := NewClient(handle, name, roomID, conn)

	h.register(client)
	res, err := h.coord.Join(roomID, name, handle)
	if err != nil {
		h.unregister(client)
		if raw, ok := envelope("error", errorPayload{Message: err.Error()}); ok {
			conn.WriteMessage(websocket.TextMessage, raw)
		}
		client.cleanup()
		return
	}
	log.Debug().Str("room", roomID).Str("player", name).Bool("host", res.IsHost).Msg("connection established")

	go client.ReadPump(h)
	client.WritePump()
}

// Drop disconnects a client: coordinator first so leave events still reach
// the remaining members, then the connection maps.
func (h *Hub) Drop(c *Client) {
	if _, ok := h.coord.Leave(c.Handle); ok {
		log.Debug().Str("room", c.RoomID).Str("player", c.Name).Msg("player disconnected")
	}
	h.unregister(c)
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.RoomID]
	if !ok {
		room = make(map[string]*Client)
		h.rooms[c.RoomID] = room
	}
	room[c.Handle] = c
	h.clients[c.Handle] = c
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room, ok := h.rooms[c.RoomID]; ok {
		delete(room, c.Handle)
		if len(room) == 0 {
			delete(h.rooms, c.RoomID)
		}
	}
	delete(h.clients, c.Handle)
}

func envelope(event string, payload any) ([]byte, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Str("event", event).Err(err).Msg("payload marshal failed")
		return nil, false
	}
	raw, err := json.Marshal(Message{Type: event, Data: data})
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (h *Hub) ToRoom(roomID, event string, payload any) {
	raw, ok := envelope(event, payload)
	if !ok {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.rooms[roomID] {
		c.enqueue(raw)
	}
}

func (h *Hub) ToRoomExcept(roomID, exceptHandle, event string, payload any) {
	raw, ok := envelope(event, payload)
	if !ok {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for handle, c := range h.rooms[roomID] {
		if handle == exceptHandle {
			continue
		}
		c.enqueue(raw)
	}
}

func (h *Hub) ToPlayer(handle, event string, payload any) {
	raw, ok := envelope(event, payload)
	if !ok {
		return
	}
	h.mu.RLock()
	c, ok2 := h.clients[handle]
	h.mu.RUnlock()
	if ok2 {
		c.enqueue(raw)
	}
}
