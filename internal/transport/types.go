package transport

import "encoding/json"

// Message is the wire envelope in both directions.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Inbound message types.
const (
	msgStartGame    = "start_game"
	msgGuess        = "guess"
	msgChat         = "chat"
	msgRequestState = "request_state"
)

type startGamePayload struct {
	Category  string `json:"category"`
	MaxRounds int    `json:"maxRounds"`
}

type guessPayload struct {
	Guess string `json:"guess"`
}

type chatPayload struct {
	Message string `json:"message"`
}

type errorPayload struct {
	Message string `json:"message"`
}
