package game

// Event names delivered to the transport layer.
const (
	EventPlayerList     = "player_list"
	EventHostAssigned   = "host_assigned"
	EventRoundStart     = "round_start"
	EventWordForDrawer  = "word_for_drawer"
	EventTimerUpdate    = "timer_update"
	EventHint           = "hint"
	EventCorrectGuess   = "correct_guess"
	EventChatMessage    = "chat_message"
	EventBlockedMessage = "blocked_message"
	EventRoundEnd       = "round_end"
	EventGameOver       = "game_over"
)

// Hint types.
const (
	HintFirstLetter = "first_letter"
	HintLastLetter  = "last_letter"
	HintPattern     = "pattern"
)

// Emitter delivers outbound events to the transport layer. Implementations
// must not block; delivery is fire-and-forget.
type Emitter interface {
	ToRoom(roomID, event string, payload any)
	ToRoomExcept(roomID, exceptHandle, event string, payload any)
	ToPlayer(handle, event string, payload any)
}

type PlayerSummary struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	IsHost     bool   `json:"isHost"`
	IsDrawer   bool   `json:"isDrawer"`
	HasGuessed bool   `json:"hasGuessed"`
}

type PlayerListPayload struct {
	Players []PlayerSummary `json:"players"`
}

type HostAssignedPayload struct {
	Name string `json:"name"`
}

type RoundStartPayload struct {
	Drawer     string `json:"drawer"`
	WordLength int    `json:"wordLength"`
	Round      int    `json:"round"`
	MaxRounds  int    `json:"maxRounds"`
}

type WordPayload struct {
	Word string `json:"word"`
}

type TimerUpdatePayload struct {
	Remaining int `json:"remaining"`
}

type HintPayload struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Position int    `json:"position"`
}

type CorrectGuessPayload struct {
	Player      string          `json:"player"`
	Points      int             `json:"points"`
	DrawerBonus int             `json:"drawerBonus"`
	Scores      []PlayerSummary `json:"scores"`
}

type ChatPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

type BlockedMessagePayload struct {
	Reason string `json:"reason"`
}

type RoundEndPayload struct {
	Drawer string          `json:"drawer"`
	Word   string          `json:"word"`
	Round  int             `json:"round"`
	Scores []PlayerSummary `json:"scores"`
}

type GameOverPayload struct {
	Winner string          `json:"winner"`
	Scores []PlayerSummary `json:"scores"`
}

// StateSnapshot is the on-demand view of a room. MaskedWord is recomputed
// from the current hint level on every request and never contains unrevealed
// letters.
type StateSnapshot struct {
	RoomID     string          `json:"roomId"`
	State      string          `json:"state"`
	Players    []PlayerSummary `json:"players"`
	Drawer     string          `json:"drawer,omitempty"`
	Round      int             `json:"round"`
	MaxRounds  int             `json:"maxRounds"`
	Remaining  int             `json:"remaining"`
	WordLength int             `json:"wordLength"`
	MaskedWord string          `json:"maskedWord,omitempty"`
	Category   string          `json:"category,omitempty"`
}
