package game

import "time"

// Player is one participant in a room. Name is the key inside the room;
// Handle is the transport's opaque connection reference and is the only
// field that changes on reconnect.
type Player struct {
	Name       string
	Handle     string
	Score      int
	IsHost     bool
	IsDrawer   bool
	HasGuessed bool
	GuessedAt  time.Time
}

func (p *Player) resetRound() {
	p.IsDrawer = false
	p.HasGuessed = false
	p.GuessedAt = time.Time{}
}
