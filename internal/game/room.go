package game

import (
	"sort"
	"sync"
	"time"
)

type RoomState int

const (
	StateWaiting RoomState = iota
	StateInProgress
	StateFinished
)

func (s RoomState) String() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateInProgress:
		return "IN_PROGRESS"
	case StateFinished:
		return "FINISHED"
	}
	return "UNKNOWN"
}

const (
	roundDuration    = 60 * time.Second
	tickInterval     = 500 * time.Millisecond
	roundBreak       = 3 * time.Second
	defaultMaxRounds = 3
	minPlayersToRun  = 2

	// Remaining-seconds thresholds for hint disclosure.
	firstLetterAt = 30
	lastLetterAt  = 15
	patternAt     = 10
)

// Room is one game's authoritative state. Every field is guarded by mu;
// request handlers and the countdown goroutine alike take it before touching
// anything.
type Room struct {
	mu sync.Mutex

	id      string
	players map[string]*Player
	order   []string // insertion order: round-robin cycle and host promotion

	state         RoomState
	currentDrawer string
	currentWord   string
	currentRound  int
	maxRounds     int
	category      string

	roundStart  time.Time
	hintLevel   int // 0 none, 1 first letter, 2 first+last
	patternSent bool

	// roundSeq bumps on every round start and teardown. A countdown goroutine
	// carrying a stale value must exit without emitting.
	roundSeq int
	timer    *roundTimer
}

func newRoom(id string) *Room {
	return &Room{id: id, players: make(map[string]*Player)}
}

// All methods below assume r.mu is held by the caller.

func (r *Room) playerByHandle(handle string) *Player {
	for _, name := range r.order {
		if p := r.players[name]; p.Handle == handle {
			return p
		}
	}
	return nil
}

func (r *Room) removeFromOrder(name string) {
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// nextDrawer walks the roster round-robin from the previous drawer. A
// departed drawer leaves no trace in the roster, so its slot is skipped
// naturally; with no prior drawer the cycle starts at the front.
func (r *Room) nextDrawer() string {
	if len(r.order) == 0 {
		return ""
	}
	if r.currentDrawer == "" {
		return r.order[0]
	}
	for i, n := range r.order {
		if n == r.currentDrawer {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}

func (r *Room) resetRoundFlags() {
	for _, p := range r.players {
		p.resetRound()
	}
}

func (r *Room) resetGuessFlags() {
	for _, p := range r.players {
		p.HasGuessed = false
		p.GuessedAt = time.Time{}
	}
}

// allEligibleGuessed reports whether every non-drawer has guessed correctly,
// which ends the round early.
func (r *Room) allEligibleGuessed() bool {
	for _, name := range r.order {
		if name == r.currentDrawer {
			continue
		}
		if !r.players[name].HasGuessed {
			return false
		}
	}
	return true
}

// summaries lists players in roster order.
func (r *Room) summaries() []PlayerSummary {
	out := make([]PlayerSummary, 0, len(r.order))
	for _, name := range r.order {
		p := r.players[name]
		out = append(out, PlayerSummary{
			Name:       p.Name,
			Score:      p.Score,
			IsHost:     p.IsHost,
			IsDrawer:   p.IsDrawer,
			HasGuessed: p.HasGuessed,
		})
	}
	return out
}

// rankedSummaries sorts by score descending. The stable sort keeps roster
// order among ties, which is also the tie-break for the winner.
func (r *Room) rankedSummaries() []PlayerSummary {
	out := r.summaries()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func (r *Room) remainingSeconds(now time.Time) int {
	if r.roundStart.IsZero() {
		return 0
	}
	remaining := roundDuration - now.Sub(r.roundStart)
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining / time.Second)
}

// maskedWord renders the current word with only the revealed positions
// visible. Spaces are always shown. Recomputed on every call so late state
// requests see exactly the current disclosure level.
func (r *Room) maskedWord() string {
	word := r.currentWord
	if word == "" {
		return ""
	}
	mask := []byte(word)
	for i := range mask {
		switch {
		case mask[i] == ' ':
		case i == 0 && r.hintLevel >= 1:
		case i == len(mask)-1 && r.hintLevel >= 2:
		default:
			mask[i] = '_'
		}
	}
	return string(mask)
}

// cancelTimer invalidates the live countdown, if any. The goroutine may
// still be blocked on r.mu; the roundSeq bump guarantees it exits without
// emitting once it gets the lock.
func (r *Room) cancelTimer() {
	r.roundSeq++
	if r.timer != nil {
		r.timer.stop()
		r.timer = nil
	}
}
