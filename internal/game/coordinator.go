package game

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mahir817/Paint-it/internal/words"
)

// Validation rejections returned by the coordinator API. No state is mutated
// when one of these comes back.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNameTaken        = errors.New("name already taken")
	ErrNotHost          = errors.New("only the host can start the game")
	ErrNotEnoughPlayers = errors.New("need at least 2 players")
	ErrGameInProgress   = errors.New("game already started")
	ErrNoActiveRound    = errors.New("no active game")
	ErrDrawerGuess      = errors.New("you are the drawer")
	ErrAlreadyGuessed   = errors.New("already guessed")
)

// Coordinator owns the room registry and is the single entry point for the
// transport layer. The registry has its own short-lived lock; each room's
// content is serialized by that room's mutex, so unrelated rooms progress
// independently.
type Coordinator struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	bank  *words.Bank
	emit  Emitter
	clock clockwork.Clock
}

func NewCoordinator(bank *words.Bank, emit Emitter, clock clockwork.Clock) *Coordinator {
	return &Coordinator{
		rooms: make(map[string]*Room),
		bank:  bank,
		emit:  emit,
		clock: clock,
	}
}

func (c *Coordinator) room(roomID string) (*Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.rooms[roomID]
	return r, ok
}

func (c *Coordinator) roomOrCreate(roomID string) *Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.rooms[roomID]
	if !ok {
		r = newRoom(roomID)
		c.rooms[roomID] = r
		log.Info().Str("room", roomID).Msg("room created")
	}
	return r
}

type JoinResult struct {
	IsHost bool
}

// Join adds a player to a room, creating the room on first reference. A
// repeat join under the same name succeeds only as an idempotent reconnect
// from the same connection handle; any other handle gets a name collision.
// The first player into an empty room becomes host.
func (c *Coordinator) Join(roomID, name, handle string) (JoinResult, error) {
	r := c.roomOrCreate(roomID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.players[name]; ok {
		if p.Handle != handle {
			return JoinResult{}, ErrNameTaken
		}
		return JoinResult{IsHost: p.IsHost}, nil
	}

	p := &Player{Name: name, Handle: handle, IsHost: len(r.players) == 0}
	r.players[name] = p
	r.order = append(r.order, name)

	log.Info().Str("room", roomID).Str("player", name).Bool("host", p.IsHost).Msg("player joined")
	c.emit.ToRoom(r.id, EventPlayerList, PlayerListPayload{Players: r.summaries()})
	if p.IsHost {
		c.emit.ToRoom(r.id, EventHostAssigned, HostAssignedPayload{Name: name})
	}
	return JoinResult{IsHost: p.IsHost}, nil
}

// Leave removes the player owning the given connection handle, searching all
// rooms. Host and drawer roles are handed off or torn down as needed, and an
// emptied room is deleted together with its timer in the same critical
// section. Returns the removed player's name.
func (c *Coordinator) Leave(handle string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, r := range c.rooms {
		r.mu.Lock()
		p := r.playerByHandle(handle)
		if p == nil {
			r.mu.Unlock()
			continue
		}

		name := p.Name
		wasHost := p.IsHost
		wasDrawer := r.currentDrawer == name
		delete(r.players, name)
		r.removeFromOrder(name)
		log.Info().Str("room", id).Str("player", name).Msg("player left")

		if len(r.players) == 0 {
			r.cancelTimer()
			delete(c.rooms, id)
			log.Info().Str("room", id).Msg("room deleted (empty)")
			r.mu.Unlock()
			return name, true
		}

		if wasHost {
			next := r.players[r.order[0]]
			next.IsHost = true
			c.emit.ToRoom(r.id, EventHostAssigned, HostAssignedPayload{Name: next.Name})
		}

		if wasDrawer {
			r.currentDrawer = ""
			if r.state == StateInProgress && r.currentWord != "" {
				// The round cannot continue without its drawer: abandon it,
				// reveal the word and advance as a normal round end.
				word := r.currentWord
				round := r.currentRound
				r.cancelTimer()
				r.currentWord = ""
				r.roundStart = time.Time{}
				c.emit.ToRoom(r.id, EventRoundEnd, RoundEndPayload{
					Drawer: name,
					Word:   word,
					Round:  round,
					Scores: r.rankedSummaries(),
				})
				r.resetGuessFlags()
				c.advanceAfterRound(r)
			}
		}

		c.emit.ToRoom(r.id, EventPlayerList, PlayerListPayload{Players: r.summaries()})
		r.mu.Unlock()
		return name, true
	}
	return "", false
}

// StartGame begins a game: host-only, at least two players, fresh rooms
// only. An empty category means unscoped word draws; maxRounds <= 0 takes
// the default.
func (c *Coordinator) StartGame(roomID, requesterHandle, category string, maxRounds int) error {
	r, ok := c.room(roomID)
	if !ok {
		return ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerByHandle(requesterHandle)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.IsHost {
		return ErrNotHost
	}
	if r.state != StateWaiting {
		return ErrGameInProgress
	}
	if len(r.players) < minPlayersToRun {
		return ErrNotEnoughPlayers
	}
	if category != "" && !c.bank.HasCategory(category) {
		return words.ErrUnknownCategory
	}
	if maxRounds <= 0 {
		maxRounds = defaultMaxRounds
	}

	r.category = category
	r.maxRounds = maxRounds
	r.state = StateInProgress
	r.currentRound = 1
	r.currentDrawer = ""

	if err := c.startRound(r); err != nil {
		r.state = StateWaiting
		r.currentRound = 0
		return err
	}
	log.Info().Str("room", roomID).Str("category", category).Int("maxRounds", maxRounds).Msg("game started")
	return nil
}

// startRound selects the next drawer, draws a word and launches the
// countdown. Called with r.mu held.
func (c *Coordinator) startRound(r *Room) error {
	r.cancelTimer()

	drawerName := r.nextDrawer()
	word, err := c.bank.RandomWord(r.category)
	if err != nil {
		return err
	}

	r.resetRoundFlags()
	drawer := r.players[drawerName]
	drawer.IsDrawer = true
	r.currentDrawer = drawerName
	r.currentWord = normalizeWord(word)
	r.roundStart = c.clock.Now()
	r.hintLevel = 0
	r.patternSent = false

	c.startRoundTimer(r, r.roundSeq)

	log.Info().Str("room", r.id).Str("drawer", drawerName).Int("round", r.currentRound).Msg("round started")
	c.emit.ToRoom(r.id, EventRoundStart, RoundStartPayload{
		Drawer:     drawerName,
		WordLength: len(r.currentWord),
		Round:      r.currentRound,
		MaxRounds:  r.maxRounds,
	})
	c.emit.ToPlayer(drawer.Handle, EventWordForDrawer, WordPayload{Word: r.currentWord})
	return nil
}

// endRound finishes the active round exactly once: the state and word checks
// make a second call (timer expiry racing an all-guessed finish) a no-op.
// Called with r.mu held.
func (c *Coordinator) endRound(r *Room) {
	if r.state != StateInProgress || r.currentWord == "" {
		return
	}

	word := r.currentWord
	drawer := r.currentDrawer
	round := r.currentRound
	r.cancelTimer()
	r.currentWord = ""
	r.roundStart = time.Time{}

	c.emit.ToRoom(r.id, EventRoundEnd, RoundEndPayload{
		Drawer: drawer,
		Word:   word,
		Round:  round,
		Scores: r.rankedSummaries(),
	})
	r.resetGuessFlags()
	c.advanceAfterRound(r)
}

// advanceAfterRound either schedules the next round after a short break, ends
// the game, or drops back to WAITING when too few players remain. Called with
// r.mu held.
func (c *Coordinator) advanceAfterRound(r *Room) {
	if len(r.players) < minPlayersToRun {
		r.state = StateWaiting
		r.currentRound = 0
		log.Info().Str("room", r.id).Msg("not enough players, back to waiting")
		return
	}

	if r.currentRound >= r.maxRounds {
		r.state = StateFinished
		ranked := r.rankedSummaries()
		log.Info().Str("room", r.id).Str("winner", ranked[0].Name).Msg("game over")
		c.emit.ToRoom(r.id, EventGameOver, GameOverPayload{
			Winner: ranked[0].Name,
			Scores: ranked,
		})
		return
	}

	r.currentRound++
	roomID := r.id
	seq := r.roundSeq
	c.clock.AfterFunc(roundBreak, func() {
		c.beginScheduledRound(roomID, seq)
	})
}

// beginScheduledRound runs a round start scheduled during the inter-round
// break, unless the room moved on in the meantime.
func (c *Coordinator) beginScheduledRound(roomID string, seq int) {
	r, ok := c.room(roomID)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roundSeq != seq || r.state != StateInProgress {
		return
	}
	if len(r.players) < minPlayersToRun {
		r.state = StateWaiting
		r.currentRound = 0
		return
	}
	if err := c.startRound(r); err != nil {
		log.Error().Err(err).Str("room", roomID).Msg("failed to start scheduled round")
		r.state = StateWaiting
		r.currentRound = 0
	}
}

type GuessResult struct {
	Correct     bool
	Censored    bool
	Points      int
	DrawerBonus int
	Scores      []PlayerSummary
	RoundOver   bool
}

// SubmitGuess evaluates one guess. An exact (case- and whitespace-
// insensitive) match scores 100 + 2*remaining seconds, with a half-points
// bonus for the drawer; a near-miss above the similarity threshold is
// censored; anything else is an ordinary wrong guess with no state change.
// When the last eligible player guesses, the round ends inside the same
// critical section.
func (c *Coordinator) SubmitGuess(roomID, guesser, text string) (GuessResult, error) {
	r, ok := c.room(roomID)
	if !ok {
		return GuessResult{}, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateInProgress || r.currentWord == "" {
		return GuessResult{}, ErrNoActiveRound
	}
	p, ok := r.players[guesser]
	if !ok {
		return GuessResult{}, ErrPlayerNotFound
	}
	if guesser == r.currentDrawer {
		return GuessResult{}, ErrDrawerGuess
	}
	if p.HasGuessed {
		return GuessResult{}, ErrAlreadyGuessed
	}

	guess := normalizeWord(text)
	word := r.currentWord

	if guess != word {
		if isTooClose(guess, word) {
			log.Debug().Str("room", roomID).Str("player", guesser).Msg("near-miss guess censored")
			c.emit.ToPlayer(p.Handle, EventBlockedMessage, BlockedMessagePayload{
				Reason: "too close to the word",
			})
			return GuessResult{Censored: true}, nil
		}
		return GuessResult{}, nil
	}

	now := c.clock.Now()
	points := 100 + 2*r.remainingSeconds(now)
	p.HasGuessed = true
	p.GuessedAt = now
	p.Score += points

	bonus := points / 2
	if drawer, ok := r.players[r.currentDrawer]; ok {
		drawer.Score += bonus
	}

	res := GuessResult{
		Correct:     true,
		Points:      points,
		DrawerBonus: bonus,
		Scores:      r.rankedSummaries(),
		RoundOver:   r.allEligibleGuessed(),
	}
	log.Info().Str("room", roomID).Str("player", guesser).Int("points", points).Msg("correct guess")
	c.emit.ToRoom(r.id, EventCorrectGuess, CorrectGuessPayload{
		Player:      guesser,
		Points:      points,
		DrawerBonus: bonus,
		Scores:      res.Scores,
	})

	if res.RoundOver {
		c.endRound(r)
	}
	return res, nil
}

// SubmitChat relays a freeform message to the room unless it would leak the
// current word: during an active round anything above the similarity
// threshold, the literal word included, is blocked. Returns false when
// blocked.
func (c *Coordinator) SubmitChat(roomID, handle, text string) (bool, error) {
	r, ok := c.room(roomID)
	if !ok {
		return false, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerByHandle(handle)
	if p == nil {
		return false, ErrPlayerNotFound
	}

	if r.state == StateInProgress && r.currentWord != "" {
		if similarityRatio(normalizeWord(text), r.currentWord) > censorThreshold {
			log.Debug().Str("room", roomID).Str("player", p.Name).Msg("chat message blocked")
			c.emit.ToPlayer(handle, EventBlockedMessage, BlockedMessagePayload{
				Reason: "message too close to the word",
			})
			return false, nil
		}
	}

	c.emit.ToRoomExcept(r.id, handle, EventChatMessage, ChatPayload{From: p.Name, Message: text})
	return true, nil
}

// RequestState returns the room snapshot for late joiners and state refresh
// requests. The masked word is derived from the hint level at call time.
func (c *Coordinator) RequestState(roomID string) (StateSnapshot, error) {
	r, ok := c.room(roomID)
	if !ok {
		return StateSnapshot{}, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return StateSnapshot{
		RoomID:     r.id,
		State:      r.state.String(),
		Players:    r.summaries(),
		Drawer:     r.currentDrawer,
		Round:      r.currentRound,
		MaxRounds:  r.maxRounds,
		Remaining:  r.remainingSeconds(c.clock.Now()),
		WordLength: len(r.currentWord),
		MaskedWord: r.maskedWord(),
		Category:   r.category,
	}, nil
}

// RoomIDs lists the currently registered rooms.
func (c *Coordinator) RoomIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		ids = append(ids, id)
	}
	return ids
}
