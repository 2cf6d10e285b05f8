package game

import (
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// roundTimer is the cancellation handle for one round's countdown goroutine.
// At most one live countdown exists per room: starting a round cancels the
// previous timer before creating the next.
type roundTimer struct {
	cancel chan struct{}
	done   chan struct{}
	once   sync.Once
}

func (t *roundTimer) stop() {
	t.once.Do(func() { close(t.cancel) })
}

// startRoundTimer launches the countdown for the round identified by seq.
// The ticker is created here, not in the goroutine, so the countdown is
// armed the moment the round starts. Called with r.mu held.
func (c *Coordinator) startRoundTimer(r *Room, seq int) {
	t := &roundTimer{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
	r.timer = t
	ticker := c.clock.NewTicker(tickInterval)
	go c.runCountdown(r, t, seq, ticker)
}

// runCountdown ticks until the round expires or becomes stale. Every tick
// re-checks the round sequence and room state under the lock before emitting
// anything, so a cancelled or superseded timer is silent.
func (c *Coordinator) runCountdown(r *Room, t *roundTimer, seq int, ticker clockwork.Ticker) {
	defer close(t.done)
	defer ticker.Stop()

	for {
		select {
		case <-t.cancel:
			return
		case <-ticker.Chan():
		}

		r.mu.Lock()
		if r.roundSeq != seq || r.state != StateInProgress || r.currentWord == "" {
			r.mu.Unlock()
			return
		}

		remaining := r.remainingSeconds(c.clock.Now())
		c.emit.ToRoom(r.id, EventTimerUpdate, TimerUpdatePayload{Remaining: remaining})
		c.revealHints(r, remaining)

		if remaining <= 0 {
			log.Debug().Str("room", r.id).Int("round", r.currentRound).Msg("round expired")
			c.endRound(r)
			r.mu.Unlock()
			return
		}
		r.mu.Unlock()
	}
}

// revealHints advances the hint disclosure once per threshold crossing. The
// level gate makes each reveal idempotent across ticks; the level itself
// never decreases within a round. Called with r.mu held.
func (c *Coordinator) revealHints(r *Room, remaining int) {
	word := r.currentWord
	if r.hintLevel < 1 && remaining <= firstLetterAt && len(word) > 0 {
		r.hintLevel = 1
		c.emit.ToRoom(r.id, EventHint, HintPayload{
			Type:     HintFirstLetter,
			Value:    string(word[0]),
			Position: 0,
		})
	}
	if r.hintLevel < 2 && remaining <= lastLetterAt && len(word) > 1 {
		r.hintLevel = 2
		c.emit.ToRoom(r.id, EventHint, HintPayload{
			Type:     HintLastLetter,
			Value:    string(word[len(word)-1]),
			Position: len(word) - 1,
		})
	}
	if !r.patternSent && remaining <= patternAt {
		r.patternSent = true
		c.emit.ToRoom(r.id, EventHint, HintPayload{
			Type:  HintPattern,
			Value: r.maskedWord(),
		})
	}
}
