package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rosterRoom(names ...string) *Room {
	r := newRoom("r")
	for i, n := range names {
		r.players[n] = &Player{Name: n, Handle: n + "-h", IsHost: i == 0}
		r.order = append(r.order, n)
	}
	return r
}

func TestNextDrawerRoundRobin(t *testing.T) {
	r := rosterRoom("A", "B", "C")
	assert.Equal(t, "A", r.nextDrawer())
	r.currentDrawer = "A"
	assert.Equal(t, "B", r.nextDrawer())
	r.currentDrawer = "B"
	assert.Equal(t, "C", r.nextDrawer())
	r.currentDrawer = "C"
	assert.Equal(t, "A", r.nextDrawer())
}

func TestNextDrawerAfterDeparture(t *testing.T) {
	r := rosterRoom("A", "B", "C")
	r.currentDrawer = "C"
	r.removeFromOrder("A")
	delete(r.players, "A")
	assert.Equal(t, "B", r.nextDrawer())

	// A drawer no longer on the roster restarts the cycle at the front.
	r2 := rosterRoom("A", "B", "C")
	r2.currentDrawer = "B"
	r2.removeFromOrder("B")
	delete(r2.players, "B")
	assert.Equal(t, "A", r2.nextDrawer())
}

func TestMaskedWordLevels(t *testing.T) {
	r := rosterRoom("A", "B")
	assert.Empty(t, r.maskedWord())

	r.currentWord = "ICE CREAM"
	assert.Equal(t, "___ _____", r.maskedWord())
	r.hintLevel = 1
	assert.Equal(t, "I__ _____", r.maskedWord())
	r.hintLevel = 2
	assert.Equal(t, "I__ ____M", r.maskedWord())
}

func TestRankedSummariesTieBreak(t *testing.T) {
	r := rosterRoom("A", "B", "C")
	r.players["B"].Score = 10
	r.players["C"].Score = 10
	ranked := r.rankedSummaries()
	assert.Equal(t, "B", ranked[0].Name) // roster order breaks the tie
	assert.Equal(t, "C", ranked[1].Name)
	assert.Equal(t, "A", ranked[2].Name)
}

func TestRemainingSeconds(t *testing.T) {
	r := rosterRoom("A", "B")
	now := time.Now()
	r.roundStart = now
	assert.Equal(t, 60, r.remainingSeconds(now))
	assert.Equal(t, 40, r.remainingSeconds(now.Add(20*time.Second)))
	assert.Equal(t, 0, r.remainingSeconds(now.Add(2*time.Minute)))

	r.roundStart = time.Time{}
	assert.Equal(t, 0, r.remainingSeconds(now))
}

func TestAllEligibleGuessed(t *testing.T) {
	r := rosterRoom("A", "B", "C")
	r.currentDrawer = "A"
	assert.False(t, r.allEligibleGuessed())
	r.players["B"].HasGuessed = true
	assert.False(t, r.allEligibleGuessed())
	r.players["C"].HasGuessed = true
	assert.True(t, r.allEligibleGuessed())
}
