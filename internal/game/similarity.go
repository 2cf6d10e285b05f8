package game

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// censorThreshold is the similarity ratio above which a guess or chat
// message is considered a near-leak of the current word. Strict greater-than:
// a ratio of exactly 0.8 passes. Known quirk: one-letter variants of short
// words ("CATS" against "CAT", ratio 6/7) land above the threshold and are
// censored rather than scored wrong.
const censorThreshold = 0.8

func normalizeWord(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// similarityRatio maps levenshtein distance into [0,1], where 1 is an exact
// match: (la+lb-dist)/(la+lb).
func similarityRatio(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la+lb == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(la+lb-dist) / float64(la+lb)
}

// isTooClose reports whether a wrong guess is close enough to the word that
// broadcasting it would spoil the answer. Exact matches are never too close,
// they are correct.
func isTooClose(guess, word string) bool {
	return guess != word && similarityRatio(guess, word) > censorThreshold
}
