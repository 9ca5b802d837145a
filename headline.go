package main

import (
	"math/rand"
	"strings"
)

const (
	minRowCount     = 2
	maxRowCount     = 4
	defaultRowCount = 3

	// noContentTitle is the degenerate one-cell puzzle shown when the
	// feed produced no candidates at all.
	noContentTitle = "?"

	ellipsis = "…"
)

// Candidate is one headline offered by the feed collaborator.
type Candidate struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ClampRows forces a requested row count into the supported range,
// substituting the default when it is out of range.
func ClampRows(n int) int {
	if n < minRowCount || n > maxRowCount {
		return defaultRowCount
	}
	return n
}

// SelectHeadline picks one candidate at random among those fitting
// maxLen. When none fit, a random candidate is hard-truncated instead:
// cut at maxLen, moved back to a space when one sits past 80% of the
// cap, and marked with an ellipsis. An empty candidate list yields the
// degenerate no-content title with the link cleared.
func SelectHeadline(cands []Candidate, maxLen int, rng *rand.Rand) Candidate {
	if len(cands) == 0 {
		return Candidate{Title: noContentTitle}
	}

	var fitting []Candidate
	for _, c := range cands {
		if len([]rune(c.Title)) <= maxLen {
			fitting = append(fitting, c)
		}
	}
	if len(fitting) > 0 {
		return fitting[rng.Intn(len(fitting))]
	}

	chosen := cands[rng.Intn(len(cands))]
	chosen.Title = truncate(chosen.Title, maxLen)
	return chosen
}

func truncate(title string, maxLen int) string {
	runes := []rune(title)
	if maxLen < 1 {
		maxLen = 1
	}
	cut := runes[:maxLen]
	// Prefer a word boundary when one exists near the cap.
	for i := len(cut) - 1; i > maxLen*4/5; i-- {
		if cut[i] == ' ' {
			cut = cut[:i]
			break
		}
	}
	return strings.TrimSpace(string(cut)) + ellipsis
}
