package main

import "unicode"

// breakTolerance is how far from the target offset the breaker will look
// for a space before falling back to syllable boundaries.
const breakTolerance = 15

// Break is a chosen line-break position inside a rune slice.
// Pos is the offset the next line resumes from; if MidWord is true the
// break cuts inside a word and the left side needs a hyphen, otherwise
// Pos points at a space that is consumed rather than rendered.
type Break struct {
	Pos     int
	MidWord bool
}

// FindBreak picks the best break near target within text. The scan window
// is [target-tolerance, target+tolerance), clipped to (min, len(text)).
// Whitespace closest to target wins; ties go to the earliest offset
// scanned. With no whitespace in the window, the enclosing word's
// syllable boundary closest to target is used, and as a last resort the
// target offset itself.
func FindBreak(text []rune, target, tolerance, min int) Break {
	if target < 0 {
		target = 0
	}
	if target >= len(text) {
		target = len(text) - 1
	}

	lo := target - tolerance
	if lo <= min {
		lo = min + 1
	}
	hi := target + tolerance
	if hi > len(text) {
		hi = len(text)
	}

	best := -1
	for i := lo; i < hi; i++ {
		if !unicode.IsSpace(text[i]) {
			continue
		}
		if best == -1 || abs(i-target) < abs(best-target) {
			best = i
		}
	}
	if best != -1 {
		return Break{Pos: best, MidWord: false}
	}

	// No space nearby: break the enclosing word on a syllable boundary.
	start, end := wordAround(text, target)
	pos := target
	bestDist := -1
	off := start
	for _, frag := range Syllabify(string(text[start:end])) {
		off += len([]rune(frag))
		if off <= min || off >= end {
			continue
		}
		if d := abs(off - target); bestDist == -1 || d < bestDist {
			pos, bestDist = off, d
		}
	}
	return Break{Pos: pos, MidWord: true}
}

// wordAround returns the [start, end) bounds of the word containing
// offset i, scanning outward to the nearest space or text boundary.
func wordAround(text []rune, i int) (int, int) {
	start := i
	for start > 0 && !unicode.IsSpace(text[start-1]) {
		start--
	}
	end := i
	for end < len(text) && !unicode.IsSpace(text[end]) {
		end++
	}
	return start, end
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
