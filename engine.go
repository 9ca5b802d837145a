package main

import (
	"math/rand"
	"sync"
	"time"
)

const (
	scrambleMinMoves = 15
	scrambleMaxMoves = 30
)

// Session is one live puzzle. All mutation goes through its mutex; the
// ground truth never changes after construction.
type Session struct {
	ID        string
	Link      string
	CreatedAt time.Time

	grid  *Grid
	truth *GroundTruth

	hintsLeft  int
	locked     map[int]bool
	lastHinted int // column of the transient hint highlight, -1 when none
	hintGen    int
	hintTimer  *time.Timer

	rng *rand.Rand
	mu  sync.Mutex
}

// NewSession builds a ready-to-play puzzle from a chosen headline:
// matrix, assembly, filler randomization, then scramble.
func NewSession(chosen Candidate, rows, hints int, rng *rand.Rand) *Session {
	grid, truth := AssembleGrid(BuildMatrix(chosen.Title, ClampRows(rows)))
	RandomizeFiller(grid, rng)

	s := &Session{
		Link:       chosen.Link,
		CreatedAt:  time.Now(),
		grid:       grid,
		truth:      truth,
		hintsLeft:  hints,
		locked:     make(map[int]bool),
		lastHinted: -1,
		rng:        rng,
	}
	s.scramble()
	return s
}

// scramble applies 15–30 random column rotations with the same semantics
// as player moves, without win checks.
func (s *Session) scramble() {
	h := s.grid.Height()
	if h < 2 || s.grid.Width() == 0 {
		return
	}
	moves := scrambleMinMoves + s.rng.Intn(scrambleMaxMoves-scrambleMinMoves+1)
	for range moves {
		col := s.rng.Intn(s.grid.Width())
		shift := 1 + s.rng.Intn(h-1)
		s.rotate(col, shift)
	}
}

// rotate shifts a column down by shift positions (negative = up),
// reserve rows travelling with it. Caller holds the mutex.
func (s *Session) rotate(col, shift int) {
	h := s.grid.Height()
	shift = ((shift % h) + h) % h
	if shift == 0 {
		return
	}
	old := make([]*Cell, h)
	for r := range h {
		old[r] = s.grid.Cells[r][col]
	}
	for r := range h {
		s.grid.Cells[r][col] = old[((r-shift)%h+h)%h]
	}
}

// Rotate is the player-facing rotation. Locked or out-of-range columns
// are silent no-ops. Returns whether the move was applied and whether
// the puzzle is solved afterwards.
func (s *Session) Rotate(col, shift int) (applied, solved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if col < 0 || col >= s.grid.Width() || s.locked[col] {
		return false, s.solvedLocked()
	}
	s.rotate(col, shift)
	return true, s.solvedLocked()
}

// Solved reports whether every non-padding playfield position matches
// the ground truth. Padding slots are never checked.
func (s *Session) Solved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solvedLocked()
}

func (s *Session) solvedLocked() bool {
	for r := range s.grid.Visible {
		for c := range s.grid.Width() {
			if s.truth.Pad[r][c] {
				continue
			}
			if s.grid.Cells[r][c].Char != s.truth.Chars[r][c] {
				return false
			}
		}
	}
	return true
}

// Hint resolves one mismatched column: the smallest rotation amount that
// restores its non-padding playfield cells is applied and the column is
// permanently locked. No-op when the budget is spent or nothing
// mismatches. Returns the resolved column.
func (s *Session) Hint() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hintsLeft <= 0 {
		return -1, false
	}

	var mismatched []int
	for c := range s.grid.Width() {
		if s.columnMismatch(c) {
			mismatched = append(mismatched, c)
		}
	}
	if len(mismatched) == 0 {
		return -1, false
	}

	col := mismatched[s.rng.Intn(len(mismatched))]
	h := s.grid.Height()
	for amount := range h {
		if s.columnFixedBy(col, amount) {
			s.rotate(col, amount)
			break
		}
	}

	s.locked[col] = true
	s.hintsLeft--
	s.lastHinted = col
	s.hintGen++
	if s.hintTimer != nil {
		s.hintTimer.Stop()
		s.hintTimer = nil
	}
	return col, true
}

// columnMismatch reports whether any non-padding playfield cell of the
// column differs from ground truth. Caller holds the mutex.
func (s *Session) columnMismatch(col int) bool {
	for r := range s.grid.Visible {
		if s.truth.Pad[r][col] {
			continue
		}
		if s.grid.Cells[r][col].Char != s.truth.Chars[r][col] {
			return true
		}
	}
	return false
}

// columnFixedBy reports whether rotating the column down by amount would
// make all its non-padding playfield cells match ground truth.
func (s *Session) columnFixedBy(col, amount int) bool {
	h := s.grid.Height()
	for r := range s.grid.Visible {
		if s.truth.Pad[r][col] {
			continue
		}
		if s.grid.Cells[((r-amount)%h+h)%h][col].Char != s.truth.Chars[r][col] {
			return false
		}
	}
	return true
}

// ScheduleHintClear arms the transient highlight clear. A later hint
// invalidates a pending clear: the callback only fires if no newer hint
// arrived in the meantime.
func (s *Session) ScheduleHintClear(d time.Duration, fn func()) {
	s.mu.Lock()
	gen := s.hintGen
	s.hintTimer = time.AfterFunc(d, func() {
		s.mu.Lock()
		stale := gen != s.hintGen
		if !stale {
			s.lastHinted = -1
			s.hintTimer = nil
		}
		s.mu.Unlock()
		if !stale && fn != nil {
			fn()
		}
	})
	s.mu.Unlock()
}

// HintsLeft returns the remaining hint budget.
func (s *Session) HintsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hintsLeft
}

// LastHinted returns the column of the active hint highlight, -1 if none.
func (s *Session) LastHinted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastHinted
}

// Locked reports whether a column has been hint-locked.
func (s *Session) Locked(col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked[col]
}
