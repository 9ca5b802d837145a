package main

// SessionView is what the browser is allowed to see: playfield rows
// only, never the reserve rows or the ground-truth characters. The
// article link is withheld until the puzzle is solved.
type SessionView struct {
	ID         string     `json:"id"`
	Rows       [][]string `json:"rows"`
	Pad        [][]bool   `json:"pad"`
	Locked     []int      `json:"locked"`
	LastHinted int        `json:"last_hinted"`
	HintsLeft  int        `json:"hints_left"`
	Solved     bool       `json:"solved"`
	Link       string     `json:"link,omitempty"`
}

// View snapshots the session for rendering.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SessionView{
		ID:         s.ID,
		Rows:       make([][]string, s.grid.Visible),
		Pad:        make([][]bool, s.grid.Visible),
		Locked:     []int{},
		LastHinted: s.lastHinted,
		HintsLeft:  s.hintsLeft,
		Solved:     s.solvedLocked(),
	}
	for r := range s.grid.Visible {
		v.Rows[r] = make([]string, s.grid.Width())
		v.Pad[r] = make([]bool, s.grid.Width())
		for c := range s.grid.Width() {
			v.Rows[r][c] = string(s.grid.Cells[r][c].Char)
			v.Pad[r][c] = s.truth.Pad[r][c]
		}
	}
	for c := range s.grid.Width() {
		if s.locked[c] {
			v.Locked = append(v.Locked, c)
		}
	}
	if v.Solved {
		v.Link = s.Link
	}
	return v
}
