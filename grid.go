package main

import "math/rand"

// fillerChar marks a padding cell during assembly. Every marker is
// replaced by a random letter before the puzzle is first shown.
const fillerChar = '*'

// fillerAlphabet is what randomized filler cells are drawn from.
// Headlines arrive upper-cased, so filler blends in.
const fillerAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÅ"

// reserveRows is how many extra filler rows sit below the playfield to
// give columns room to cycle. They rotate with the column but are never
// rendered.
const reserveRows = 2

// Cell is a single grid position holding one displayable character.
type Cell struct {
	Char rune
}

// Grid is the live puzzle matrix. Rows 0..Visible-1 are the playfield;
// the rows below are reserve. All rows have equal length once assembled.
type Grid struct {
	Cells   [][]*Cell
	Visible int
}

// Width returns the uniform row width.
func (g *Grid) Width() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Height returns the total row count, reserve rows included.
func (g *Grid) Height() int {
	return len(g.Cells)
}

// GroundTruth is the immutable assembly-time snapshot used to score wins
// and compute hints. Pad marks positions that never held headline text;
// Chars holds the correct character for every playfield position (the
// filler marker for pad slots — their letter is never checked).
type GroundTruth struct {
	Pad   [][]bool
	Chars [][]rune
}

// AssembleGrid pads the matrix rows to uniform width, appends the
// reserve rows and snapshots the ground truth for the playfield.
func AssembleGrid(rows [][]*Cell) (*Grid, *GroundTruth) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		width = 1
		rows = [][]*Cell{{{Char: fillerChar}}}
	}

	// Alternate front/back so filler distributes around the text.
	for i, row := range rows {
		deficit := width - len(row)
		for k := range deficit {
			pad := &Cell{Char: fillerChar}
			if k%2 == 0 {
				row = append([]*Cell{pad}, row...)
			} else {
				row = append(row, pad)
			}
		}
		rows[i] = row
	}

	visible := len(rows)
	for range reserveRows {
		row := make([]*Cell, width)
		for c := range row {
			row[c] = &Cell{Char: fillerChar}
		}
		rows = append(rows, row)
	}

	g := &Grid{Cells: rows, Visible: visible}

	truth := &GroundTruth{
		Pad:   make([][]bool, visible),
		Chars: make([][]rune, visible),
	}
	for r := range visible {
		truth.Pad[r] = make([]bool, width)
		truth.Chars[r] = make([]rune, width)
		for c := range width {
			ch := g.Cells[r][c].Char
			truth.Pad[r][c] = ch == fillerChar
			truth.Chars[r][c] = ch
		}
	}
	return g, truth
}

// RandomizeFiller replaces every filler marker in the whole grid, reserve
// rows included, with a random letter. Must run before first render.
func RandomizeFiller(g *Grid, rng *rand.Rand) {
	letters := []rune(fillerAlphabet)
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Char == fillerChar {
				cell.Char = letters[rng.Intn(len(letters))]
			}
		}
	}
}
