package main

import (
	"math/rand"
	"strings"
	"testing"
)

func TestAssembleGridUniformWidth(t *testing.T) {
	grid, truth := AssembleGrid(BuildMatrix("KISSA ISTUU MATOLLA TÄNÄÄN", 4))

	if grid.Width() != 7 {
		t.Fatalf("width = %d, want 7 (longest row MATOLLA)", grid.Width())
	}
	if grid.Visible != 4 {
		t.Fatalf("visible = %d, want 4", grid.Visible)
	}
	if grid.Height() != grid.Visible+reserveRows {
		t.Fatalf("height = %d, want visible + %d reserve rows", grid.Height(), reserveRows)
	}
	for r, row := range grid.Cells {
		if len(row) != grid.Width() {
			t.Errorf("row %d width = %d, want %d", r, len(row), grid.Width())
		}
	}
	if len(truth.Pad) != grid.Visible || len(truth.Chars) != grid.Visible {
		t.Fatal("ground truth must cover exactly the playfield rows")
	}
}

func TestAssembleGridCentersFiller(t *testing.T) {
	// KISSA in a 7-wide grid: deficit 2 alternates front then back.
	grid, truth := AssembleGrid(BuildMatrix("KISSA ISTUU MATOLLA TÄNÄÄN", 4))

	row := make([]rune, 0, grid.Width())
	for _, cell := range grid.Cells[0] {
		row = append(row, cell.Char)
	}
	if string(row) != "*KISSA*" {
		t.Errorf("padded row 0 = %q, want *KISSA*", string(row))
	}
	wantPad := []bool{true, false, false, false, false, false, true}
	for c, want := range wantPad {
		if truth.Pad[0][c] != want {
			t.Errorf("pad[0][%d] = %v, want %v", c, truth.Pad[0][c], want)
		}
	}
}

func TestAssembleGridReserveRowsAllFiller(t *testing.T) {
	grid, _ := AssembleGrid(BuildMatrix("KISSA ISTUU", 2))
	for r := grid.Visible; r < grid.Height(); r++ {
		for c, cell := range grid.Cells[r] {
			if cell.Char != fillerChar {
				t.Errorf("reserve cell (%d,%d) = %q, want filler", r, c, cell.Char)
			}
		}
	}
}

func TestAssembleGridEmptyMatrix(t *testing.T) {
	grid, truth := AssembleGrid(nil)
	if grid.Width() != 1 || grid.Visible != 1 || grid.Height() != 1+reserveRows {
		t.Fatalf("degenerate grid is %dx%d visible %d", grid.Width(), grid.Height(), grid.Visible)
	}
	if !truth.Pad[0][0] {
		t.Error("degenerate single cell must be marked padding")
	}
}

func TestRandomizeFiller(t *testing.T) {
	grid, truth := AssembleGrid(BuildMatrix("KISSA ISTUU MATOLLA TÄNÄÄN", 4))
	RandomizeFiller(grid, rand.New(rand.NewSource(1)))

	for _, row := range grid.Cells {
		for c, cell := range row {
			if cell.Char == fillerChar {
				t.Fatalf("filler marker survived randomization at col %d", c)
			}
			if !strings.ContainsRune(fillerAlphabet, cell.Char) {
				t.Errorf("unexpected character %q after randomization", cell.Char)
			}
		}
	}
	// Headline characters are untouched.
	for r := range grid.Visible {
		for c := range grid.Width() {
			if !truth.Pad[r][c] && grid.Cells[r][c].Char != truth.Chars[r][c] {
				t.Errorf("randomization touched headline cell (%d,%d)", r, c)
			}
		}
	}
}
