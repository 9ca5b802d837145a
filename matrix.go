package main

import "strings"

// hyphenChar is appended to a row when a line break cuts inside a word.
const hyphenChar = '-'

// BuildMatrix splits a headline into rows of single-character cells.
// Every headline character survives: mid-word breaks insert a trailing
// hyphen and the next row resumes at the exact break offset, while
// breaks at a space consume the space. Rows left empty after trimming
// are dropped, so very short headlines may yield fewer rows than asked.
func BuildMatrix(text string, rows int) [][]*Cell {
	runes := []rune(text)
	if rows < 1 || len(runes) == 0 {
		rows = 1
	}

	per := len(runes) / rows
	var segments []string

	pos := 0
	for i := 0; i < rows-1 && pos < len(runes); i++ {
		target := (i + 1) * per
		if target <= pos {
			target = pos + 1
		}
		if target >= len(runes) {
			break
		}
		br := FindBreak(runes, target, breakTolerance, pos)
		seg := strings.TrimSpace(string(runes[pos:br.Pos]))
		if br.MidWord {
			if seg != "" {
				seg += string(hyphenChar)
			}
			pos = br.Pos
		} else {
			pos = br.Pos + 1
		}
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if last := strings.TrimSpace(string(runes[pos:])); last != "" {
		segments = append(segments, last)
	}

	matrix := make([][]*Cell, 0, len(segments))
	for _, seg := range segments {
		row := make([]*Cell, 0, len(seg))
		for _, r := range seg {
			row = append(row, &Cell{Char: r})
		}
		matrix = append(matrix, row)
	}
	return matrix
}
