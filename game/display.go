package game

import (
	"io"
	"strconv"
	"strings"
)

// Display writes the grid with row and column labels. Each row is shifted one
// step further right than the previous one and rows are joined by "\ /"
// connectors, so the hexagonal adjacency is visible.
func (b *Board) Display(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("  0")
	for c := 1; c < b.size; c++ {
		sb.WriteString("   ")
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('\n')

	indent := 1
	for r := 0; r < b.size; r++ {
		sb.WriteString(strconv.Itoa(r))
		pad := indent
		if r >= 10 { // two-digit label
			pad--
		}
		sb.WriteString(strings.Repeat(" ", pad))
		indent++

		for c := 0; c < b.size; c++ {
			sb.WriteByte(b.cells[b.index(r, c)].glyph())
			if c != b.size-1 {
				sb.WriteString(" - ")
			}
		}
		sb.WriteByte('\n')

		indent++
		sb.WriteString(strings.Repeat(" ", indent))
		if r != b.size-1 {
			for c := 0; c < b.size; c++ {
				sb.WriteString("\\ ")
				if c != b.size-1 {
					sb.WriteString("/ ")
				}
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
