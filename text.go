package htable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text renders a plain-text preview of the table: an aligned grid of the
// cell values with head, body, and foot blocks separated by dashed lines.
// Attributes are ignored; this is a debugging and CLI aid, not markup.
// Column widths are measured in display cells, so wide characters line up.
func (t *Table) Text() string {
	head := sectionGrid(t.head)
	body := sectionGrid(t.body)
	foot := sectionGrid(t.foot)

	widths := gridWidths(head, body, foot)
	if len(widths) == 0 {
		return ""
	}

	var sb strings.Builder
	if len(head) > 0 {
		writeGrid(&sb, head, widths)
		writeGridSep(&sb, widths)
	}
	writeGrid(&sb, body, widths)
	if len(foot) > 0 {
		writeGridSep(&sb, widths)
		writeGrid(&sb, foot, widths)
	}
	return sb.String()
}

// sectionGrid extracts a section's cell values as rows of strings,
// following the iteration contract (a removed row truncates the walk).
func sectionGrid(s *Section) [][]string {
	if s == nil {
		return nil
	}
	var grid [][]string
	for _, r := range s.rows.collect() {
		var row []string
		for _, c := range r.cells.collect() {
			row = append(row, c.Value())
		}
		grid = append(grid, row)
	}
	return grid
}

func gridWidths(grids ...[][]string) []int {
	var widths []int
	for _, grid := range grids {
		for _, row := range grid {
			for i, cell := range row {
				for len(widths) <= i {
					widths = append(widths, 0)
				}
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

func writeGrid(sb *strings.Builder, grid [][]string, widths []int) {
	for _, row := range grid {
		parts := make([]string, len(widths))
		for i, width := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			parts[i] = cell + strings.Repeat(" ", width-runewidth.StringWidth(cell))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}
}

func writeGridSep(sb *strings.Builder, widths []int) {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	sb.WriteString(strings.Join(parts, "  "))
	sb.WriteString("\n")
}
