package htable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Markdown renders the table as a GitHub-flavored Markdown table. The
// first head row becomes the header; body and foot rows become data rows.
// Attributes are ignored. When the table has no head rows, the separator
// line is omitted along with the header, which most renderers treat as a
// plain row block.
func (t *Table) Markdown() string {
	var header []string
	if grid := sectionGrid(t.head); len(grid) > 0 {
		header = grid[0]
	}
	rows := append(sectionGrid(t.body), sectionGrid(t.foot)...)

	widths := gridWidths([][]string{header}, rows)
	for i := range widths {
		// Minimum 3 so the separator can hold alignment markers.
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	if len(widths) == 0 {
		return ""
	}

	var sb strings.Builder
	if len(header) > 0 {
		writeMarkdownRow(&sb, header, widths)
		sep := make([]string, len(widths))
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	}
	for _, row := range rows {
		writeMarkdownRow(&sb, row, widths)
	}
	return sb.String()
}

func writeMarkdownRow(sb *strings.Builder, cells []string, widths []int) {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", width-runewidth.StringWidth(cell))
	}
	sb.WriteString("| " + strings.Join(padded, " | ") + " |\n")
}
