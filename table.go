package htmltext

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
)

const cellSpacing = "   "

// tableFormatter lays a table out as columns of padded cells. Column widths
// are display widths, so full-width characters line up.
type tableFormatter struct{}

func (tableFormatter) Format(_ *Conversion, n *html.Node, walk WalkFunc) string {
	rows := tableRows(n, walk)
	if len(rows) == 0 {
		return ""
	}
	widths := columnWidths(rows)

	var out strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = padCell(cell, widths[i])
		}
		out.WriteString(strings.TrimRight(strings.Join(cells, cellSpacing), " "))
		out.WriteString("\n")
	}
	return out.String() + "\n"
}

// tableRows collects the cell text of every tr in document order,
// descending through thead/tbody/tfoot grouping elements.
func tableRows(n *html.Node, walk WalkFunc) [][]string {
	var rows [][]string
	for _, child := range Children(n) {
		if child.Type != html.ElementNode {
			continue
		}
		switch child.Data {
		case "tr":
			var row []string
			for _, cell := range Children(child) {
				if cell.Type == html.ElementNode && (cell.Data == "th" || cell.Data == "td") {
					row = append(row, strings.TrimSpace(walk(Children(cell), "")))
				}
			}
			rows = append(rows, row)
		case "thead", "tbody", "tfoot":
			rows = append(rows, tableRows(child, walk)...)
		}
	}
	return rows
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			for i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func padCell(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
