package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/tables"
	"github.com/abhisek/mathskills/internal/ui/theme"
)

// GridPos addresses one cell of a heat grid.
type GridPos struct {
	Row, Col int
}

// HeatGrid renders a category table as rows of coloured cells.
type HeatGrid struct {
	Table       *tables.Table
	ShowPercent bool     // cell text is the percentage instead of the label
	Cursor      *GridPos // highlighted cell, nil for none
}

// NewHeatGrid creates a heat grid over t.
func NewHeatGrid(t *tables.Table) HeatGrid {
	return HeatGrid{Table: t}
}

// CellWidth is the rendered width of every cell, including padding.
func (g HeatGrid) CellWidth() int {
	w := 4 // "100%"
	if g.Table == nil {
		return w + 2
	}
	for _, row := range g.Table.Grid {
		for _, c := range row {
			w = max(w, lipgloss.Width(c.Label))
		}
	}
	return w + 2
}

// View renders the grid. Cells without a skill stay blank; trackable cells
// without data keep their label on the faint no-data colour.
func (g HeatGrid) View() string {
	if g.Table == nil {
		return ""
	}
	width := g.CellWidth()

	lines := make([]string, len(g.Table.Grid))
	for r, row := range g.Table.Grid {
		var b strings.Builder
		for c, cell := range row {
			selected := g.Cursor != nil && g.Cursor.Row == r && g.Cursor.Col == c
			b.WriteString(g.renderCell(cell, width, selected))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (g HeatGrid) renderCell(cell tables.Cell, width int, selected bool) string {
	style := theme.HeatCell
	if selected {
		style = theme.HeatCursor
	}
	style = style.Width(width)

	if !cell.Trackable {
		return style.Render("")
	}
	return style.
		Background(lipgloss.Color(mastery.Flatten(cell.Score.Color, theme.Canvas))).
		Render(CellText(cell, g.ShowPercent))
}

// CellText is the text shown in a trackable cell.
func CellText(cell tables.Cell, percent bool) string {
	if !cell.Trackable {
		return ""
	}
	if percent {
		if !cell.Score.HasData {
			return "-"
		}
		return fmt.Sprintf("%d%%", cell.Score.Percent)
	}
	return cell.DisplayName
}
