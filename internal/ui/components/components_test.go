package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/tables"
)

func testTable() *tables.Table {
	return &tables.Table{
		Grid: [][]tables.Cell{
			{
				{Label: "1-1", DisplayName: "1-1", Trackable: true, Score: mastery.ScoreOf(2)},
			},
			{
				{Label: "2-1", DisplayName: "2-1", Trackable: true, Score: mastery.NoDataScore()},
				{Label: "2-2", Score: mastery.UntrackableScore()},
			},
		},
	}
}

func TestCellText(t *testing.T) {
	tbl := testTable()
	tests := []struct {
		cell    tables.Cell
		percent bool
		want    string
	}{
		{tbl.Grid[0][0], false, "1-1"},
		{tbl.Grid[0][0], true, "88%"},
		{tbl.Grid[1][0], false, "2-1"},
		{tbl.Grid[1][0], true, "-"},
		{tbl.Grid[1][1], false, ""},
		{tbl.Grid[1][1], true, ""},
	}
	for _, tt := range tests {
		if got := CellText(tt.cell, tt.percent); got != tt.want {
			t.Errorf("CellText(%q, %v) = %q, want %q", tt.cell.Label, tt.percent, got, tt.want)
		}
	}
}

func TestHeatGrid_View(t *testing.T) {
	g := NewHeatGrid(testTable())
	view := g.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(view, "1-1") || !strings.Contains(view, "2-1") {
		t.Errorf("view missing labels: %q", view)
	}
	if strings.Contains(view, "2-2") {
		t.Error("untrackable cell should render blank")
	}
	if w := lipgloss.Width(lines[1]); w != 2*g.CellWidth() {
		t.Errorf("row width = %d, want %d", w, 2*g.CellWidth())
	}
}

func TestHeatGrid_NilTable(t *testing.T) {
	if v := (HeatGrid{}).View(); v != "" {
		t.Errorf("nil table view = %q, want empty", v)
	}
}

func TestScoreBar_View(t *testing.T) {
	bar := NewScoreBar("addition", mastery.ScoreOf(2), 40)
	view := bar.View()
	if !strings.Contains(view, "addition") || !strings.Contains(view, "88%") {
		t.Errorf("unexpected bar: %q", view)
	}
	if w := lipgloss.Width(view); w != 40 {
		t.Errorf("bar width = %d, want 40", w)
	}

	empty := NewScoreBar("numbers", mastery.NoDataScore(), 40).View()
	if strings.Contains(empty, "%") {
		t.Errorf("no-data bar should not show a percentage: %q", empty)
	}
}
