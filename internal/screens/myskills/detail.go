package myskills

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/page"
	"github.com/abhisek/mathskills/internal/router"
	"github.com/abhisek/mathskills/internal/screen"
	"github.com/abhisek/mathskills/internal/tables"
	"github.com/abhisek/mathskills/internal/ui/components"
	"github.com/abhisek/mathskills/internal/ui/layout"
	"github.com/abhisek/mathskills/internal/ui/theme"
)

// CellDetailScreen shows the score breakdown of one grid cell.
type CellDetailScreen struct {
	category page.CategoryPage
	cell     tables.Cell
}

var _ screen.Screen = (*CellDetailScreen)(nil)
var _ screen.KeyHintProvider = (*CellDetailScreen)(nil)

func newCellDetail(category page.CategoryPage, cell tables.Cell) *CellDetailScreen {
	return &CellDetailScreen{category: category, cell: cell}
}

func (d *CellDetailScreen) Init() tea.Cmd { return nil }
func (d *CellDetailScreen) Title() string  { return d.cell.Label }

func (d *CellDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "q":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *CellDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *CellDetailScreen) View(width, height int) string {
	contentWidth := min(width-8, 70)

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + d.cell.Label))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + d.category.Category.DisplayName()))
	b.WriteString("\n\n")

	sc := d.cell.Score
	var status string
	switch {
	case !d.cell.Trackable:
		status = "not tracked"
	case !sc.HasData:
		status = "no practice yet"
	default:
		status = fmt.Sprintf("%d%% mastery", sc.Percent)
	}
	b.WriteString(dimStyle.Render("  Status:    ") + valStyle.Render(status) + "\n")
	if sc.HasData {
		b.WriteString(dimStyle.Render("  Value:     ") + valStyle.Render(fmt.Sprintf("%.3f", sc.Value)) + "\n")
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(mastery.Flatten(sc.Color, theme.Canvas))).
		Render("    ")
	b.WriteString(dimStyle.Render("  Colour:    ") + swatch + " " + valStyle.Render(mastery.CSS(sc.Color)) + "\n")
	b.WriteString("\n")

	b.WriteString("  " + components.NewScoreBar(d.category.Skill.Name, d.category.Summary, contentWidth).View() + "\n")
	if d.category.Table != nil {
		for _, t := range d.category.Table.Tiers {
			b.WriteString("  " + components.NewScoreBar("  "+t.Skill.Name, t.Score, contentWidth).View() + "\n")
		}
	}

	return b.String()
}
