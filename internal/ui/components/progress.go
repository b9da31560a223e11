package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/ui/theme"
)

// ScoreBar displays a mastery score as a horizontal bar filled in the
// score's heat colour.
type ScoreBar struct {
	Label string
	Score mastery.Score
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score mastery.Score, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width}
}

// View renders the bar. A score without data renders an empty track and
// a dash instead of a percentage.
func (p ScoreBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // "  100%"

	barWidth := max(p.Width-labelWidth-percentWidth, 4)

	filled := 0
	if p.Score.HasData {
		filled = min(max(barWidth*p.Score.Percent/100, 0), barWidth)
	}
	empty := barWidth - filled

	fill := lipgloss.Color(mastery.Flatten(p.Score.Color, theme.Canvas))
	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	pct := "    -"
	if p.Score.HasData {
		pct = fmt.Sprintf("%4d%%", p.Score.Percent)
	}
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + pct)

	return result
}
