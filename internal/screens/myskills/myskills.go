package myskills

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathskills/internal/page"
	"github.com/abhisek/mathskills/internal/router"
	"github.com/abhisek/mathskills/internal/screen"
	"github.com/abhisek/mathskills/internal/tables"
	"github.com/abhisek/mathskills/internal/ui/components"
	"github.com/abhisek/mathskills/internal/ui/layout"
	"github.com/abhisek/mathskills/internal/ui/theme"
)

// Renderer produces a user's skill page. *page.Assembler implements it.
type Renderer interface {
	RenderMySkills(ctx context.Context, user, targetID string) (*page.PageModel, error)
}

// MySkillsScreen shows one category tab at a time as a heat grid.
type MySkillsScreen struct {
	renderer Renderer
	user     string
	target   string

	model   *page.PageModel
	err     error
	loading bool

	tab          int
	cursor       components.GridPos
	scrollOffset int
	showPercent  bool
	keys         keyMap
}

var _ screen.Screen = (*MySkillsScreen)(nil)
var _ screen.KeyHintProvider = (*MySkillsScreen)(nil)
var _ router.Refresher = (*MySkillsScreen)(nil)

// New creates the screen for user. targetID, if it names a skill, selects
// the tab that lists it on first load.
func New(r Renderer, user, targetID string) *MySkillsScreen {
	return &MySkillsScreen{
		renderer: r,
		user:     user,
		target:   targetID,
		loading:  true,
		keys:     defaultKeys(),
	}
}

func (s *MySkillsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *MySkillsScreen) Title() string {
	return "My Skills"
}

// Refresh reruns the render pass, keeping the current tab and cursor.
func (s *MySkillsScreen) Refresh() tea.Cmd {
	s.loading = true
	return s.load()
}

func (s *MySkillsScreen) load() tea.Cmd {
	r, user, target := s.renderer, s.user, s.target
	return func() tea.Msg {
		m, err := r.RenderMySkills(context.Background(), user, target)
		return pageLoadedMsg{Model: m, Err: err}
	}
}

func (s *MySkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		s.handleLoaded(msg)
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Quit) {
			return s, tea.Quit
		}
		if s.model == nil {
			return s, nil
		}
		switch {
		case key.Matches(msg, s.keys.NextTab):
			s.setTab(s.tab + 1)
		case key.Matches(msg, s.keys.PrevTab):
			s.setTab(s.tab - 1)
		case key.Matches(msg, s.keys.Up):
			s.moveCursor(-1, 0)
		case key.Matches(msg, s.keys.Down):
			s.moveCursor(1, 0)
		case key.Matches(msg, s.keys.Left):
			s.moveCursor(0, -1)
		case key.Matches(msg, s.keys.Right):
			s.moveCursor(0, 1)
		case key.Matches(msg, s.keys.Percent):
			s.showPercent = !s.showPercent
		case key.Matches(msg, s.keys.Refresh):
			return s, s.Refresh()
		case key.Matches(msg, s.keys.Open):
			return s, s.openCell()
		default:
			if n := msg.String(); len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
				s.setTab(int(n[0] - '1'))
			}
		}
	}
	return s, nil
}

func (s *MySkillsScreen) handleLoaded(msg pageLoadedMsg) {
	s.loading = false
	s.err = msg.Err
	if msg.Err != nil {
		return
	}
	first := s.model == nil
	s.model = msg.Model
	if first {
		for i, cp := range s.model.Categories {
			if cp.Active {
				s.tab = i
			}
		}
	}
	s.setTab(s.tab)
}

// KeyHints returns the key binding hints for the footer.
func (s *MySkillsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←↑↓→", Description: "Move"}}
	for _, b := range []key.Binding{s.keys.NextTab, s.keys.Open, s.keys.Percent, s.keys.Refresh, s.keys.Quit} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// ActiveTab returns the page of the shown tab, or nil before the first load.
func (s *MySkillsScreen) ActiveTab() *page.CategoryPage {
	if s.model == nil || len(s.model.Categories) == 0 {
		return nil
	}
	return &s.model.Categories[s.tab]
}

// Cursor returns the highlighted grid position.
func (s *MySkillsScreen) Cursor() components.GridPos {
	return s.cursor
}

// setTab selects tab i, wrapping around, and clamps the cursor to its grid.
func (s *MySkillsScreen) setTab(i int) {
	n := len(s.model.Categories)
	if n == 0 {
		return
	}
	if i != s.tab {
		s.scrollOffset = 0
	}
	s.tab = ((i % n) + n) % n
	s.moveCursor(0, 0)
}

// moveCursor moves within the active grid. Rows may be ragged, so the column
// is clamped to the target row's length.
func (s *MySkillsScreen) moveCursor(dr, dc int) {
	cp := s.ActiveTab()
	if cp == nil || cp.Table == nil || len(cp.Table.Grid) == 0 {
		s.cursor = components.GridPos{}
		return
	}
	grid := cp.Table.Grid
	r := min(max(s.cursor.Row+dr, 0), len(grid)-1)
	c := min(max(s.cursor.Col+dc, 0), max(len(grid[r])-1, 0))
	s.cursor = components.GridPos{Row: r, Col: c}
}

func (s *MySkillsScreen) selectedCell() (tables.Cell, bool) {
	cp := s.ActiveTab()
	if cp == nil || cp.Table == nil || s.cursor.Row >= len(cp.Table.Grid) {
		return tables.Cell{}, false
	}
	row := cp.Table.Grid[s.cursor.Row]
	if s.cursor.Col >= len(row) {
		return tables.Cell{}, false
	}
	return row[s.cursor.Col], true
}

func (s *MySkillsScreen) openCell() tea.Cmd {
	cell, ok := s.selectedCell()
	if !ok {
		return nil
	}
	detail := newCellDetail(*s.ActiveTab(), cell)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *MySkillsScreen) View(width, height int) string {
	switch {
	case s.err != nil:
		return lipgloss.NewStyle().Foreground(theme.Error).PaddingLeft(2).
			Render("Could not load skills: " + s.err.Error())
	case s.model == nil:
		return theme.Hint.PaddingLeft(2).Render("Loading skills…")
	}

	cp := s.ActiveTab()
	barWidth := min(width-4, 60)

	top := []string{s.renderTabs(), ""}
	top = append(top, "  "+components.NewScoreBar(fmt.Sprintf("%-16s", cp.Skill.Name), cp.Summary, barWidth).View())
	if cp.Table != nil {
		for _, t := range cp.Table.Tiers {
			top = append(top, "  "+components.NewScoreBar(fmt.Sprintf("  %-14s", t.Skill.Name), t.Score, barWidth).View())
		}
	}
	top = append(top, "")

	grid := components.NewHeatGrid(cp.Table)
	grid.ShowPercent = s.showPercent
	cursor := s.cursor
	grid.Cursor = &cursor
	gridLines := strings.Split(grid.View(), "\n")

	status := s.renderStatus()
	room := max(height-len(top)-2, 1)
	s.adjustScroll(room)
	end := min(s.scrollOffset+room, len(gridLines))

	lines := top
	for _, l := range gridLines[s.scrollOffset:end] {
		lines = append(lines, "  "+l)
	}
	lines = append(lines, "", status)
	return strings.Join(lines, "\n")
}

// adjustScroll keeps the cursor row inside a window of height rows.
func (s *MySkillsScreen) adjustScroll(height int) {
	if s.cursor.Row < s.scrollOffset {
		s.scrollOffset = s.cursor.Row
	}
	if s.cursor.Row >= s.scrollOffset+height {
		s.scrollOffset = s.cursor.Row - height + 1
	}
}

func (s *MySkillsScreen) renderTabs() string {
	tabs := make([]string, len(s.model.Categories))
	for i, cp := range s.model.Categories {
		label := cp.Category.DisplayName()
		if cp.Summary.HasData {
			label += fmt.Sprintf(" %d%%", cp.Summary.Percent)
		}
		style := theme.TabInactive
		if i == s.tab {
			style = theme.TabActive
		}
		tabs[i] = style.Render(label)
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (s *MySkillsScreen) renderStatus() string {
	cell, ok := s.selectedCell()
	if !ok {
		return ""
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	switch {
	case !cell.Trackable:
		return dim.Render("  "+cell.Label+"  ") + val.Render("not tracked")
	case !cell.Score.HasData:
		return dim.Render("  "+cell.DisplayName+"  ") + val.Render("no practice yet")
	default:
		return dim.Render("  "+cell.DisplayName+"  ") +
			val.Render(fmt.Sprintf("%d%%", cell.Score.Percent)) +
			dim.Render(fmt.Sprintf("  (value %.2f)", cell.Score.Value))
	}
}
