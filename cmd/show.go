package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathskills/internal/mastery"
	"github.com/abhisek/mathskills/internal/page"
	"github.com/abhisek/mathskills/internal/ui/components"
	"github.com/abhisek/mathskills/internal/ui/theme"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the heat grid of every category",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		css, _ := cmd.Flags().GetBool("css")
		pct, _ := cmd.Flags().GetBool("percent")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		m, err := renderPage(cmd, st, target)
		if err != nil {
			return err
		}

		if css {
			printCSS(cmd.OutOrStdout(), m)
			return nil
		}
		printGrids(cmd.OutOrStdout(), m, pct)
		return nil
	},
}

func init() {
	showCmd.Flags().String("target", "", "Skill whose category is marked active")
	showCmd.Flags().Bool("css", false, "Print each cell's inline CSS style instead of the grid")
	showCmd.Flags().Bool("percent", false, "Show percentages in cells instead of labels")
}

func printGrids(w io.Writer, m *page.PageModel, percent bool) {
	fmt.Fprintf(w, "Skills for %s\n\n", m.User)
	for _, cp := range m.Categories {
		marker := "  "
		if cp.Active {
			marker = "▸ "
		}
		fmt.Fprintln(w, marker+theme.Title.Render(cp.Category.DisplayName()))
		fmt.Fprintln(w, "  "+components.NewScoreBar(fmt.Sprintf("%-16s", cp.Skill.Name), cp.Summary, 60).View())
		if cp.Table == nil {
			fmt.Fprintln(w)
			continue
		}
		for _, t := range cp.Table.Tiers {
			fmt.Fprintln(w, "  "+components.NewScoreBar(fmt.Sprintf("  %-14s", t.Skill.Name), t.Score, 60).View())
		}
		fmt.Fprintln(w)

		grid := components.NewHeatGrid(cp.Table)
		grid.ShowPercent = percent
		for _, line := range strings.Split(grid.View(), "\n") {
			fmt.Fprintln(w, "  "+line)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(theme.TextDim).Render("pass "+m.PassID))
}

// printCSS writes one tab-separated line per cell: category, label and the
// inline style a web renderer would apply.
func printCSS(w io.Writer, m *page.PageModel) {
	for _, cp := range m.Categories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cp.Category, cp.Skill.Name, mastery.CSS(cp.Summary.Color))
		if cp.Table == nil {
			continue
		}
		for _, row := range cp.Table.Grid {
			for _, cell := range row {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cp.Category, cell.Label, mastery.CSS(cell.Score.Color))
			}
		}
	}
}
