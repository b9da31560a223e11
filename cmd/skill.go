package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathskills/internal/skilltree"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill forest",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		forest, err := skilltree.DefaultForest()
		if err != nil {
			return err
		}

		skills := forest.Skills()
		if category != "" {
			c, err := skilltree.ParseCategory(category)
			if err != nil {
				return err
			}
			skills = forest.ByCategory(c)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-20s  %-20s  %-16s  %s\n", "Name", "Parent", "Category", "Children")
		fmt.Fprintln(w, strings.Repeat("─", 70))

		for _, s := range skills {
			c, _ := forest.CategoryOf(s.Name)
			parent := s.Parent
			if parent == "" {
				parent = "-"
			}
			fmt.Fprintf(w, "%-20s  %-20s  %-16s  %d\n", s.Name, parent, c.DisplayName(), len(s.ChildrenList))
		}

		fmt.Fprintf(w, "\n%d skills\n", len(skills))
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (numbers, addition, subtraction, multiplication, division)")

	skillCmd.AddCommand(skillListCmd)
}
