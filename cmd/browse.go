package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathskills/internal/app"
	"github.com/abhisek/mathskills/internal/page"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse skill grids interactively",
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().String("target", "", "Skill whose category tab opens first")
}

// runBrowse opens the store and launches the TUI.
func runBrowse(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(page.NewAssembler(st.SkillRepo(), env.log), resolveUser(cmd), target)
}
