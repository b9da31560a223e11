package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathskills/internal/skilltree"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in skill forest into the store",
	Long:  "Upserts every category, tier and fact skill by name. Safe to run repeatedly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		forest, err := skilltree.DefaultForest()
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.SkillRepo().UpsertSkills(cmd.Context(), forest.Skills())
		if err != nil {
			return fmt.Errorf("seed skills: %w", err)
		}
		env.log.Info().Int("skills", n).Msg("skill forest seeded")
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d skills\n", n)
		return nil
	},
}
