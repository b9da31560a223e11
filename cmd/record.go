package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record SKILL DELTA",
	Short: "Add a practice delta to a learner's record on a skill",
	Long: "Adds DELTA to the learner's raw value on SKILL, creating the record if needed.\n" +
		"Positive deltas raise mastery, negative ones lower it.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill := args[0]
		delta, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid delta %q: %w", args[1], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user := resolveUser(cmd)
		v, err := st.SkillRepo().AddDelta(cmd.Context(), user, skill, delta)
		if err != nil {
			return err
		}
		env.log.Debug().Str("user", user).Str("skill", skill).Float64("delta", delta).Float64("value", v).Msg("delta recorded")
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %g\n", user, skill, v)
		return nil
	},
}
