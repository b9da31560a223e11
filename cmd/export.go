package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathskills/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the skill grids to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		target, _ := cmd.Flags().GetString("target")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		m, err := renderPage(cmd, st, target)
		if err != nil {
			return err
		}
		if err := export.WriteFile(out, m); err != nil {
			return err
		}
		env.log.Info().Str("path", out).Str("pass_id", m.PassID).Msg("workbook written")
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d categories)\n", out, len(m.Categories))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output .xlsx path (required)")
	exportCmd.Flags().String("target", "", "Skill whose category sheet opens first")
	_ = exportCmd.MarkFlagRequired("out")
}
