package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"enrichio/internal/application/commands"
)

var overrideCmd = &cobra.Command{
	Use:   "override <name> <sector>",
	Short: "Save a manual sector correction",
	Long: `Look up a company, then correct its sector. The correction is saved
for the input exactly as typed and wins over every other signal in later
lookups. A sector that is not in the list becomes a custom sector.

Examples:
  enrichio-cli override Thales "Défense"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetSession()
		ctx := cmd.Context()

		lookup, err := commands.NewLookupCommand(s.Workspace, s.Classifier, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Current sector: %s\n", lookup.Record.Sector)

		result, err := commands.NewApplyOverrideCommand(s.Workspace, s.Store, 0, args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		if result.IsNew {
			fmt.Fprintf(cmd.OutOrStdout(), "%s added to custom sectors\n", result.Sector)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overrideCmd)
}
