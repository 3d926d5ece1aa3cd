package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"enrichio/internal/application/commands"
)

var overridesCmd = &cobra.Command{
	Use:   "overrides",
	Short: "Inspect saved sector corrections",
}

var overridesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved corrections, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewListOverridesCommand(GetSession().Store).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No corrections.")
			return nil
		}
		for _, e := range entries {
			previous := e.PreviousSector
			if previous == "" {
				previous = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s → %s  %s\n", e.UpdatedAt.Format("2006-01-02 15:04"), e.Identity, previous, e.Sector)
		}
		return nil
	},
}

var overridesHistoryCmd = &cobra.Command{
	Use:   "history <name>",
	Short: "Show every correction saved for a company input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewOverrideHistoryCommand(GetSession().Store, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Sector)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overridesCmd)
	overridesCmd.AddCommand(overridesListCmd)
	overridesCmd.AddCommand(overridesHistoryCmd)
}
