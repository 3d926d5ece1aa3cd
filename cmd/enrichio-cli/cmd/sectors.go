package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"enrichio/internal/application/commands"
)

var confirmDelete bool

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Manage the sector list",
}

var sectorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom sectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab := GetSession().Workspace.Vocabulary
		for _, label := range vocab.SortedAll() {
			if vocab.IsCustom(label) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (custom)\n", label)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
		}
		return nil
	},
}

var sectorsDeleteCmd = &cobra.Command{
	Use:   "delete <label>",
	Short: "Delete a custom sector",
	Long: `Delete a custom sector. Built-in sectors cannot be deleted and
companies already classified with the sector keep it.

Examples:
  enrichio-cli sectors delete "Défense" --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetSession()
		deleteCmd := commands.NewDeleteSectorCommand(s.Workspace, s.Store, args[0], confirmDelete)
		result, err := deleteCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	sectorsDeleteCmd.Flags().BoolVarP(&confirmDelete, "yes", "y", false, "confirm the deletion")
	rootCmd.AddCommand(sectorsCmd)
	sectorsCmd.AddCommand(sectorsListCmd)
	sectorsCmd.AddCommand(sectorsDeleteCmd)
}
