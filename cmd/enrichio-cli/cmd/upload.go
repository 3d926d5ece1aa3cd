package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"enrichio/internal/application/commands"
)

var uploadExport string

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Enrich the first column of a spreadsheet",
	Long: `Read company names from the first column of a CSV, XLS or XLSX file
and enrich them all. Failed lookups appear as error rows.

Examples:
  enrichio-cli upload clients.xlsx
  enrichio-cli upload clients.csv --export enriched.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		s := GetSession()
		uploadCmd := commands.NewUploadCommand(s.Workspace, s.Classifier, s.Reader, filepath.Base(path), data)
		result, err := uploadCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		renderRecords(cmd.OutOrStdout(), s.Workspace.Projection())
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)

		if uploadExport != "" {
			exported, err := exportTo(cmd.Context(), uploadExport)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s to %s\n", exported.Message, uploadExport)
		}
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadExport, "export", "o", "", "write the results to a .xlsx or .csv file")
	rootCmd.AddCommand(uploadCmd)
}
