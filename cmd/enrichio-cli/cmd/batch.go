package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"enrichio/internal/application"
	"enrichio/internal/application/commands"
	"enrichio/internal/domain"
)

var batchExport string

var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Enrich a list of companies, one per line",
	Long: `Enrich a pasted list of company names, one per line, read from a file
or from standard input. Blank and boilerplate lines are dropped. Names whose
lookup fails are skipped and listed at the end. Ctrl+C stops the batch and
keeps the rows gathered so far.

Examples:
  enrichio-cli batch clients.txt
  pbpaste | enrichio-cli batch --export clients.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readBatch(cmd, args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		s := GetSession()
		stderr := cmd.ErrOrStderr()
		batchCmd := commands.NewProcessBatchCommand(s.Workspace, s.Classifier, application.SplitLines(text), func(p domain.Progress) {
			fmt.Fprintf(stderr, "\r%d/%d", p.Processed, p.Total)
			if p.Done() {
				fmt.Fprintln(stderr)
			}
		})
		result, runErr := batchCmd.Execute(ctx)
		if result == nil {
			return runErr
		}

		renderRecords(cmd.OutOrStdout(), s.Workspace.Projection())
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		if len(result.Skipped) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Skipped: %s\n", strings.Join(result.Skipped, ", "))
		}

		if batchExport != "" && s.Workspace.Store.Len() > 0 {
			exported, err := exportTo(cmd.Context(), batchExport)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s to %s\n", exported.Message, batchExport)
		}
		return runErr
	},
}

// readBatch reads the named file, or standard input for "-" or no argument
func readBatch(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func init() {
	batchCmd.Flags().StringVarP(&batchExport, "export", "o", "", "write the results to a .xlsx or .csv file")
	rootCmd.AddCommand(batchCmd)
}
