package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"enrichio/internal/application/commands"
	"enrichio/internal/domain"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Look up one company",
	Long: `Look up one company name or e-mail address and print its sector,
address, region, headcount and directory link.

Examples:
  enrichio-cli lookup Danone
  enrichio-cli lookup jane.doe@capgemini.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetSession()
		lookupCmd := commands.NewLookupCommand(s.Workspace, s.Classifier, args[0])
		result, err := lookupCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		printRecord(cmd, result.Record)
		if result.Failed {
			return errors.New(result.Message)
		}
		return nil
	},
}

func printRecord(cmd *cobra.Command, r domain.Record) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Input:      %s\n", r.Input)
	fmt.Fprintf(w, "Nom:        %s\n", r.OfficialName)
	fmt.Fprintf(w, "Industrie:  %s\n", r.Sector)
	fmt.Fprintf(w, "Adresse:    %s\n", r.Address)
	fmt.Fprintf(w, "Région:     %s\n", r.Region)
	fmt.Fprintf(w, "Effectif:   %s\n", r.Headcount)
	fmt.Fprintf(w, "Lien:       %s\n", r.Link)
	if r.Detail != "" {
		fmt.Fprintf(w, "Détails:    %s (%s)\n", r.Detail, r.Source)
	}
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
