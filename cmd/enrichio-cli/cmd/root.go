package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"enrichio/internal/config"
	"enrichio/internal/logging"
	"enrichio/internal/session"
)

var (
	configPath string
	dbPath     string
	verbose    bool
	sess       *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "enrichio-cli",
	Short: "Enrich French company names with their sector",
	Long: `enrichio-cli looks up company names in the French company directory
(recherche-entreprises.api.gouv.fr) and classifies their business sector.

Manual sector corrections and custom sectors are stored in a local
database and shared with the enrichio terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return openSession(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if sess == nil {
			return nil
		}
		err := sess.Close()
		sess = nil
		return err
	},
}

func openSession(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logger, err := logging.New(logging.Level(verbose, cfg.LogLevel), cfg.LogFile)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	sess, err = session.Open(ctx, cfg, logger)
	return err
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// GetSession returns the initialized session
func GetSession() *session.Session {
	return sess
}
