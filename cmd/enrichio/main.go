package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"enrichio/internal/adapters/browser"
	"enrichio/internal/adapters/editor"
	"enrichio/internal/adapters/tui"
	"enrichio/internal/config"
	"enrichio/internal/logging"
	"enrichio/internal/session"
)

func main() {
	_ = godotenv.Load()

	configFlag := flag.String("config", config.Path(), "path to the config file")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	if err := run(*configFlag, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The screen belongs to the UI, so logs go to a file
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = config.LogPath()
	}
	logger, err := logging.New(logging.Level(verbose, cfg.LogLevel), logFile)
	if err != nil {
		return err
	}

	s, err := session.Open(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	app := tui.NewApp(s.Workspace, tui.Services{
		Classifier: s.Classifier,
		Sectors:    s.Store,
		Reader:     s.Reader,
		Exporter:   s.Exporter,
		Links:      browser.NewOpener(),
		Editor:     editor.NewOpener(),
		ExportDir:  wd,
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
