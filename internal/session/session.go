// Package session wires the adapters shared by the enrichio front ends.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"enrichio/internal/adapters/claudecli"
	"enrichio/internal/adapters/gemini"
	"enrichio/internal/adapters/gouv"
	"enrichio/internal/adapters/spreadsheet"
	"enrichio/internal/adapters/sqlite"
	"enrichio/internal/adapters/websearch"
	"enrichio/internal/application"
	"enrichio/internal/application/commands"
	"enrichio/internal/config"
	"enrichio/internal/ports"
)

// Session holds one workspace and the adapters serving it
type Session struct {
	Workspace  *application.Workspace
	Store      *sqlite.Store
	Classifier *gouv.Classifier
	Reader     spreadsheet.Reader
	Exporter   spreadsheet.Exporter
	Logger     *zap.Logger
}

// Open opens the database, builds the classifier and loads the sector
// vocabulary. Close must be called when done.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Session, error) {
	store := sqlite.NewStore()
	if err := store.Open(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ws := application.NewWorkspace(
		application.WithLogger(logger),
		application.WithDenylist(cfg.Denylist),
	)

	client := gouv.NewClient(cfg.APIURL,
		gouv.WithTimeout(cfg.Timeout),
		gouv.WithRateInterval(cfg.RateInterval),
	)
	opts := []gouv.Option{
		gouv.WithOverrides(store),
		gouv.WithWorkers(cfg.UploadWorkers),
		gouv.WithLogger(logger),
	}
	if cfg.WebSearch {
		web := websearch.NewClient(cfg.WebSearchURL,
			websearch.WithTimeout(cfg.Timeout),
			websearch.WithRateInterval(cfg.RateInterval),
		)
		opts = append(opts, gouv.WithWebSearch(web))
	}
	if resolver := newResolver(ctx, cfg, logger); resolver != nil {
		opts = append(opts, gouv.WithResolver(resolver, ws.Vocabulary.SortedAll))
	}

	s := &Session{
		Workspace:  ws,
		Store:      store,
		Classifier: gouv.NewClassifier(client, opts...),
		Reader:     spreadsheet.NewReader(),
		Exporter:   spreadsheet.NewExporter(),
		Logger:     logger,
	}

	if _, err := commands.NewLoadSectorsCommand(ws, store).Execute(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database
func (s *Session) Close() error {
	_ = s.Logger.Sync()
	return s.Store.Close()
}

// newResolver returns the configured AI fallback, or nil when it is
// disabled or cannot run.
func newResolver(ctx context.Context, cfg *config.Config, logger *zap.Logger) ports.SectorResolver {
	switch cfg.Resolver {
	case config.ResolverGemini:
		r, err := gemini.NewResolver(ctx, cfg.GeminiAPIKey,
			gemini.WithModel(cfg.GeminiModel),
			gemini.WithInterval(cfg.GeminiInterval),
		)
		if err != nil {
			logger.Warn("gemini resolver disabled", zap.Error(err))
			return nil
		}
		return r
	case config.ResolverClaude:
		r := claudecli.NewResolver(claudecli.WithModel(cfg.ClaudeModel))
		if !r.IsAvailable() {
			logger.Warn("claude resolver disabled: binary not found")
			return nil
		}
		return r
	default:
		return nil
	}
}
