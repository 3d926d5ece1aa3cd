package ports

import (
	"context"

	"enrichio/internal/domain"
)

// Classifier enriches raw company names.
// Implementations must be safe for concurrent use.
type Classifier interface {
	// ClassifyOne looks up a single name. A name with no match yields a
	// not-found record, not an error; errors mean the lookup itself failed.
	ClassifyOne(ctx context.Context, rawName string) (*domain.Record, error)

	// ClassifyBatch looks up every name and returns records in input order.
	// Per-name failures become error records; an error means the whole batch failed.
	ClassifyBatch(ctx context.Context, rawNames []string) ([]domain.Record, error)
}

// SectorSuggestion is an AI pick among the known sectors
type SectorSuggestion struct {
	Sector     string
	Confidence string
	Reasoning  string
	Model      string
}

// SectorResolver asks a language model to pick a sector for a company
type SectorResolver interface {
	// ResolveSector returns nil when the model has no confident pick in sectors
	ResolveSector(ctx context.Context, companyName string, sectors []string) (*SectorSuggestion, error)

	// IsAvailable reports whether the resolver can be called at all
	IsAvailable() bool
}

// WebResult is the top hit of a web search
type WebResult struct {
	Title   string
	URL     string
	Snippet string
}

// WebSearcher looks a company up on the open web when the directory
// does not know it
type WebSearcher interface {
	// SearchWeb returns nil when the search has no usable hit
	SearchWeb(ctx context.Context, query string) (*WebResult, error)
}
