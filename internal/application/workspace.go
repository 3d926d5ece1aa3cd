package application

import (
	"sync/atomic"

	"go.uber.org/zap"

	"enrichio/internal/domain"
)

// Workspace owns the session state shared by every front end: the record
// table, the sector vocabulary and the single-batch guard.
type Workspace struct {
	Store      *domain.Store
	Vocabulary *domain.Vocabulary
	Logger     *zap.Logger
	Denylist   []string

	busy atomic.Bool
}

// WorkspaceOption configures a Workspace
type WorkspaceOption func(*Workspace)

// WithLogger sets the workspace logger
func WithLogger(logger *zap.Logger) WorkspaceOption {
	return func(w *Workspace) {
		if logger != nil {
			w.Logger = logger
		}
	}
}

// WithDenylist appends extra lines to drop from pasted batches
func WithDenylist(lines []string) WorkspaceOption {
	return func(w *Workspace) {
		w.Denylist = append(w.Denylist, lines...)
	}
}

// WithVocabulary seeds the vocabulary
func WithVocabulary(builtin, custom []string) WorkspaceOption {
	return func(w *Workspace) {
		w.Vocabulary.Replace(builtin, custom)
	}
}

// NewWorkspace creates an empty workspace with the built-in sectors
func NewWorkspace(opts ...WorkspaceOption) *Workspace {
	w := &Workspace{
		Store:      domain.NewStore(),
		Vocabulary: domain.NewVocabulary(domain.BuiltinLabels(), nil),
		Logger:     zap.NewNop(),
		Denylist:   append([]string(nil), domain.DefaultDenylist...),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// TryBegin claims the batch slot. It returns false when a batch already runs.
func (w *Workspace) TryBegin() bool {
	return w.busy.CompareAndSwap(false, true)
}

// End releases the batch slot
func (w *Workspace) End() {
	w.busy.Store(false)
}

// Busy reports whether a batch is running
func (w *Workspace) Busy() bool {
	return w.busy.Load()
}

// Projection derives the current display model
func (w *Workspace) Projection() domain.Projection {
	return domain.Project(w.Store.Records())
}

// SectorOptions lists the picker entries for the row at index
func (w *Workspace) SectorOptions(index int) ([]domain.SectorOption, error) {
	r, err := w.Store.At(index)
	if err != nil {
		return nil, err
	}
	return domain.SectorOptions(w.Vocabulary, r.Sector), nil
}
