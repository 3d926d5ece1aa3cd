package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// ToggleCompetitorCommand flips the competitor flag of a row
type ToggleCompetitorCommand struct {
	ws    *application.Workspace
	Index int
}

// NewToggleCompetitorCommand creates a new ToggleCompetitorCommand
func NewToggleCompetitorCommand(ws *application.Workspace, index int) *ToggleCompetitorCommand {
	return &ToggleCompetitorCommand{ws: ws, Index: index}
}

// Execute flips the flag and returns its new value
func (c *ToggleCompetitorCommand) Execute(ctx context.Context) (bool, error) {
	if err := application.ValidateIndex(c.Index, c.ws.Store.Len()); err != nil {
		return false, err
	}
	var flagged bool
	err := c.ws.Store.UpdateAt(c.Index, func(r *domain.Record) {
		r.IsCompetitor = !r.IsCompetitor
		flagged = r.IsCompetitor
	})
	return flagged, err
}

// ClearCommand empties the table
type ClearCommand struct {
	ws *application.Workspace
}

// NewClearCommand creates a new ClearCommand
func NewClearCommand(ws *application.Workspace) *ClearCommand {
	return &ClearCommand{ws: ws}
}

// Execute empties the table unless a batch is running
func (c *ClearCommand) Execute(ctx context.Context) error {
	if c.ws.Busy() {
		return application.ErrBatchInProgress
	}
	c.ws.Store.Replace(nil)
	return nil
}

// ExportResult contains the result of an export
type ExportResult struct {
	Rows    int
	Message string
}

// ExportCommand writes the table as a spreadsheet
type ExportCommand struct {
	ws       *application.Workspace
	exporter ports.Exporter
	Format   ports.ExportFormat
	Out      io.Writer
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(ws *application.Workspace, exporter ports.Exporter, format ports.ExportFormat, out io.Writer) *ExportCommand {
	return &ExportCommand{
		ws:       ws,
		exporter: exporter,
		Format:   format,
		Out:      out,
	}
}

// Execute renders every row to Out
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	records := c.ws.Store.Records()
	if len(records) == 0 {
		return nil, application.ErrNothingToExport
	}
	if err := c.exporter.Export(c.Out, c.Format, records); err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}
	return &ExportResult{
		Rows:    len(records),
		Message: fmt.Sprintf("Exported %d rows", len(records)),
	}, nil
}

// ExportFilename returns the default export file name for format at t
func ExportFilename(format ports.ExportFormat, t time.Time) string {
	return fmt.Sprintf("export_entreprises_%d.%s", t.UnixMilli(), format)
}
