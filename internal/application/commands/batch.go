package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// ProgressFunc receives (processed, total) after every attempted name
type ProgressFunc func(domain.Progress)

// ProcessBatchResult contains the outcome of a pasted batch
type ProcessBatchResult struct {
	BatchID   string
	Total     int
	Succeeded int
	// Skipped lists inputs whose lookup failed; they have no row in the table
	Skipped []string
	Message string
}

// ProcessBatchCommand enriches pasted names one at a time, appending each
// result to the table as soon as it arrives.
type ProcessBatchCommand struct {
	ws         *application.Workspace
	classifier ports.Classifier
	Lines      []string
	OnProgress ProgressFunc
}

// NewProcessBatchCommand creates a new ProcessBatchCommand
func NewProcessBatchCommand(ws *application.Workspace, classifier ports.Classifier, lines []string, onProgress ProgressFunc) *ProcessBatchCommand {
	return &ProcessBatchCommand{
		ws:         ws,
		classifier: classifier,
		Lines:      lines,
		OnProgress: onProgress,
	}
}

// Names returns the inputs left after normalization
func (c *ProcessBatchCommand) Names() []string {
	return domain.NormalizeBatch(c.Lines, c.ws.Denylist)
}

// Execute runs the batch. An empty batch is a no-op. Names are classified
// sequentially; a failed name is logged and skipped. Cancelling ctx stops the
// loop between names and keeps the rows gathered so far.
func (c *ProcessBatchCommand) Execute(ctx context.Context) (*ProcessBatchResult, error) {
	names := c.Names()
	if len(names) == 0 {
		return &ProcessBatchResult{Message: "Nothing to process"}, nil
	}

	if !c.ws.TryBegin() {
		return nil, application.ErrBatchInProgress
	}
	defer c.ws.End()

	result := &ProcessBatchResult{
		BatchID: uuid.NewString(),
		Total:   len(names),
	}
	log := c.ws.Logger.With(zap.String("batch_id", result.BatchID), zap.Int("total", result.Total))
	log.Info("batch started")

	c.ws.Store.Replace(nil)
	c.report(0, result.Total)

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			log.Info("batch cancelled", zap.Int("processed", i))
			result.Message = fmt.Sprintf("Cancelled after %d of %d", i, result.Total)
			return result, fmt.Errorf("batch cancelled: %w", err)
		}

		record, err := c.classifier.ClassifyOne(ctx, name)
		if err != nil {
			log.Warn("lookup failed, skipping", zap.String("input", name), zap.Error(err))
			result.Skipped = append(result.Skipped, name)
		} else {
			if record == nil {
				miss := domain.NewNotFoundRecord(name, name)
				record = &miss
			}
			c.ws.Store.Append(*record)
			result.Succeeded++
		}

		c.report(i+1, result.Total)
	}

	log.Info("batch finished",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("skipped", len(result.Skipped)))

	result.Message = fmt.Sprintf("Enriched %d of %d", result.Succeeded, result.Total)
	if len(result.Skipped) > 0 {
		result.Message += fmt.Sprintf(" (%d skipped)", len(result.Skipped))
	}
	return result, nil
}

func (c *ProcessBatchCommand) report(processed, total int) {
	if c.OnProgress != nil {
		c.OnProgress(domain.Progress{Processed: processed, Total: total})
	}
}
