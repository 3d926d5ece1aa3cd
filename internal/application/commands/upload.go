package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// UploadResult contains the result of classifying an uploaded file
type UploadResult struct {
	Total   int
	Stats   domain.Stats
	Message string
}

// UploadCommand classifies the first column of a spreadsheet in one call
// and replaces the table with the results.
type UploadCommand struct {
	ws         *application.Workspace
	classifier ports.Classifier
	reader     ports.NameReader
	Filename   string
	Data       []byte
}

// NewUploadCommand creates a new UploadCommand
func NewUploadCommand(ws *application.Workspace, classifier ports.Classifier, reader ports.NameReader, filename string, data []byte) *UploadCommand {
	return &UploadCommand{
		ws:         ws,
		classifier: classifier,
		reader:     reader,
		Filename:   filename,
		Data:       data,
	}
}

// Validate checks if the upload is valid
func (c *UploadCommand) Validate() error {
	return application.ValidateRequired("filename", c.Filename)
}

// Execute reads the file and classifies every name. The table is only
// replaced when the whole batch call succeeds.
func (c *UploadCommand) Execute(ctx context.Context) (*UploadResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	names, err := c.reader.ReadNames(c.Filename, c.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.Filename, err)
	}
	names = domain.NormalizeBatch(names, c.ws.Denylist)
	if len(names) == 0 {
		return nil, &application.ValidationError{
			Field:   "filename",
			Message: fmt.Sprintf("no company names found in %s", c.Filename),
			Err:     application.ErrEmptyInput,
		}
	}

	if !c.ws.TryBegin() {
		return nil, application.ErrBatchInProgress
	}
	defer c.ws.End()

	c.ws.Logger.Info("upload started", zap.String("file", c.Filename), zap.Int("total", len(names)))

	records, err := c.classifier.ClassifyBatch(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to classify %s: %w", c.Filename, err)
	}

	c.ws.Store.Replace(records)
	stats := c.ws.Store.Stats()

	return &UploadResult{
		Total:   len(records),
		Stats:   stats,
		Message: fmt.Sprintf("Classified %d companies from %s", len(records), c.Filename),
	}, nil
}
