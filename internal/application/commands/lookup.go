package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// LookupResult contains the result of a single lookup
type LookupResult struct {
	Record  domain.Record
	Failed  bool
	Message string
}

// LookupCommand classifies one name and puts the result at the top of the table
type LookupCommand struct {
	ws         *application.Workspace
	classifier ports.Classifier
	RawName    string
}

// NewLookupCommand creates a new LookupCommand
func NewLookupCommand(ws *application.Workspace, classifier ports.Classifier, rawName string) *LookupCommand {
	return &LookupCommand{
		ws:         ws,
		classifier: classifier,
		RawName:    rawName,
	}
}

// Validate checks if the lookup is valid
func (c *LookupCommand) Validate() error {
	return application.ValidateRequired("rawName", c.RawName)
}

// Execute runs the lookup. A failed lookup still produces an error row.
func (c *LookupCommand) Execute(ctx context.Context) (*LookupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	record, err := c.classifier.ClassifyOne(ctx, c.RawName)
	if err != nil {
		c.ws.Logger.Warn("lookup failed", zap.String("input", c.RawName), zap.Error(err))
		failed := domain.NewErrorRecord(c.RawName, err)
		c.ws.Store.Prepend(failed)
		return &LookupResult{
			Record:  failed,
			Failed:  true,
			Message: fmt.Sprintf("Lookup failed for %s", c.RawName),
		}, nil
	}
	if record == nil {
		miss := domain.NewNotFoundRecord(c.RawName, c.RawName)
		record = &miss
	}

	record.Normalize()
	c.ws.Store.Prepend(*record)
	return &LookupResult{
		Record:  *record,
		Message: fmt.Sprintf("%s: %s", record.OfficialName, record.Sector),
	}, nil
}
