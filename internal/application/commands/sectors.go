package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"enrichio/internal/application"
	"enrichio/internal/ports"
)

// DeleteSectorResult contains the result of deleting a custom sector
type DeleteSectorResult struct {
	Label   string
	Message string
}

// DeleteSectorCommand removes a custom sector once the operator confirmed it.
// Rows already using the label keep it.
type DeleteSectorCommand struct {
	ws        *application.Workspace
	sectors   ports.SectorRepository
	Label     string
	Confirmed bool
}

// NewDeleteSectorCommand creates a new DeleteSectorCommand
func NewDeleteSectorCommand(ws *application.Workspace, sectors ports.SectorRepository, label string, confirmed bool) *DeleteSectorCommand {
	return &DeleteSectorCommand{
		ws:        ws,
		sectors:   sectors,
		Label:     strings.TrimSpace(label),
		Confirmed: confirmed,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteSectorCommand) Validate() error {
	if err := application.ValidateRequired("label", c.Label); err != nil {
		return err
	}
	if !c.ws.Vocabulary.IsCustom(c.Label) {
		return &application.ValidationError{
			Field:   "label",
			Message: fmt.Sprintf("%s is not a custom sector", c.Label),
			Err:     application.ErrNotCustom,
		}
	}
	if !c.Confirmed {
		return &application.ValidationError{
			Field:   "confirmed",
			Message: fmt.Sprintf("deleting %s must be confirmed", c.Label),
			Err:     application.ErrNotConfirmed,
		}
	}
	return nil
}

// Execute deletes the label from storage, then from the vocabulary
func (c *DeleteSectorCommand) Execute(ctx context.Context) (*DeleteSectorResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.sectors.DeleteSector(ctx, c.Label); err != nil {
		c.ws.Logger.Error("sector not deleted", zap.String("sector", c.Label), zap.Error(err))
		return nil, fmt.Errorf("failed to delete sector: %w", err)
	}

	c.ws.Vocabulary.RemoveCustom(c.Label)
	return &DeleteSectorResult{
		Label:   c.Label,
		Message: fmt.Sprintf("Deleted sector: %s", c.Label),
	}, nil
}

// LoadSectorsCommand fills the vocabulary from storage
type LoadSectorsCommand struct {
	ws      *application.Workspace
	sectors ports.SectorRepository
}

// NewLoadSectorsCommand creates a new LoadSectorsCommand
func NewLoadSectorsCommand(ws *application.Workspace, sectors ports.SectorRepository) *LoadSectorsCommand {
	return &LoadSectorsCommand{ws: ws, sectors: sectors}
}

// Execute replaces the vocabulary with the stored sectors
func (c *LoadSectorsCommand) Execute(ctx context.Context) (int, error) {
	builtin, custom, err := c.sectors.ListSectors(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load sectors: %w", err)
	}
	c.ws.Vocabulary.Replace(builtin, custom)
	return c.ws.Vocabulary.Len(), nil
}

// ListOverridesCommand lists saved corrections
type ListOverridesCommand struct {
	sectors ports.SectorRepository
}

// NewListOverridesCommand creates a new ListOverridesCommand
func NewListOverridesCommand(sectors ports.SectorRepository) *ListOverridesCommand {
	return &ListOverridesCommand{sectors: sectors}
}

// Execute returns the saved corrections
func (c *ListOverridesCommand) Execute(ctx context.Context) ([]ports.OverrideEntry, error) {
	entries, err := c.sectors.ListOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	return entries, nil
}

// OverrideHistoryCommand lists every correction saved for one input
type OverrideHistoryCommand struct {
	sectors  ports.SectorRepository
	Identity string
}

// NewOverrideHistoryCommand creates a new OverrideHistoryCommand
func NewOverrideHistoryCommand(sectors ports.SectorRepository, identity string) *OverrideHistoryCommand {
	return &OverrideHistoryCommand{sectors: sectors, Identity: strings.TrimSpace(identity)}
}

// Validate checks if the history request is valid
func (c *OverrideHistoryCommand) Validate() error {
	return application.ValidateRequired("rawName", c.Identity)
}

// Execute returns the corrections, oldest first
func (c *OverrideHistoryCommand) Execute(ctx context.Context) ([]ports.HistoryEntry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	entries, err := c.sectors.History(ctx, c.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

// IsValidationError reports whether err is a rejected input that front ends
// may ignore silently
func IsValidationError(err error) bool {
	var valErr *application.ValidationError
	return errors.As(err, &valErr) && errors.Is(err, application.ErrEmptyInput)
}
