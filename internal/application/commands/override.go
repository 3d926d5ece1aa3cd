package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// ApplyOverrideResult contains the result of a sector correction
type ApplyOverrideResult struct {
	Index    int
	Identity string
	Sector   string
	State    domain.OverrideState
	IsNew    bool
	Message  string
}

// ApplyOverrideCommand corrects a row's sector. The row changes first
// (Stage), then the correction is saved (Persist). A failed save is logged
// and flagged on the row; the new sector stays.
type ApplyOverrideCommand struct {
	ws      *application.Workspace
	sectors ports.SectorRepository
	Index   int
	Sector  string

	identity string
	staged   bool
}

// NewApplyOverrideCommand creates a new ApplyOverrideCommand
func NewApplyOverrideCommand(ws *application.Workspace, sectors ports.SectorRepository, index int, sector string) *ApplyOverrideCommand {
	return &ApplyOverrideCommand{
		ws:      ws,
		sectors: sectors,
		Index:   index,
		Sector:  strings.TrimSpace(sector),
	}
}

// Validate checks if the correction is valid
func (c *ApplyOverrideCommand) Validate() error {
	if err := application.ValidateSector("sector", c.Sector); err != nil {
		return err
	}
	return application.ValidateIndex(c.Index, c.ws.Store.Len())
}

// Identity returns the input captured by Stage
func (c *ApplyOverrideCommand) Identity() string {
	return c.identity
}

// Stage applies the correction to the table and marks it pending
func (c *ApplyOverrideCommand) Stage() error {
	if err := c.Validate(); err != nil {
		return err
	}

	current, err := c.ws.Store.At(c.Index)
	if err != nil {
		return err
	}
	c.identity = current.Input

	err = c.ws.Store.UpdateAt(c.Index, func(r *domain.Record) {
		r.Sector = c.Sector
		r.Editing = false
		r.Override = domain.OverridePending
	})
	if err != nil {
		return err
	}
	c.staged = true
	return nil
}

// Persist saves the staged correction and reconciles the vocabulary
func (c *ApplyOverrideCommand) Persist(ctx context.Context) (*ApplyOverrideResult, error) {
	if !c.staged {
		return nil, fmt.Errorf("failed to save override: %w", application.ErrInvalidOperation)
	}

	log := c.ws.Logger.With(
		zap.Int("index", c.Index),
		zap.String("input", c.identity),
		zap.String("sector", c.Sector))

	result := &ApplyOverrideResult{
		Index:    c.Index,
		Identity: c.identity,
		Sector:   c.Sector,
	}

	saved, err := c.sectors.OverrideSector(ctx, c.identity, c.Sector)
	if err != nil {
		log.Error("override not saved", zap.Error(err))
		c.settle(domain.OverrideFailed)
		result.State = domain.OverrideFailed
		result.Message = fmt.Sprintf("Sector set to %s but not saved", c.Sector)
		return result, fmt.Errorf("failed to save override: %w", err)
	}

	if saved.IsNew && c.ws.Vocabulary.AddCustom(c.Sector) {
		log.Info("custom sector added")
	}
	c.settle(domain.OverrideConfirmed)

	result.State = domain.OverrideConfirmed
	result.IsNew = saved.IsNew
	result.Message = fmt.Sprintf("Saved %s as %s", c.identity, c.Sector)
	return result, nil
}

// Execute stages and persists the correction
func (c *ApplyOverrideCommand) Execute(ctx context.Context) (*ApplyOverrideResult, error) {
	if err := c.Stage(); err != nil {
		return nil, err
	}
	return c.Persist(ctx)
}

// settle updates the row state only if the row still holds this correction
func (c *ApplyOverrideCommand) settle(state domain.OverrideState) {
	_ = c.ws.Store.UpdateAt(c.Index, func(r *domain.Record) {
		if r.Input == c.identity && r.Sector == c.Sector && r.Override == domain.OverridePending {
			r.Override = state
		}
	})
}
