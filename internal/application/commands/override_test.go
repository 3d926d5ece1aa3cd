package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

func newOverrideWorkspace() *application.Workspace {
	ws := application.NewWorkspace(application.WithVocabulary([]string{"Finance", "Retail"}, nil))
	ws.Store.Replace([]domain.Record{
		{Input: "Acme", Sector: domain.SectorNotFound, Editing: true},
		{Input: "Globex", Sector: "Retail"},
	})
	return ws
}

func TestApplyOverrideCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		sector  string
		wantErr error
	}{
		{"valid", 0, "Finance", nil},
		{"empty sector", 0, "", application.ErrEmptyInput},
		{"blank sector", 0, "   ", application.ErrEmptyInput},
		{"index past the end", 2, "Finance", application.ErrIndexOutOfRange},
		{"negative index", -1, "Finance", application.ErrIndexOutOfRange},
		{"not found placeholder", 0, domain.SectorNotFound, application.ErrReservedSector},
		{"error placeholder", 0, domain.SectorError, application.ErrReservedSector},
		{"ignored placeholder", 0, domain.SectorIgnored, application.ErrReservedSector},
		{"legacy unknown label", 0, "Unknown", application.ErrReservedSector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewApplyOverrideCommand(newOverrideWorkspace(), new(mockSectors), tt.index, tt.sector)
			err := cmd.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyOverrideCommand_EmptySectorIsNoop(t *testing.T) {
	ws := newOverrideWorkspace()
	sectors := new(mockSectors)

	_, err := NewApplyOverrideCommand(ws, sectors, 0, "").Execute(context.Background())

	assert.True(t, IsValidationError(err))
	r, _ := ws.Store.At(0)
	assert.Equal(t, domain.SectorNotFound, r.Sector)
	assert.True(t, r.Editing)
	sectors.AssertNotCalled(t, "OverrideSector", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyOverrideCommand_OptimisticUpdate(t *testing.T) {
	ws := newOverrideWorkspace()
	sectors := new(mockSectors)
	cmd := NewApplyOverrideCommand(ws, sectors, 0, "Finance")

	require.NoError(t, cmd.Stage())

	r, _ := ws.Store.At(0)
	assert.Equal(t, "Finance", r.Sector, "sector must change before the save settles")
	assert.False(t, r.Editing)
	assert.Equal(t, domain.OverridePending, r.Override)
	assert.Equal(t, "Acme", cmd.Identity())
	sectors.AssertNotCalled(t, "OverrideSector", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyOverrideCommand_Persist(t *testing.T) {
	tests := []struct {
		name       string
		sector     string
		saved      *ports.OverrideResult
		saveErr    error
		wantState  domain.OverrideState
		wantCustom []string
		wantErr    bool
	}{
		{
			name:      "known sector",
			sector:    "Finance",
			saved:     &ports.OverrideResult{IsNew: false},
			wantState: domain.OverrideConfirmed,
		},
		{
			name:       "new sector joins the vocabulary",
			sector:     "Biotech",
			saved:      &ports.OverrideResult{IsNew: true},
			wantState:  domain.OverrideConfirmed,
			wantCustom: []string{"Biotech"},
		},
		{
			name:      "save failure keeps the new sector",
			sector:    "Biotech",
			saveErr:   errors.New("database is locked"),
			wantState: domain.OverrideFailed,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newOverrideWorkspace()
			sectors := new(mockSectors)
			sectors.On("OverrideSector", mock.Anything, "Acme", tt.sector).Return(tt.saved, tt.saveErr)

			result, err := NewApplyOverrideCommand(ws, sectors, 0, tt.sector).Execute(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.NotNil(t, result)
			assert.Equal(t, tt.wantState, result.State)

			r, _ := ws.Store.At(0)
			assert.Equal(t, tt.sector, r.Sector)
			assert.Equal(t, "Acme", r.Input)
			assert.Equal(t, tt.wantState, r.Override)
			assert.Equal(t, len(tt.wantCustom), len(ws.Vocabulary.Custom()))
			for _, c := range tt.wantCustom {
				assert.True(t, ws.Vocabulary.IsCustom(c))
			}
			sectors.AssertExpectations(t)
		})
	}
}

func TestApplyOverrideCommand_IdentityCapturedBeforeMutation(t *testing.T) {
	ws := newOverrideWorkspace()
	sectors := new(mockSectors)
	sectors.On("OverrideSector", mock.Anything, "Acme", mock.Anything).Return(&ports.OverrideResult{}, nil)

	first := NewApplyOverrideCommand(ws, sectors, 0, "Finance")
	second := NewApplyOverrideCommand(ws, sectors, 0, "Retail")
	require.NoError(t, first.Stage())
	require.NoError(t, second.Stage())

	_, err := first.Persist(context.Background())
	require.NoError(t, err)

	r, _ := ws.Store.At(0)
	assert.Equal(t, "Retail", r.Sector)
	assert.Equal(t, domain.OverridePending, r.Override, "a stale save must not confirm a newer edit")

	_, err = second.Persist(context.Background())
	require.NoError(t, err)
	r, _ = ws.Store.At(0)
	assert.Equal(t, domain.OverrideConfirmed, r.Override)

	sectors.AssertCalled(t, "OverrideSector", mock.Anything, "Acme", "Finance")
	sectors.AssertCalled(t, "OverrideSector", mock.Anything, "Acme", "Retail")
}

func TestApplyOverrideCommand_PersistWithoutStage(t *testing.T) {
	cmd := NewApplyOverrideCommand(newOverrideWorkspace(), new(mockSectors), 0, "Finance")
	_, err := cmd.Persist(context.Background())
	assert.ErrorIs(t, err, application.ErrInvalidOperation)
}

func TestApplyOverrideCommand_CurrentPlaceholderIsNotSaved(t *testing.T) {
	ws := newOverrideWorkspace()
	sectors := new(mockSectors)

	options, err := ws.SectorOptions(0)
	require.NoError(t, err)
	var chosen string
	for _, o := range options {
		if o.Selected {
			chosen = o.Label
		}
	}
	require.Equal(t, domain.SectorNotFound, chosen)

	_, err = NewApplyOverrideCommand(ws, sectors, 0, chosen).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrReservedSector)
	assert.True(t, IsValidationError(err))

	r, _ := ws.Store.At(0)
	assert.Equal(t, domain.SectorNotFound, r.Sector)
	assert.Equal(t, domain.OverrideNone, r.Override)
	assert.Empty(t, ws.Vocabulary.Custom())
	sectors.AssertNotCalled(t, "OverrideSector", mock.Anything, mock.Anything, mock.Anything)

	for _, o := range domain.SectorOptions(ws.Vocabulary, "Retail") {
		assert.NotEqual(t, domain.SectorNotFound, o.Label)
	}
}
