package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

func TestDeleteSectorCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		confirmed bool
		wantErr   error
		errMsg    string
	}{
		{
			name:      "confirmed custom sector",
			label:     "Biotech",
			confirmed: true,
		},
		{
			name:      "not confirmed",
			label:     "Biotech",
			confirmed: false,
			wantErr:   application.ErrNotConfirmed,
			errMsg:    "must be confirmed",
		},
		{
			name:      "built-in sector",
			label:     "Retail",
			confirmed: true,
			wantErr:   application.ErrNotCustom,
			errMsg:    "is not a custom sector",
		},
		{
			name:      "empty label",
			label:     "",
			confirmed: true,
			wantErr:   application.ErrEmptyInput,
			errMsg:    "sector label is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := application.NewWorkspace(application.WithVocabulary([]string{"Retail"}, []string{"Biotech"}))
			err := NewDeleteSectorCommand(ws, new(mockSectors), tt.label, tt.confirmed).Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestDeleteSectorCommand_Execute(t *testing.T) {
	t.Run("removes the label but not from rows", func(t *testing.T) {
		ws := application.NewWorkspace(application.WithVocabulary([]string{"Retail"}, []string{"Biotech"}))
		ws.Store.Append(domain.Record{Input: "Genfit", Sector: "Biotech"})

		sectors := new(mockSectors)
		sectors.On("DeleteSector", mock.Anything, "Biotech").Return(nil)

		result, err := NewDeleteSectorCommand(ws, sectors, "Biotech", true).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Deleted sector: Biotech", result.Message)

		assert.False(t, ws.Vocabulary.Contains("Biotech"))
		r, _ := ws.Store.At(0)
		assert.Equal(t, "Biotech", r.Sector)

		opts, err := ws.SectorOptions(0)
		require.NoError(t, err)
		assert.Equal(t, domain.SectorOption{Label: "Biotech", Selected: true, Unlisted: true}, opts[0])
	})

	t.Run("failure leaves the vocabulary untouched", func(t *testing.T) {
		ws := application.NewWorkspace(application.WithVocabulary([]string{"Retail"}, []string{"Biotech"}))
		sectors := new(mockSectors)
		sectors.On("DeleteSector", mock.Anything, "Biotech").Return(errors.New("disk I/O error"))

		_, err := NewDeleteSectorCommand(ws, sectors, "Biotech", true).Execute(context.Background())
		require.Error(t, err)

		assert.True(t, ws.Vocabulary.IsCustom("Biotech"))
	})

	t.Run("unconfirmed never reaches storage", func(t *testing.T) {
		ws := application.NewWorkspace(application.WithVocabulary(nil, []string{"Biotech"}))
		sectors := new(mockSectors)

		_, err := NewDeleteSectorCommand(ws, sectors, "Biotech", false).Execute(context.Background())
		require.ErrorIs(t, err, application.ErrNotConfirmed)
		sectors.AssertNotCalled(t, "DeleteSector", mock.Anything, mock.Anything)
	})
}

func TestLoadSectorsCommand(t *testing.T) {
	ws := application.NewWorkspace()
	sectors := new(mockSectors)
	sectors.On("ListSectors", mock.Anything).Return([]string{"Retail", "Banking"}, []string{"Biotech"}, nil)

	n, err := NewLoadSectorsCommand(ws, sectors).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"Banking", "Biotech", "Retail"}, ws.Vocabulary.SortedAll())
	assert.Equal(t, []string{"Biotech"}, ws.Vocabulary.Custom())
}

func TestListOverridesCommand(t *testing.T) {
	now := time.Now()
	sectors := new(mockSectors)
	sectors.On("ListOverrides", mock.Anything).Return([]ports.OverrideEntry{
		{Identity: "Acme", Sector: "Finance", UpdatedAt: now},
	}, nil)

	entries, err := NewListOverridesCommand(sectors).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme", entries[0].Identity)
}

func TestOverrideHistoryCommand(t *testing.T) {
	t.Run("trimmed identity", func(t *testing.T) {
		sectors := new(mockSectors)
		sectors.On("History", mock.Anything, "Acme").Return([]ports.HistoryEntry{
			{ID: "1", Identity: "Acme", Sector: "Retail"},
			{ID: "2", Identity: "Acme", Sector: "Finance"},
		}, nil)

		entries, err := NewOverrideHistoryCommand(sectors, "  Acme ").Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Finance", entries[1].Sector)
	})

	t.Run("empty identity", func(t *testing.T) {
		sectors := new(mockSectors)

		_, err := NewOverrideHistoryCommand(sectors, " ").Execute(context.Background())
		assert.True(t, IsValidationError(err))
		sectors.AssertNotCalled(t, "History", mock.Anything, mock.Anything)
	})
}
