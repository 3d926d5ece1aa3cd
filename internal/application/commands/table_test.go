package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"enrichio/internal/application"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

func TestToggleCompetitorCommand(t *testing.T) {
	ws := application.NewWorkspace()
	ws.Store.Append(domain.Record{Input: "Danone", Sector: "Food / Beverages"})

	flagged, err := NewToggleCompetitorCommand(ws, 0).Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, flagged)

	flagged, err = NewToggleCompetitorCommand(ws, 0).Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, flagged)

	_, err = NewToggleCompetitorCommand(ws, 3).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrIndexOutOfRange)
}

func TestClearCommand(t *testing.T) {
	ws := application.NewWorkspace()
	ws.Store.Append(domain.Record{Input: "Danone", Sector: "Food / Beverages"})

	require.True(t, ws.TryBegin())
	assert.ErrorIs(t, NewClearCommand(ws).Execute(context.Background()), application.ErrBatchInProgress)
	assert.Equal(t, 1, ws.Store.Len())
	ws.End()

	require.NoError(t, NewClearCommand(ws).Execute(context.Background()))
	assert.Equal(t, 0, ws.Store.Len())
}

func TestExportCommand(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		ws := application.NewWorkspace()
		exporter := new(mockExporter)

		_, err := NewExportCommand(ws, exporter, ports.ExportCSV, &bytes.Buffer{}).Execute(context.Background())
		assert.ErrorIs(t, err, application.ErrNothingToExport)
		exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rows written", func(t *testing.T) {
		ws := application.NewWorkspace()
		ws.Store.Append(domain.Record{Input: "Danone", Sector: "Food / Beverages"})
		ws.Store.Append(domain.Record{Input: "LVMH", Sector: "Luxe"})

		var buf bytes.Buffer
		exporter := new(mockExporter)
		exporter.On("Export", &buf, ports.ExportXLSX, mock.MatchedBy(func(rs []domain.Record) bool {
			return len(rs) == 2
		})).Return(nil)

		result, err := NewExportCommand(ws, exporter, ports.ExportXLSX, &buf).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, result.Rows)
		exporter.AssertExpectations(t)
	})

	t.Run("exporter failure", func(t *testing.T) {
		ws := application.NewWorkspace()
		ws.Store.Append(domain.Record{Input: "Danone", Sector: "Food / Beverages"})

		exporter := new(mockExporter)
		exporter.On("Export", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := NewExportCommand(ws, exporter, ports.ExportCSV, &bytes.Buffer{}).Execute(context.Background())
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestExportFilename(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "export_entreprises_1700000000123.xlsx", ExportFilename(ports.ExportXLSX, at))
	assert.Equal(t, "export_entreprises_1700000000123.csv", ExportFilename(ports.ExportCSV, at))
}
