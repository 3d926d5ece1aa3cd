package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrichio/internal/adapters/spreadsheet"
	"enrichio/internal/adapters/sqlite"
	"enrichio/internal/application"
	"enrichio/internal/domain"
)

type stubClassifier struct{}

func (stubClassifier) ClassifyOne(_ context.Context, name string) (*domain.Record, error) {
	if name == "Broken" {
		return nil, errors.New("directory unavailable")
	}
	return &domain.Record{
		Input:        name,
		OfficialName: strings.ToUpper(name),
		Sector:       "Food / Beverages",
		Region:       "Île-de-France",
		Link:         "https://example.test/" + name,
	}, nil
}

func (s stubClassifier) ClassifyBatch(ctx context.Context, names []string) ([]domain.Record, error) {
	out := make([]domain.Record, 0, len(names))
	for _, n := range names {
		r, err := s.ClassifyOne(ctx, n)
		if err != nil {
			out = append(out, domain.NewErrorRecord(n, err))
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func newDeps(t *testing.T) Deps {
	t.Helper()
	store := sqlite.NewStore()
	require.NoError(t, store.Open(filepath.Join(t.TempDir(), "enrichio.db")))
	t.Cleanup(func() { _ = store.Close() })

	return Deps{
		Workspace:  application.NewWorkspace(),
		Classifier: stubClassifier{},
		Sectors:    store,
		Exporter:   spreadsheet.NewExporter(),
	}
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)

	var sb strings.Builder
	for _, c := range res.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			sb.WriteString(tc.Text)
		case *mcp.TextContent:
			sb.WriteString(tc.Text)
		}
	}
	return sb.String(), res.IsError
}

func TestLookupAndList(t *testing.T) {
	deps := newDeps(t)

	text, isErr := call(t, lookupHandler(deps), map[string]any{"name": "Danone"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "DANONE")
	assert.Contains(t, text, "Food / Beverages")

	text, isErr = call(t, listRecordsHandler(deps), nil)
	require.False(t, isErr)
	assert.True(t, strings.HasPrefix(text, "0  Danone  DANONE"), text)

	_, isErr = call(t, lookupHandler(deps), map[string]any{"name": "  "})
	assert.True(t, isErr, "blank name should be rejected")
}

func TestLookupFailure(t *testing.T) {
	deps := newDeps(t)

	text, isErr := call(t, lookupHandler(deps), map[string]any{"name": "Broken"})
	assert.True(t, isErr)
	assert.Contains(t, text, "Broken")
	assert.Equal(t, 1, deps.Workspace.Store.Len(), "a failed lookup still leaves an error row")
}

func TestProcessBatch(t *testing.T) {
	deps := newDeps(t)

	text, isErr := call(t, processBatchHandler(deps), map[string]any{"names": "Danone\n\nBroken\nLVMH"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Enriched 2 of 3")
	assert.Contains(t, text, "skipped: Broken")
	assert.Equal(t, 2, deps.Workspace.Store.Len())

	text, _ = call(t, statsHandler(deps), nil)
	assert.Contains(t, text, "found: 2")
}

func TestOverrideSectorAndHistory(t *testing.T) {
	deps := newDeps(t)
	call(t, lookupHandler(deps), map[string]any{"name": "Thales"})

	text, isErr := call(t, overrideHandler(deps), map[string]any{"index": float64(0), "sector": "Défense"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "added to custom sectors")

	r, err := deps.Workspace.Store.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Défense", r.Sector)
	assert.Equal(t, domain.OverrideConfirmed, r.Override)

	text, isErr = call(t, historyHandler(deps), map[string]any{"input": "Thales"})
	require.False(t, isErr)
	assert.Contains(t, text, "Défense")

	text, _ = call(t, listOverridesHandler(deps), nil)
	assert.Contains(t, text, "Thales")

	_, isErr = call(t, overrideHandler(deps), map[string]any{"index": float64(7), "sector": "Défense"})
	assert.True(t, isErr, "out of range index should be rejected")
}

func TestDeleteSectorRequiresConfirm(t *testing.T) {
	deps := newDeps(t)
	call(t, lookupHandler(deps), map[string]any{"name": "Thales"})
	call(t, overrideHandler(deps), map[string]any{"index": float64(0), "sector": "Défense"})

	_, isErr := call(t, deleteSectorHandler(deps), map[string]any{"label": "Défense"})
	assert.True(t, isErr)

	text, isErr := call(t, listSectorsHandler(deps), nil)
	require.False(t, isErr)
	assert.Contains(t, text, "Défense  (custom)")

	text, isErr = call(t, deleteSectorHandler(deps), map[string]any{"label": "Défense", "confirm": true})
	require.False(t, isErr, text)
	assert.False(t, deps.Workspace.Vocabulary.IsCustom("Défense"))
}

func TestExportRecords(t *testing.T) {
	deps := newDeps(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	_, isErr := call(t, exportHandler(deps), map[string]any{"format": "csv", "path": path})
	assert.True(t, isErr, "empty table cannot be exported")

	call(t, lookupHandler(deps), map[string]any{"name": "Danone"})
	text, isErr := call(t, exportHandler(deps), map[string]any{"format": "csv", "path": path})
	require.False(t, isErr, text)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Danone,DANONE,Food / Beverages")

	_, isErr = call(t, exportHandler(deps), map[string]any{"format": "pdf", "path": path})
	assert.True(t, isErr)
}

func TestClearRecords(t *testing.T) {
	deps := newDeps(t)
	call(t, lookupHandler(deps), map[string]any{"name": "Danone"})

	_, isErr := call(t, clearHandler(deps), nil)
	require.False(t, isErr)
	assert.Equal(t, 0, deps.Workspace.Store.Len())

	text, _ := call(t, listRecordsHandler(deps), nil)
	assert.Equal(t, "No records.", text)
}
