package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"enrichio/internal/application"
	"enrichio/internal/application/commands"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

// Deps are the services the tools drive. One Workspace backs the whole
// session, so rows produced by lookup tools can be listed and corrected later.
type Deps struct {
	Workspace  *application.Workspace
	Classifier ports.Classifier
	Sectors    ports.SectorRepository
	Exporter   ports.Exporter
}

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(listRecordsTool(), listRecordsHandler(deps))
	s.AddTool(statsTool(), statsHandler(deps))
	s.AddTool(listSectorsTool(), listSectorsHandler(deps))
	s.AddTool(listOverridesTool(), listOverridesHandler(deps))
	s.AddTool(historyTool(), historyHandler(deps))
}

// --- list_records ---

func listRecordsTool() mcp.Tool {
	return mcp.NewTool("list_records",
		mcp.WithDescription("List the enriched companies of this session with their row index, sector, region and directory link."),
	)
}

func listRecordsHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p := deps.Workspace.Projection()
		if p.Empty {
			return mcp.NewToolResultText("No records."), nil
		}
		var sb strings.Builder
		for _, row := range p.Rows {
			sb.WriteString(formatRow(row))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Count the records found, not found and in error."),
	)
}

func statsHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(formatStats(deps.Workspace.Store.Stats())), nil
	}
}

// --- list_sectors ---

func listSectorsTool() mcp.Tool {
	return mcp.NewTool("list_sectors",
		mcp.WithDescription("List the sector vocabulary. Custom sectors are marked and can be deleted."),
	)
}

func listSectorsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := commands.NewLoadSectorsCommand(deps.Workspace, deps.Sectors).Execute(ctx); err != nil {
			return toolError(err)
		}
		vocab := deps.Workspace.Vocabulary
		var sb strings.Builder
		for _, label := range vocab.SortedAll() {
			if vocab.IsCustom(label) {
				fmt.Fprintf(&sb, "%s  (custom)\n", label)
				continue
			}
			sb.WriteString(label)
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_overrides ---

func listOverridesTool() mcp.Tool {
	return mcp.NewTool("list_overrides",
		mcp.WithDescription("List saved manual sector corrections, most recent first."),
	)
}

func listOverridesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := commands.NewListOverridesCommand(deps.Sectors).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, func(e ports.OverrideEntry) string {
			return fmt.Sprintf("%s  %s → %s  %s", e.Identity, orDash(e.PreviousSector), e.Sector, e.UpdatedAt.Format("2006-01-02 15:04"))
		})
	}
}

// --- override_history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("override_history",
		mcp.WithDescription("Show every correction saved for a company input, oldest first."),
		mcp.WithString("input",
			mcp.Description("Company input exactly as submitted"),
			mcp.Required(),
		),
	)
}

func historyHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := commands.NewOverrideHistoryCommand(deps.Sectors, req.GetString("input", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, func(e ports.HistoryEntry) string {
			return fmt.Sprintf("%s  %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Sector)
		})
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRow(row domain.Row) string {
	r := row.Record
	line := fmt.Sprintf("%d  %s  %s  %s  %s  %s", row.Index, r.Input, r.OfficialName, r.Sector, orDash(r.Region), orDash(r.Link))
	if r.IsCompetitor {
		line += "  [competitor]"
	}
	return line
}

func formatRecord(r domain.Record) string {
	return fmt.Sprintf("%s → %s (%s)\nsector: %s\nregion: %s\nheadcount: %s\nlink: %s",
		r.Input, r.OfficialName, orDash(r.Detail), r.Sector, orDash(r.Region), orDash(r.Headcount), orDash(r.Link))
}

func formatStats(s domain.Stats) string {
	return fmt.Sprintf("total: %d\nfound: %d\nnot found: %d\nerror: %d", s.Total(), s.Found, s.NotFound, s.Error)
}

func orDash(s string) string {
	if s == "" {
		return domain.NoValue
	}
	return s
}
