package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"enrichio/internal/application"
	"enrichio/internal/application/commands"
	"enrichio/internal/ports"
)

// RegisterWriteTools adds all tools that classify, correct or export.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(lookupTool(), lookupHandler(deps))
	s.AddTool(processBatchTool(), processBatchHandler(deps))
	s.AddTool(overrideTool(), overrideHandler(deps))
	s.AddTool(deleteSectorTool(), deleteSectorHandler(deps))
	s.AddTool(exportTool(), exportHandler(deps))
	s.AddTool(clearTool(), clearHandler(deps))
}

// --- lookup ---

func lookupTool() mcp.Tool {
	return mcp.NewTool("lookup",
		mcp.WithDescription("Look up one company (name or e-mail address) in the French company directory and classify its sector. The result is added at the top of the session table."),
		mcp.WithString("name",
			mcp.Description("Company name or e-mail address"),
			mcp.Required(),
		),
	)
}

func lookupHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewLookupCommand(deps.Workspace, deps.Classifier, req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Failed {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %s", result.Message, result.Record.Detail)), nil
		}
		return mcp.NewToolResultText(formatRecord(result.Record)), nil
	}
}

// --- process_batch ---

func processBatchTool() mcp.Tool {
	return mcp.NewTool("process_batch",
		mcp.WithDescription("Classify a list of companies, one per line. Blank and boilerplate lines are dropped; names whose lookup fails are skipped and reported. Replaces the session table."),
		mcp.WithString("names",
			mcp.Description("Company names, one per line"),
			mcp.Required(),
		),
	)
}

func processBatchHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lines := application.SplitLines(req.GetString("names", ""))
		result, err := commands.NewProcessBatchCommand(deps.Workspace, deps.Classifier, lines, nil).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		if len(result.Skipped) > 0 {
			fmt.Fprintf(&sb, "skipped: %s\n", strings.Join(result.Skipped, ", "))
		}
		sb.WriteString(formatStats(deps.Workspace.Store.Stats()))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- override_sector ---

func overrideTool() mcp.Tool {
	return mcp.NewTool("override_sector",
		mcp.WithDescription("Correct the sector of a session row. The correction is saved and applies to future lookups of the same input; an unknown sector becomes a custom sector."),
		mcp.WithNumber("index",
			mcp.Description("Row index as shown by list_records"),
			mcp.Required(),
		),
		mcp.WithString("sector",
			mcp.Description("Sector label"),
			mcp.Required(),
		),
	)
}

func overrideHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewApplyOverrideCommand(deps.Workspace, deps.Sectors, req.GetInt("index", -1), req.GetString("sector", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			if result != nil {
				return toolError(fmt.Errorf("%s: %w", result.Message, err))
			}
			return toolError(err)
		}
		msg := result.Message
		if result.IsNew {
			msg += fmt.Sprintf("\n%s added to custom sectors", result.Sector)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- delete_sector ---

func deleteSectorTool() mcp.Tool {
	return mcp.NewTool("delete_sector",
		mcp.WithDescription("Delete a custom sector. Built-in sectors cannot be deleted. Rows already using the sector keep it."),
		mcp.WithString("label",
			mcp.Description("Custom sector label"),
			mcp.Required(),
		),
		mcp.WithBoolean("confirm",
			mcp.Description("Must be true to delete"),
			mcp.Required(),
		),
	)
}

func deleteSectorHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := commands.NewLoadSectorsCommand(deps.Workspace, deps.Sectors).Execute(ctx); err != nil {
			return toolError(err)
		}
		cmd := commands.NewDeleteSectorCommand(deps.Workspace, deps.Sectors, req.GetString("label", ""), req.GetBool("confirm", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- export_records ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_records",
		mcp.WithDescription("Write the session table to a spreadsheet file and return its path."),
		mcp.WithString("format",
			mcp.Description("xlsx (default) or csv"),
			mcp.Enum(string(ports.ExportXLSX), string(ports.ExportCSV)),
		),
		mcp.WithString("path",
			mcp.Description("Output file. Defaults to export_entreprises_<timestamp>.<format> in the working directory."),
		),
	)
}

func exportHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := ports.ExportFormat(req.GetString("format", string(ports.ExportXLSX)))
		if format != ports.ExportXLSX && format != ports.ExportCSV {
			return toolError(fmt.Errorf("%s: %w", format, ports.ErrUnsupportedFormat))
		}
		if deps.Workspace.Store.Len() == 0 {
			return toolError(application.ErrNothingToExport)
		}

		path := req.GetString("path", "")
		if path == "" {
			path = commands.ExportFilename(format, time.Now())
		}

		f, err := os.Create(path)
		if err != nil {
			return toolError(fmt.Errorf("failed to create %s: %w", path, err))
		}
		result, err := commands.NewExportCommand(deps.Workspace, deps.Exporter, format, f).Execute(ctx)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s to %s", result.Message, path)), nil
	}
}

// --- clear ---

func clearTool() mcp.Tool {
	return mcp.NewTool("clear_records",
		mcp.WithDescription("Empty the session table. Saved corrections are kept."),
	)
}

func clearHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := commands.NewClearCommand(deps.Workspace).Execute(ctx); err != nil {
			return toolError(fmt.Errorf("cannot clear: %w", err))
		}
		return mcp.NewToolResultText("Table cleared."), nil
	}
}
