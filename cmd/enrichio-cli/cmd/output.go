package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"enrichio/internal/application/commands"
	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderRecords prints the session table
func renderRecords(w io.Writer, p domain.Projection) {
	if p.Empty {
		fmt.Fprintln(w, "No records.")
		return
	}

	rows := make([][]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		r := row.Record
		competitor := ""
		if r.IsCompetitor {
			competitor = "★"
		}
		rows = append(rows, []string{
			statusMark(row.Status), r.Input, r.OfficialName, r.Sector, r.Region, r.Headcount, r.Link, competitor,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "Input", "Nom Entreprise", "Industrie", "Région", "Effectif", "Lien", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "✓ %d trouvés · ? %d non trouvés · ✗ %d erreurs\n", p.Stats.Found, p.Stats.NotFound, p.Stats.Error)
}

func statusMark(s domain.Status) string {
	switch s {
	case domain.StatusFound:
		return "✓"
	case domain.StatusNotFound:
		return "?"
	default:
		return "✗"
	}
}

// exportFormat picks the format from the file extension, xlsx by default
func exportFormat(path string) ports.ExportFormat {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ports.ExportCSV
	}
	return ports.ExportXLSX
}

// exportTo writes the session table to path
func exportTo(ctx context.Context, path string) (*commands.ExportResult, error) {
	s := GetSession()
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	result, err := commands.NewExportCommand(s.Workspace, s.Exporter, exportFormat(path), f).Execute(ctx)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return result, nil
}
