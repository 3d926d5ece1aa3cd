package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

const sheetName = "Entreprises"

// Header is the first row of every export
var Header = []string{
	"Input", "Nom Entreprise", "Industrie", "Adresse", "Région",
	"Effectif", "Lien", "Score", "Détails", "Concurrent",
}

// Exporter implements ports.Exporter
type Exporter struct{}

// Ensure Exporter implements Exporter
var _ ports.Exporter = Exporter{}

// NewExporter creates a new Exporter
func NewExporter() Exporter {
	return Exporter{}
}

// Export writes records to w in the requested format
func (Exporter) Export(w io.Writer, format ports.ExportFormat, records []domain.Record) error {
	switch format {
	case ports.ExportCSV:
		return writeCSV(w, records)
	case ports.ExportXLSX, "":
		return writeXLSX(w, records)
	default:
		return fmt.Errorf("%s: %w", format, ports.ErrUnsupportedFormat)
	}
}

func row(r domain.Record) []string {
	competitor := "Non"
	if r.IsCompetitor {
		competitor = "Oui"
	}
	return []string{
		r.Input, r.OfficialName, r.Sector, r.Address, r.Region,
		r.Headcount, r.Link, r.Score, r.Detail, competitor,
	}
}

func writeCSV(w io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, records []domain.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	if err := setRow(f, 1, Header); err != nil {
		return err
	}
	for i, r := range records {
		if err := setRow(f, i+2, row(r)); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(Header), 1)
		_ = f.SetCellStyle(sheetName, "A1", last, bold)
	}
	_ = f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &cells)
}
