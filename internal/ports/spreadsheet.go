package ports

import (
	"errors"
	"io"

	"enrichio/internal/domain"
)

// ErrUnsupportedFormat is returned for uploads that are neither CSV nor Excel
var ErrUnsupportedFormat = errors.New("format non supporté (CSV ou Excel)")

// NameReader extracts company names from an uploaded file
type NameReader interface {
	// ReadNames returns the non-empty cells of the first column.
	// The format is chosen from the filename extension.
	ReadNames(filename string, data []byte) ([]string, error)
}

// ExportFormat selects the spreadsheet flavour written by an Exporter
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

// Exporter renders records as a downloadable spreadsheet
type Exporter interface {
	Export(w io.Writer, format ExportFormat, records []domain.Record) error
}
