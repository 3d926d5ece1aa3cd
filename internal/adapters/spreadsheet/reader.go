// Package spreadsheet reads company names from uploaded CSV and Excel files
// and writes enrichment results back as spreadsheets.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"enrichio/internal/ports"
)

const maxXLSRows = 100000

// Reader implements ports.NameReader
type Reader struct{}

// Ensure Reader implements NameReader
var _ ports.NameReader = Reader{}

// NewReader creates a new Reader
func NewReader() Reader {
	return Reader{}
}

// ReadNames returns the non-empty first-column cells of the first sheet.
// There is no header row: every cell is a name.
func (Reader) ReadNames(filename string, data []byte) ([]string, error) {
	rows, err := readRows(filename, data)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if cell := strings.TrimSpace(row[0]); cell != "" {
			names = append(names, cell)
		}
	}
	return names, nil
}

func readRows(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		return rows, nil

	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		return workbook.ReadAllCells(maxXLSRows), nil

	case ".xlsx":
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		defer func() { _ = file.Close() }()

		sheet := file.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows, err := file.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read worksheet: %w", err)
		}
		return rows, nil

	default:
		return nil, ports.ErrUnsupportedFormat
	}
}
