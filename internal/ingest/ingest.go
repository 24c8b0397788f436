// Package ingest reads exported spreadsheet files into tabular form. It
// runs before the reconciliation core: the core itself never touches the
// filesystem. CSV and XLSX are supported; the first row of a sheet is
// always treated as the header row.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/tabular"
)

// Read loads a table from path, dispatching on the file extension. The
// name identifies the table in diagnostics (typically "TOPS" or "Cyman").
func Read(path, name string) (*tabular.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path, name)
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, name)
	default:
		return nil, errors.NewValidationError("file", path,
			"unsupported format (expected .csv or .xlsx)")
	}
}

// ReadCSV loads a comma-separated export. Rows may be ragged; the table
// fits them to the header width.
func ReadCSV(path, name string) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", path, "file is empty", nil)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		rows = append(rows, record)
	}

	return tabular.New(name, header, rows)
}

// ReadXLSX loads the first sheet of an Excel workbook.
func ReadXLSX(path, name string) (*tabular.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParseError("xlsx", path, "workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("xlsx", path, "sheet is empty", nil)
	}

	return tabular.New(name, rows[0], rows[1:])
}
