// Package export writes a finished discrepancy report to disk. The XLSX
// writer reproduces the styled comparison workbook the operations team
// works from (color-coded presence cells, terminology note, summary row);
// the CSV writer emits the same records unstyled for downstream tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kemballops/gatecheck/pkg/constants"
	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/report"
)

const (
	glyphPresent = "✓"
	glyphMissing = "❌"

	reportTitle     = "Container Number Comparison Report"
	terminologyNote = "Note: TOPS 'Container Number' = Cyman 'Unit No'"
)

// DefaultFilename returns the timestamped workbook name used when the
// caller gives no output path.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("container_mismatches_%s.xlsx", now.Format("20060102_150405"))
}

// Write dispatches on the output extension. An empty path defaults to a
// timestamped XLSX workbook in the current directory. The resolved path is
// returned so callers can report where the file landed.
func Write(r *report.Report, path string) (string, error) {
	if path == "" {
		path = DefaultFilename(time.Now())
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return path, WriteXLSX(r, path)
	case ".csv":
		return path, WriteCSV(r, path)
	default:
		return "", errors.NewValidationError("output", path,
			"unsupported format (expected .csv or .xlsx)")
	}
}

// WriteCSV writes the report records as plain comma-separated rows with a
// header. Presence keeps the Present/Missing encoding; glyphs are an XLSX
// presentation detail.
func WriteCSV(r *report.Report, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Container Number", "CYMAN", "TOPS", "Reason"}); err != nil {
		return errors.WrapIO("write", path, err)
	}
	for _, rec := range r.Records {
		if err := w.Write([]string{rec.Identifier, rec.Cyman, rec.TOPS, rec.Reason}); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// WriteXLSX writes the styled comparison workbook: a merged title row, the
// TOPS/Cyman terminology note, a generation timestamp, the header row on a
// navy fill, one color-coded row per record, and a bold total underneath.
func WriteXLSX(r *report.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := buildSheet(f, sheet, r); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("save", path, err)
	}
	return nil
}

// Rows 1-3 are the title block, row 4 the header, data from row 5.
const headerRow = 4

func buildSheet(f *excelize.File, sheet string, r *report.Report) error {
	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	for row := 1; row <= 3; row++ {
		if err := f.MergeCell(sheet, cell(1, row), cell(3, row)); err != nil {
			return errors.WrapIO("format", sheet, err)
		}
	}
	setCell(f, sheet, 1, 1, reportTitle, styles.title)
	setCell(f, sheet, 1, 2, terminologyNote, styles.note)
	setCell(f, sheet, 1, 3,
		fmt.Sprintf("Generated on: %s", r.GeneratedAt.Format("2006-01-02 15:04:05")),
		styles.centered)

	for col, name := range []string{"Container Number", "CYMAN", "TOPS"} {
		setCell(f, sheet, col+1, headerRow, name, styles.header)
	}

	for i, rec := range r.Records {
		row := headerRow + 1 + i
		setCell(f, sheet, 1, row, rec.Identifier, styles.centered)
		writePresence(f, sheet, 2, row, rec.Cyman, styles)
		writePresence(f, sheet, 3, row, rec.TOPS, styles)
	}

	summaryRow := headerRow + len(r.Records) + 2
	if err := f.MergeCell(sheet, cell(1, summaryRow), cell(3, summaryRow)); err != nil {
		return errors.WrapIO("format", sheet, err)
	}
	setCell(f, sheet, 1, summaryRow,
		fmt.Sprintf("Total mismatches found: %d", r.Total), styles.summary)

	if err := f.SetColWidth(sheet, "A", "A", 20); err != nil {
		return errors.WrapIO("format", sheet, err)
	}
	if err := f.SetColWidth(sheet, "B", "C", 12); err != nil {
		return errors.WrapIO("format", sheet, err)
	}
	return nil
}

// writePresence maps the Present/Missing encoding to the glyph and fill
// the workbook uses.
func writePresence(f *excelize.File, sheet string, col, row int, presence string, styles *sheetStyles) {
	if presence == constants.Missing {
		setCell(f, sheet, col, row, glyphMissing, styles.missing)
		return
	}
	setCell(f, sheet, col, row, glyphPresent, styles.present)
}

type sheetStyles struct {
	title    int
	note     int
	centered int
	header   int
	present  int
	missing  int
	summary  int
}

func newStyles(f *excelize.File) (*sheetStyles, error) {
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	defs := []*excelize.Style{
		{Font: &excelize.Font{Size: 14, Bold: true}, Alignment: center},
		{Font: &excelize.Font{Italic: true}, Alignment: center},
		{Alignment: center},
		{
			Font:      &excelize.Font{Color: "FFFFFF", Bold: true},
			Fill:      solidFill("1F4E78"),
			Alignment: center,
		},
		{Fill: solidFill("00FF00"), Alignment: center},
		{Fill: solidFill("FF0000"), Alignment: center},
		{Font: &excelize.Font{Bold: true}},
	}

	var styles sheetStyles
	for i, dst := range []*int{
		&styles.title, &styles.note, &styles.centered,
		&styles.header, &styles.present, &styles.missing, &styles.summary,
	} {
		id, err := f.NewStyle(defs[i])
		if err != nil {
			return nil, errors.WrapIO("style", "workbook", err)
		}
		*dst = id
	}
	return &styles, nil
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func setCell(f *excelize.File, sheet string, col, row int, value any, style int) {
	ref := cell(col, row)
	_ = f.SetCellValue(sheet, ref, value)
	if style != 0 {
		_ = f.SetCellStyle(sheet, ref, ref, style)
	}
}

func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
