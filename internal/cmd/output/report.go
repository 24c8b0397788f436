// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"io"

	"github.com/kemballops/gatecheck/internal/cmd/table"
	"github.com/kemballops/gatecheck/pkg/report"
)

// FormatReport renders a discrepancy report in the requested format. Table
// output collapses presence values to glyphs; JSON and YAML emit the full
// report structure including run metadata.
func FormatReport(w io.Writer, r *report.Report, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, "":
		data = table.ReportToTableData(r)
	default:
		data = r
	}

	return formatter.Format(w, data)
}

// FormatTerminology renders the TOPS/Cyman vocabulary mapping in the
// requested format.
func FormatTerminology(w io.Writer, pairs []report.TermPair, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, "":
		data = table.TerminologyToTableData(pairs)
	default:
		data = pairs
	}

	return formatter.Format(w, data)
}
