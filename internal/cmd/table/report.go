// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"github.com/kemballops/gatecheck/internal/cmd/emoji"
	"github.com/kemballops/gatecheck/pkg/constants"
	"github.com/kemballops/gatecheck/pkg/report"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ReportToTableData converts a discrepancy report to table format. Presence
// values collapse to the terminal glyphs; the Reason column is only added
// when at least one record carries one.
func ReportToTableData(r *report.Report) Data {
	withReasons := false
	for _, rec := range r.Records {
		if rec.Reason != "" {
			withReasons = true
			break
		}
	}

	headers := []string{"Container Number", "CYMAN", "TOPS"}
	alignment := []Align{AlignLeft, AlignCenter, AlignCenter}
	if withReasons {
		headers = append(headers, "Reason")
		alignment = append(alignment, AlignLeft)
	}

	rows := make([][]string, 0, len(r.Records))
	for _, rec := range r.Records {
		row := []string{rec.Identifier, presenceGlyph(rec.Cyman), presenceGlyph(rec.TOPS)}
		if withReasons {
			row = append(row, rec.Reason)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// TerminologyToTableData converts the TOPS/Cyman vocabulary mapping to
// table format.
func TerminologyToTableData(pairs []report.TermPair) Data {
	rows := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, []string{pair.TOPS, pair.Cyman})
	}
	return Data{
		Headers: []string{"TOPS Term", "Cyman Term"},
		Rows:    rows,
	}
}

func presenceGlyph(presence string) string {
	if presence == constants.Missing {
		return emoji.Error
	}
	return emoji.Success
}
