package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kemballops/gatecheck/internal/cmd/table"
	"github.com/kemballops/gatecheck/pkg/report"
)

func TestReportToTableData(t *testing.T) {
	r := &report.Report{
		Records: []report.Record{
			{Identifier: "MSKU1234567", Cyman: "Missing", TOPS: "Present"},
			{Identifier: "TCLU7654321", Cyman: "Present", TOPS: "Missing"},
		},
		Total: 2,
	}

	data := table.ReportToTableData(r)
	assert.Equal(t, []string{"Container Number", "CYMAN", "TOPS"}, data.Headers)
	assert.Equal(t, [][]string{
		{"MSKU1234567", "✗", "✓"},
		{"TCLU7654321", "✓", "✗"},
	}, data.Rows)
}

func TestReportToTableDataWithReasons(t *testing.T) {
	r := &report.Report{
		Records: []report.Record{
			{Identifier: "MSKU1234567", Cyman: "Present", TOPS: "Present", Reason: "in progress on TOPS side"},
			{Identifier: "TCLU7654321", Cyman: "Present", TOPS: "Missing"},
		},
		Total: 2,
	}

	data := table.ReportToTableData(r)
	assert.Equal(t, []string{"Container Number", "CYMAN", "TOPS", "Reason"}, data.Headers)
	assert.Equal(t, []string{"MSKU1234567", "✓", "✓", "in progress on TOPS side"}, data.Rows[0])
	assert.Equal(t, []string{"TCLU7654321", "✓", "✗", ""}, data.Rows[1])
}

func TestTerminologyToTableData(t *testing.T) {
	data := table.TerminologyToTableData(report.TerminologyMapping)
	assert.Equal(t, []string{"TOPS Term", "Cyman Term"}, data.Headers)
	assert.Equal(t, []string{"Container Number", "Unit No"}, data.Rows[0])
	assert.Len(t, data.Rows, 3)
}
