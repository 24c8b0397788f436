package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemballops/gatecheck/internal/cmd/output"
	"github.com/kemballops/gatecheck/pkg/report"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := output.ParseFormat(valid)
		assert.NoError(t, err, valid)
	}

	_, err := output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatReportJSON(t *testing.T) {
	r := &report.Report{
		RunID: "run-1",
		Records: []report.Record{
			{Identifier: "MSKU1234567", Cyman: "Missing", TOPS: "Present"},
		},
		Total: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, output.FormatReport(&buf, r, output.FormatJSON))

	var decoded report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Records, 1)
	assert.Equal(t, "Missing", decoded.Records[0].Cyman)
}

func TestFormatReportTable(t *testing.T) {
	r := &report.Report{
		Records: []report.Record{
			{Identifier: "MSKU1234567", Cyman: "Missing", TOPS: "Present"},
		},
		Total: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, output.FormatReport(&buf, r, output.FormatTable))

	out := buf.String()
	assert.Contains(t, out, "MSKU1234567")
	assert.Contains(t, out, "CYMAN")
	// Table view uses glyphs, never the raw encoding.
	assert.NotContains(t, out, "Missing")
}

func TestFormatTerminologyYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.FormatTerminology(&buf, report.TerminologyMapping, output.FormatYAML))
	assert.Contains(t, buf.String(), "Unit No")
}

func TestTableFormatterReflectsStructSlices(t *testing.T) {
	type row struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)
	require.NoError(t, f.Format(&buf, []row{{Name: "a", Count: 1}, {Name: "b", Count: 2}}))

	out := buf.String()
	assert.True(t, strings.Contains(out, "Name") || strings.Contains(out, "NAME"))
	assert.Contains(t, out, "a")
}
