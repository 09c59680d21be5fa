package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetwise-go/internal/config"
	"github.com/ukaji3/sheetwise-go/internal/testutil"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
)

func writeSales(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Region", "Units", ""},
		{"North", 12, "x"},
		{"South", 7},
		{"North", 3},
		{"", 7},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	var out bytes.Buffer
	cmd := newRootCmd(testConfig(t), logger, strings.NewReader(stdin), &out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShowCommand(t *testing.T) {
	path := writeSales(t)

	out, err := execute(t, "", "show", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"Region", "Units", "Column"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"North", "12", "x"}, strings.Fields(lines[1]))

	out, err = execute(t, "", "show", path, "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "... 2 more rows")
}

func TestShowCommandRange(t *testing.T) {
	path := writeSales(t)

	out, err := execute(t, "", "show", path, "--range", "B1:B5")
	require.NoError(t, err)
	assert.Equal(t, "Units\n12\n7\n3\n7\n", out)
}

func TestColumnsCommand(t *testing.T) {
	path := writeSales(t)

	out, err := execute(t, "", "columns", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Region")
	assert.Regexp(t, `Units\s+numeric\s+4/4`, out)
	assert.Regexp(t, `Region\s+categorical\s+0/3`, out)
	assert.Regexp(t, `3\s+Column\s+-\s+-`, out)
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeSales(t)
	chartPath := filepath.Join(t.TempDir(), "units.png")

	out, err := execute(t, "", "analyze", path, "--column", "Units", "--chart", "pie", "--chart-out", chartPath)
	require.NoError(t, err)

	assert.Contains(t, out, `Distribution for "Units" (numeric)`)
	assert.Regexp(t, `Count:\s+4`, out)
	assert.Regexp(t, `Sum:\s+29`, out)
	assert.Regexp(t, `Mean:\s+7.25`, out)
	assert.Regexp(t, `Median:\s+7`, out)
	assert.Regexp(t, `7\s+2`, out)
	assert.Contains(t, out, "Chart written to "+chartPath)

	data, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestAnalyzeCommandCategorical(t *testing.T) {
	path := writeSales(t)

	out, err := execute(t, "", "analyze", path, "-c", "Region")
	require.NoError(t, err)
	assert.Contains(t, out, "(categorical)")
	assert.NotContains(t, out, "Mean:")
	assert.Regexp(t, `North\s+2`, out)
	assert.Regexp(t, `N/A\s+1`, out)
}

func TestAnalyzeCommandErrors(t *testing.T) {
	path := writeSales(t)

	_, err := execute(t, "", "analyze", path, "--column", "Price")
	assert.ErrorIs(t, err, sheetwise.ErrColumnNotFound)

	_, err = execute(t, "", "analyze", path, "--column", "Units", "--chart", "line")
	assert.ErrorIs(t, err, sheetwise.ErrInvalidChartKind)

	_, err = execute(t, "", "analyze", path)
	assert.Error(t, err, "--column is required")

	_, err = execute(t, "", "analyze", filepath.Join(t.TempDir(), "missing.xlsx"), "-c", "Units")
	assert.ErrorIs(t, err, sheetwise.ErrFileNotFound)
}

func TestExportCommand(t *testing.T) {
	path := writeSales(t)
	pdfPath := filepath.Join(t.TempDir(), "sales.pdf")

	out, err := execute(t, "", "export", path, "-o", pdfPath)
	require.NoError(t, err)
	assert.Equal(t, "Successfully exported to "+pdfPath+"\n", out)

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExportCommandFailure(t *testing.T) {
	path := writeSales(t)
	pdfPath := filepath.Join(t.TempDir(), "missing-dir", "sales.pdf")

	out, err := execute(t, "", "export", path, "-o", pdfPath)
	var exportErr *sheetwise.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.True(t, strings.HasPrefix(out, "PDF Export failed: "))
}

func TestSessionCommand(t *testing.T) {
	path := writeSales(t)
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "chart.png")
	pdfPath := filepath.Join(dir, "out.pdf")

	script := strings.Join([]string{
		"column Units",
		"chart pie",
		"column Nope",
		"export",
		pdfPath,
		"history",
		"quit",
	}, "\n") + "\n"

	out, err := execute(t, script, "session", path, "--chart-out", chartPath)
	require.NoError(t, err)

	assert.Contains(t, out, "File loaded: sales.xlsx")
	assert.Contains(t, out, `Generated bar chart for "Region".`)
	assert.Contains(t, out, `Calculated numeric stats for "Units".`)
	assert.Contains(t, out, `Generated pie chart for "Units".`)
	assert.Contains(t, out, `Analysis Error: column "Nope" not found`)
	assert.Contains(t, out, "Exporting sales.xlsx to PDF...")
	assert.Contains(t, out, "[SheetWise-Export-sales.pdf]")
	assert.Contains(t, out, "Successfully exported to "+pdfPath)

	assert.FileExists(t, chartPath)
	assert.FileExists(t, pdfPath)
}

func TestSessionCommandEmpty(t *testing.T) {
	script := "export\ncolumn Units\ntable\nchart donut\nopen\n-\nfrobnicate\n"

	out, err := execute(t, script, "session", "--chart-out", "")
	require.NoError(t, err)

	assert.Contains(t, out, "No data to export.")
	assert.Contains(t, out, "Analysis Error: no table loaded")
	assert.Contains(t, out, "No file loaded.")
	assert.Contains(t, out, "Error: invalid chart kind")
	assert.Contains(t, out, "File open dialog was cancelled.")
	assert.Contains(t, out, `Unknown command "frobnicate"`)
}
