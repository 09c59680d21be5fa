package sheetwise

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetwise-go/internal/testutil"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

// writeWorkbook saves a workbook whose first sheet holds cells and returns
// its path.
func writeWorkbook(t *testing.T, name string, cells map[string]any, setup func(*excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}
	if setup != nil {
		setup(f)
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func peopleCells() map[string]any {
	return map[string]any{
		"A1": "Name", "B1": "Age", "C1": "City",
		"A2": "Ann", "B2": 30, "C2": "NY",
		"A3": "Bob", "B3": 25,
		"A4": "Cy", "B4": "n/a", "C4": "LA",
	}
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "people.xlsx", peopleCells(), nil)

	table, err := Load(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, path, table.Source)
	assert.Equal(t, "Sheet1", table.Sheet)
	assert.Equal(t, []string{"Name", "Age", "City"}, table.Headers)
	require.Equal(t, 3, table.RowCount())
	assert.Equal(t, models.Number(30), table.Rows[0][1])
	assert.Len(t, table.Rows[1], 2, "ragged rows keep their length")
	assert.Equal(t, models.Text("n/a"), table.Rows[2][1])
}

func TestLoadOffsetTable(t *testing.T) {
	path := writeWorkbook(t, "offset.xlsx", map[string]any{
		"C3": "Item", "D3": "Qty",
		"C4": "Pen", "D4": 4,
		"C5": "Ink", "D5": 2,
	}, nil)

	table, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Item", "Qty"}, table.Headers)
	assert.Equal(t, 2, table.RowCount())
}

func TestLoadUserRange(t *testing.T) {
	path := writeWorkbook(t, "people.xlsx", peopleCells(), nil)

	table, err := Load(path, Options{Range: "B1:C3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Age", "City"}, table.Headers)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, []models.Value{models.Number(30), models.Text("NY")}, table.Rows[0])
}

func TestLoadInvalidRange(t *testing.T) {
	table, err := Load("does-not-matter.xlsx", Options{Range: "B1"})
	require.Error(t, err)
	assert.Nil(t, table)

	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "range", inputErr.Field)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestLoadPrintArea(t *testing.T) {
	setup := func(f *excelize.File) {
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
			Name:     "_xlnm.Print_Area",
			RefersTo: "Sheet1!$A$1:$B$3",
			Scope:    "Sheet1",
		}))
	}
	path := writeWorkbook(t, "printed.xlsx", peopleCells(), setup)

	table, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, table.Headers)
	assert.Equal(t, 2, table.RowCount())

	off := false
	table, err = Load(path, Options{UsePrintArea: &off})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "City"}, table.Headers)
	assert.Equal(t, 3, table.RowCount())
}

func TestLoadEmptySheet(t *testing.T) {
	path := writeWorkbook(t, "empty.xlsx", nil, nil)

	table, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, table.Headers)
	assert.Empty(t, table.Headers)
	assert.Zero(t, table.RowCount())
}

func TestLoadSparseSheetWarns(t *testing.T) {
	path := writeWorkbook(t, "sparse.xlsx", map[string]any{"A1": "x", "Z40": "y"}, nil)
	logger, logs := testutil.NewTestLogger(t)

	table, err := Load(path, Options{Logger: logger})
	require.NoError(t, err)
	assert.Len(t, table.Headers, 26)
	assert.Contains(t, logs.Messages(slog.LevelWarn), "sheet data is sparse")
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte("City,Pop\nOslo,700000\nBergen,\n"), 0o644))

	table, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, table.Sheet)
	assert.Equal(t, []string{"City", "Pop"}, table.Headers)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, models.Number(700000), table.Rows[0][1])
	assert.Equal(t, []models.Value{models.Text("Bergen")}, table.Rows[1])
}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{"xlsx", "xlsm", "xltx", "xltm", "csv"}, SupportedExtensions)

	path := filepath.Join(t.TempDir(), "CITIES.CSV")
	require.NoError(t, os.WriteFile(path, []byte("City\nOslo\n"), 0o644))
	table, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"City"}, table.Headers)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	unsupported := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(unsupported, []byte("hello"), 0o644))
	corrupt := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a zip"), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.xlsx"), wantErr: ErrFileNotFound},
		{name: "unsupported extension", path: unsupported, wantErr: ErrUnsupportedFormat},
		{name: "corrupt workbook", path: corrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Load(tt.path, DefaultOptions())
			require.Error(t, err)
			assert.Nil(t, table)

			var parseErr *FileParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.path, parseErr.Path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if errors.Is(err, ErrUnsupportedFormat) {
				assert.Contains(t, err.Error(), "want one of xlsx, xlsm, xltx, xltm, csv")
			}
		})
	}
}

func TestShouldUsePrintArea(t *testing.T) {
	assert.True(t, DefaultOptions().ShouldUsePrintArea())
	off := false
	assert.False(t, Options{UsePrintArea: &off}.ShouldUsePrintArea())
}
