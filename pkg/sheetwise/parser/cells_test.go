package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	"github.com/xuri/excelize/v2"
)

// openFixture saves f to a temp file and reopens it, so tests read cells the
// way a loaded workbook stores them.
func openFixture(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "C3", true)

	grid, err := ExtractGrid(openFixture(t, f), sheetName)
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}

	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}
	if got := grid[0][0]; got.Kind != models.KindText || got.Str != "Header1" {
		t.Errorf("Expected text 'Header1', got %+v", got)
	}
	if got := grid[1][0]; got.Kind != models.KindNumber || got.Num != 100 {
		t.Errorf("Expected number 100, got %+v", got)
	}
	if got := grid[1][1]; got.Kind != models.KindNumber || got.Num != 200.5 {
		t.Errorf("Expected number 200.5, got %+v", got)
	}

	// Row 3 is ragged: B3 is a gap inside the row
	if len(grid[2]) != 3 {
		t.Fatalf("Expected 3 cells in row 3, got %d", len(grid[2]))
	}
	if grid[2][1].Kind != models.KindEmpty {
		t.Errorf("Expected empty B3, got %+v", grid[2][1])
	}
	if got := grid[2][2]; got.Kind != models.KindBool || !got.Bool {
		t.Errorf("Expected bool true, got %+v", got)
	}
}

func TestExtractGridNumericText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// A number typed as a string stays text; the classifier still reads it
	// as numeric through Value.Float.
	f.SetCellStr("Sheet1", "A1", "42")

	grid, err := ExtractGrid(openFixture(t, f), "Sheet1")
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}
	got := grid[0][0]
	if got.Kind != models.KindText || got.Str != "42" {
		t.Errorf("Expected text '42', got %+v", got)
	}
	if v, ok := got.Float(); !ok || v != 42 {
		t.Errorf("Expected Float() = 42, got %v %v", v, ok)
	}
}

func TestExtractGridDates(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	day := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	f.SetCellValue("Sheet1", "A1", day)

	f.SetCellValue("Sheet1", "B1", 45000)
	fmtCode := "yyyy-mm-dd"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtCode})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellStyle("Sheet1", "B1", "B1", style)

	grid, err := ExtractGrid(openFixture(t, f), "Sheet1")
	if err != nil {
		t.Fatalf("ExtractGrid failed: %v", err)
	}

	if got := grid[0][0]; got.Kind != models.KindDate || got.String() != "2024-02-29" {
		t.Errorf("Expected date 2024-02-29, got %+v (%s)", got, got.String())
	}
	if got := grid[0][1]; got.Kind != models.KindDate || got.String() != "2023-03-15" {
		t.Errorf("Expected date 2023-03-15, got %+v (%s)", got, got.String())
	}
}

func TestExtractGridUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractGrid(f, "Missing"); err == nil {
		t.Error("Expected an error for a missing sheet")
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"d-mmm", true},
		{"[$-409]mmmm d, yyyy", true},
		{"0.00", false},
		{"#,##0", false},
		{`0.0 "days"`, false},
		{"[Red]0.00", false},
		{"hh:mm", false},
	}

	for _, tt := range tests {
		if got := isDateFormat(tt.code); got != tt.expected {
			t.Errorf("isDateFormat(%q) = %v, expected %v", tt.code, got, tt.expected)
		}
	}
}

func TestIsBuiltInDateFormat(t *testing.T) {
	for _, id := range []int{14, 17, 22, 27, 36, 45, 47, 50, 58} {
		if !isBuiltInDateFormat(id) {
			t.Errorf("Expected format %d to be a date format", id)
		}
	}
	for _, id := range []int{0, 1, 2, 9, 13, 23, 37, 44, 49, 59} {
		if isBuiltInDateFormat(id) {
			t.Errorf("Expected format %d not to be a date format", id)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"1e3", models.Number(1000)},
		{"hello", models.Text("hello")},
		{"NaN", models.Text("NaN")},
		{"Inf", models.Text("Inf")},
		{"0", models.Number(0)},
		{"", models.Empty()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}
