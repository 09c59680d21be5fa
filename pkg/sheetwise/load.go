package sheetwise

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/parser"
	"github.com/xuri/excelize/v2"
)

// File extensions Load accepts, without the leading dot.
var (
	WorkbookExtensions  = []string{"xlsx", "xlsm", "xltx", "xltm"}
	CSVExtensions       = []string{"csv"}
	SupportedExtensions = slices.Concat(WorkbookExtensions, CSVExtensions)
)

// Load reads the first worksheet of a spreadsheet file into a Table. Every
// failure is returned as a *FileParseError, except a malformed opts.Range
// which is rejected up front as an *InvalidInputError.
func Load(path string, opts Options) (*models.Table, error) {
	var userRange *models.CellRange
	if opts.Range != "" {
		r, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, &InvalidInputError{
				Field: "range",
				Value: opts.Range,
				Err:   fmt.Errorf("%w: %v", ErrInvalidRange, err),
			}
		}
		userRange = &r
	}

	// Validate input file exists
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewFileParseError(path, ErrFileNotFound)
	}

	var (
		grid      [][]models.Value
		sheetName string
		area      *models.CellRange
		err       error
	)
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); {
	case slices.Contains(CSVExtensions, ext):
		grid, err = loadCSV(path)
	case slices.Contains(WorkbookExtensions, ext):
		grid, sheetName, area, err = loadWorkbook(path, opts.ShouldUsePrintArea())
	default:
		err = fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions, ", "))
	}
	if err != nil {
		return nil, NewFileParseError(path, err)
	}

	table := &models.Table{
		Source:  path,
		Sheet:   sheetName,
		Headers: []string{},
		Rows:    [][]models.Value{},
	}

	bounds := userRange
	if bounds == nil {
		bounds = area
	}
	if bounds == nil {
		region, ok := parser.DetectTable(grid, parser.DefaultTableParams())
		if !ok {
			// An empty sheet is a valid, empty table.
			return table, nil
		}
		if !region.Dense {
			opts.logger().Warn("sheet data is sparse",
				slog.String("path", path),
				slog.String("bounds", region.Bounds.String()),
				slog.Float64("density", region.Density))
		}
		bounds = &region.Bounds
	}

	table.Headers, table.Rows = parser.BuildTable(grid, *bounds)
	return table, nil
}

func loadWorkbook(path string, usePrintArea bool) ([][]models.Value, string, *models.CellRange, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", nil, err
	}
	defer f.Close()

	// Only the first worksheet is read
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, "", nil, ErrNoWorksheet
	}
	sheetName := sheetList[0]

	grid, err := parser.ExtractGrid(f, sheetName)
	if err != nil {
		return nil, "", nil, NewExtractionError(sheetName, "cells", err)
	}

	var area *models.CellRange
	if usePrintArea {
		area = parser.ExtractPrintArea(f, sheetName)
	}
	return grid, sheetName, area, nil
}

func loadCSV(path string) ([][]models.Value, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parser.ReadCSV(file)
}
