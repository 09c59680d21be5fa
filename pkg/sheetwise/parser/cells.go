package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads every cell of a sheet into a typed grid. Row i of the
// grid is sheet row i+1; rows keep their natural (ragged) length.
func ExtractGrid(f *excelize.File, sheetName string) ([][]models.Value, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	grid := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		values := make([]models.Value, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				values[colIdx] = models.Empty()
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			values[colIdx] = parseCell(f, sheetName, cellName, cellValue, date1904)
		}
		grid[rowIdx] = values
	}

	return grid, nil
}

// parseCell types a single non-empty cell. formatted is the display value
// excelize produced for it.
func parseCell(f *excelize.File, sheetName, cellName, formatted string, date1904 bool) models.Value {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return parseValue(formatted)
	}

	switch cellType {
	case excelize.CellTypeBool:
		switch strings.ToUpper(strings.TrimSpace(formatted)) {
		case "TRUE", "1":
			return models.Bool(true)
		case "FALSE", "0":
			return models.Bool(false)
		}
		return models.Text(formatted)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return models.Text(formatted)
	}

	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return parseValue(formatted)
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return parseValue(formatted)
	}

	if cellType == excelize.CellTypeDate || isDateStyled(f, sheetName, cellName) {
		if t, err := excelize.ExcelDateToTime(num, date1904); err == nil {
			return models.Date(t)
		}
	}
	return models.Number(num)
}

// isDateStyled reports whether the cell's number format renders a date.
func isDateStyled(f *excelize.File, sheetName, cellName string) bool {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat reports whether a built-in number format id is a
// date or time format (ECMA-376 18.8.30).
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormat reports whether a custom number format code contains date
// tokens outside quoted literals and bracketed sections.
func isDateFormat(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	clean := strings.ToLower(b.String())
	return strings.ContainsAny(clean, "yd")
}

// parseValue attempts to parse a string value as a number.
// Returns a number for finite numeric text, empty for "", or text.
func parseValue(s string) models.Value {
	if s == "" {
		return models.Empty()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	// Return as string
	return models.Text(s)
}
