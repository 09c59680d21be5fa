package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintArea returns the first print area defined for sheetName, or
// nil when the sheet has none.
func ExtractPrintArea(f *excelize.File, sheetName string) *models.CellRange {
	for _, dn := range f.GetDefinedName() {
		// Look for _xlnm.Print_Area defined name
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet == sheetName && len(areas) > 0 {
			return &areas[0]
		}
	}
	return nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.CellRange) {
	var areas []models.CellRange

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by ! to separate sheet name and range
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := part[:idx]
			rangeStr := part[idx+1:]

			// Remove quotes from sheet name
			sheet = strings.Trim(sheet, "'")
			if sheetName == "" {
				sheetName = sheet
			}

			if area, err := ParseRange(rangeStr); err == nil {
				areas = append(areas, area)
			}
		}
	}

	return sheetName, areas
}

// ParseRange parses an A1-style range such as "B2:E40" or "$A$1:$D$10".
// A leading sheet qualifier ("Sheet1!A1:D10") is ignored. Corners may be
// given in any order.
func ParseRange(rangeStr string) (models.CellRange, error) {
	rangeStr = strings.TrimSpace(rangeStr)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")
	if rangeStr == "" {
		return models.CellRange{}, errors.New("range is empty")
	}

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("expected two corners separated by ':', got %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(strings.ToUpper(parts[0]))
	if err != nil {
		return models.CellRange{}, err
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(strings.ToUpper(parts[1]))
	if err != nil {
		return models.CellRange{}, err
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
