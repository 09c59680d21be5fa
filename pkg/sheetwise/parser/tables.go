package parser

import (
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 2,
	}
}

// Region is a detected table area in a grid.
type Region struct {
	// Bounds are the 1-based coordinates of the region.
	Bounds models.CellRange
	// Density is the share of non-empty cells inside Bounds.
	Density float64
	// Dense reports whether the region meets the detection parameters.
	Dense bool
}

// DetectTable finds the bounding box of non-empty cells in a grid and
// reports how table-like it is. ok is false when the grid holds no data.
func DetectTable(grid [][]models.Value, params TableDetectionParams) (Region, bool) {
	bounds, ok := DataBounds(grid)
	if !ok {
		return Region{}, false
	}

	totalCells := bounds.Rows() * bounds.Cols()
	nonEmptyCells := countNonEmptyCells(grid, bounds)
	density := float64(nonEmptyCells) / float64(totalCells)

	return Region{
		Bounds:  bounds,
		Density: density,
		Dense:   nonEmptyCells >= params.MinNonemptyCells && density >= params.DensityMin,
	}, true
}

// DataBounds finds the bounding box of non-empty cells.
func DataBounds(grid [][]models.Value) (models.CellRange, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(grid [][]models.Value, bounds models.CellRange) int {
	count := 0
	for rowIdx := bounds.R1 - 1; rowIdx < bounds.R2 && rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		for colIdx := bounds.C1 - 1; colIdx < bounds.C2 && colIdx < len(row); colIdx++ {
			if !row[colIdx].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// BuildTable slices bounds out of grid. The first row of the region becomes
// the headers and the rest the records. Records keep the region's width
// except that trailing empty cells are dropped.
func BuildTable(grid [][]models.Value, bounds models.CellRange) (headers []string, rows [][]models.Value) {
	width := bounds.Cols()
	headers = make([]string, width)
	if bounds.R1-1 < len(grid) {
		head := grid[bounds.R1-1]
		for j := 0; j < width; j++ {
			headers[j] = strings.TrimSpace(models.CellAt(head, bounds.C1-1+j).String())
		}
	}

	rows = make([][]models.Value, 0, bounds.Rows()-1)
	for rowIdx := bounds.R1; rowIdx < bounds.R2 && rowIdx < len(grid); rowIdx++ {
		src := grid[rowIdx]
		record := make([]models.Value, 0, width)
		last := -1
		for j := 0; j < width; j++ {
			cell := models.CellAt(src, bounds.C1-1+j)
			record = append(record, cell)
			if cell.Kind != models.KindEmpty {
				last = j
			}
		}
		rows = append(rows, record[:last+1])
	}
	return headers, rows
}
