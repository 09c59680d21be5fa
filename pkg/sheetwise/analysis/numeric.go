// Package analysis computes column statistics, value counts and the
// numeric/categorical classification of a table column.
package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

// ComputeNumericStats computes count, sum, mean, median, min and max over
// the values of column that read as finite numbers. A column with no such
// values yields all-zero stats. The rows are not modified.
func ComputeNumericStats(rows [][]models.Value, headers []string, column string) (models.ColumnStats, error) {
	idx, err := columnIndex(headers, column)
	if err != nil {
		return models.ColumnStats{}, err
	}

	numbers := make([]float64, 0, len(rows))
	for _, row := range rows {
		if f, ok := models.CellAt(row, idx).Float(); ok {
			numbers = append(numbers, f)
		}
	}
	return describe(numbers), nil
}

// describe summarises numbers, sorting the slice in place.
func describe(numbers []float64) models.ColumnStats {
	if len(numbers) == 0 {
		return models.ColumnStats{}
	}

	data := stats.Float64Data(numbers)
	sum, _ := data.Sum()
	mean := sum / float64(len(numbers))

	sort.Float64s(numbers)
	median, _ := stats.Median(data)

	return models.ColumnStats{
		Count:  len(numbers),
		Sum:    sum,
		Mean:   mean,
		Median: median,
		Min:    numbers[0],
		Max:    numbers[len(numbers)-1],
	}
}

func columnIndex(headers []string, column string) (int, error) {
	idx, ok := models.ColumnIndex(headers, column)
	if !ok {
		return -1, &sheetwise.ColumnNotFoundError{Column: column}
	}
	return idx, nil
}
