package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

// ReadCSV reads comma-separated records into a typed grid. Records may have
// differing field counts.
func ReadCSV(r io.Reader) ([][]models.Value, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	grid := make([][]models.Value, len(records))
	for i, record := range records {
		values := make([]models.Value, len(record))
		for j, field := range record {
			if i == 0 && j == 0 {
				field = strings.TrimPrefix(field, "\ufeff")
			}
			values[j] = parseValue(field)
		}
		grid[i] = values
	}
	return grid, nil
}
