package analysis

import (
	"sort"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

// MissingLabel is the category empty cells are counted under.
const MissingLabel = "N/A"

// ComputeValueCounts tallies the distinct values of column. Every row
// lands in exactly one category; empty cells are counted as MissingLabel.
// Numeric zero and boolean false are ordinary values, not missing ones.
// Labels are ordered by descending count; equal counts keep the order in
// which the values were first encountered.
func ComputeValueCounts(rows [][]models.Value, headers []string, column string) (models.ValueCounts, error) {
	idx, err := columnIndex(headers, column)
	if err != nil {
		return models.ValueCounts{}, err
	}

	type entry struct {
		label string
		count int
	}
	var entries []entry
	positions := make(map[string]int)
	for _, row := range rows {
		label := Label(models.CellAt(row, idx))
		if pos, ok := positions[label]; ok {
			entries[pos].count++
			continue
		}
		positions[label] = len(entries)
		entries = append(entries, entry{label: label, count: 1})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	counts := models.ValueCounts{
		Labels: make([]string, len(entries)),
		Data:   make([]int, len(entries)),
	}
	for i, e := range entries {
		counts.Labels[i] = e.label
		counts.Data[i] = e.count
	}
	return counts, nil
}

// Label returns the category a cell is counted under.
func Label(v models.Value) string {
	if v.IsEmpty() {
		return MissingLabel
	}
	return v.String()
}
