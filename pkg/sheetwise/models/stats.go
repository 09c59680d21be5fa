package models

// ColumnStats holds descriptive statistics for one numeric column. All
// fields are zero when the column has no numeric values.
type ColumnStats struct {
	// Count is the number of values that parsed as finite numbers.
	Count int `json:"count"`
	// Sum is the arithmetic sum of those values.
	Sum float64 `json:"sum"`
	// Mean is Sum divided by Count.
	Mean float64 `json:"mean"`
	// Median is the middle value, or the average of the two middle values
	// for an even Count.
	Median float64 `json:"median"`
	// Min is the smallest value.
	Min float64 `json:"min"`
	// Max is the largest value.
	Max float64 `json:"max"`
}

// ValueCounts is a frequency tally of the distinct values of one column,
// ordered by descending count.
type ValueCounts struct {
	// Labels contains the stringified distinct values.
	Labels []string `json:"labels"`
	// Data contains the counts, aligned positionally with Labels.
	Data []int `json:"data"`
}

// Len returns the number of distinct values.
func (vc ValueCounts) Len() int { return len(vc.Labels) }

// Total returns the sum of all counts.
func (vc ValueCounts) Total() int {
	total := 0
	for _, n := range vc.Data {
		total += n
	}
	return total
}
