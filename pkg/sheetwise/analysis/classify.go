package analysis

import (
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

// DefaultSampleSize is how many leading non-empty values the classifier
// inspects.
const DefaultSampleSize = 10

// numericThreshold is the share of numeric sample values a column must
// strictly exceed to be treated as numeric.
const numericThreshold = 0.5

// ColumnKind is the presentation class of a column.
type ColumnKind string

const (
	// Numeric columns get the descriptive statistics panel.
	Numeric ColumnKind = "numeric"
	// Categorical columns get the chart only.
	Categorical ColumnKind = "categorical"
)

// Classification is the outcome of classifying one column.
type Classification struct {
	Kind         ColumnKind `json:"kind"`
	SampleSize   int        `json:"sample_size"`
	NumericCount int        `json:"numeric_count"`
}

// Ratio returns the numeric share of the sample, 0 for an empty sample.
func (c Classification) Ratio() float64 {
	if c.SampleSize == 0 {
		return 0
	}
	return float64(c.NumericCount) / float64(c.SampleSize)
}

// IsNumeric reports whether the column was classified as numeric.
func (c Classification) IsNumeric() bool { return c.Kind == Numeric }

// Classifier decides whether a column is numeric or categorical from a
// sample of its leading non-empty values.
type Classifier struct {
	SampleSize int
}

// NewClassifier creates a classifier inspecting up to sampleSize values.
// A non-positive size selects DefaultSampleSize.
func NewClassifier(sampleSize int) Classifier {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return Classifier{SampleSize: sampleSize}
}

// Classify samples the first non-empty values of the column, top down, and
// classifies it numeric when more than half of the sample reads as finite
// numbers. An empty sample is categorical.
func (c Classifier) Classify(values []models.Value) Classification {
	limit := c.SampleSize
	if limit <= 0 {
		limit = DefaultSampleSize
	}

	result := Classification{Kind: Categorical}
	for _, v := range values {
		if result.SampleSize == limit {
			break
		}
		if v.IsEmpty() {
			continue
		}
		result.SampleSize++
		if _, ok := v.Float(); ok {
			result.NumericCount++
		}
	}

	if result.SampleSize == 0 {
		return result
	}
	if result.Ratio() > numericThreshold {
		result.Kind = Numeric
	}
	return result
}

// ClassifyColumn classifies values with the default sample size.
func ClassifyColumn(values []models.Value) Classification {
	return NewClassifier(DefaultSampleSize).Classify(values)
}

// ClassifyTableColumn classifies the named column of a table.
func (c Classifier) ClassifyTableColumn(table *models.Table, column string) (Classification, error) {
	idx, err := columnIndex(table.Headers, column)
	if err != nil {
		return Classification{}, err
	}
	return c.Classify(table.ColumnValues(idx)), nil
}
