package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

func TestComputeNumericStats_AgeColumn(t *testing.T) {
	headers := []string{"Name", "Age"}
	rows := [][]models.Value{
		{models.Text("A"), models.Text("30")},
		{models.Text("B"), models.Text("thirty")},
		{models.Text("C"), models.Text("25")},
	}

	got, err := ComputeNumericStats(rows, headers, "Age")
	require.NoError(t, err)

	assert.Equal(t, models.ColumnStats{
		Count:  2,
		Sum:    55,
		Mean:   27.5,
		Median: 27.5,
		Min:    25,
		Max:    30,
	}, got)
}

func TestComputeNumericStats_OddCountMedian(t *testing.T) {
	headers := []string{"v"}
	rows := [][]models.Value{
		{models.Number(9)},
		{models.Number(1)},
		{models.Number(5)},
	}

	got, err := ComputeNumericStats(rows, headers, "v")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 5.0, got.Median)
	assert.Equal(t, 1.0, got.Min)
	assert.Equal(t, 9.0, got.Max)
	assert.Equal(t, 15.0, got.Sum)
	assert.Equal(t, 5.0, got.Mean)
}

func TestComputeNumericStats_NoNumericValues(t *testing.T) {
	headers := []string{"Name", "Score"}
	tests := []struct {
		name string
		rows [][]models.Value
	}{
		{"no rows", nil},
		{"only text", [][]models.Value{{models.Text("a"), models.Text("abc")}}},
		{"only empty", [][]models.Value{{models.Text("a"), models.Empty()}, {models.Text("b")}}},
		{"non finite", [][]models.Value{
			{models.Text("a"), models.Text("NaN")},
			{models.Text("b"), models.Text("Infinity")},
			{models.Text("c"), models.Number(math.Inf(1))},
			{models.Text("d"), models.Number(math.NaN())},
		}},
		{"bools", [][]models.Value{
			{models.Text("a"), models.Bool(true)},
			{models.Text("b"), models.Bool(false)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNumericStats(tt.rows, headers, "Score")
			require.NoError(t, err)
			assert.Equal(t, models.ColumnStats{}, got)
		})
	}
}

func TestComputeNumericStats_Bounds(t *testing.T) {
	samples := [][]float64{
		{1},
		{-3, 7},
		{2, 2, 2, 2},
		{0.1, 0.2, 0.3, 1000, -1000},
		{5, 3, 8, 1, 9, 2, 7},
	}

	for _, sample := range samples {
		rows := make([][]models.Value, len(sample))
		for i, f := range sample {
			rows[i] = []models.Value{models.Number(f)}
		}

		got, err := ComputeNumericStats(rows, []string{"x"}, "x")
		require.NoError(t, err)
		assert.Equal(t, len(sample), got.Count)
		assert.LessOrEqual(t, got.Min, got.Median, "sample %v", sample)
		assert.LessOrEqual(t, got.Median, got.Max, "sample %v", sample)
		assert.LessOrEqual(t, got.Min, got.Mean, "sample %v", sample)
		assert.LessOrEqual(t, got.Mean, got.Max, "sample %v", sample)
	}
}

func TestComputeNumericStats_DoesNotMutateRows(t *testing.T) {
	rows := [][]models.Value{
		{models.Number(3)},
		{models.Number(1)},
		{models.Number(2)},
	}

	_, err := ComputeNumericStats(rows, []string{"x"}, "x")
	require.NoError(t, err)
	assert.Equal(t, models.Number(3), rows[0][0])
	assert.Equal(t, models.Number(1), rows[1][0])
	assert.Equal(t, models.Number(2), rows[2][0])
}

func TestComputeNumericStats_Idempotent(t *testing.T) {
	headers := []string{"a", "b"}
	rows := [][]models.Value{
		{models.Text("x"), models.Number(4)},
		{models.Text("y"), models.Text(" 8 ")},
		{models.Text("z")},
	}

	first, err := ComputeNumericStats(rows, headers, "b")
	require.NoError(t, err)
	second, err := ComputeNumericStats(rows, headers, "b")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.Count)
}

func TestComputeNumericStats_ColumnNotFound(t *testing.T) {
	_, err := ComputeNumericStats(nil, []string{"Name"}, "Age")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sheetwise.ErrColumnNotFound))

	var notFound *sheetwise.ColumnNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Age", notFound.Column)
}

func TestComputeNumericStats_ExactHeaderMatch(t *testing.T) {
	_, err := ComputeNumericStats(nil, []string{"age", " Age"}, "Age")
	assert.ErrorIs(t, err, sheetwise.ErrColumnNotFound)
}
