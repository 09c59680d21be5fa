// Package present shapes analysis results for the chart renderer, the PDF
// writer and the numeric statistics panel.
package present

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ProductTag prefixes every exported file name.
const ProductTag = "SheetWise"

// ToChartSeries passes value counts through as a chart series. The slices
// are copied so the renderer cannot alias analysis output.
func ToChartSeries(counts models.ValueCounts) models.ChartSeries {
	return models.ChartSeries{
		Labels: append([]string(nil), counts.Labels...),
		Data:   append([]int(nil), counts.Data...),
	}
}

// ChartTitle returns the title used for a column's distribution chart.
func ChartTitle(column string) string {
	return fmt.Sprintf("Distribution for %q", column)
}

// PDFTable is the tabular document handed to a PDF writer.
type PDFTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// ToPDFTable builds the export descriptor. Headers and rows are passed
// through unchanged.
func ToPDFTable(headers []string, rows [][]string, title string) PDFTable {
	return PDFTable{
		Title:   title,
		Headers: headers,
		Rows:    rows,
	}
}

// TablePDF builds the export descriptor for a loaded table, titled after
// its source file.
func TablePDF(table *models.Table) PDFTable {
	return ToPDFTable(table.DisplayHeaders(), table.StringRows(), ExportTitle(table.Source))
}

// ExportTitle returns the heading printed above an exported table.
func ExportTitle(source string) string {
	return "Data Export from: " + filepath.Base(source)
}

// ExportFileName derives the suggested PDF name from the source file:
// the base name without its extension, prefixed with the product tag.
// ".pdf" is always appended.
func ExportFileName(source string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "table"
	}
	return fmt.Sprintf("%s-Export-%s.pdf", ProductTag, stem)
}

// StatLine is one labelled line of the numeric statistics panel.
type StatLine struct {
	Label string
	Value string
}

// FormatStats renders numeric stats for display. The mean is shown with
// two decimals; the other values use grouped thousands.
func FormatStats(s models.ColumnStats) []StatLine {
	return []StatLine{
		{Label: "Count", Value: strconv.Itoa(s.Count)},
		{Label: "Sum", Value: FormatNumber(s.Sum)},
		{Label: "Mean", Value: strconv.FormatFloat(s.Mean, 'f', 2, 64)},
		{Label: "Median", Value: FormatNumber(s.Median)},
		{Label: "Min", Value: FormatNumber(s.Min)},
		{Label: "Max", Value: FormatNumber(s.Max)},
	}
}

// FormatNumber renders f with comma thousand separators and at most three
// fraction digits.
func FormatNumber(f float64) string {
	f = math.Round(f*1000) / 1000
	if f == 0 {
		f = 0 // drop the sign of negative zero
	}
	s := message.NewPrinter(language.English).Sprintf("%.3f", f)
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
