package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/analysis"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/present"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/session"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printTable(w io.Writer, table *models.Table, limit int) error {
	if len(table.Headers) == 0 {
		_, err := fmt.Fprintln(w, "(empty table)")
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, strings.Join(table.DisplayHeaders(), "\t"))
	rows := table.StringRows()
	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}
	for _, row := range shown {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(shown) < len(rows) {
		fmt.Fprintf(w, "... %d more rows\n", len(rows)-len(shown))
	}
	return nil
}

func printColumns(w io.Writer, table *models.Table, sampleSize int) error {
	classifier := analysis.NewClassifier(sampleSize)
	headers := table.DisplayHeaders()

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "#\tCOLUMN\tKIND\tNUMERIC/SAMPLE")
	for i, name := range table.Headers {
		if name == "" {
			// Unnamed columns cannot be selected for analysis.
			fmt.Fprintf(tw, "%d\t%s\t-\t-\n", i+1, headers[i])
			continue
		}
		class := classifier.Classify(table.ColumnValues(i))
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\n", i+1, name, class.Kind, class.NumericCount, class.SampleSize)
	}
	return tw.Flush()
}

func printAnalysis(w io.Writer, res *session.AnalysisResult) error {
	fmt.Fprintf(w, "%s (%s)\n\n", res.ChartTitle, res.Classification.Kind)

	if res.Stats != nil {
		tw := newTabWriter(w)
		for _, line := range present.FormatStats(*res.Stats) {
			fmt.Fprintf(tw, "%s:\t%s\n", line.Label, line.Value)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "VALUE\tCOUNT")
	for i, label := range res.Counts.Labels {
		fmt.Fprintf(tw, "%s\t%d\n", label, res.Counts.Data[i])
	}
	return tw.Flush()
}

func printHistory(w io.Writer, entries []models.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "(no history)")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(w, e.String())
	}
}
