package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/render"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/session"
)

const defaultLimit = 20

func (a *app) showCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the loaded table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := sheetwise.Load(args[0], a.loadOptions())
			if err != nil {
				return err
			}
			return printTable(a.out, table, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLimit, "Maximum rows to print (0 prints all)")
	return cmd
}

func (a *app) columnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns <file>",
		Short: "List columns with their numeric/categorical classification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := sheetwise.Load(args[0], a.loadOptions())
			if err != nil {
				return err
			}
			return printColumns(a.out, table, a.cfg.Classifier.Sample)
		},
	}
}

func (a *app) analyzeCmd() *cobra.Command {
	var (
		column   string
		kind     string
		chartOut string
	)
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Summarise one column and optionally chart its values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chartKind, err := render.ParseChartKind(kind)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ctrl := a.newController(nil, nil, chartOut, false)
			if err := ctrl.LoadPath(ctx, args[0]); err != nil {
				return err
			}
			if err := ctrl.ChangeChartType(ctx, chartKind); err != nil {
				return err
			}
			res, err := ctrl.SelectColumn(ctx, column)
			if err != nil {
				return err
			}
			if err := printAnalysis(a.out, res); err != nil {
				return err
			}
			if chartOut != "" && len(res.Series.Labels) > 0 {
				fmt.Fprintf(a.out, "\nChart written to %s\n", chartOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&column, "column", "c", "", "Column to analyse (required)")
	cmd.Flags().StringVar(&kind, "chart", "bar", "Chart kind: bar or pie")
	cmd.Flags().StringVar(&chartOut, "chart-out", "", "Write the chart as a PNG image to this path")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the table to a PDF document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl := a.newController(nil, session.StaticDialog{Path: outputPath}, "", false)
			if err := ctrl.LoadPath(ctx, args[0]); err != nil {
				return err
			}
			res, err := ctrl.ExportPDF(ctx)
			fmt.Fprintln(a.out, res.Message)
			return err
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path (default: SheetWise-Export-<name>.pdf)")
	return cmd
}
