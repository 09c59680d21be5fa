// Package main provides the CLI entry point for sheetwise.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetwise-go/internal/config"
	"github.com/ukaji3/sheetwise-go/internal/logging"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/analysis"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/render"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx := logging.WithSessionID(context.Background(), uuid.NewString())
	err = newRootCmd(cfg, logger, os.Stdin, os.Stdout).ExecuteContext(ctx)
	closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer

	rangeRef    string
	noPrintArea bool
}

func newRootCmd(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *cobra.Command {
	a := &app{cfg: cfg, logger: logger, in: in, out: out}

	rootCmd := &cobra.Command{
		Use:   "sheetwise",
		Short: "Explore spreadsheet columns from the terminal",
		Long: `sheetwise loads the first worksheet of an Excel or CSV file, summarises
a column (count, sum, mean, median, min, max and a value tally), draws a
bar or pie chart of the tally and exports the table to PDF.`,
		SilenceUsage: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&a.rangeRef, "range", "", "Cell range to read, e.g. B2:F40 (first row is the header)")
	rootCmd.PersistentFlags().BoolVar(&a.noPrintArea, "no-print-area", false, "Ignore the sheet's print area")

	rootCmd.AddCommand(
		a.showCmd(),
		a.columnsCmd(),
		a.analyzeCmd(),
		a.exportCmd(),
		a.sessionCmd(),
	)
	return rootCmd
}

func (a *app) loadOptions() sheetwise.Options {
	usePrintArea := !a.noPrintArea
	return sheetwise.Options{
		Range:        a.rangeRef,
		UsePrintArea: &usePrintArea,
		Logger:       a.logger,
	}
}

// newController wires a controller to the real loader, renderer and writer.
func (a *app) newController(open session.OpenDialog, save session.SaveDialog, surface string, analyzeOnLoad bool) *session.Controller {
	return session.New(session.Config{
		Loader: session.FileLoader(a.loadOptions()),
		Open:   open,
		Save:   save,
		Charts: render.NewChartRenderer(a.cfg.Chart.Width, a.cfg.Chart.Height, a.logger),
		PDF: render.NewPDFWriter(render.PDFConfig{
			Orientation: a.cfg.PDF.Orientation,
			FontSize:    a.cfg.PDF.FontSize,
		}, a.logger),
		Classifier:    analysis.NewClassifier(a.cfg.Classifier.Sample),
		ChartSurface:  surface,
		AnalyzeOnLoad: analyzeOnLoad,
		Logger:        a.logger,
	})
}
