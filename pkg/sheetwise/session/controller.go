// Package session drives a single user's interaction with a loaded table:
// loading files, analysing columns, switching chart kinds and exporting.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/analysis"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/present"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/render"
)

// State is the controller's position in its lifecycle.
type State int

const (
	// StateEmpty means no table is loaded.
	StateEmpty State = iota
	// StateLoaded means a table is loaded but no column analysed.
	StateLoaded
	// StateAnalyzed means a column has been analysed.
	StateAnalyzed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateAnalyzed:
		return "analyzed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loader decodes a spreadsheet file into a table.
type Loader interface {
	Load(path string) (*models.Table, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*models.Table, error)

// Load implements Loader.
func (f LoaderFunc) Load(path string) (*models.Table, error) { return f(path) }

// FileLoader returns a Loader reading files with sheetwise.Load.
func FileLoader(opts sheetwise.Options) Loader {
	return LoaderFunc(func(path string) (*models.Table, error) {
		return sheetwise.Load(path, opts)
	})
}

// ChartRenderer draws a series on a surface, replacing what was there.
// Clear empties the surface.
type ChartRenderer interface {
	Replace(surface string, series models.ChartSeries, title string, kind models.ChartKind) error
	Clear(surface string) error
}

// PDFWriter writes a table document to path.
type PDFWriter interface {
	Write(path string, table present.PDFTable) (render.Result, error)
}

// AnalysisResult is everything computed for the selected column.
type AnalysisResult struct {
	Column         string
	Classification analysis.Classification
	// Stats is set only for numeric columns.
	Stats      *models.ColumnStats
	Counts     models.ValueCounts
	Series     models.ChartSeries
	ChartTitle string
}

// Config wires a Controller to its collaborators.
type Config struct {
	Loader     Loader
	Open       OpenDialog
	Save       SaveDialog
	Charts     ChartRenderer
	PDF        PDFWriter
	Classifier analysis.Classifier
	// ChartSurface is where charts are drawn. Charts are skipped when it
	// or Charts is unset.
	ChartSurface string
	// AnalyzeOnLoad analyses the first named column after every load.
	AnalyzeOnLoad bool
	Logger        *slog.Logger
	Clock         func() time.Time
}

// Controller orchestrates user actions. Calls are serialised: one action
// runs at a time and the table is replaced wholesale, never mutated.
type Controller struct {
	mu sync.Mutex

	loader        Loader
	open          OpenDialog
	save          SaveDialog
	charts        ChartRenderer
	pdf           PDFWriter
	classifier    analysis.Classifier
	surface       string
	analyzeOnLoad bool
	logger        *slog.Logger

	state     State
	table     *models.Table
	chartKind models.ChartKind
	result    *AnalysisResult
	history   *History
}

// New creates a controller in StateEmpty with the bar chart selected.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	classifier := cfg.Classifier
	if classifier.SampleSize <= 0 {
		classifier = analysis.NewClassifier(analysis.DefaultSampleSize)
	}
	loader := cfg.Loader
	if loader == nil {
		loader = FileLoader(sheetwise.DefaultOptions())
	}
	return &Controller{
		loader:        loader,
		open:          cfg.Open,
		save:          cfg.Save,
		charts:        cfg.Charts,
		pdf:           cfg.PDF,
		classifier:    classifier,
		surface:       cfg.ChartSurface,
		analyzeOnLoad: cfg.AnalyzeOnLoad,
		logger:        logger.With(slog.String("component", "session")),
		chartKind:     models.ChartBar,
		history:       NewHistory(cfg.Clock),
	}
}

// LoadFile asks the open dialog for a file and loads it.
func (c *Controller) LoadFile(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == nil {
		return c.fail(ctx, "Error", errors.New("no open dialog configured"))
	}
	path, ok, err := c.open.ChooseFile(ctx, SpreadsheetFilters)
	if err != nil {
		return c.fail(ctx, "Error", err)
	}
	if !ok {
		c.record(ctx, "File open dialog was cancelled.")
		return nil
	}
	return c.load(ctx, path)
}

// LoadPath loads the file at path without asking.
func (c *Controller) LoadPath(ctx context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx, path)
}

// load replaces the current table. On failure the previous table and state
// are kept.
func (c *Controller) load(ctx context.Context, path string) error {
	start := time.Now()
	table, err := c.loader.Load(path)
	if err != nil {
		return c.fail(ctx, "Error", err)
	}

	c.table = table
	c.result = nil
	c.state = StateLoaded
	c.clearChart(ctx)
	c.record(ctx, "File loaded: "+filepath.Base(path))
	c.logger.InfoContext(ctx, "table loaded",
		slog.String("path", path),
		slog.Int("columns", len(table.Headers)),
		slog.Int("rows", table.RowCount()),
		slog.Duration("elapsed", time.Since(start)))

	if c.analyzeOnLoad {
		if cols := table.SelectableColumns(); len(cols) > 0 {
			// Failures are already in the history; the load itself succeeded.
			_, _ = c.analyze(ctx, cols[0])
		}
	}
	return nil
}

// SelectColumn classifies and analyses column, then redraws the chart.
// Nothing is cached: selecting the same column again recomputes everything.
func (c *Controller) SelectColumn(ctx context.Context, column string) (*AnalysisResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analyze(ctx, column)
}

func (c *Controller) analyze(ctx context.Context, column string) (*AnalysisResult, error) {
	if c.table == nil {
		return nil, c.fail(ctx, "Analysis Error", sheetwise.ErrNoTable)
	}
	if column == "" {
		return nil, c.fail(ctx, "Analysis Error", &sheetwise.InvalidInputError{
			Field: "column",
			Value: column,
			Err:   errors.New("a column must be selected"),
		})
	}

	class, err := c.classifier.ClassifyTableColumn(c.table, column)
	if err != nil {
		return nil, c.fail(ctx, "Analysis Error", err)
	}

	result := &AnalysisResult{
		Column:         column,
		Classification: class,
		ChartTitle:     present.ChartTitle(column),
	}

	if class.IsNumeric() {
		stats, err := analysis.ComputeNumericStats(c.table.Rows, c.table.Headers, column)
		if err != nil {
			return nil, c.fail(ctx, "Analysis Error", err)
		}
		result.Stats = &stats
		c.record(ctx, fmt.Sprintf("Calculated numeric stats for %q.", column))
	}

	counts, err := analysis.ComputeValueCounts(c.table.Rows, c.table.Headers, column)
	if err != nil {
		return nil, c.fail(ctx, "Analysis Error", err)
	}
	result.Counts = counts
	result.Series = present.ToChartSeries(counts)

	c.result = result
	c.state = StateAnalyzed
	c.logger.DebugContext(ctx, "column analysed",
		slog.String("column", column),
		slog.String("kind", string(class.Kind)),
		slog.Int("categories", counts.Len()))

	return result, c.draw(ctx)
}

// draw renders the current result with the current chart kind.
func (c *Controller) draw(ctx context.Context) error {
	if c.charts == nil || c.surface == "" || c.result == nil {
		return nil
	}
	if len(c.result.Series.Labels) == 0 {
		c.clearChart(ctx)
		c.record(ctx, fmt.Sprintf("No data to chart for %q.", c.result.Column))
		return nil
	}
	if err := c.charts.Replace(c.surface, c.result.Series, c.result.ChartTitle, c.chartKind); err != nil {
		return c.fail(ctx, "Chart Error", err)
	}
	c.record(ctx, fmt.Sprintf("Generated %s chart for %q.", c.chartKind, c.result.Column))
	return nil
}

// clearChart removes whatever chart the surface shows. A failure is only
// logged; the next successful draw replaces the image anyway.
func (c *Controller) clearChart(ctx context.Context) {
	if c.charts == nil || c.surface == "" {
		return
	}
	if err := c.charts.Clear(c.surface); err != nil {
		c.logger.WarnContext(ctx, "failed to clear chart",
			slog.String("surface", c.surface),
			slog.String("error", err.Error()))
	}
}

// ChangeChartType switches the chart kind and redraws the last analysed
// column from its cached value counts, without recomputing statistics.
func (c *Controller) ChangeChartType(ctx context.Context, kind models.ChartKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if kind != models.ChartBar && kind != models.ChartPie {
		return c.fail(ctx, "Error", &sheetwise.InvalidInputError{
			Field: "chart kind",
			Value: string(kind),
			Err:   sheetwise.ErrInvalidChartKind,
		})
	}
	c.chartKind = kind
	if c.result == nil {
		c.record(ctx, fmt.Sprintf("Chart type set to %s.", kind))
		return nil
	}
	return c.draw(ctx)
}

// ExportPDF writes the loaded table to a PDF chosen through the save
// dialog. Without rows it only records that there is nothing to export.
func (c *Controller) ExportPDF(ctx context.Context) (render.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table == nil || c.table.RowCount() == 0 {
		msg := "No data to export."
		c.record(ctx, msg)
		return render.Result{Success: false, Message: msg}, nil
	}
	if c.save == nil || c.pdf == nil {
		err := errors.New("PDF export is not configured")
		return render.Result{Success: false, Message: err.Error()}, c.fail(ctx, "Error", err)
	}

	name := filepath.Base(c.table.Source)
	c.record(ctx, fmt.Sprintf("Exporting %s to PDF...", name))

	path, ok, err := c.save.ChooseSavePath(ctx, PDFFilters, present.ExportFileName(c.table.Source))
	if err != nil {
		return render.Result{Success: false, Message: err.Error()}, c.fail(ctx, "Error", err)
	}
	if !ok {
		msg := "PDF export cancelled."
		c.record(ctx, msg)
		return render.Result{Success: false, Message: msg}, nil
	}

	res, err := c.pdf.Write(path, present.TablePDF(c.table))
	c.record(ctx, res.Message)
	if err != nil {
		c.logger.ErrorContext(ctx, "export failed", slog.String("path", path), slog.String("error", err.Error()))
		return res, err
	}
	return res, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Table returns the loaded table, or nil.
func (c *Controller) Table() *models.Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table
}

// Analysis returns the most recent analysis, or nil.
func (c *Controller) Analysis() *AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// ChartKind returns the selected chart kind.
func (c *Controller) ChartKind() models.ChartKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chartKind
}

// History returns the recorded actions, most recent first.
func (c *Controller) History() []models.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Entries()
}

func (c *Controller) record(ctx context.Context, message string) {
	c.history.Add(message)
	c.logger.InfoContext(ctx, "history", slog.String("message", message))
}

// fail records err under prefix and returns it unchanged.
func (c *Controller) fail(ctx context.Context, prefix string, err error) error {
	c.history.Add(fmt.Sprintf("%s: %v", prefix, err))
	c.logger.WarnContext(ctx, "action failed", slog.String("kind", prefix), slog.String("error", err.Error()))
	return err
}
