// Package render draws charts and writes PDF exports.
package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Default chart dimensions in pixels.
const (
	DefaultChartWidth  = 800
	DefaultChartHeight = 500
)

// ParseChartKind validates a user-entered chart kind.
func ParseChartKind(s string) (models.ChartKind, error) {
	switch kind := models.ChartKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case models.ChartBar, models.ChartPie:
		return kind, nil
	}
	return "", &sheetwise.InvalidInputError{
		Field: "chart kind",
		Value: s,
		Err:   fmt.Errorf("%w: must be %q or %q", sheetwise.ErrInvalidChartKind, models.ChartBar, models.ChartPie),
	}
}

// ChartRenderer draws value-count charts as PNG images. It owns the chart
// currently shown on each surface; a surface is the path of the image file.
type ChartRenderer struct {
	width  int
	height int
	logger *slog.Logger
	charts map[string]models.Chart
}

// NewChartRenderer creates a renderer producing images of the given size.
// Non-positive dimensions select the defaults.
func NewChartRenderer(width, height int, logger *slog.Logger) *ChartRenderer {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartRenderer{
		width:  width,
		height: height,
		logger: logger,
		charts: make(map[string]models.Chart),
	}
}

// Replace disposes of the chart previously drawn on surface, if any, and
// draws a new one. The image file is replaced atomically. If drawing fails
// the previous image is removed, so the surface never shows a stale chart.
func (r *ChartRenderer) Replace(surface string, series models.ChartSeries, title string, kind models.ChartKind) error {
	owned := r.dispose(surface)

	c := models.Chart{Title: title, Kind: kind, Series: series, W: r.width, H: r.height}
	if err := r.writeImage(surface, c); err != nil {
		if owned {
			if rmErr := removeImage(surface); rmErr != nil {
				r.logger.Warn("failed to remove previous chart",
					slog.String("surface", surface),
					slog.String("error", rmErr.Error()))
			}
		}
		return err
	}

	r.charts[surface] = c
	r.logger.Info("chart rendered",
		slog.String("surface", surface),
		slog.String("kind", string(kind)),
		slog.Int("points", len(series.Labels)))
	return nil
}

// Clear disposes of the chart drawn on surface and deletes its image. A
// surface this renderer never drew on is left alone.
func (r *ChartRenderer) Clear(surface string) error {
	if !r.dispose(surface) {
		return nil
	}
	if err := removeImage(surface); err != nil {
		return fmt.Errorf("failed to remove chart: %w", err)
	}
	return nil
}

// dispose forgets the chart on surface and reports whether there was one.
func (r *ChartRenderer) dispose(surface string) bool {
	prev, ok := r.charts[surface]
	if !ok {
		return false
	}
	r.logger.Debug("disposing chart",
		slog.String("surface", surface),
		slog.String("title", prev.Title),
		slog.String("kind", string(prev.Kind)))
	delete(r.charts, surface)
	return true
}

func (r *ChartRenderer) writeImage(surface string, c models.Chart) error {
	tmp, err := os.CreateTemp(filepath.Dir(surface), ".chart-*.png")
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := r.Render(tmp, c); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if err := os.Rename(tmp.Name(), surface); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func removeImage(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Current returns the chart shown on surface.
func (r *ChartRenderer) Current(surface string) (models.Chart, bool) {
	c, ok := r.charts[surface]
	return c, ok
}

// Render writes c as a PNG image to w.
func (r *ChartRenderer) Render(w io.Writer, c models.Chart) error {
	if len(c.Series.Labels) == 0 {
		return sheetwise.ErrEmptySeries
	}
	if len(c.Series.Labels) != len(c.Series.Data) {
		return fmt.Errorf("chart series has %d labels but %d values", len(c.Series.Labels), len(c.Series.Data))
	}

	width, height := c.W, c.H
	if width <= 0 {
		width = r.width
	}
	if height <= 0 {
		height = r.height
	}

	var err error
	switch c.Kind {
	case models.ChartBar:
		err = barChart(c, width, height).Render(chart.PNG, w)
	case models.ChartPie:
		err = pieChart(c, width, height).Render(chart.PNG, w)
	default:
		return fmt.Errorf("%w: %q", sheetwise.ErrInvalidChartKind, c.Kind)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s chart: %w", c.Kind, err)
	}
	return nil
}

func barChart(c models.Chart, width, height int) chart.BarChart {
	maxCount := 0
	bars := make([]chart.Value, len(c.Series.Labels))
	for i, label := range c.Series.Labels {
		n := c.Series.Data[i]
		if n > maxCount {
			maxCount = n
		}
		bars[i] = chart.Value{
			Label: label,
			Value: float64(n),
			Style: chart.Style{
				FillColor:   barFill,
				StrokeColor: barStroke,
				StrokeWidth: 1,
			},
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	barWidth := (width - 120) / (len(bars) * 2)
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 60 {
		barWidth = 60
	}

	return chart.BarChart{
		Title:      c.Title,
		TitleStyle: chart.Style{FontSize: 16, FontColor: textColor},
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', 0, 64)
				}
				return ""
			},
		},
		Bars: bars,
	}
}

func pieChart(c models.Chart, width, height int) chart.PieChart {
	colors := sliceColors(len(c.Series.Labels), 153)
	values := make([]chart.Value, len(c.Series.Labels))
	for i, label := range c.Series.Labels {
		stroke := colors[i]
		stroke.A = 255
		values[i] = chart.Value{
			Label: label,
			Value: float64(c.Series.Data[i]),
			Style: chart.Style{
				FillColor:   colors[i],
				StrokeColor: stroke,
				StrokeWidth: 1,
			},
		}
	}

	return chart.PieChart{
		Title:      c.Title,
		TitleStyle: chart.Style{FontSize: 16, FontColor: textColor},
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      width,
		Height:     height,
		Values:     values,
	}
}
