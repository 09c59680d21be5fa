package render

import (
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/present"
)

// PDFConfig controls the layout of exported documents.
type PDFConfig struct {
	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string
	// FontSize is the table font size in points.
	FontSize float64
}

// DefaultPDFConfig returns the default export layout: A4 portrait, 8pt.
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{Orientation: "P", FontSize: 8}
}

// Result reports the outcome of an export for display to the user.
type Result struct {
	Success bool
	Message string
}

// PDFWriter writes tables as paginated grid PDFs.
type PDFWriter struct {
	cfg    PDFConfig
	logger *slog.Logger
}

// NewPDFWriter creates a writer.
func NewPDFWriter(cfg PDFConfig, logger *slog.Logger) *PDFWriter {
	if cfg.Orientation != "L" {
		cfg.Orientation = "P"
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = DefaultPDFConfig().FontSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFWriter{cfg: cfg, logger: logger}
}

const (
	marginLeft  = 14.0
	marginTop   = 15.0
	marginRight = 14.0
	marginBot   = 15.0
	tableTop    = 20.0
)

// Write renders table to path. A failure is returned both as an
// *sheetwise.ExportError and as an unsuccessful Result.
func (w *PDFWriter) Write(path string, table present.PDFTable) (Result, error) {
	pdf := fpdf.New(w.cfg.Orientation, "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBot)
	pdf.SetTitle(table.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, marginTop, tr(table.Title))
	pdf.SetY(tableTop)

	if len(table.Headers) > 0 {
		w.drawTable(pdf, tr, table)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		exportErr := sheetwise.NewExportError(path, err)
		w.logger.Error("PDF export failed", slog.String("path", path), slog.String("error", err.Error()))
		return Result{Success: false, Message: fmt.Sprintf("PDF Export failed: %v", err)}, exportErr
	}

	w.logger.Info("PDF exported",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("pages", pdf.PageCount()))
	return Result{Success: true, Message: fmt.Sprintf("Successfully exported to %s", path)}, nil
}

func (w *PDFWriter) drawTable(pdf *fpdf.Fpdf, tr func(string) string, table present.PDFTable) {
	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - marginLeft - marginRight) / float64(len(table.Headers))
	lineH := w.cfg.FontSize * 0.6

	header := func() {
		pdf.SetFont("Helvetica", "B", w.cfg.FontSize)
		pdf.SetFillColor(41, 128, 186)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(180, 180, 180)
		for _, h := range table.Headers {
			pdf.CellFormat(colW, lineH, fit(pdf, tr(h), colW), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(lineH)
		pdf.SetFont("Helvetica", "", w.cfg.FontSize)
		pdf.SetTextColor(0, 0, 0)
	}

	header()
	for _, row := range table.Rows {
		if pdf.GetY()+lineH > pageH-marginBot {
			pdf.AddPage()
			header()
		}
		for j := range table.Headers {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			pdf.CellFormat(colW, lineH, fit(pdf, tr(cell), colW), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(lineH)
	}
}

// fit truncates s so it fits a cell of width w, marking the cut with "...".
// s is already translated to the single-byte core font encoding.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	limit := w - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > limit {
		s = s[:len(s)-1]
	}
	return s + "..."
}
