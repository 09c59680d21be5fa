// Package sheetwise loads spreadsheet files into in-memory tables.
package sheetwise

import "log/slog"

// Options configures how a file is loaded.
type Options struct {
	// Range restricts the table to an A1-style range such as "B2:F40".
	// The first row of the range is the header row.
	Range string
	// UsePrintArea bounds the table by the sheet's print area when Range is
	// empty. If nil, defaults to true.
	UsePrintArea *bool
	// Logger receives load warnings. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldUsePrintArea returns whether a defined print area bounds the table.
func (o Options) ShouldUsePrintArea() bool {
	if o.UsePrintArea != nil {
		return *o.UsePrintArea
	}
	return true
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
