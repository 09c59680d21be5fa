package sheetwise

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file extension is not a known
// spreadsheet format.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoWorksheet indicates the workbook contains no readable worksheet.
var ErrNoWorksheet = errors.New("no worksheets found in the file")

// ErrInvalidRange indicates a user-entered cell range could not be parsed.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrColumnNotFound indicates a requested column is absent from the headers.
var ErrColumnNotFound = errors.New("column not found")

// ErrInvalidChartKind indicates an unknown chart kind was requested.
var ErrInvalidChartKind = errors.New("invalid chart kind")

// ErrEmptySeries indicates there is nothing to plot.
var ErrEmptySeries = errors.New("empty chart series")

// ErrNoTable indicates an operation needs a loaded table.
var ErrNoTable = errors.New("no table loaded")

// FileParseError represents a failure to read or decode a spreadsheet file.
type FileParseError struct {
	Path string
	Err  error
}

func (e *FileParseError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *FileParseError) Unwrap() error {
	return e.Err
}

// NewFileParseError creates a new FileParseError.
func NewFileParseError(path string, err error) *FileParseError {
	return &FileParseError{Path: path, Err: err}
}

// ColumnNotFoundError names the column that could not be located.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// Is makes errors.Is(err, ErrColumnNotFound) match.
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// ExportError represents a failure to write an exported document.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("PDF export to %q failed: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(path string, err error) *ExportError {
	return &ExportError{Path: path, Err: err}
}

// InvalidInputError represents malformed user input, rejected before any
// analysis runs.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// ExtractionError represents an error while reading one part of a sheet.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "print_area"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
