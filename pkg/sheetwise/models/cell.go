// Package models defines data structures for loaded spreadsheet tables
// and the analysis results derived from them.
package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind tags the type of a cell value.
type Kind int

const (
	// KindEmpty is a missing or blank cell.
	KindEmpty Kind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindText is a string cell.
	KindText
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a date or date-time cell.
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value is a single typed cell value.
type Value struct {
	// Kind tags which of the fields below is meaningful.
	Kind Kind `json:"kind"`
	// Num holds the value of a KindNumber cell.
	Num float64 `json:"num,omitempty"`
	// Str holds the value of a KindText cell.
	Str string `json:"str,omitempty"`
	// Bool holds the value of a KindBool cell.
	Bool bool `json:"bool,omitempty"`
	// Time holds the value of a KindDate cell.
	Time time.Time `json:"time,omitempty"`
}

// Empty returns an empty cell value.
func Empty() Value { return Value{Kind: KindEmpty} }

// Number returns a numeric cell value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Text returns a string cell value.
func Text(s string) Value { return Value{Kind: KindText, Str: s} }

// Bool returns a boolean cell value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Date returns a date cell value.
func Date(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

// IsEmpty reports whether the cell carries no content. Whitespace-only
// text counts as empty.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(v.Str) == ""
	default:
		return false
	}
}

// Float returns the numeric reading of the value and whether it has one.
// Only finite numbers and text holding a finite number qualify; booleans
// and dates never do.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return 0, false
		}
		return v.Num, true
	case KindText:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String renders the value the way it is shown in tables and chart labels.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 && v.Time.Nanosecond() == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format(time.RFC3339)
	default:
		return ""
	}
}
