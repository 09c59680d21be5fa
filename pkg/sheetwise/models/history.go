package models

import (
	"fmt"
	"time"
)

// HistoryEntry records a completed user action.
type HistoryEntry struct {
	// At is when the action completed.
	At time.Time `json:"at"`
	// Message is the human-readable description.
	Message string `json:"message"`
}

func (e HistoryEntry) String() string {
	return fmt.Sprintf("[%s] %s", e.At.Format("15:04:05"), e.Message)
}
