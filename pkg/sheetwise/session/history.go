package session

import (
	"time"

	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/models"
)

// History is an append-only log of completed user actions.
type History struct {
	entries []models.HistoryEntry
	now     func() time.Time
}

// NewHistory creates an empty history stamped by now. A nil now uses
// time.Now.
func NewHistory(now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}
	return &History{now: now}
}

// Add records a message and returns the new entry.
func (h *History) Add(message string) models.HistoryEntry {
	e := models.HistoryEntry{At: h.now(), Message: message}
	h.entries = append(h.entries, e)
	return e
}

// Entries returns the recorded entries, most recent first.
func (h *History) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }
