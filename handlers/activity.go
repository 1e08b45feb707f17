package handlers

import (
	"sync"
	"time"

	"github.com/Shreyas-TP/Stegohub/models"
)

// ActivityLog is a bounded in-memory journal of codec operations. The clock
// and ID source are injected so tests can pin both.
type ActivityLog struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
	limit   int
	now     func() time.Time
	nextID  func() string
}

func NewActivityLog(limit int, now func() time.Time, nextID func() string) *ActivityLog {
	if limit <= 0 {
		limit = 64
	}
	return &ActivityLog{
		entries: make([]models.ActivityEntry, 0, limit),
		limit:   limit,
		now:     now,
		nextID:  nextID,
	}
}

// Record appends one entry, dropping the oldest once the limit is reached.
func (l *ActivityLog) Record(operation, algorithm, carrier, detail string) models.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := models.ActivityEntry{
		ID:        l.nextID(),
		Timestamp: l.now(),
		Operation: operation,
		Algorithm: algorithm,
		Carrier:   carrier,
		Detail:    detail,
	}
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	return entry
}

// Entries returns a copy of the journal, newest first.
func (l *ActivityLog) Entries() []models.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.ActivityEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}
