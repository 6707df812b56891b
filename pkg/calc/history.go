package calc

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one successful evaluation.
type HistoryEntry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// history is an insertion-ordered sequence of evaluations. It is not
// safe for concurrent use on its own; Session serializes access.
type history struct {
	entries []HistoryEntry
}

// append records a new entry at the end of the sequence.
func (h *history) append(expression, result string) HistoryEntry {
	entry := HistoryEntry{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Now(),
	}
	h.entries = append(h.entries, entry)
	return entry
}

// list returns a copy of the entries in insertion order.
func (h *history) list() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// delete removes the entry with the given id, keeping the order of the
// rest. Returns ErrEntryNotFound when no entry matches.
func (h *history) delete(id string) error {
	for i, entry := range h.entries {
		if entry.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// clear removes every entry.
func (h *history) clear() {
	h.entries = nil
}
