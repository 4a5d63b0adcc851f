package engine

import (
	"fmt"
	"strings"

	"github.com/mbowen/daybook/internal/dates"
	"github.com/mbowen/daybook/internal/models"
)

// SaveJournal upserts the journal entry for a date. Text that is empty after
// trimming deletes the entry instead.
func SaveJournal(doc models.Document, dateKey, text string) (models.Document, error) {
	if !dates.Valid(dateKey) {
		return doc, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", dateKey)}
	}
	next := doc.Clone()
	next.EnsureMaps()
	text = strings.TrimSpace(text)
	if text == "" {
		delete(next.Journal, dateKey)
	} else {
		next.Journal[dateKey] = models.JournalEntry{Text: text}
	}
	return next, nil
}
