package models

import (
	"time"

	"github.com/google/uuid"
)

// PageCursor points at the last item of a previously returned page. Listing
// resumes strictly after that position in (occurred_at desc, id desc) order,
// which keeps the keyset stable when two records share a timestamp.
type PageCursor struct {
	OccurredAt time.Time `json:"occurred_at"`
	ID         uuid.UUID `json:"id"`
}

// CursorFor builds the continuation cursor for a returned page. It returns
// nil for an empty page; callers combine this with the page length to decide
// whether more pages exist.
func CursorFor(items []Transaction) *PageCursor {
	if len(items) == 0 {
		return nil
	}

	last := items[len(items)-1]
	return &PageCursor{
		OccurredAt: last.OccurredAt,
		ID:         last.ID,
	}
}
