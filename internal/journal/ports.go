package journal

import (
	"context"

	"moodlog/internal/core"
)

// Ports for outbound record stores.
type (
	EntryUpserter interface {
		// UpsertForDate inserts the entry, or replaces all fields of an
		// existing entry on the same date. The write is atomic per date.
		UpsertForDate(ctx context.Context, e core.Entry) error
	}

	EntryReader interface {
		// GetByDate returns the entry for a date, or nil when none exists.
		GetByDate(ctx context.Context, d core.Date) (*core.Entry, error)
	}

	// EntryRanger lists entries over an inclusive date range.
	EntryRanger interface {
		// ListRange returns entries with start <= date <= end, ordered by
		// date ascending.
		ListRange(ctx context.Context, start, end core.Date) ([]core.Entry, error)
	}

	// Store combines the full record store contract.
	Store interface {
		EntryUpserter
		EntryReader
		EntryRanger
	}
)
