package sheets

import (
	"context"
	"errors"

	"splitbook/internal/core"
)

// Column headers of the ledger sheet, matching the intake form fields.
const (
	HeaderTimestamp = "Timestamp"
	HeaderDate      = "Date"
	HeaderItem      = "Item"
	HeaderAmount    = "Amount"
	HeaderPayer     = "Who paid?"
	HeaderSplit     = "How is it split? (Paid by / Owed)"
	HeaderCategory  = "Category"
	HeaderNotes     = "Notes"
)

// Headers lists the ledger columns in storage order.
var Headers = []string{
	HeaderTimestamp, HeaderDate, HeaderItem, HeaderAmount,
	HeaderPayer, HeaderSplit, HeaderCategory, HeaderNotes,
}

// ErrSheetNotFound is returned when the named sheet does not exist in the
// backing store.
var ErrSheetNotFound = errors.New("sheet not found")

// Ports for outbound adapters.
type (
	RecordAppender interface {
		Append(ctx context.Context, rec core.Record) (rowRef string, err error)
	}

	// RecordSource returns the full ledger snapshot in insertion order.
	RecordSource interface {
		Records(ctx context.Context) ([]core.Record, error)
	}
)
