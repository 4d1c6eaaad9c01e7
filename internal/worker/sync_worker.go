// Package worker mirrors locally-stored records to the spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"splitbook/internal/amqp"
	"splitbook/internal/core"
	"splitbook/internal/sheets"
)

// RecordStore is the slice of the sqlite repository the worker needs.
type RecordStore interface {
	GetRecord(ctx context.Context, id int64) (core.Record, error)
	MarkSynced(ctx context.Context, id int64) error
	MarkSyncError(ctx context.Context, id int64) error
}

// SyncWorker consumes record sync messages and appends the referenced
// records to the remote sheet.
type SyncWorker struct {
	store    RecordStore
	appender sheets.RecordAppender
}

func NewSyncWorker(store RecordStore, appender sheets.RecordAppender) *SyncWorker {
	return &SyncWorker{store: store, appender: appender}
}

// HandleSyncMessage processes one sync message. A returned error causes the
// consumer to nack with requeue, so only retryable failures are returned;
// a missing record is acked and dropped.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.RecordSyncMessage) error {
	rec, err := w.store.GetRecord(ctx, msg.ID)
	if err != nil {
		slog.WarnContext(ctx, "Sync message references unknown record, dropping",
			"id", msg.ID,
			"error", err)
		return nil
	}

	if _, err := w.appender.Append(ctx, rec); err != nil {
		if markErr := w.store.MarkSyncError(ctx, msg.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", msg.ID, "error", markErr)
		}
		return fmt.Errorf("append record %d to sheet: %w", msg.ID, err)
	}

	if err := w.store.MarkSynced(ctx, msg.ID); err != nil {
		return fmt.Errorf("mark record %d synced: %w", msg.ID, err)
	}

	slog.InfoContext(ctx, "Record mirrored to sheet",
		"id", msg.ID,
		"item", rec.Item,
		"payer", rec.Payer)
	return nil
}
