package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"splitbook/internal/core"
	"splitbook/internal/sheets"
)

// SyncPublisher notifies the sync pipeline that a record needs to be
// pushed to the spreadsheet. Implemented by amqp.Client.
type SyncPublisher interface {
	PublishRecordSync(ctx context.Context, id int64, version int64) error
}

// IntakeService validates and persists new records. Publishing the sync
// message is best effort: a failed publish never fails the write, the
// worker's periodic requeue pass picks the record up later.
type IntakeService struct {
	appender  sheets.RecordAppender
	publisher SyncPublisher
	now       func() time.Time
}

func NewIntakeService(appender sheets.RecordAppender, publisher SyncPublisher) *IntakeService {
	return &IntakeService{appender: appender, publisher: publisher, now: time.Now}
}

// Create validates rec, stamps its creation time and appends it to the
// backing store. The returned reference is backend specific.
func (s *IntakeService) Create(ctx context.Context, rec core.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("validating record: %w", err)
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}
	ref, err := s.appender.Append(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("appending record: %w", err)
	}

	if s.publisher != nil {
		// Only the sqlite backend produces numeric references; other
		// backends have nothing to sync.
		if id, perr := strconv.ParseInt(ref, 10, 64); perr == nil {
			if err := s.publisher.PublishRecordSync(ctx, id, 1); err != nil {
				slog.ErrorContext(ctx, "Publishing sync message failed", "error", err, "record_id", id)
			}
		}
	}
	return ref, nil
}
