package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"splitbook/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the local ledger backend. Rows carry a synced flag so
// a worker can mirror them to the spreadsheet asynchronously.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements sheets.RecordAppender. The returned reference is the
// numeric row id, which doubles as the sync-message key.
func (r *SQLiteRepository) Append(ctx context.Context, rec core.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	dateStr := ""
	if !rec.Date.IsZero() {
		dateStr = rec.Date.Format("2006-01-02")
	}

	row, err := r.queries.CreateRecord(ctx, CreateRecordParams{
		CreatedAt:   ts.UTC().Format(time.RFC3339),
		Date:        dateStr,
		Item:        rec.Item,
		AmountCents: rec.Amount.Cents,
		Payer:       rec.Payer,
		SplitRatio:  rec.SplitRatio,
		Category:    rec.Category,
		Notes:       rec.Notes,
	})
	if err != nil {
		return "", fmt.Errorf("create record: %w", err)
	}

	slog.InfoContext(ctx, "Record saved to SQLite",
		"id", row.ID,
		"item", row.Item,
		"amount_cents", row.AmountCents,
		"payer", row.Payer)

	return strconv.FormatInt(row.ID, 10), nil
}

// Records implements sheets.RecordSource, returning the ledger in insertion
// order.
func (r *SQLiteRepository) Records(ctx context.Context) ([]core.Record, error) {
	rows, err := r.queries.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	out := make([]core.Record, len(rows))
	for i, row := range rows {
		out[i] = rowToRecord(row)
	}
	return out, nil
}

// GetRecord retrieves a single record by ID for the sync worker.
func (r *SQLiteRepository) GetRecord(ctx context.Context, id int64) (core.Record, error) {
	row, err := r.queries.GetRecord(ctx, id)
	if err != nil {
		return core.Record{}, fmt.Errorf("get record by id: %w", err)
	}
	return rowToRecord(row), nil
}

// PendingSyncRecord identifies a row awaiting mirror to the spreadsheet.
type PendingSyncRecord struct {
	ID      int64
	Version int64
}

// GetPendingSyncRecords returns rows that still need to be mirrored.
func (r *SQLiteRepository) GetPendingSyncRecords(ctx context.Context, limit int) ([]PendingSyncRecord, error) {
	rows, err := r.queries.GetPendingSyncRecords(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("get pending sync records: %w", err)
	}
	out := make([]PendingSyncRecord, len(rows))
	for i, row := range rows {
		out[i] = PendingSyncRecord{ID: row.ID, Version: row.Version}
	}
	return out, nil
}

// MarkSynced marks a record as successfully mirrored.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if err := r.queries.MarkRecordSynced(ctx, id); err != nil {
		return fmt.Errorf("mark record synced: %w", err)
	}
	slog.InfoContext(ctx, "Record marked as synced", "id", id)
	return nil
}

// MarkSyncError flags a record whose mirror attempt failed.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	if err := r.queries.MarkRecordSyncError(ctx, id); err != nil {
		return fmt.Errorf("mark record sync error: %w", err)
	}
	slog.WarnContext(ctx, "Record marked with sync error", "id", id)
	return nil
}

func rowToRecord(row RecordRow) core.Record {
	rec := core.Record{
		Item:       row.Item,
		Amount:     core.Money{Cents: row.AmountCents},
		Payer:      row.Payer,
		SplitRatio: row.SplitRatio,
		Category:   row.Category,
		Notes:      row.Notes,
	}
	if row.Date != "" {
		if t, err := time.Parse("2006-01-02", row.Date); err == nil {
			rec.Date = core.Date{Time: t}
		}
	}
	if t, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
		rec.Timestamp = t
	}
	return rec
}
