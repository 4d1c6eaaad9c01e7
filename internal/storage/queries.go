package storage

import (
	"context"
	"database/sql"
)

// Queries wraps hand-written SQL for the records table.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// RecordRow mirrors one row of the records table.
type RecordRow struct {
	ID          int64
	CreatedAt   string // RFC 3339
	Date        string // YYYY-MM-DD, empty when unknown
	Item        string
	AmountCents int64
	Payer       string
	SplitRatio  string
	Category    string
	Notes       string
	Synced      bool
	SyncError   bool
	Version     int64
}

type CreateRecordParams struct {
	CreatedAt   string
	Date        string
	Item        string
	AmountCents int64
	Payer       string
	SplitRatio  string
	Category    string
	Notes       string
}

const createRecord = `
INSERT INTO records (created_at, date, item, amount_cents, payer, split_ratio, category, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, created_at, date, item, amount_cents, payer, split_ratio, category, notes, synced, sync_error, version`

func (q *Queries) CreateRecord(ctx context.Context, p CreateRecordParams) (RecordRow, error) {
	row := q.db.QueryRowContext(ctx, createRecord,
		p.CreatedAt, p.Date, p.Item, p.AmountCents, p.Payer, p.SplitRatio, p.Category, p.Notes)
	return scanRecord(row)
}

const listRecords = `
SELECT id, created_at, date, item, amount_cents, payer, split_ratio, category, notes, synced, sync_error, version
FROM records
ORDER BY id ASC`

func (q *Queries) ListRecords(ctx context.Context) ([]RecordRow, error) {
	rows, err := q.db.QueryContext(ctx, listRecords)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

const getRecord = `
SELECT id, created_at, date, item, amount_cents, payer, split_ratio, category, notes, synced, sync_error, version
FROM records
WHERE id = ?`

func (q *Queries) GetRecord(ctx context.Context, id int64) (RecordRow, error) {
	return scanRecord(q.db.QueryRowContext(ctx, getRecord, id))
}

const getPendingSyncRecords = `
SELECT id, created_at, date, item, amount_cents, payer, split_ratio, category, notes, synced, sync_error, version
FROM records
WHERE synced = 0
ORDER BY id ASC
LIMIT ?`

func (q *Queries) GetPendingSyncRecords(ctx context.Context, limit int64) ([]RecordRow, error) {
	rows, err := q.db.QueryContext(ctx, getPendingSyncRecords, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (q *Queries) MarkRecordSynced(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE records SET synced = 1, sync_error = 0, version = version + 1 WHERE id = ?`, id)
	return err
}

func (q *Queries) MarkRecordSyncError(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE records SET sync_error = 1 WHERE id = ?`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (RecordRow, error) {
	var r RecordRow
	err := s.Scan(&r.ID, &r.CreatedAt, &r.Date, &r.Item, &r.AmountCents,
		&r.Payer, &r.SplitRatio, &r.Category, &r.Notes, &r.Synced, &r.SyncError, &r.Version)
	return r, err
}
