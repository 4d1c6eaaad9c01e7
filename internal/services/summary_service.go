// Package services orchestrates the ledger ports: summaries over time
// windows, and record intake with asynchronous spreadsheet sync.
package services

import (
	"context"
	"log/slog"
	"time"

	"splitbook/internal/core"
	"splitbook/internal/sheets"
)

// DefaultRecentLimit matches the ledger's historical page size.
const DefaultRecentLimit = 10

// MaxRecentLimit caps client-supplied limits.
const MaxRecentLimit = 100

// RecordView is a recent-expenses entry as exposed to clients: the
// creation Timestamp is stripped and the Date normalized to RFC 3339.
type RecordView struct {
	Date       string  `json:"date,omitempty"`
	Item       string  `json:"item"`
	Amount     float64 `json:"amount"`
	Payer      string  `json:"payer"`
	SplitRatio string  `json:"splitRatio,omitempty"`
	Category   string  `json:"category,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// SummaryService answers the balance queries. Every call re-reads the full
// snapshot from the record source and recomputes from scratch; storage
// failures are logged and degrade to zeroed results so the UI stays up.
type SummaryService struct {
	source      sheets.RecordSource
	now         func() time.Time
	recentLimit int
}

func NewSummaryService(source sheets.RecordSource) *SummaryService {
	return &SummaryService{source: source, now: time.Now, recentLimit: DefaultRecentLimit}
}

// WithClock overrides the service clock. Used by tests to pin the calendar
// month window.
func (s *SummaryService) WithClock(now func() time.Time) *SummaryService {
	s.now = now
	return s
}

// WithRecentLimit overrides the recent-page size used when a query does not
// supply its own limit. Non-positive values keep the default.
func (s *SummaryService) WithRecentLimit(limit int) *SummaryService {
	if limit > 0 {
		s.recentLimit = limit
	}
	return s
}

// Ready reports whether the record source answers. Used by the readiness
// probe; unlike the queries it does not fail soft.
func (s *SummaryService) Ready(ctx context.Context) error {
	_, err := s.source.Records(ctx)
	return err
}

// MonthlySummary computes the balance for the current calendar month.
// An empty user yields the group view. Records without a date are excluded
// from the window.
func (s *SummaryService) MonthlySummary(ctx context.Context, user string) core.UserSummary {
	records, err := s.source.Records(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Monthly summary: reading records failed", "error", err, "user", user)
		return core.UserSummary{}
	}
	now := s.now()
	var window []core.Record
	for _, rec := range records {
		if rec.Date.SameMonth(now) {
			window = append(window, rec)
		}
	}
	return core.ComputeBalance(window, user)
}

// AllTimeSummary computes the balance over the whole ledger. Records
// without a date are included; the date is never evaluated here.
func (s *SummaryService) AllTimeSummary(ctx context.Context, user string) core.UserSummary {
	records, err := s.source.Records(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "All-time summary: reading records failed", "error", err, "user", user)
		return core.UserSummary{}
	}
	return core.ComputeBalance(records, user)
}

// Users lists the distinct non-empty payers seen in the ledger, sorted.
func (s *SummaryService) Users(ctx context.Context) []string {
	records, err := s.source.Records(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "User list: reading records failed", "error", err)
		return []string{}
	}
	return core.Users(records)
}

// Recent returns the newest records first, by storage insertion order.
// A non-positive limit falls back to the configured page size.
func (s *SummaryService) Recent(ctx context.Context, limit int) []RecordView {
	if limit <= 0 {
		limit = s.recentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	records, err := s.source.Records(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Recent records: reading records failed", "error", err)
		return []RecordView{}
	}
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	out := make([]RecordView, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		view := RecordView{
			Item:       rec.Item,
			Amount:     rec.Amount.Units(),
			Payer:      rec.Payer,
			SplitRatio: rec.SplitRatio,
			Category:   rec.Category,
			Notes:      rec.Notes,
		}
		if !rec.Date.IsZero() {
			view.Date = rec.Date.Format(time.RFC3339)
		}
		out = append(out, view)
	}
	return out
}
