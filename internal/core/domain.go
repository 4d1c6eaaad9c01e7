package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is the calendar day an expense happened. It is distinct from a
	// record's Timestamp (creation time) and is the field all month
	// windowing is based on. A zero Date means "unknown".
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Record is one expense row from the ledger. Records are decoded once
	// from the storage backend and never mutated afterwards.
	Record struct {
		Timestamp  time.Time
		Date       Date
		Item       string
		Amount     Money
		Payer      string
		SplitRatio string // raw ratio text, e.g. "50/50"; empty means default split
		Category   string
		Notes      string
	}

	// UserSummary is the result of a balance query. It is recomputed from
	// the full record snapshot on every call and never persisted.
	//
	// TotalSpending follows the ledger's historical semantics: for the
	// group view it is the plain sum of amounts, for a user view it is the
	// user's share of cost, not the cash they handed over.
	UserSummary struct {
		TotalSpending Money
		Transactions  int
		BalanceOwed   Money
	}
)

var (
	ErrInvalidDay    = errors.New("invalid day")
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyItem     = errors.New("empty item")
	ErrEmptyPayer    = errors.New("empty payer")
	ErrEmptyDate     = errors.New("empty date")
)

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrEmptyDate
	}
	_, month, day := d.Date()
	if day < 1 || day > 31 {
		return ErrInvalidDay
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// SameMonth reports whether the date falls in the same calendar month and
// year as t. A zero date never matches.
func (d Date) SameMonth(t time.Time) bool {
	if d.IsZero() {
		return false
	}
	return d.Time.Year() == t.Year() && d.Time.Month() == t.Month()
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks a record before it is written to the ledger. Records read
// back from storage are intentionally not re-validated; the engine tolerates
// whatever a consistent snapshot contains.
func (r Record) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(r.Item)) == 0 {
		return ErrEmptyItem
	}
	if len(r.Item) > 200 {
		return errors.New("item too long (max 200 characters)")
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Payer) == "" {
		return ErrEmptyPayer
	}
	if strings.TrimSpace(r.SplitRatio) != "" {
		if _, err := ParseSplitRatio(r.SplitRatio); err != nil {
			return err
		}
	}
	return nil
}
